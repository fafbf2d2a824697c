//go:build rp2040 || rp2350

package fmtx

import (
	"io"

	"joyadapter-go/x/conv"
)

// DefaultOutput is used by Print/Printf on MCU builds.
// Set this from the platform bootstrap (e.g. a UART writer).
var DefaultOutput io.Writer = discard{}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func Sprintf(format string, a ...any) string {
	var b builder
	b.format(format, a)
	return string(b.buf)
}

func Printf(format string, a ...any) (int, error) { return Fprintf(DefaultOutput, format, a...) }

func Fprintf(w io.Writer, format string, a ...any) (int, error) {
	var b builder
	b.format(format, a)
	return w.Write(b.buf)
}

func Errorf(format string, a ...any) error { return stringError(Sprintf(format, a...)) }

func Sprint(a ...any) string {
	var b builder
	for i, v := range a {
		if i > 0 {
			b.buf = append(b.buf, ' ')
		}
		b.value(v, 'v')
	}
	return string(b.buf)
}

func Print(a ...any) (int, error) { return io.WriteString(DefaultOutput, Sprint(a...)) }

type stringError string

func (e stringError) Error() string { return string(e) }

// builder supports %s %q %d %x %X %v %t %% and nothing else.
type builder struct {
	buf []byte
	num [24]byte
}

func (b *builder) format(format string, args []any) {
	ai := 0
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' || i+1 >= len(format) {
			b.buf = append(b.buf, c)
			continue
		}
		i++
		verb := format[i]
		if verb == '%' {
			b.buf = append(b.buf, '%')
			continue
		}
		if ai >= len(args) {
			b.buf = append(b.buf, "%!"...)
			b.buf = append(b.buf, verb)
			b.buf = append(b.buf, "(MISSING)"...)
			continue
		}
		b.value(args[ai], verb)
		ai++
	}
}

func (b *builder) value(v any, verb byte) {
	switch x := v.(type) {
	case nil:
		b.buf = append(b.buf, "<nil>"...)
	case string:
		b.str(x, verb)
	case []byte:
		b.str(string(x), verb)
	case bool:
		if x {
			b.buf = append(b.buf, "true"...)
		} else {
			b.buf = append(b.buf, "false"...)
		}
	case int:
		b.int(int64(x), verb)
	case int8:
		b.int(int64(x), verb)
	case int16:
		b.int(int64(x), verb)
	case int32:
		b.int(int64(x), verb)
	case int64:
		b.int(x, verb)
	case uint:
		b.uint(uint64(x), verb)
	case uint8:
		b.uint(uint64(x), verb)
	case uint16:
		b.uint(uint64(x), verb)
	case uint32:
		b.uint(uint64(x), verb)
	case uint64:
		b.uint(x, verb)
	case error:
		b.str(x.Error(), verb)
	case interface{ String() string }:
		b.str(x.String(), verb)
	default:
		b.buf = append(b.buf, '?')
	}
}

func (b *builder) str(s string, verb byte) {
	if verb != 'q' {
		b.buf = append(b.buf, s...)
		return
	}
	b.buf = append(b.buf, '"')
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\', '"':
			b.buf = append(b.buf, '\\', s[i])
		case '\n':
			b.buf = append(b.buf, '\\', 'n')
		default:
			b.buf = append(b.buf, s[i])
		}
	}
	b.buf = append(b.buf, '"')
}

func (b *builder) int(n int64, verb byte) {
	if verb == 'x' || verb == 'X' {
		b.uint(uint64(n), verb)
		return
	}
	b.buf = append(b.buf, conv.Itoa(b.num[:], n)...)
}

func (b *builder) uint(n uint64, verb byte) {
	switch verb {
	case 'x':
		b.buf = append(b.buf, conv.Hex(b.num[:], n, false)...)
	case 'X':
		b.buf = append(b.buf, conv.Hex(b.num[:], n, true)...)
	default:
		b.buf = append(b.buf, conv.Utoa(b.num[:], n)...)
	}
}
