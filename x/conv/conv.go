// Package conv holds allocation-free integer formatting for MCU builds.
package conv

// Itoa writes the base-10 form of n into the tail of buf and returns the used
// slice. buf should be at least 20 bytes for int64.
func Itoa(buf []byte, n int64) []byte {
	if n >= 0 {
		return Utoa(buf, uint64(n))
	}
	out := Utoa(buf, uint64(-n))
	i := len(buf) - len(out)
	if i == 0 {
		return out
	}
	i--
	buf[i] = '-'
	return buf[i:]
}

// Utoa writes the base-10 form of n into the tail of buf.
func Utoa(buf []byte, n uint64) []byte {
	return format(buf, n, 10, false)
}

// Hex writes n in lower-case (or upper-case) hex without a prefix.
func Hex(buf []byte, n uint64, upper bool) []byte {
	return format(buf, n, 16, upper)
}

func format(buf []byte, n uint64, base uint64, upper bool) []byte {
	if len(buf) == 0 {
		return buf[:0]
	}
	digits := "0123456789abcdef"
	if upper {
		digits = "0123456789ABCDEF"
	}
	i := len(buf)
	if n == 0 {
		i--
		buf[i] = '0'
		return buf[i:]
	}
	for n > 0 && i > 0 {
		i--
		buf[i] = digits[n%base]
		n /= base
	}
	return buf[i:]
}
