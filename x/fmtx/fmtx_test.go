package fmtx

import (
	"bytes"
	"testing"
)

func TestSprintfVerbs(t *testing.T) {
	type C struct {
		fmt  string
		args []any
		want string
	}
	for _, c := range []C{
		{"hello %s", []any{"world"}, "hello world"},
		{"num %d hex %x HEX %X", []any{255, 255, 255}, "num 255 hex ff HEX FF"},
		{"bool %t %t", []any{true, false}, "bool true false"},
		{"literal %%", nil, "literal %"},
		{"v=%v", []any{uint8(125)}, "v=125"},
	} {
		got := Sprintf(c.fmt, c.args...)
		if got != c.want {
			t.Fatalf("Sprintf(%q, ...) = %q, want %q", c.fmt, got, c.want)
		}
	}
}

func TestPrintfUsesDefaultOutput(t *testing.T) {
	var buf bytes.Buffer
	old := DefaultOutput
	DefaultOutput = &buf
	t.Cleanup(func() { DefaultOutput = old })

	if _, err := Printf("rate=%d", 60); err != nil {
		t.Fatalf("Printf error: %v", err)
	}
	if got, want := buf.String(), "rate=60"; got != want {
		t.Fatalf("Printf wrote %q, want %q", got, want)
	}
}

func TestErrorf(t *testing.T) {
	err := Errorf("bad %s: %d", "index", 3)
	if err == nil || err.Error() != "bad index: 3" {
		t.Fatalf("Errorf = %v, want %q", err, "bad index: 3")
	}
}
