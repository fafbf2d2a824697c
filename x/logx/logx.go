// Package logx prints bracket-tagged lines ("[comms] ...") through fmtx so
// the same call sites work on host and MCU builds.
package logx

import (
	"io"

	"joyadapter-go/x/fmtx"
)

type Logger struct {
	tag string
	w   io.Writer // nil => fmtx.DefaultOutput
}

// New returns a logger that prefixes lines with "[tag] ".
func New(tag string) *Logger { return &Logger{tag: tag} }

// WithWriter redirects output; used by tests and the MCU console bootstrap.
func (l *Logger) WithWriter(w io.Writer) *Logger {
	return &Logger{tag: l.tag, w: w}
}

// Printf writes one tagged line. A nil *Logger is silent.
func (l *Logger) Printf(format string, a ...any) {
	if l == nil {
		return
	}
	w := l.w
	if w == nil {
		w = fmtx.DefaultOutput
	}
	_, _ = fmtx.Fprintf(w, "[%s] %s\n", l.tag, fmtx.Sprintf(format, a...))
}
