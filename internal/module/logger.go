package module

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Logger writes import diagnostics (Loader logs one line per module it
// freshly evaluates), coloring output only when the destination is an
// actual terminal — grounded on the teacher's builtins_term.go, which
// gates its own ANSI rendering behind the same isatty.IsTerminal /
// IsCygwinTerminal pair.
type Logger struct {
	out   io.Writer
	color bool
}

// NewLogger builds a Logger writing to w, detecting color support when w is
// an *os.File.
func NewLogger(w io.Writer) *Logger {
	color := false
	if f, ok := w.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Logger{out: w, color: color}
}

func (l *Logger) Printf(format string, args ...interface{}) {
	if l == nil || l.out == nil {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if l.color {
		fmt.Fprintf(l.out, "\x1b[2m%s\x1b[0m\n", msg)
		return
	}
	fmt.Fprintln(l.out, msg)
}
