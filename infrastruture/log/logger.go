// Package log provides the prefixed, colour-tagged logger shared by the
// application and its services.
package log

import (
	"errors"
	"io"
	stdlog "log"
)

const colorReset = "\033[0m"

// Logger writes lines of the form "[PREFIX] [LEVEL] message" where the
// prefix is printed in the logger's colour.
type Logger struct {
	prefix string
	color  string
	out    *stdlog.Logger
}

// New creates a Logger writing to w. Prefix names the component, color is
// an ANSI escape sequence and may be empty.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, errors.New("logger prefix is empty")
	}
	if w == nil {
		return nil, errors.New("logger writer is nil")
	}

	return &Logger{
		prefix: prefix,
		color:  color,
		out:    stdlog.New(w, "", stdlog.LstdFlags),
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.write("INFO", msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.write("WARNING", msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.write("ERROR", msg)
}

func (l *Logger) write(level, msg string) {
	if l.color == "" {
		l.out.Printf("[%s] [%s] %s", l.prefix, level, msg)
		return
	}
	l.out.Printf("%s[%s]%s [%s] %s", l.color, l.prefix, colorReset, level, msg)
}
