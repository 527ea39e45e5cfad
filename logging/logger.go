// Package logging provides structured logging for stateberry tooling.
//
// The codec packages themselves never log; errors are plain data returned
// to the caller. This package serves the CLI and any host embedding the
// library that wants consistent attribute names.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/blockberries/stateberry/key"
	"github.com/blockberries/stateberry/value"
)

// Logger is a structured logger for stateberry.
// It wraps slog.Logger with convenience methods for common logging patterns.
type Logger struct {
	*slog.Logger
}

// New creates a new Logger with the given handler.
func New(handler slog.Handler) *Logger {
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a new Logger with text output format.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: false,
	}
	return New(slog.NewTextHandler(w, opts))
}

// NewJSONLogger creates a new Logger with JSON output format.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: false,
	}
	return New(slog.NewJSONHandler(w, opts))
}

// NewDevelopmentLogger creates a logger suitable for development.
// Uses text format with debug level output to stderr.
func NewDevelopmentLogger() *Logger {
	return NewTextLogger(os.Stderr, slog.LevelDebug)
}

// NewNopLogger creates a logger that discards all output.
func NewNopLogger() *Logger {
	return New(nopHandler{})
}

// With returns a new Logger with the given attributes added to every log entry.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		Logger: l.Logger.With(args...),
	}
}

// WithComponent returns a new Logger with a component attribute.
func (l *Logger) WithComponent(name string) *Logger {
	return l.With(Component(name))
}

// Common attribute constructors for state-layer fields.

// Component creates a component attribute for identifying the source module.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// KeyAttr creates an attribute with the key's human-readable form.
func KeyAttr(k key.Key) slog.Attr {
	return slog.String("key", k.String())
}

// KeyKind creates a key variant attribute.
func KeyKind(k key.Key) slog.Attr {
	return slog.String("key_kind", k.Kind().String())
}

// Rights creates an access-rights attribute.
func Rights(r key.AccessRights) slog.Attr {
	return slog.String("rights", r.String())
}

// ValueType creates an attribute with a value's variant label.
func ValueType(v value.Value) slog.Attr {
	return slog.String("value_type", v.TypeName())
}

// Size creates a size attribute in bytes.
func Size(n int) slog.Attr {
	return slog.Int("size_bytes", n)
}

// Remaining creates an attribute for bytes left over after a decode.
func Remaining(n int) slog.Attr {
	return slog.Int("remaining_bytes", n)
}

// Error creates an error attribute.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String("error", err.Error())
}

// nopHandler is a slog.Handler that discards all logs.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (h nopHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h nopHandler) WithGroup(string) slog.Handler           { return h }
