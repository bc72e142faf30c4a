// Package log wraps log/slog with a component tag so transport and
// command output can be filtered by origin.
package log

import (
	"io"
	"log/slog"
	"math"
	"os"
)

// Logger is a slog.Logger that stamps every record with its component.
type Logger struct {
	*slog.Logger
}

// New creates a Logger writing text records to stderr at the given level.
func New(level slog.Level, component string) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return &Logger{Logger: slog.New(handler).With("component", component)}
}

// WithComponent returns a Logger tagged with a different component.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{Logger: l.Logger.With("component", component)}
}

// Discard returns a Logger that drops everything, for tests and the
// default non-verbose CLI path.
func Discard() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)}))}
}
