package party

import (
	"io"
	"log/slog"
	"os"
)

// NewTextLogger returns a logger emitting human-readable lines to stderr.
// level sets the minimum log level.
func NewTextLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger returns a logger that discards all output. Use it to silence
// step logging entirely.
func NoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
