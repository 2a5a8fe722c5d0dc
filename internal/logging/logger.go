// README: slog logger construction shared by the binary and tests.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// New creates the application logger writing to stderr.
func New(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewNop returns a logger that discards everything; used in tests.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
