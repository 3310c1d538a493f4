package logging

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// New returns a text slog.Logger writing to w. Skipped files and failed
// saves are logged at debug level, so they only show up when verbose.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h)
}

// WithRun tags every record of one scan run with a fresh run id
func WithRun(logger *slog.Logger) *slog.Logger {
	return logger.With("run", uuid.New().String())
}

// Discard returns a logger that drops everything
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
