package logging

import (
	"io"
	"log/slog"
)

// New builds the process logger: JSON lines in production, key=value text elsewhere.
func New(w io.Writer, level slog.Level, production bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if production {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
