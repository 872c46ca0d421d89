// Package logging builds the process logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
)

// New returns a logger writing to w at level in the given format, "text" or
// "json".
func New(level slog.Level, format string, w io.Writer) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	switch format {
	case "", "text":
		h = slog.NewTextHandler(w, opts)
	case "json":
		h = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("new logger: unknown format %q", format)
	}
	return slog.New(h).With("app", "zbeacon"), nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
