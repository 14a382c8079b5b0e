// Package logging wires up log/slog the way samirrijal-bilbopass's
// internal/pkg/logging does, adapted so the routing engine never reaches
// for a package-level global: every constructor in this repository that
// wants to log takes a *slog.Logger parameter, and library callers who
// pass nil get a safe default instead of a panic.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New builds a *slog.Logger from a level ("debug"/"info"/"warn"/"error",
// default "info") and a format ("json"/"text", default "json"), matching
// bilbopass's Setup but returning the logger instead of installing it as
// the package-level default — this engine is meant to be embeddable as a
// library, so nothing here mutates global state.
func New(level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler
	if strings.EqualFold(format, "text") {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Discard returns a logger that drops everything, the "no-op logger" §9
// requires for library callers who don't pass one of their own.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// OrDefault returns logger unchanged if non-nil, otherwise a discarding
// logger — every constructor in this repository that accepts a
// *slog.Logger runs its argument through this first.
func OrDefault(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return Discard()
}
