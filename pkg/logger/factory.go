package logger

import (
	"log/slog"
	"os"
)

// New creates a JSON-formatted logger writing to stdout.
// Context extractors inject request-scoped attributes (request IDs and
// the like) into every record logged through a request context.
func New(level slog.Level, extractors ...ContextExtractor) *slog.Logger {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(NewContextHandler(h, extractors...))
}

// ParseLevel maps a config string to a slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch s {
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
