package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New builds the console's JSON logger. Every line carries a service tag so
// the ops console is separable from the platform's own logs when both land
// in the same sink. Unknown level strings fall back to info rather than
// failing startup.
func New(level string, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stdout
	}
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: parseLevel(level)})
	return slog.New(handler).With("service", "giro-certo-ops")
}

// NewLogger is New writing to stdout.
func NewLogger(level string) *slog.Logger {
	return New(level, os.Stdout)
}

// Component tags a child logger with the owning subsystem, so gateway,
// session and fleet lines can be filtered apart downstream.
func Component(logger *slog.Logger, name string) *slog.Logger {
	return logger.With("component", name)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
