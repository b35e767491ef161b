package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/timesheet-relay/internal/config"
)

// NewLogger creates the process logger on os.Stderr and installs it as the
// slog default.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg).With(slog.String("app", "timesheet-relay"))
	slog.SetDefault(logger)
	return logger
}

// newLogger builds a logger on w.
//
// Format "json" produces structured output for production; anything else
// produces text with source locations. Level is debug, info, warn or error
// (case-insensitive) and defaults to info.
func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: !strings.EqualFold(cfg.Format, "json"),
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
