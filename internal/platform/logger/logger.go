// Package logger provides structured logging functionality for the application.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/phrazzld/scry-study/internal/config"
)

// Setup initializes the application's logging system from cfg. Logs go to
// stderr so they never interleave with a terminal study session on stdout.
// The logger is also installed as the slog default.
func Setup(cfg config.LogConfig) (*slog.Logger, error) {
	logger := New(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger, nil
}

// New builds a logger writing to w at the configured level and format.
// Unknown levels fall back to info, unknown formats to text.
func New(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// ParseLevel maps a level name (case-insensitive) to a slog.Level.
func ParseLevel(level string) slog.Level {
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
