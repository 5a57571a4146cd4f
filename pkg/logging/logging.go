// Package logging builds the service's structured logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// New returns a JSON slog logger at the given level. With an empty dir the
// logger writes to stderr; otherwise it writes a rotated file in dir.
func New(level, dir string) *slog.Logger {
	var w io.Writer = os.Stderr
	if dir != "" {
		w = &lumberjack.Logger{
			Filename: filepath.Join(dir, "flight-assigner.slog"),
			MaxSize:  64, // MB
			MaxAge:   14,
			Compress: true,
		}
	}
	return NewWithWriter(level, w)
}

// NewWithWriter is New with an explicit destination
func NewWithWriter(level string, w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}))
}

// ParseLevel maps debug/info/warn/error to a slog level; anything else is info.
func ParseLevel(level string) slog.Level {
	switch level {
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

// Discard returns a logger that drops everything
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
