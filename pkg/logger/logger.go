package logger

import (
	"io"
	"log/slog"
)

// New builds the process logger. "local" gets a human readable text handler,
// every other env gets JSON.
func New(env string, debug bool, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: Level(debug)}

	switch env {
	case "local":
		return slog.New(slog.NewTextHandler(w, opts))
	default:
		return slog.New(slog.NewJSONHandler(w, opts))
	}
}

func Level(debug bool) slog.Level {
	if debug {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
