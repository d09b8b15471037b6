package logger

import (
	"log/slog"
	"os"
)

// New returns the root structured logger. JSON output keeps log pipelines
// happy; level is debug-friendly in development via MARKETHUB_LOG_LEVEL.
func New() *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv("MARKETHUB_LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
