package logging

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// InitLogger installs the tinted slog handler as the default logger.
// Logs go to stderr so piped scorer output stays clean; SCORER_DEBUG
// switches on debug-level logging.
func InitLogger() {
	level := slog.LevelInfo
	if os.Getenv("SCORER_DEBUG") != "" {
		level = slog.LevelDebug
	}

	handler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})

	slog.SetDefault(slog.New(handler))
}
