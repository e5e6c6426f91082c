package main

import (
	"log/slog"
	"os"

	"github.com/HicaroD/mangle/internal/config"
)

// setupLogger installs the default logger. Logs go to stderr so they never
// mix with program output.
func setupLogger(cfg *config.Config) {
	level, err := cfg.Level()
	if err != nil {
		level = slog.LevelWarn
	}
	if config.DEV {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}
