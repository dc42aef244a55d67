package cli

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/dotenv-linter/dotenv-linter/internal/config"
)

// configureLogging sets up slog from the ambient configuration:
// always to stderr, plus a rotating log file when file logging is
// enabled.
func configureLogging(cfg *config.Config, stderrWriter io.Writer) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelWarn
	}

	writers := []io.Writer{stderrWriter}

	if cfg.FileLogging != nil && cfg.FileLogging.Enabled {
		logFilePath := config.ResolveLogFilePath(cfg.FileLogging.Filename)

		logDir := filepath.Dir(logFilePath)
		if err := os.MkdirAll(logDir, 0755); err != nil {
			slog.Error("failed to create log directory", "path", logDir, "error", err)
			// Continue without file logging rather than failing
		} else {
			fileWriter := &lumberjack.Logger{
				Filename:   logFilePath,
				MaxSize:    cfg.FileLogging.MaxSizeMB,
				MaxBackups: cfg.FileLogging.MaxBackups,
				MaxAge:     cfg.FileLogging.MaxAgeDays,
				Compress:   cfg.FileLogging.Compress,
			}
			writers = append(writers, fileWriter)
		}
	}

	handler := slog.NewTextHandler(io.MultiWriter(writers...), &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))

	slog.Debug("logging setup completed",
		"level", level.String(),
		"writers", len(writers))
}
