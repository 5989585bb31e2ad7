package core

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"

	"github.com/marover/webpilot/internals/assert"
	"github.com/marover/webpilot/internals/conf"
)

// InitLogger writes tinted logs to stdout and plain appends to
// <data_dir>/log.txt. Color is dropped when stdout is not a terminal.
func InitLogger(config *conf.Config) *slog.Logger {
	logPath := filepath.Join(config.Server.DataDir, "log.txt")
	err := os.MkdirAll(filepath.Dir(logPath), 0o755)
	assert.AssertNil(err, "[CORE] Failed to initialize log directory")

	logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	assert.AssertNil(err, "[CORE] Failed to open log file")

	logWriter := io.MultiWriter(os.Stdout, logFile)
	handler := tint.NewHandler(logWriter, &tint.Options{
		Level:   slog.LevelDebug,
		NoColor: !isatty.IsTerminal(os.Stdout.Fd()),
	})
	logger := slog.New(handler)

	slog.SetDefault(logger)
	return logger
}
