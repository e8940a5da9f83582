// Package log builds the zap logger used by the commands. Logs go to stderr,
// since stdout carries the command output.
package log

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a logger at the given level. LOG_DEBUG forces debug level.
// When LOG_DIRECTORY is set, entries are also appended to a dated file in
// that directory and files older than three days are removed.
func New(level string) (*zap.SugaredLogger, error) {
	if os.Getenv("LOG_DEBUG") != "" {
		level = "debug"
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	if dir := os.Getenv("LOG_DIRECTORY"); dir != "" {
		if err := cleanStaleLogs(dir, time.Now()); err != nil {
			return nil, fmt.Errorf("failed to clean log directory: %w", err)
		}
		cfg.OutputPaths = append(cfg.OutputPaths, logFile(dir, time.Now()))
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

func logFile(dir string, now time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("%s%s.log", filePrefix, now.Format("2006-01-02")))
}
