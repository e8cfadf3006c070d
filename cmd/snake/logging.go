package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lixenwraith/snake/config"
)

const (
	logDir      = "logs"
	logFileName = "snake.log"
	maxLogSize  = 10 * 1024 * 1024
)

// newLogger builds a slog.Logger without touching the global default
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if formatStr == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}
	return slog.New(handler)
}

// setupLogging opens the log file, rotating it when oversized, and installs the default logger.
// The terminal owns stdout/stderr while the game runs, so an empty path discards logs.
// The returned file is nil when logging is discarded
func setupLogging(cfg config.LogConfig) (*os.File, error) {
	if cfg.File == "" {
		slog.SetDefault(newLogger(cfg.Level, cfg.Format, io.Discard))
		return nil, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	if info, err := os.Stat(cfg.File); err == nil && info.Size() > maxLogSize {
		ext := filepath.Ext(cfg.File)
		rotated := fmt.Sprintf("%s-%s%s", strings.TrimSuffix(cfg.File, ext), time.Now().Format("20060102-150405"), ext)
		if err := os.Rename(cfg.File, rotated); err != nil {
			return nil, fmt.Errorf("rotating log file: %w", err)
		}
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	slog.SetDefault(newLogger(cfg.Level, cfg.Format, f))
	return f, nil
}
