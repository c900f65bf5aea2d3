// Package logger is a small slog wrapper. Output goes to a file under
// the config directory; stdout is never used because the TUI owns it.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Config describes logger settings as stored in the config file.
type Config struct {
	Enabled bool   `yaml:"enabled"`
	Level   string `yaml:"level,omitempty"` // debug, info, warn, error
	File    string `yaml:"file,omitempty"`  // relative paths resolve against the config dir
}

var (
	mu   sync.RWMutex
	base = slog.New(slog.NewTextHandler(io.Discard, nil))
	file *os.File
)

// Init opens the log file and installs the handler. A disabled config
// leaves the discard handler in place. Errors opening the file are
// returned but the logger stays usable (discarding).
func Init(cfg Config, configDir string) error {
	mu.Lock()
	defer mu.Unlock()

	if file != nil {
		file.Close()
		file = nil
	}
	if !cfg.Enabled {
		base = slog.New(slog.NewTextHandler(io.Discard, nil))
		return nil
	}

	path := cfg.File
	if path == "" {
		path = "termcv.log"
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(configDir, path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("logger: create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("logger: open log file: %w", err)
	}
	file = f
	base = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: parseLevel(cfg.Level)}))
	return nil
}

// Close flushes and closes the log file.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if file != nil {
		file.Close()
		file = nil
	}
	base = slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Debug logs a debug message.
func Debug(msg string, args ...any) { log(slog.LevelDebug, msg, args...) }

// Info logs an info message.
func Info(msg string, args ...any) { log(slog.LevelInfo, msg, args...) }

// Warn logs a warning message.
func Warn(msg string, args ...any) { log(slog.LevelWarn, msg, args...) }

// Error logs an error message.
func Error(msg string, args ...any) { log(slog.LevelError, msg, args...) }

func log(level slog.Level, msg string, args ...any) {
	mu.RLock()
	l := base
	mu.RUnlock()
	l.Log(nil, level, msg, args...)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
