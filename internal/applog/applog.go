// Package applog owns the process-wide charmbracelet logger used by game
// sessions. The terminal belongs to Bubble Tea while a game runs, so output is
// discarded unless a log file is configured.
package applog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	mu      sync.RWMutex
	logger  = log.New(io.Discard)
	logFile *os.File
)

// Logger returns the shared logger.
func Logger() *log.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// For returns the shared logger tagged with a component prefix.
func For(prefix string) *log.Logger {
	return Logger().WithPrefix(prefix)
}

// SetOutput replaces the shared logger with one writing to w.
func SetOutput(w io.Writer, level log.Level) {
	mu.Lock()
	defer mu.Unlock()
	logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})
}

// Setup opens path for appending and routes the shared logger to it.
// An empty path keeps logging disabled.
func Setup(path, level string) error {
	if path == "" {
		return nil
	}

	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("applog: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("applog: cannot create directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("applog: cannot open %s: %w", path, err)
	}

	Close()
	SetOutput(f, lvl)

	mu.Lock()
	logFile = f
	mu.Unlock()
	return nil
}

// Close releases the log file, if any, and disables logging.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		//nolint:errcheck // Best-effort close on shutdown
		logFile.Close()
		logFile = nil
	}
	logger = log.New(io.Discard)
}
