// Package runlog provides the per-invocation analysis log file.
package runlog

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Logger writes timestamped entries for a single analysis run.
// It wraps file-based logging with thread-safe access.
type Logger struct {
	mu   sync.Mutex
	file *os.File
}

// New creates a logger writing to the specified path.
// If the path is empty, returns a no-op logger.
// Creates parent directories if they don't exist.
func New(logPath string) (*Logger, error) {
	if logPath == "" {
		return &Logger{}, nil
	}

	dir := filepath.Dir(logPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	logger := &Logger{file: f}
	logger.Log("=== Analysis run started at %s ===", time.Now().Format(time.RFC3339))

	return logger, nil
}

// ForOutputDir creates a logger writing to analysis.log in the output directory.
func ForOutputDir(outputDir string) (*Logger, error) {
	return New(filepath.Join(outputDir, "analysis.log"))
}

// Nop returns a no-op logger for testing or when logging is disabled.
func Nop() *Logger {
	return &Logger{}
}

// Log writes a timestamped message to the run log.
// If the logger is nil or has no file, this is a no-op.
func (l *Logger) Log(format string, args ...interface{}) {
	if l == nil || l.file == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)
	timestamp := time.Now().Format("15:04:05.000")
	fmt.Fprintf(l.file, "[%s] %s\n", timestamp, msg)
	l.file.Sync()
}

// Path returns the log file path, or "" for a no-op logger.
func (l *Logger) Path() string {
	if l == nil || l.file == nil {
		return ""
	}
	return l.file.Name()
}

// Close closes the log file.
// Safe to call on nil logger or logger without file.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	return l.file.Close()
}
