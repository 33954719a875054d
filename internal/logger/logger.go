// Package logger provides the session's diagnostic log. The dashboard owns
// stdout, so log output goes to a file when one is configured and is
// discarded otherwise.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	mu      sync.Mutex
	log     = slog.New(slog.NewTextHandler(io.Discard, nil))
	logFile *os.File
)

// Init routes log output to the file at path, creating it if needed and
// appending otherwise. Calling Init again replaces the previous destination.
func Init(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = f
	log = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return nil
}

// Close flushes and closes the log file. Logging after Close is discarded.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	log = slog.New(slog.NewTextHandler(io.Discard, nil))
}

func Debug(msg string, args ...any) { logger().Debug(msg, args...) }
func Info(msg string, args ...any)  { logger().Info(msg, args...) }
func Warn(msg string, args ...any)  { logger().Warn(msg, args...) }
func Error(msg string, args ...any) { logger().Error(msg, args...) }

func logger() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return log
}
