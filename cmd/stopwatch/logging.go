package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

var (
	logDir      = "logs"
	logFileName = "stopwatch.log"
)

const maxLogSize = 10 * 1024 * 1024

// setupLogging returns the application logger and its backing file.
// Without debug all output is discarded and the file is nil; the terminal is never a log target
func setupLogging(debug bool) (*log.Logger, *os.File) {
	if !debug {
		return log.New(io.Discard), nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return log.New(io.Discard), nil
	}

	logPath := filepath.Join(logDir, logFileName)
	rotateLog(logPath)

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return log.New(io.Discard), nil
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.StampMilli,
		Level:           log.DebugLevel,
		Prefix:          "stopwatch",
	})
	return logger, f
}

// rotateLog moves an oversized log aside under a timestamped name
func rotateLog(logPath string) {
	info, err := os.Stat(logPath)
	if err != nil || info.Size() <= maxLogSize {
		return
	}
	stamp := time.Now().Format("20060102-150405")
	rotated := filepath.Join(logDir, fmt.Sprintf("stopwatch-%s.log", stamp))
	_ = os.Rename(logPath, rotated)
}
