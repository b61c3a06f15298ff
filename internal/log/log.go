package log

import (
	"io"
	"os"

	"github.com/paularlott/logger"
	logslog "github.com/paularlott/logger/slog"
)

var root = newLogger("info", "console", os.Stderr)

// Configure sets the global log level and output format.
// Levels: trace, debug, info, warn, error. Formats: console, json.
func Configure(level, format string) {
	root = newLogger(level, format, os.Stderr)
}

func newLogger(level, format string, w io.Writer) logger.Logger {
	return logslog.New(logslog.Config{
		Level:  level,
		Format: format,
		Writer: w,
	})
}

// Debug logs a debug message with key/value pairs
func Debug(msg string, args ...any) { root.Debug(msg, args...) }

// Info logs an info message with key/value pairs
func Info(msg string, args ...any) { root.Info(msg, args...) }

// Warn logs a warning message with key/value pairs
func Warn(msg string, args ...any) { root.Warn(msg, args...) }

// Error logs an error message with key/value pairs
func Error(msg string, args ...any) { root.Error(msg, args...) }
