// Package mjlog is the structured logging wrapper every other package in
// this module logs through: a single charmbracelet/log logger configured
// once at process startup and shared read-only afterward.
package mjlog

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	TimeFormat:      time.DateTime,
})

// Init reconfigures the shared logger: prefix identifies the running
// component (e.g. "mahjongserver", "tenhouimport") and level is one of
// debug/info/warn/error.
func Init(prefix, level string) {
	logger.SetPrefix(prefix)
	switch level {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
}

// With returns a sub-logger carrying the given key/value pairs on every
// subsequent call, the way a per-round or per-session logger is derived.
func With(keyvals ...any) *log.Logger {
	return logger.With(keyvals...)
}

func Debug(msg string, keyvals ...any) { logger.Debug(msg, keyvals...) }
func Info(msg string, keyvals ...any)  { logger.Info(msg, keyvals...) }
func Warn(msg string, keyvals ...any)  { logger.Warn(msg, keyvals...) }
func Error(msg string, keyvals ...any) { logger.Error(msg, keyvals...) }
func Fatal(msg string, keyvals ...any) { logger.Fatal(msg, keyvals...) }
