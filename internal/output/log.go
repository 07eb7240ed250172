// Package output provides terminal output utilities: logging, styles,
// tables, diff rendering, and build request serialization.
package output

import (
	"os"

	"github.com/charmbracelet/log"
)

// logger is the package-wide logger. SetupLogging replaces it once flags
// and config are resolved; until then it logs at info level without
// timestamps so early startup errors still render.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	ReportCaller:    false,
})

// LogConfig carries the logging knobs resolved from flags and config.
type LogConfig struct {
	// Verbose switches to debug level and forces timestamps and caller
	// reporting on, regardless of Timestamps.
	Verbose bool

	// Timestamps toggles timestamp rendering. Nil keeps the default (on).
	Timestamps *bool
}

// BoolPtr returns a pointer to b, for LogConfig.Timestamps.
func BoolPtr(b bool) *bool {
	return &b
}

// SetupLogging rebuilds the package logger from cfg.
func SetupLogging(cfg LogConfig) {
	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}

	timestamps := true
	if !cfg.Verbose && cfg.Timestamps != nil {
		timestamps = *cfg.Timestamps
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: timestamps,
		ReportCaller:    cfg.Verbose,
		TimeFormat:      "15:04:05",
	})
}

// StageLogger returns a logger prefixed with an update stage name, so
// multi-stage transcripts read as "patch:", "bootstrap:", and so on.
func StageLogger(stage string) *log.Logger {
	return logger.WithPrefix(stage)
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...interface{}) {
	logger.Debug(msg, keyvals...)
}

// Info logs an info message.
func Info(msg string, keyvals ...interface{}) {
	logger.Info(msg, keyvals...)
}

// Warn logs a warning message.
func Warn(msg string, keyvals ...interface{}) {
	logger.Warn(msg, keyvals...)
}

// Error logs an error message.
func Error(msg string, keyvals ...interface{}) {
	logger.Error(msg, keyvals...)
}

// Fatal logs a fatal message and exits.
func Fatal(msg string, keyvals ...interface{}) {
	logger.Fatal(msg, keyvals...)
}
