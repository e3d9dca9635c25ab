// Package logger provides a small leveled logging interface for sysmon
// components. It writes through the standard log package so that the
// dashboard can redirect everything to a file while the TUI owns the
// terminal.
package logger

import (
	"fmt"
	"log"
	"os"
)

// DebugEnv is the environment variable that enables debug output.
const DebugEnv = "SYSMON_DEBUG"

// Logger is a printf-style leveled logger.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// envLogger writes to the standard logger with a component prefix such as
// "[gpu]". Debug lines appear only when SYSMON_DEBUG is set.
type envLogger struct {
	prefix string
}

// NewEnvLogger returns the logger sysmon components use at runtime.
func NewEnvLogger(prefix string) Logger {
	return &envLogger{prefix: prefix}
}

// DebugEnabled reports whether SYSMON_DEBUG is set.
func DebugEnabled() bool {
	return os.Getenv(DebugEnv) != ""
}

func (l *envLogger) Debug(format string, args ...interface{}) {
	if DebugEnabled() {
		l.logf("", format, args)
	}
}

func (l *envLogger) Info(format string, args ...interface{})  { l.logf("", format, args) }
func (l *envLogger) Warn(format string, args ...interface{})  { l.logf("WARN: ", format, args) }
func (l *envLogger) Error(format string, args ...interface{}) { l.logf("ERROR: ", format, args) }

func (l *envLogger) logf(tag, format string, args []interface{}) {
	log.Printf(l.prefix+" "+tag+format, args...)
}

type noopLogger struct{}

// Noop returns a logger that discards all messages.
func Noop() Logger {
	return &noopLogger{}
}

func (l *noopLogger) Debug(format string, args ...interface{}) {}
func (l *noopLogger) Info(format string, args ...interface{})  {}
func (l *noopLogger) Warn(format string, args ...interface{})  {}
func (l *noopLogger) Error(format string, args ...interface{}) {}

// LogMessage is one line recorded by a BufferLogger.
type LogMessage struct {
	Level   string
	Message string
}

// BufferLogger records lines in memory so tests can check what a component logged.
type BufferLogger struct {
	Messages []LogMessage
}

// NewBufferLogger returns an empty BufferLogger.
func NewBufferLogger() *BufferLogger {
	return &BufferLogger{
		Messages: make([]LogMessage, 0),
	}
}

func (l *BufferLogger) Debug(format string, args ...interface{}) {
	l.record("debug", format, args...)
}

func (l *BufferLogger) Info(format string, args ...interface{}) {
	l.record("info", format, args...)
}

func (l *BufferLogger) Warn(format string, args ...interface{}) {
	l.record("warn", format, args...)
}

func (l *BufferLogger) Error(format string, args ...interface{}) {
	l.record("error", format, args...)
}

func (l *BufferLogger) record(level, format string, args ...interface{}) {
	l.Messages = append(l.Messages, LogMessage{Level: level, Message: fmt.Sprintf(format, args...)})
}

// HasLevel reports whether any line was recorded at level ("debug", "info", "warn" or "error").
func (l *BufferLogger) HasLevel(level string) bool {
	for _, m := range l.Messages {
		if m.Level == level {
			return true
		}
	}
	return false
}

var defaultLogger = NewEnvLogger("[sysmon]")

// Default returns the logger used by components built without one.
func Default() Logger {
	return defaultLogger
}

// SetDefault replaces the logger returned by Default.
func SetDefault(l Logger) {
	defaultLogger = l
}
