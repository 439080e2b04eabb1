package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Logger interface for structured logging
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Warn(msg string, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Fatal(msg string, err error, fields ...interface{})
}

// Level controls which messages a SimpleLogger writes.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel converts a LOG_LEVEL value; unknown values fall back to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// SimpleLogger implements Logger with basic Go logging
type SimpleLogger struct {
	level       Level
	infoLogger  *log.Logger
	errorLogger *log.Logger
	warnLogger  *log.Logger
	debugLogger *log.Logger
}

// NewSimpleLogger creates a logger writing info/warn/debug to stdout and errors to stderr.
func NewSimpleLogger(level Level) Logger {
	return NewWithWriters(level, os.Stdout, os.Stderr)
}

// NewWithWriters creates a logger writing to the given destinations.
func NewWithWriters(level Level, out, errOut io.Writer) *SimpleLogger {
	flags := log.Ldate | log.Ltime | log.LUTC
	return &SimpleLogger{
		level:       level,
		infoLogger:  log.New(out, "INFO: ", flags),
		errorLogger: log.New(errOut, "ERROR: ", flags),
		warnLogger:  log.New(out, "WARN: ", flags),
		debugLogger: log.New(out, "DEBUG: ", flags),
	}
}

// Info logs an info message
func (l *SimpleLogger) Info(msg string, fields ...interface{}) {
	if l.level > LevelInfo {
		return
	}
	l.infoLogger.Print(msg + formatFields(fields))
}

// Error logs an error message
func (l *SimpleLogger) Error(msg string, err error, fields ...interface{}) {
	l.errorLogger.Printf("%s: %v%s", msg, err, formatFields(fields))
}

// Warn logs a warning message
func (l *SimpleLogger) Warn(msg string, fields ...interface{}) {
	if l.level > LevelWarn {
		return
	}
	l.warnLogger.Print(msg + formatFields(fields))
}

// Debug logs a debug message
func (l *SimpleLogger) Debug(msg string, fields ...interface{}) {
	if l.level > LevelDebug {
		return
	}
	l.debugLogger.Print(msg + formatFields(fields))
}

// Fatal logs a fatal error and exits
func (l *SimpleLogger) Fatal(msg string, err error, fields ...interface{}) {
	l.errorLogger.Fatalf("%s: %v%s", msg, err, formatFields(fields))
}

// formatFields renders alternating key/value pairs as " key=value key=value".
// A trailing key without a value is rendered as "key=(missing)".
func formatFields(fields []interface{}) string {
	if len(fields) == 0 {
		return ""
	}
	var b strings.Builder
	for i := 0; i < len(fields); i += 2 {
		b.WriteByte(' ')
		if i+1 < len(fields) {
			fmt.Fprintf(&b, "%v=%v", fields[i], fields[i+1])
		} else {
			fmt.Fprintf(&b, "%v=(missing)", fields[i])
		}
	}
	return b.String()
}

// NopLogger discards everything. Useful in tests.
type NopLogger struct{}

func (NopLogger) Info(string, ...interface{})         {}
func (NopLogger) Error(string, error, ...interface{}) {}
func (NopLogger) Warn(string, ...interface{})         {}
func (NopLogger) Debug(string, ...interface{})        {}
func (NopLogger) Fatal(msg string, err error, fields ...interface{}) {
	log.Fatalf("%s: %v%s", msg, err, formatFields(fields))
}
