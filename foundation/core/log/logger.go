// File: logger.go
// Title: Structured Logger
// Description: Logger with a minimum level, a formatter, an output writer
//              and persistent context fields. Configuration methods return
//              clones so a shared logger is never mutated by callers.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation
// - 2026-10-17 v0.2.0: Nop logger, structured error logging by severity

package log

import (
	"io"
	"os"
	"sync"

	mdwerror "github.com/msto63/presenty/foundation/core/error"
)

// Logger represents a structured logger with contextual information
type Logger struct {
	level         Level
	formatter     Formatter
	output        io.Writer
	name          string
	contextFields Fields

	mutex sync.Mutex
}

// Config represents logger configuration
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
	Name   string
}

// New creates a new logger with default configuration
func New() *Logger {
	return &Logger{
		level:         DefaultLevel(),
		formatter:     NewJSONFormatter(),
		output:        os.Stderr,
		contextFields: make(Fields),
	}
}

// NewWithConfig creates a new logger with the specified configuration
func NewWithConfig(config Config) *Logger {
	logger := &Logger{
		level:         config.Level,
		formatter:     GetFormatter(config.Format),
		output:        config.Output,
		name:          config.Name,
		contextFields: make(Fields),
	}

	if logger.output == nil {
		logger.output = os.Stderr
	}

	return logger
}

// Nop returns a logger that discards everything
func Nop() *Logger {
	return NewWithConfig(Config{Level: LevelOff, Output: io.Discard})
}

// WithLevel returns a clone with the minimum log level set
func (l *Logger) WithLevel(level Level) *Logger {
	clone := l.clone()
	clone.level = level
	return clone
}

// WithField returns a clone that adds a persistent field to all entries
func (l *Logger) WithField(key string, value interface{}) *Logger {
	clone := l.clone()
	clone.contextFields[key] = value
	return clone
}

// Debug logs a debug level message
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, fields...)
}

// Info logs an info level message
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, fields...)
}

// Warn logs a warning level message
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, nil, fields...)
}

// Error logs an error level message
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, nil, fields...)
}

// LogError logs an error, choosing the level from a structured error's severity
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	mdwErr, ok := err.(*mdwerror.Error)
	if !ok {
		l.log(LevelError, err.Error(), err)
		return
	}

	fields := Fields{
		"error_code":     mdwErr.Code(),
		"error_severity": mdwErr.Severity().String(),
	}
	if op := mdwErr.Operation(); op != "" {
		fields["error_operation"] = op
	}
	for k, v := range mdwErr.Details() {
		fields["error_"+k] = v
	}

	level := LevelError
	switch mdwErr.Severity() {
	case mdwerror.SeverityLow:
		level = LevelDebug
	case mdwerror.SeverityMedium:
		level = LevelWarn
	}

	l.log(level, err.Error(), nil, fields)
}

// IsLevelEnabled returns true if the given level is enabled
func (l *Logger) IsLevelEnabled(level Level) bool {
	return level.ShouldLog(l.level)
}

// GetLevel returns the current log level
func (l *Logger) GetLevel() Level {
	return l.level
}

func (l *Logger) log(level Level, message string, err error, fields ...Fields) {
	if l == nil || !level.ShouldLog(l.level) {
		return
	}

	entry := NewEntry(level, message)
	entry.Logger = l.name
	entry.Error = err

	for k, v := range l.contextFields {
		entry.Fields[k] = v
	}
	for _, fieldSet := range fields {
		for k, v := range fieldSet {
			entry.Fields[k] = v
		}
	}

	formatted, formatErr := l.formatter.Format(entry)
	if formatErr != nil {
		return
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()
	_, _ = l.output.Write(formatted)
}

func (l *Logger) clone() *Logger {
	clone := &Logger{
		level:         l.level,
		formatter:     l.formatter,
		output:        l.output,
		name:          l.name,
		contextFields: make(Fields, len(l.contextFields)),
	}

	for k, v := range l.contextFields {
		clone.contextFields[k] = v
	}

	return clone
}
