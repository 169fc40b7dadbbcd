// File: entry.go
// Title: Log Entry and Fields
// Description: The log entry record handed to formatters and the Fields
//              helpers used to attach structured data.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation

package log

import (
	"sort"
	"time"
)

// Entry represents a single log entry with all its metadata
type Entry struct {
	Timestamp time.Time
	Level     Level
	Message   string
	Logger    string
	Fields    Fields
	Error     error
}

// Fields represents custom key-value pairs for structured logging
type Fields map[string]interface{}

// Err creates an error field for logging
func Err(err error) Fields {
	return Fields{"error": err}
}

// String creates a string field for logging
func String(key string, value string) Fields {
	return Fields{key: value}
}

// Int creates an integer field for logging
func Int(key string, value int) Fields {
	return Fields{key: value}
}

// Merge returns a new Fields containing f overlaid with other
func (f Fields) Merge(other Fields) Fields {
	result := make(Fields, len(f)+len(other))
	for k, v := range f {
		result[k] = v
	}
	for k, v := range other {
		result[k] = v
	}
	return result
}

// Keys returns the field names in sorted order
func (f Fields) Keys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// NewEntry creates a new log entry
func NewEntry(level Level, message string) *Entry {
	return &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Fields:    make(Fields),
	}
}
