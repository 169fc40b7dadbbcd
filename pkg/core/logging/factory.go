// ============================================================================
// presenty - fluent text presentation for Go
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating foundation loggers from
//              configuration values
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	"github.com/msto63/presenty/foundation/core/config"
	mdwlog "github.com/msto63/presenty/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name
	Name string

	// Log level (trace, debug, info, warn, error, off)
	Level string

	// Output format: "json", "text" or "logfmt" (default: text)
	Format string

	// Primary output (default: stderr)
	Output io.Writer

	// Additional outputs besides Output
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "warn",
		Format: "text",
	}
}

// FromConfig reads the [log] table (level, format) on top of the defaults
func FromConfig(cfg *config.Config, name string) LoggerConfig {
	lc := DefaultLoggerConfig(name)
	if cfg == nil {
		return lc
	}
	lc.Level = cfg.GetString("log.level", lc.Level)
	lc.Format = cfg.GetString("log.format", lc.Format)
	return lc
}

// NewLogger creates a foundation logger. Unknown levels fall back to info
// and unknown formats to text.
func NewLogger(cfg LoggerConfig) *mdwlog.Logger {
	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}

	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:  parseLevel(cfg.Level),
		Format: parseFormat(cfg.Format),
		Output: output,
		Name:   cfg.Name,
	})
}

// NewSimpleLogger creates a text logger on stderr at the default level
func NewSimpleLogger(name string) *mdwlog.Logger {
	return NewLogger(DefaultLoggerConfig(name))
}

func parseLevel(level string) mdwlog.Level {
	parsed, err := mdwlog.ParseLevel(level)
	if err != nil {
		return mdwlog.LevelInfo
	}
	return parsed
}

func parseFormat(format string) mdwlog.Format {
	parsed, err := mdwlog.ParseFormat(format)
	if err != nil {
		return mdwlog.FormatText
	}
	return parsed
}
