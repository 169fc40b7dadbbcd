// Package log provides structured logging for presenty.
//
// Package: log
// Title: Structured Logging
// Description: Leveled, structured logging with JSON, text and logfmt
//              output and integration with the structured error type.
//              Loggers are immutable values: With* methods return clones.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation
// - 2026-10-17 v0.2.0: Deterministic field order, Nop logger
//
// Usage:
//
//	import mdwlog "github.com/msto63/presenty/foundation/core/log"
//
//	logger := mdwlog.NewWithConfig(mdwlog.Config{
//		Level:  mdwlog.LevelDebug,
//		Format: mdwlog.FormatText,
//		Output: os.Stderr,
//		Name:   "presenty",
//	})
//	logger.Debug("date parse failed", mdwlog.String("value", "not-a-date"))
//	logger.LogError(err)
package log
