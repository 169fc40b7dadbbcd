// File: severity.go
// Title: Error Severity Levels
// Description: Severity classification for structured errors, with a mapping
//              from error codes to their default severity.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates bad caller input that does not affect anything else
	SeverityLow Severity = iota

	// SeverityMedium is the default for errors without a more specific code
	SeverityMedium

	// SeverityHigh indicates a failure that stops a whole operation, such as
	// unreadable configuration
	SeverityHigh

	// SeverityCritical indicates the process cannot continue
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeConfigError, CodeInvalidConfig:
		return SeverityHigh
	case CodeInvalidArgument, CodeDateParse, CodeInvalidInput, CodeNotFound,
		CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
