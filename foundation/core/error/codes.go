// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used by presenty and its foundation
//              packages. Codes classify failures so callers can react to
//              them without string matching on messages.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-12 v0.1.0: Initial code set
// - 2026-10-17 v0.2.0: Added presenter codes (INVALID_ARGUMENT, DATE_PARSE)

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Presenter codes
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeDateParse       Code = "DATE_PARSE"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeInvalidArgument, CodeDateParse,
		CodeConfigError, CodeInvalidConfig,
		CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidArgument, CodeDateParse:
		return "presenter"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange, CodeInvalidInput:
		return "validation"
	default:
		return "generic"
	}
}
