// ============================================================================
// presenty - fluent text presentation for Go
// ============================================================================
//
// Package:     presenty
// Description: Error values returned by the presenter
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package presenty

import (
	"fmt"

	mdwerror "github.com/msto63/presenty/foundation/core/error"
)

// Sentinels for errors.Is
var (
	// ErrInvalidArgument matches construction failures for unsupported input
	ErrInvalidArgument = mdwerror.Sentinel(mdwerror.CodeInvalidArgument)

	// ErrDateParse matches values the date methods could not parse
	ErrDateParse = mdwerror.Sentinel(mdwerror.CodeDateParse)
)

const (
	msgArrayInput = "passed value cannot be an array"
	msgNoStringer = "passed object must have a String method"
	msgDateParse  = "unable to parse date"
	opCreate      = "presenty.Create"
)

func invalidArgument(message string, input any) *mdwerror.Error {
	return mdwerror.New(message).
		WithCode(mdwerror.CodeInvalidArgument).
		WithOperation(opCreate).
		WithDetail("type", typeName(input))
}

func dateParseError(err error, operation, value string) *mdwerror.Error {
	return mdwerror.Wrap(err, msgDateParse).
		WithCode(mdwerror.CodeDateParse).
		WithOperation(operation).
		WithDetail("value", value)
}

func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}
