// Package error provides structured error handling for presenty.
//
// Package: error
// Title: Structured Errors
// Description: Errors carry a code, a severity, key/value details and the
//              failing operation, so callers can branch on the kind of
//              failure instead of parsing messages.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-17 v0.2.0: Sentinel matching for errors.Is
//
// Usage:
//
//	import mdwerror "github.com/msto63/presenty/foundation/core/error"
//
//	err := mdwerror.New("passed value cannot be an array").
//		WithCode(mdwerror.CodeInvalidArgument).
//		WithOperation("presenty.Create").
//		WithDetail("type", "[]string")
//
//	var ErrInvalidArgument = mdwerror.Sentinel(mdwerror.CodeInvalidArgument)
//	if errors.Is(err, ErrInvalidArgument) {
//		// handle bad input
//	}
package error
