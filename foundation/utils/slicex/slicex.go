// File: slicex.go
// Title: Core Slice Utilities
// Description: Generic slice helpers used for list joining.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with comprehensive slice utilities
// - 2026-10-17 v0.2.0: Reduced to the helpers in use

package slicex

// Filter returns a new slice containing only elements that match the predicate
func Filter[T any](slice []T, predicate func(T) bool) []T {
	if slice == nil || predicate == nil {
		return nil
	}

	result := make([]T, 0, len(slice))
	for _, item := range slice {
		if predicate(item) {
			result = append(result, item)
		}
	}
	return result
}

// Map transforms each element in the slice using the provided function
func Map[T, R any](slice []T, mapper func(T) R) []R {
	if slice == nil || mapper == nil {
		return nil
	}

	result := make([]R, len(slice))
	for i, item := range slice {
		result[i] = mapper(item)
	}
	return result
}

// Count returns how many elements match the predicate
func Count[T any](slice []T, predicate func(T) bool) int {
	n := 0
	for _, item := range slice {
		if predicate(item) {
			n++
		}
	}
	return n
}
