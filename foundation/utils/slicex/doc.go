// File: doc.go
// Title: Slice Utilities Package Documentation
// Description: Package slicex provides generic slice helpers.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-12 v0.1.0: Initial package documentation
// - 2026-10-17 v0.2.0: Trimmed

// Package slicex provides generic Filter, Map and Count over slices. Filter
// and Map return nil for a nil input or a nil function.
package slicex
