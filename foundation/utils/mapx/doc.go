// File: doc.go
// Title: Map Utilities Package Documentation
// Description: Package mapx provides generic map helpers.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-12 v0.1.0: Initial package documentation
// - 2026-10-17 v0.2.0: Trimmed

// Package mapx provides generic helpers over maps. SortedKeys gives a stable
// iteration order, which matters whenever map contents end up in output.
package mapx
