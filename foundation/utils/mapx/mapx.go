// File: mapx.go
// Title: Core Map Utilities
// Description: Generic map helpers for deterministic iteration and merging.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with comprehensive map utilities
// - 2026-10-17 v0.2.0: SortedKeys, reduced to the helpers in use

package mapx

import (
	"cmp"
	"slices"
)

// Keys returns the keys of m in unspecified order
func Keys[M ~map[K]V, K comparable, V any](m M) []K {
	if m == nil {
		return nil
	}

	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// SortedKeys returns the keys of m in ascending order
func SortedKeys[M ~map[K]V, K cmp.Ordered, V any](m M) []K {
	keys := Keys(m)
	slices.Sort(keys)
	return keys
}

// Merge combines maps into a new map; later maps win on duplicate keys
func Merge[M ~map[K]V, K comparable, V any](maps ...M) M {
	size := 0
	for _, m := range maps {
		size += len(m)
	}

	result := make(M, size)
	for _, m := range maps {
		for k, v := range m {
			result[k] = v
		}
	}
	return result
}
