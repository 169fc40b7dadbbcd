// File: mapx_test.go
// Title: Map Utilities Tests
// Description: Tests for Keys, SortedKeys and Merge.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-12 v0.1.0: Initial test implementation
// - 2026-10-17 v0.2.0: SortedKeys tests

package mapx

import (
	"slices"
	"testing"
)

func TestKeys(t *testing.T) {
	keys := Keys(map[string]int{"b": 1, "a": 2})
	slices.Sort(keys)
	if !slices.Equal(keys, []string{"a", "b"}) {
		t.Errorf("Keys() = %v", keys)
	}

	if keys := Keys[map[string]int](nil); keys != nil {
		t.Errorf("Keys(nil) = %v, want nil", keys)
	}
}

func TestSortedKeys(t *testing.T) {
	m := map[string]string{"target": "_blank", "class": "btn", "id": "x"}
	if keys := SortedKeys(m); !slices.Equal(keys, []string{"class", "id", "target"}) {
		t.Errorf("SortedKeys() = %v", keys)
	}
}

func TestMerge(t *testing.T) {
	base := map[string]string{"target": "_blank", "rel": "noopener"}
	override := map[string]string{"target": "_self"}

	merged := Merge(base, override)

	if merged["target"] != "_self" || merged["rel"] != "noopener" {
		t.Errorf("Merge() = %v", merged)
	}
	if base["target"] != "_blank" {
		t.Error("Merge() modified its input")
	}
	if got := Merge[map[string]int](); len(got) != 0 {
		t.Errorf("Merge() with no maps = %v", got)
	}
}
