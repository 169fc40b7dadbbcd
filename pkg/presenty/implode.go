// ============================================================================
// presenty - fluent text presentation for Go
// ============================================================================
//
// Package:     presenty
// Description: Joining lists of values into the presenter
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package presenty

import (
	"strings"

	mdwlog "github.com/msto63/presenty/foundation/core/log"
	"github.com/msto63/presenty/foundation/utils/slicex"
	"github.com/msto63/presenty/foundation/utils/stringx"
	"github.com/msto63/presenty/foundation/utils/validationx"
)

// Implode replaces the value with items joined by separator. Items are
// converted to text like the input of Create and trimmed; items that
// cannot be converted count as "". With excludeZero, "" and "0" are left
// out. Otherwise only "" is left out, so zeros stay in the list.
//
//	Implode([]any{"a", " ", 0, "b"}, ", ", true) -> "a, b"
//	Implode([]any{"a", " ", 0, "b"}, ", ", false) -> "a, 0, b"
func (p *Presenter) Implode(items []any, separator string, excludeZero bool) *Presenter {
	texts := slicex.Map(items, func(item any) string {
		text, err := toText(item)
		if err != nil {
			p.debug("implode item dropped", mdwlog.Fields{"type": typeName(item)})
			return ""
		}
		return stringx.TrimSpaceNull(text)
	})

	keep := func(s string) bool { return !isFalsy(s) || validationx.IsNumeric(s) }
	if excludeZero {
		keep = func(s string) bool { return !isFalsy(s) }
	}

	p.value = strings.Join(slicex.Filter(texts, keep), separator)
	return p
}

// ImplodeDefault is Implode with Defaults.ImplodeSeparator, excluding zeros
func (p *Presenter) ImplodeDefault(items ...any) *Presenter {
	return p.Implode(items, p.defaults.ImplodeSeparator, true)
}
