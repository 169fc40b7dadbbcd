// ============================================================================
// presenty - fluent text presentation for Go
// ============================================================================
//
// Package:     presenty
// Description: HTML anchors, mailto links and sign-dependent CSS classes
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package presenty

import (
	"strings"

	"github.com/msto63/presenty/foundation/utils/mapx"
	"github.com/msto63/presenty/foundation/utils/mathx"
	"github.com/msto63/presenty/foundation/utils/stringx"
	"github.com/msto63/presenty/foundation/utils/validationx"
)

// Attributes are HTML attributes rendered as key="value" pairs in sorted key
// order. Keys and values are attribute-escaped.
type Attributes map[string]string

const (
	attrHref   = "href"
	attrTarget = "target"
)

// Anchor wraps the value in an <a> element pointing at href. target
// defaults to Defaults.AnchorTarget unless attrs set it; an href key in
// attrs is ignored. A blank value is left unchanged and a blank href clears
// the value. The body is the value as is.
//
//	Create("Docs").Anchor("https://go.dev") ->
//	  <a target="_blank" href="https://go.dev">Docs</a>
func (p *Presenter) Anchor(href string, attrs ...Attributes) *Presenter {
	if p.isBlank() {
		return p
	}
	if stringx.IsBlank(href) {
		p.debug("anchor without href", nil)
		p.value = ""
		return p
	}

	merged := mapx.Merge(attrs...)
	delete(merged, attrHref)
	if _, ok := merged[attrTarget]; !ok && p.defaults.AnchorTarget != "" {
		merged[attrTarget] = p.defaults.AnchorTarget
	}

	p.value = openTag(merged, href) + p.value + "</a>"
	return p
}

// AnchorSelf wraps the value in an <a> element that links to the value
// itself, without a default target.
//
// Deprecated: use Anchor with an explicit href.
func (p *Presenter) AnchorSelf(attrs ...Attributes) *Presenter {
	if p.isBlank() {
		return p
	}

	merged := mapx.Merge(attrs...)
	delete(merged, attrHref)
	p.value = openTag(merged, p.value) + p.value + "</a>"
	return p
}

// Mailto turns the value, an e-mail address, into a mailto link. label
// defaults to the address. A nil attrs renders no extra attributes.
func (p *Presenter) Mailto(attrs Attributes, label ...string) *Presenter {
	text := p.value
	if len(label) > 0 && stringx.IsNotBlank(label[0]) {
		text = label[0]
	}

	merged := mapx.Merge(attrs)
	delete(merged, attrHref)
	p.value = openTag(merged, "mailto:"+p.value) + text + "</a>"
	return p
}

// BkgPositiveOrNegative wraps the value in a <span> whose class marks it as
// positive or negative. classes[0] and classes[1] default to
// Defaults.PositiveClass and Defaults.NegativeClass. Non-numeric text is
// negative. A blank value is left unchanged.
func (p *Presenter) BkgPositiveOrNegative(classes ...string) *Presenter {
	if p.isBlank() {
		return p
	}

	positive, negative := p.defaults.PositiveClass, p.defaults.NegativeClass
	if len(classes) > 0 {
		positive = classes[0]
	}
	if len(classes) > 1 {
		negative = classes[1]
	}

	class := negative
	if p.isNonNegative() {
		class = positive
	}

	p.value = `<span class="` + stringx.EscapeAttr(class) + `">` + p.value + "</span>"
	return p
}

func (p *Presenter) isNonNegative() bool {
	if !validationx.IsNumericDouble(p.value, "", true) {
		return false
	}
	d, ok := mathx.ParseLoose(p.value)
	return ok && d.Sign() >= 0
}

// openTag renders <a attrs href="href"> with href last
func openTag(attrs Attributes, href string) string {
	var b strings.Builder
	b.WriteString("<a ")
	for _, key := range mapx.SortedKeys(attrs) {
		b.WriteString(stringx.EscapeAttr(key))
		b.WriteString(`="`)
		b.WriteString(stringx.EscapeAttr(attrs[key]))
		b.WriteString(`" `)
	}
	b.WriteString(`href="`)
	b.WriteString(stringx.EscapeAttr(href))
	b.WriteString(`">`)
	return b.String()
}
