// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonwriter

// Strictness governs two policies: whether more than one top-level
// value may be written, and whether non-finite float tokens (NaN,
// ±Infinity) are accepted. A tagged variant is used instead of two
// independent booleans since the modes are mutually exclusive and
// Lenient relaxes both policies together; neither policy can be
// relaxed on its own.
type Strictness int8

const (
	// LegacyStrict is the default: exactly one top-level value, no
	// non-finite floats.
	LegacyStrict Strictness = iota
	// Strict is observably identical to LegacyStrict in this writer; the
	// two are kept distinct so that a future stricter mode (e.g.
	// enforcing well-formed UTF-8 or rejecting duplicate names) has
	// somewhere to attach without disturbing LegacyStrict's existing
	// behavior.
	Strict
	// Lenient permits multiple top-level values and non-finite floats.
	Lenient
)

// FormattingStyle controls the whitespace the Writer inserts between
// tokens. The zero value is Compact.
type FormattingStyle struct {
	// Indent is repeated once per nesting level. Empty means compact
	// (no newlines or indentation at all).
	Indent string
	// Newline is written, when Indent is non-empty, before each array
	// element, each object member, and the closing bracket of a
	// non-empty array or object; Close also writes it when an ending
	// newline is requested. Empty means "\n".
	Newline string
}

// Compact produces JSON with no insignificant whitespace.
var Compact = FormattingStyle{}

// Pretty produces JSON indented two spaces per level with Unix newlines.
var Pretty = FormattingStyle{Indent: "  ", Newline: "\n"}

func (f FormattingStyle) pretty() bool {
	return f.Indent != ""
}

func (f FormattingStyle) newline() string {
	if f.Newline != "" {
		return f.Newline
	}
	return "\n"
}

// SetIndent is shorthand for installing FormattingStyle{Indent: indent,
// Newline: "\n"}; an empty indent reverts to Compact.
func (w *Writer) SetIndent(indent string) {
	w.style = FormattingStyle{Indent: indent, Newline: "\n"}
}

// SetFormattingStyle overwrites any prior formatting style.
func (w *Writer) SetFormattingStyle(style FormattingStyle) {
	w.style = style
}

// SetStrictness installs the given strictness mode.
func (w *Writer) SetStrictness(s Strictness) {
	w.strictness = s
}

// SetLenient is a legacy shorthand: true selects Lenient, false selects
// LegacyStrict.
func (w *Writer) SetLenient(lenient bool) {
	if lenient {
		w.strictness = Lenient
	} else {
		w.strictness = LegacyStrict
	}
}

// SetHTMLSafe toggles escaping of '<', '>', '&', '=', and '\'' within
// string literals, for embedding JSON inside HTML or JavaScript.
func (w *Writer) SetHTMLSafe(safe bool) {
	w.htmlSafe = safe
}

// SetSerializeNulls toggles whether Null (and a nil *string passed to
// StringOrNull) is actually written inside object scope. Default true.
// When false, a discarded null silently drops its pending object member
// instead of writing "name":null.
func (w *Writer) SetSerializeNulls(serialize bool) {
	w.serializeNulls = serialize
}
