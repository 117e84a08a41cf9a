// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonwire implements the low-level token-boundary formatting
// primitives shared by jsonwriter: string escaping and number
// formatting/validation. It has no knowledge of document structure.
package jsonwire

import "unicode/utf8"

// escapeKind classifies how an ASCII byte must be escaped.
type escapeKind int8

const (
	escapeNone  escapeKind = 0
	escapeShort escapeKind = -1 // e.g. \n, \", \\
	escapeUTF16 escapeKind = +1 // \u00XX
)

// asciiTable caches, for every ASCII byte, how it must be escaped.
type asciiTable [utf8.RuneSelf]escapeKind

// canonicalTable holds the mandatory JSON escapes: control characters,
// the quote, and the reverse solidus.
var canonicalTable = buildASCIITable(false)

// htmlSafeTable additionally escapes the characters needed to embed a
// JSON string inside HTML/JS script contexts.
var htmlSafeTable = buildASCIITable(true)

func buildASCIITable(htmlSafe bool) asciiTable {
	var t asciiTable
	for i := 0; i < ' '; i++ {
		t[i] = escapeUTF16
	}
	t['\b'] = escapeShort
	t['\f'] = escapeShort
	t['\n'] = escapeShort
	t['\r'] = escapeShort
	t['\t'] = escapeShort
	t['"'] = escapeShort
	t['\\'] = escapeShort
	if htmlSafe {
		t['<'] = escapeUTF16
		t['>'] = escapeUTF16
		t['&'] = escapeUTF16
		t['='] = escapeUTF16
		t['\''] = escapeUTF16
	}
	return t
}

// alwaysEscapedRune reports whether r must always be escaped regardless of
// HTML-safety: the JavaScript line and paragraph separators, which are
// legal in a JSON string but not inside a JavaScript string literal.
func alwaysEscapedRune(r rune) bool {
	return r == '\u2028' || r == '\u2029'
}

// AppendQuotedString appends s to dst as a double-quoted, escaped JSON
// string literal.
func AppendQuotedString(dst []byte, s string, htmlSafe bool) []byte {
	table := &canonicalTable
	if htmlSafe {
		table = &htmlSafeTable
	}
	dst = append(dst, '"')
	start := 0
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			if kind := table[c]; kind != escapeNone {
				dst = append(dst, s[start:i]...)
				dst = appendEscapedASCII(dst, c, kind)
				i++
				start = i
				continue
			}
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if alwaysEscapedRune(r) {
			dst = append(dst, s[start:i]...)
			dst = appendEscapedUTF16(dst, uint16(r))
			i += size
			start = i
			continue
		}
		i += size
	}
	dst = append(dst, s[start:]...)
	dst = append(dst, '"')
	return dst
}

func appendEscapedASCII(dst []byte, c byte, kind escapeKind) []byte {
	if kind == escapeShort {
		switch c {
		case '"', '\\':
			return append(dst, '\\', c)
		case '\b':
			return append(dst, `\b`...)
		case '\f':
			return append(dst, `\f`...)
		case '\n':
			return append(dst, `\n`...)
		case '\r':
			return append(dst, `\r`...)
		case '\t':
			return append(dst, `\t`...)
		}
	}
	return appendEscapedUTF16(dst, uint16(c))
}

func appendEscapedUTF16(dst []byte, x uint16) []byte {
	const hex = "0123456789abcdef"
	return append(dst, '\\', 'u', hex[(x>>12)&0xf], hex[(x>>8)&0xf], hex[(x>>4)&0xf], hex[(x>>0)&0xf])
}
