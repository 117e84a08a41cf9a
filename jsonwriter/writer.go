// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonwriter implements an incremental, push-based JSON text
// emitter. The caller drives a Writer through a sequence of structural
// and value-producing calls; the Writer validates that the sequence can
// only ever produce well-formed JSON, formats separators and
// indentation as it goes, and appends the result to a Sink. Memory use
// is bounded by nesting depth, not by total document size.
//
// The non-trivial pieces live in three places: the scope stack
// (scope.go) that drives separator and indentation decisions, the
// string escaper and number formatter/validator in
// internal/jsonwire, and the dispatch in this file that ties them
// together token by token.
package jsonwriter

import (
	"io"
	"math"

	"github.com/google/jsonstream/internal/jsonwire"
)

// Writer is a streaming, forward-only JSON emitter. It is not
// thread-safe: a single logical producer must drive it, and no
// operation suspends or may be cancelled mid-flight.
type Writer struct {
	sink   Sink
	scopes scopeStack

	strictness     Strictness
	style          FormattingStyle
	htmlSafe       bool
	serializeNulls bool
	endingNewline  bool

	closed bool

	// pendingName holds a name whose quoted emission (and the
	// separator/indentation that precedes it) is postponed until the
	// paired value is known, so that pretty-printing can put the name,
	// colon, and value on one line while still allowing the value to be
	// a nested array or object that starts its own line.
	pendingName           string
	pendingNameNeedsComma bool

	buf []byte // scratch buffer, reset at the start of each public call
}

// NewWriter constructs a Writer around sink. Strictness defaults to
// LegacyStrict, formatting defaults to Compact, and serialize-nulls
// defaults to true.
func NewWriter(sink Sink) *Writer {
	return &Writer{
		sink:           sink,
		scopes:         newScopeStack(),
		serializeNulls: true,
	}
}

// New wraps an io.Writer as a Sink and constructs a Writer around it.
func New(w io.Writer) *Writer {
	return NewWriter(WrapWriter(w))
}

func (w *Writer) ensureOpen() error {
	if w.closed {
		return illegalState(closedMessage)
	}
	return nil
}

func (w *Writer) appendIndent(depth int) {
	if depth <= 0 {
		return
	}
	for i := 0; i < depth; i++ {
		w.buf = append(w.buf, w.style.Indent...)
	}
}

// beforeValue writes whatever lead sequence (separator, newline,
// indentation, or a deferred object name) must precede the next
// value-producing token, and advances the scope stack accordingly. It
// is shared by every value operation and by BeginArray/BeginObject,
// since a nested array or object is itself just the next value in its
// enclosing scope and obeys the same legality and lead-sequence rules
// as any other value.
func (w *Writer) beforeValue() error {
	if w.closed {
		return illegalState(closedMessage)
	}
	switch top := w.scopes.top(); top {
	case scopeEmptyDocument:
		w.scopes.setTop(scopeNonemptyDocument)
		return nil
	case scopeNonemptyDocument:
		if w.strictness != Lenient {
			return illegalState("JSON must have only one top-level value.")
		}
		return nil
	case scopeEmptyArray:
		if w.style.pretty() {
			w.buf = append(w.buf, w.style.newline()...)
			w.appendIndent(w.scopes.depth())
		}
		w.scopes.setTop(scopeNonemptyArray)
		return nil
	case scopeNonemptyArray:
		w.buf = append(w.buf, ',')
		if w.style.pretty() {
			w.buf = append(w.buf, w.style.newline()...)
			w.appendIndent(w.scopes.depth())
		}
		return nil
	case scopeDanglingName:
		if w.pendingNameNeedsComma {
			w.buf = append(w.buf, ',')
		}
		if w.style.pretty() {
			w.buf = append(w.buf, w.style.newline()...)
			w.appendIndent(w.scopes.depth())
		}
		w.buf = jsonwire.AppendQuotedString(w.buf, w.pendingName, w.htmlSafe)
		if w.style.pretty() {
			w.buf = append(w.buf, ':', ' ')
		} else {
			w.buf = append(w.buf, ':')
		}
		w.pendingName = ""
		w.pendingNameNeedsComma = false
		w.scopes.setTop(scopeNonemptyObject)
		return nil
	default: // scopeEmptyObject, scopeNonemptyObject
		return illegalState("Nesting problem.")
	}
}

// discardPendingMember drops a deferred name without ever having
// written its separator, indentation, or literal to the sink — used
// when SerializeNulls is false and the paired value turns out to be
// null. Because the name's lead sequence is itself deferred to the
// value call (see beforeValue), there is nothing to unwrite.
func (w *Writer) discardPendingMember() {
	needComma := w.pendingNameNeedsComma
	w.pendingName = ""
	w.pendingNameNeedsComma = false
	if needComma {
		w.scopes.setTop(scopeNonemptyObject)
	} else {
		w.scopes.setTop(scopeEmptyObject)
	}
}

func (w *Writer) commit() error {
	if len(w.buf) == 0 {
		return nil
	}
	if _, err := w.sink.Write(w.buf); err != nil {
		return &ioError{err: err}
	}
	return nil
}

// BeginArray opens a new JSON array as the next value.
func (w *Writer) BeginArray() error {
	w.buf = w.buf[:0]
	if err := w.beforeValue(); err != nil {
		return err
	}
	w.buf = append(w.buf, '[')
	w.scopes.push(scopeEmptyArray)
	return w.commit()
}

// EndArray closes the innermost open array.
func (w *Writer) EndArray() error {
	if err := w.ensureOpen(); err != nil {
		return err
	}
	top := w.scopes.top()
	if top != scopeEmptyArray && top != scopeNonemptyArray {
		return illegalState("Nesting problem.")
	}
	w.buf = w.buf[:0]
	if top == scopeNonemptyArray && w.style.pretty() {
		w.buf = append(w.buf, w.style.newline()...)
		w.appendIndent(w.scopes.depth() - 1)
	}
	w.buf = append(w.buf, ']')
	w.scopes.pop()
	return w.commit()
}

// BeginObject opens a new JSON object as the next value.
func (w *Writer) BeginObject() error {
	w.buf = w.buf[:0]
	if err := w.beforeValue(); err != nil {
		return err
	}
	w.buf = append(w.buf, '{')
	w.scopes.push(scopeEmptyObject)
	return w.commit()
}

// EndObject closes the innermost open object. It fails if a name was
// written without a paired value.
func (w *Writer) EndObject() error {
	if err := w.ensureOpen(); err != nil {
		return err
	}
	top := w.scopes.top()
	if top == scopeDanglingName {
		return illegalState("Dangling name: %s", w.pendingName)
	}
	if top != scopeEmptyObject && top != scopeNonemptyObject {
		return illegalState("Nesting problem.")
	}
	w.buf = w.buf[:0]
	if top == scopeNonemptyObject && w.style.pretty() {
		w.buf = append(w.buf, w.style.newline()...)
		w.appendIndent(w.scopes.depth() - 1)
	}
	w.buf = append(w.buf, '}')
	w.scopes.pop()
	return w.commit()
}

// Name writes the next object member's key. Its literal emission (and
// the separator/indentation that precedes it) is postponed until the
// paired value is written; see beforeValue.
func (w *Writer) Name(s string) error {
	if err := w.ensureOpen(); err != nil {
		return err
	}
	switch top := w.scopes.top(); top {
	case scopeEmptyObject, scopeNonemptyObject:
		w.pendingName = s
		w.pendingNameNeedsComma = top == scopeNonemptyObject
		w.scopes.setTop(scopeDanglingName)
		return nil
	case scopeDanglingName:
		return illegalState("Already wrote a name, expecting a value.")
	default:
		return illegalState("Please begin an object before writing a name.")
	}
}

// Bool writes a JSON boolean value.
func (w *Writer) Bool(b bool) error {
	w.buf = w.buf[:0]
	if err := w.beforeValue(); err != nil {
		return err
	}
	if b {
		w.buf = append(w.buf, "true"...)
	} else {
		w.buf = append(w.buf, "false"...)
	}
	return w.commit()
}

// Null writes a JSON null value. Inside an object, if SerializeNulls is
// false, the pending member (name and value alike) is silently
// dropped instead.
func (w *Writer) Null() error {
	if err := w.ensureOpen(); err != nil {
		return err
	}
	if w.scopes.top() == scopeDanglingName && !w.serializeNulls {
		w.discardPendingMember()
		return nil
	}
	w.buf = w.buf[:0]
	if err := w.beforeValue(); err != nil {
		return err
	}
	w.buf = append(w.buf, "null"...)
	return w.commit()
}

// String writes s as a JSON string value.
func (w *Writer) String(s string) error {
	w.buf = w.buf[:0]
	if err := w.beforeValue(); err != nil {
		return err
	}
	w.buf = jsonwire.AppendQuotedString(w.buf, s, w.htmlSafe)
	return w.commit()
}

// StringOrNull writes *s as a JSON string, or Null() if s is nil —
// the Go expression of the specification's nullable string value.
func (w *Writer) StringOrNull(s *string) error {
	if s == nil {
		return w.Null()
	}
	return w.String(*s)
}

// Int64 writes a JSON integer value.
func (w *Writer) Int64(n int64) error {
	w.buf = w.buf[:0]
	if err := w.beforeValue(); err != nil {
		return err
	}
	w.buf = jsonwire.AppendInt(w.buf, n)
	return w.commit()
}

// Uint64 writes a JSON integer value.
func (w *Writer) Uint64(n uint64) error {
	w.buf = w.buf[:0]
	if err := w.beforeValue(); err != nil {
		return err
	}
	w.buf = jsonwire.AppendUint(w.buf, n)
	return w.commit()
}

func nonFiniteToken(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, -1):
		return "-Infinity"
	default:
		return "Infinity"
	}
}

// Float64 writes a JSON number value. NaN and ±Infinity are rejected
// unless the Writer is Lenient, in which case the literal tokens NaN,
// Infinity, or -Infinity are emitted (not valid JSON, but accepted by
// lenient readers).
func (w *Writer) Float64(f float64) error {
	if err := w.ensureOpen(); err != nil {
		return err
	}
	nonFinite := math.IsNaN(f) || math.IsInf(f, 0)
	if nonFinite && w.strictness != Lenient {
		return illegalArgument("Numeric values must be finite, but was %s", nonFiniteToken(f))
	}
	w.buf = w.buf[:0]
	if err := w.beforeValue(); err != nil {
		return err
	}
	if nonFinite {
		w.buf = append(w.buf, nonFiniteToken(f)...)
	} else {
		w.buf = jsonwire.AppendFloat(w.buf, f)
	}
	return w.commit()
}

// Number writes text verbatim as a JSON number after validating that it
// matches the JSON number grammar (or, in Lenient mode, one of
// NaN/Infinity/-Infinity). source identifies the caller's originating
// numeric type and is reported back in the error message if text is
// rejected.
func (w *Writer) Number(text string, source any) error {
	if err := w.ensureOpen(); err != nil {
		return err
	}
	if !jsonwire.IsValidNumberText(text, w.strictness == Lenient) {
		return illegalArgument("String created by class %T is not a valid JSON number: %s", source, text)
	}
	w.buf = w.buf[:0]
	if err := w.beforeValue(); err != nil {
		return err
	}
	w.buf = append(w.buf, text...)
	return w.commit()
}

// RawJSON writes text verbatim as a single value token. Its internal
// syntax is never validated: a caller feeding it malformed or
// untrusted text can produce malformed output.
func (w *Writer) RawJSON(text string) error {
	w.buf = w.buf[:0]
	if err := w.beforeValue(); err != nil {
		return err
	}
	w.buf = append(w.buf, text...)
	return w.commit()
}

// Flush forwards to the underlying Sink.
func (w *Writer) Flush() error {
	if err := w.ensureOpen(); err != nil {
		return err
	}
	if err := w.sink.Flush(); err != nil {
		return &ioError{err: err}
	}
	return nil
}

// SetEndingNewline controls whether Close appends one final newline
// before flushing, for producers that want each document
// newline-terminated (e.g. when writing newline-delimited JSON
// streams).
func (w *Writer) SetEndingNewline(v bool) {
	w.endingNewline = v
}

// Close fails with an IllegalStateError if any array or object is
// still open, or, unless the Writer is Lenient, if no top-level value
// has been written. Otherwise it flushes and closes the Sink and
// permanently transitions to CLOSED. A second call is a no-op that
// returns nil.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	if w.scopes.depth() != 0 {
		return illegalState("Incomplete document")
	}
	if w.scopes.top() == scopeEmptyDocument && w.strictness != Lenient {
		return illegalState("Incomplete document")
	}
	if w.endingNewline {
		if _, err := w.sink.Write([]byte(w.style.newline())); err != nil {
			return &ioError{err: err}
		}
	}
	w.scopes.setTop(scopeClosed)
	w.closed = true
	if err := w.sink.Flush(); err != nil {
		return &ioError{err: err}
	}
	if err := w.sink.Close(); err != nil {
		return &ioError{err: err}
	}
	return nil
}
