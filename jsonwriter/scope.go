// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonwriter

// scope is a tagged value naming the writer's position in the document
// it is producing. A distinct tag marks "a name has been written and a
// value is owed" because this writer defers the name's literal
// emission to the value call (see Writer.pendingName).
type scope int8

const (
	scopeEmptyDocument scope = iota
	scopeNonemptyDocument
	scopeEmptyArray
	scopeNonemptyArray
	scopeEmptyObject
	scopeNonemptyObject
	scopeDanglingName
	scopeClosed
)

// scopeStack is a mutable vector of scope tags. The bottom entry (index 0)
// is the virtual document scope and is never popped. Explicit stack gives
// O(1) access to the top and bounded memory proportional to nesting
// depth, regardless of document size.
type scopeStack []scope

func newScopeStack() scopeStack {
	return scopeStack{scopeEmptyDocument}
}

func (s scopeStack) top() scope {
	return s[len(s)-1]
}

// depth is the stack height minus one: a top-level value sits at
// depth 0, and each nested array or object adds one.
func (s scopeStack) depth() int {
	return len(s) - 1
}

func (s *scopeStack) setTop(v scope) {
	(*s)[len(*s)-1] = v
}

func (s *scopeStack) push(v scope) {
	*s = append(*s, v)
}

func (s *scopeStack) pop() {
	*s = (*s)[:len(*s)-1]
}
