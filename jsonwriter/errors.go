// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonwriter

import (
	"fmt"

	"golang.org/x/xerrors"
)

// IllegalStateError reports that a call was made in a sequence that cannot
// produce legal JSON, e.g. writing a value where a name was expected.
type IllegalStateError struct {
	Msg string
}

func (e *IllegalStateError) Error() string { return e.Msg }

// Is reports whether target is the ErrClosed sentinel when this error was
// produced by a call on a closed Writer, allowing callers to use
// errors.Is(err, ErrClosed).
func (e *IllegalStateError) Is(target error) bool {
	return target == ErrClosed && e.Msg == closedMessage
}

func illegalState(format string, args ...any) error {
	return &IllegalStateError{Msg: fmt.Sprintf(format, args...)}
}

// IllegalArgumentError reports that a call was structurally legal but
// carried a value JSON cannot represent, e.g. a non-finite float outside
// of lenient mode.
type IllegalArgumentError struct {
	Msg string
}

func (e *IllegalArgumentError) Error() string { return e.Msg }

func illegalArgument(format string, args ...any) error {
	return &IllegalArgumentError{Msg: fmt.Sprintf(format, args...)}
}

// ioError wraps a failure returned by the Sink, propagated unchanged in
// spirit but tagged so callers can distinguish it from the two error
// kinds above.
type ioError struct {
	err error
}

func (e *ioError) Error() string { return e.err.Error() }
func (e *ioError) Unwrap() error { return e.err }

const closedMessage = "JsonWriter is closed."

// ErrClosed is the sentinel matched by errors.Is for any operation
// attempted after Close has succeeded.
var ErrClosed = xerrors.New(closedMessage)
