// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonwriter

import (
	"bufio"
	"io"
)

// Sink is the minimal character-stream contract the Writer drives. It is
// the only interaction point with whatever eventually delivers the bytes
// (a socket, a file, an in-memory buffer); construction of the sink
// itself is outside the scope of this package.
type Sink interface {
	Write(p []byte) (n int, err error)
	Flush() error
	Close() error
}

// WrapWriter adapts an io.Writer into a Sink. If w already implements
// Sink, it is returned unchanged. Otherwise the writer is buffered (so
// Flush has something to do) and Close is forwarded only if w implements
// io.Closer; a plain io.Writer with no Close method yields a Sink whose
// Close is a no-op beyond flushing, since this package does not own the
// lifetime of writers it merely wraps.
func WrapWriter(w io.Writer) Sink {
	if s, ok := w.(Sink); ok {
		return s
	}
	return &writerSink{bw: bufio.NewWriter(w), underlying: w}
}

type writerSink struct {
	bw         *bufio.Writer
	underlying io.Writer
}

func (s *writerSink) Write(p []byte) (int, error) { return s.bw.Write(p) }
func (s *writerSink) Flush() error                { return s.bw.Flush() }

func (s *writerSink) Close() error {
	if err := s.bw.Flush(); err != nil {
		return err
	}
	if c, ok := s.underlying.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
