// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides byte-source test doubles for exercising the
// callback-driven decoder.
package audiotest

import (
	"errors"
	"io"
)

// ErrBrokenSource is what BrokenReader fails with.
var ErrBrokenSource = errors.New("broken source")

// FragmentReader wraps a reader and delivers at most Size bytes per Read
// call, simulating a slow or packet-oriented byte source that forces the
// read callback to retry.
type FragmentReader struct {
	r    io.Reader
	size int

	// Reads counts the Read calls made, for asserting that fragmentation
	// actually happened.
	Reads int
}

// NewFragmentReader creates a FragmentReader delivering size bytes at a
// time.
func NewFragmentReader(r io.Reader, size int) *FragmentReader {
	return &FragmentReader{r: r, size: size}
}

func (f *FragmentReader) Read(p []byte) (int, error) {
	f.Reads++
	if len(p) > f.size {
		p = p[:f.size]
	}

	return f.r.Read(p)
}

// BrokenReader fails every Read call immediately with ErrBrokenSource.
type BrokenReader struct{}

func (BrokenReader) Read(p []byte) (int, error) {
	return 0, ErrBrokenSource
}

// EmptyReader reports a clean end of stream on the first Read call.
type EmptyReader struct{}

func (EmptyReader) Read(p []byte) (int, error) {
	return 0, io.EOF
}

// TruncatingReader delivers the first n bytes of the wrapped reader and
// then reports a clean end of stream, simulating a source cut short
// mid-stream.
type TruncatingReader struct {
	r    io.Reader
	left int
}

// NewTruncatingReader creates a TruncatingReader that ends after n bytes.
func NewTruncatingReader(r io.Reader, n int) *TruncatingReader {
	return &TruncatingReader{r: r, left: n}
}

func (t *TruncatingReader) Read(p []byte) (int, error) {
	if t.left <= 0 {
		return 0, io.EOF
	}
	if len(p) > t.left {
		p = p[:t.left]
	}

	n, err := t.r.Read(p)
	t.left -= n

	return n, err
}
