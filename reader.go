// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package bej

// ByteReader is a bounded sequential reader over a borrowed byte slice.
// Every read is bounds-checked against the underlying slice and the
// position only ever moves forward, except through Seek.
type ByteReader struct {
	data []byte
	pos  int
}

// NewByteReader wraps data without copying it. The slice must stay alive
// and unmodified for as long as the reader is used.
func NewByteReader(data []byte) *ByteReader {
	return &ByteReader{data: data}
}

// ReadUint8 reads one byte.
func (r *ByteReader) ReadUint8() (uint8, error) {
	if r.pos >= len(r.data) {
		return 0, ErrEndOfInput
	}

	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// ReadBytes reads the next n bytes. The returned slice aliases the
// reader's backing data; callers must not mutate it.
func (r *ByteReader) ReadBytes(n int) ([]byte, error) {
	if n < 0 || n > len(r.data)-r.pos {
		return nil, ErrEndOfInput
	}

	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// Skip advances the position by n bytes without interpreting them. Used
// for annotation payloads and value formats the decoder does not handle.
func (r *ByteReader) Skip(n uint64) error {
	if n > uint64(len(r.data)-r.pos) {
		return ErrEndOfInput
	}

	r.pos += int(n)
	return nil
}

// Seek sets the absolute position. Seeking to len(data) is allowed and
// leaves the reader exhausted.
func (r *ByteReader) Seek(pos int) error {
	if pos < 0 || pos > len(r.data) {
		return ErrOutOfRange
	}

	r.pos = pos
	return nil
}

// Pos returns the current absolute position.
func (r *ByteReader) Pos() int {
	return r.pos
}

// Remaining returns the count of bytes not yet consumed.
func (r *ByteReader) Remaining() int {
	return len(r.data) - r.pos
}

// ReadNNInt reads a BEJ non-negative integer: a single length byte N
// followed by N bytes forming a little-endian unsigned value. N=0 is the
// one-byte encoding of zero. N larger than 8 cannot fit a uint64 and
// fails with ErrNNIntTooWide.
func (r *ByteReader) ReadNNInt() (uint64, error) {
	n, err := r.ReadUint8()
	if err != nil {
		return 0, err
	}

	if n > 8 {
		return 0, ErrNNIntTooWide
	}

	b, err := r.ReadBytes(int(n))
	if err != nil {
		return 0, err
	}

	var v uint64
	for i, by := range b {
		v |= uint64(by) << (8 * i)
	}
	return v, nil
}
