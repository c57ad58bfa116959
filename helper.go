// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package bej

import (
	"bytes"
	"encoding/binary"
	"errors"
)

// Errors
var (

	// ErrDictionaryTooShort is returned when the dictionary blob is smaller
	// than its header, or smaller than the entry table the header declares.
	ErrDictionaryTooShort = errors.New(
		"invalid schema dictionary, blob shorter than declared")

	// ErrEndOfInput is returned when a read would cross the end of the
	// input buffer.
	ErrEndOfInput = errors.New("reading past end of input")

	// ErrOutOfRange is returned when seeking beyond the input buffer.
	ErrOutOfRange = errors.New("seek position outside input")

	// ErrNNIntTooWide is returned when an nnint declares more than 8 value
	// bytes.
	ErrNNIntTooWide = errors.New("nnint wider than 8 bytes")

	// ErrIntegerTooWide is returned when an integer tuple payload declares
	// more than 8 bytes.
	ErrIntegerTooWide = errors.New("integer payload wider than 8 bytes")

	// ErrUnexpectedFormat is returned when the top-level tuple of a BEJ
	// stream is not a bejSet.
	ErrUnexpectedFormat = errors.New("top-level tuple is not a set")

	// ErrMaxSetDepth is returned when bejSet nesting exceeds the
	// configured maximum.
	ErrMaxSetDepth = errors.New("set nesting exceeds maximum depth")

	// ErrMalformedStream is the single failure Decode reports to callers.
	// The underlying cause is logged, not returned; a batch caller cannot
	// act on the distinction.
	ErrMalformedStream = errors.New("malformed BEJ stream")
)

// structUnpack decodes a little-endian packed structure from data at the
// given offset.
func structUnpack(data []byte, offset, size int, iface interface{}) error {
	if offset < 0 || size < 0 || offset+size > len(data) {
		return ErrEndOfInput
	}

	buf := bytes.NewReader(data[offset : offset+size])
	return binary.Read(buf, binary.LittleEndian, iface)
}
