// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package bej

// BEJ tuple value formats, carried in the upper nibble of the bejTupleF byte.
// The lower nibble holds per-tuple flags and is not interpreted here.
const (
	// A bejSet is an ordered collection of named tuples, rendered as a
	// JSON object.
	FormatSet = 0x0

	// A bejArray is an ordered collection of unnamed tuples, rendered as
	// a JSON array. Element sequence numbers carry the array index and
	// are not used for naming.
	FormatArray = 0x1

	// A bejNull carries no value.
	FormatNull = 0x2

	// A bejInteger payload is a little-endian integer of up to 8 bytes.
	FormatInteger = 0x3

	// A bejEnum payload is an nnint ordinal resolved against the options
	// cluster of the defining dictionary entry.
	FormatEnum = 0x4

	// A bejString payload is UTF-8 text, NUL-terminated on the wire.
	FormatString = 0x5

	// Formats below are named for reference only; the decoder does not
	// interpret them, skips their payloads and renders them as JSON null.
	FormatReal       = 0x6
	FormatBoolean    = 0x7
	FormatBytestring = 0x8
)

// Schema classes found in the bejEncoding header. The decoder reads the
// class byte but does not act on it; the caller decides which dictionary
// to supply.
const (
	SchemaClassMajor      = 0x00
	SchemaClassEvent      = 0x01
	SchemaClassAnnotation = 0x02
	SchemaClassError      = 0x04
)

const (
	// bejEncoding header: version (4 bytes LE), flags (2 bytes LE),
	// schemaClass (1 byte).
	EncodingHeaderSize = 7

	// Schema dictionary header per DSP0218 Table 31.
	DictionaryHeaderSize = 12

	// Fixed on-wire size of one dictionary entry record.
	DictionaryEntrySize = 10
)

// DefaultMaxSetDepth bounds bejSet nesting so that hostile input cannot
// exhaust the goroutine stack through recursion.
const DefaultMaxSetDepth = 64
