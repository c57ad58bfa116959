// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package bej

import (
	"encoding/binary"
)

// Test helpers building dictionary blobs and BEJ streams in memory.

// nn encodes v as a BEJ nnint. Zero is encoded with a single value byte,
// matching the reference encoder.
func nn(v uint64) []byte {
	width := 0
	for x := v; x != 0; x >>= 8 {
		width++
	}
	if width == 0 {
		width = 1
	}

	b := make([]byte, 1+width)
	b[0] = byte(width)
	for i := 0; i < width; i++ {
		b[1+i] = byte(v >> (8 * i))
	}
	return b
}

// tup assembles one tuple: sequence nnint (with the annotation flag in
// the LSB), format byte, payload length nnint, payload.
func tup(seq uint64, annotation bool, format byte, payload []byte) []byte {
	s := seq << 1
	if annotation {
		s |= 1
	}

	var b []byte
	b = append(b, nn(s)...)
	b = append(b, format<<4)
	b = append(b, nn(uint64(len(payload)))...)
	b = append(b, payload...)
	return b
}

// setPayload assembles a bejSet payload from member tuples.
func setPayload(members ...[]byte) []byte {
	b := nn(uint64(len(members)))
	for _, m := range members {
		b = append(b, m...)
	}
	return b
}

// stream prefixes a top-level tuple with a bejEncoding header.
func stream(top []byte) []byte {
	hdr := []byte{0x00, 0xF1, 0x00, 0xF0, 0x00, 0x00, 0x00}
	return append(hdr, top...)
}

// dictEntrySpec describes one entry for buildDict. ChildIdx is the index
// of the first child entry, or -1 for none; the builder turns it into an
// absolute blob offset. An empty name yields name offset 0.
type dictEntrySpec struct {
	format   byte
	seq      uint16
	childIdx int
	childCnt uint16
	name     string
}

// buildDict assembles a schema dictionary blob: 12-byte header, packed
// entry table, names pool.
func buildDict(entries ...dictEntrySpec) []byte {
	entriesOffset := DictionaryHeaderSize
	namesOffset := entriesOffset + len(entries)*DictionaryEntrySize

	names := make([]byte, 0)
	nameOffsets := make([]uint16, len(entries))
	for i, e := range entries {
		if e.name == "" {
			continue
		}
		nameOffsets[i] = uint16(namesOffset + len(names))
		names = append(names, e.name...)
		names = append(names, 0)
	}

	b := make([]byte, DictionaryHeaderSize)
	binary.LittleEndian.PutUint16(b[2:], uint16(len(entries)))

	for i, e := range entries {
		rec := make([]byte, DictionaryEntrySize)
		rec[0] = e.format
		binary.LittleEndian.PutUint16(rec[1:], e.seq)
		if e.childIdx >= 0 {
			childOff := entriesOffset + e.childIdx*DictionaryEntrySize
			binary.LittleEndian.PutUint16(rec[3:], uint16(childOff))
		}
		binary.LittleEndian.PutUint16(rec[5:], e.childCnt)
		if e.name != "" {
			rec[7] = uint8(len(e.name) + 1)
			binary.LittleEndian.PutUint16(rec[8:], nameOffsets[i])
		}
		b = append(b, rec...)
	}

	return append(b, names...)
}

// stripSpace removes whitespace outside string literals, for the
// whitespace-insensitive JSON comparisons the scenario tests use.
func stripSpace(s string) string {
	out := make([]byte, 0, len(s))
	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			out = append(out, c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case ' ', '\t', '\n', '\r':
			continue
		case '"':
			inString = true
		}
		out = append(out, c)
	}
	return string(out)
}
