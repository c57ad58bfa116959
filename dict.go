// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package bej

import (
	"encoding/binary"
)

// DictionaryHeader represents the fixed header at the start of a schema
// dictionary blob, per DSP0218 Table 31. Only EntryCount drives parsing;
// the remaining fields are advisory and retained for inspection.
type DictionaryHeader struct {
	VersionTag     uint8  `json:"version_tag"`
	Flags          uint8  `json:"flags"`
	EntryCount     uint16 `json:"entry_count"`
	SchemaVersion  uint32 `json:"schema_version"`
	DictionarySize uint32 `json:"dictionary_size"`
}

// DictionaryEntry represents one fixed 10-byte record of the dictionary
// entry table.
type DictionaryEntry struct {
	// Format carries the bejTupleF value format in its upper nibble. The
	// lower nibble holds per-entry flags which this decoder does not
	// consult.
	Format uint8 `json:"format"`

	// Sequence identifies the entry within its parent cluster.
	Sequence uint16 `json:"sequence"`

	// ChildOffset is the absolute blob offset of the first entry of this
	// entry's child cluster, or 0 when the entry has no children.
	ChildOffset uint16 `json:"child_offset"`

	// ChildCount is the number of entries in the child cluster.
	ChildCount uint16 `json:"child_count"`

	// NameLength is the length of the name including its NUL terminator.
	NameLength uint8 `json:"name_length"`

	// NameOffset is the absolute blob offset of the NUL-terminated UTF-8
	// name, or 0 when the entry is unnamed.
	NameOffset uint16 `json:"name_offset"`
}

// Cluster describes a contiguous range of dictionary entries forming the
// members of a parent entity. It is derived from a parent entry and never
// stored. The zero Cluster is the empty cluster.
type Cluster struct {
	StartIndex uint32
	Count      uint16
}

// Dictionary owns the parsed entry table of a schema dictionary and keeps
// a borrowed view of the source blob for name resolution. The blob must
// outlive the Dictionary and every decode that references it; after
// loading, a Dictionary is read-only and safe for concurrent use.
type Dictionary struct {
	Header DictionaryHeader

	entries       []DictionaryEntry
	entriesOffset int
	namesOffset   int
	data          []byte
}

// LoadDictionary parses a schema dictionary blob. The entry table must fit
// inside the blob; the names pool is whatever follows it. The blob is
// borrowed, not copied.
func LoadDictionary(data []byte) (*Dictionary, error) {
	if len(data) < DictionaryHeaderSize {
		return nil, ErrDictionaryTooShort
	}

	d := Dictionary{data: data}
	err := structUnpack(data, 0, DictionaryHeaderSize, &d.Header)
	if err != nil {
		return nil, ErrDictionaryTooShort
	}

	count := int(d.Header.EntryCount)
	d.entriesOffset = DictionaryHeaderSize
	d.namesOffset = DictionaryHeaderSize + count*DictionaryEntrySize
	if len(data) < d.namesOffset {
		return nil, ErrDictionaryTooShort
	}

	d.entries = make([]DictionaryEntry, count)
	for i := 0; i < count; i++ {
		offset := d.entriesOffset + i*DictionaryEntrySize
		b := data[offset : offset+DictionaryEntrySize]
		d.entries[i] = DictionaryEntry{
			Format:      b[0],
			Sequence:    binary.LittleEndian.Uint16(b[1:]),
			ChildOffset: binary.LittleEndian.Uint16(b[3:]),
			ChildCount:  binary.LittleEndian.Uint16(b[5:]),
			NameLength:  b[7],
			NameOffset:  binary.LittleEndian.Uint16(b[8:]),
		}
	}

	return &d, nil
}

// EntryCount returns the number of entries in the entry table.
func (d *Dictionary) EntryCount() int {
	return len(d.entries)
}

// Entry returns the i-th entry of the entry table.
func (d *Dictionary) Entry(i int) DictionaryEntry {
	return d.entries[i]
}

// NameAt resolves an absolute name offset to a borrowed byte view of the
// UTF-8 name, without its NUL terminator. It returns nil for offset 0,
// offsets outside the blob, and names whose terminator falls outside the
// blob. It never fails a decode; callers synthesize a name instead.
func (d *Dictionary) NameAt(off uint16) []byte {
	if off == 0 || int(off) >= len(d.data) {
		return nil
	}

	end := int(off)
	for end < len(d.data) && d.data[end] != 0 {
		end++
	}
	if end == len(d.data) {
		return nil
	}
	return d.data[off:end]
}

// Lookup scans a cluster for the entry carrying the given sequence number.
// The scan is linear on purpose; clusters are typically a handful of
// members and the on-wire ordering is not required to be sorted. Ranges
// reaching past the entry table are clamped. Returns nil when no entry
// matches.
func (d *Dictionary) Lookup(c Cluster, seq uint16) *DictionaryEntry {
	end := uint64(c.StartIndex) + uint64(c.Count)
	if end > uint64(len(d.entries)) {
		end = uint64(len(d.entries))
	}

	for i := uint64(c.StartIndex); i < end; i++ {
		if d.entries[i].Sequence == seq {
			return &d.entries[i]
		}
	}
	return nil
}

// ChildCluster derives the cluster holding an entry's children. Child
// clusters are not necessarily contiguous with their parent. An entry
// with no children, or a child offset pointing before the entry table,
// yields the empty cluster.
func (d *Dictionary) ChildCluster(e *DictionaryEntry) Cluster {
	if e == nil || e.ChildOffset == 0 || int(e.ChildOffset) < d.entriesOffset {
		return Cluster{}
	}

	return Cluster{
		StartIndex: uint32((int(e.ChildOffset) - d.entriesOffset) / DictionaryEntrySize),
		Count:      e.ChildCount,
	}
}

// RootCluster derives the initial cluster for decoding: the children of
// entry 0, the schema root. An empty dictionary or a childless root
// yields the empty cluster and every member decodes to a synthetic name.
func (d *Dictionary) RootCluster() Cluster {
	if len(d.entries) == 0 {
		return Cluster{}
	}

	root := d.entries[0]
	return d.ChildCluster(&root)
}
