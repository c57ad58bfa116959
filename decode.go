// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package bej

import (
	"io"
	"strconv"
)

// enumPlaceholder is emitted when an enum ordinal cannot be resolved to
// an option name through the dictionary.
var enumPlaceholder = []byte("EnumOption")

// tupleHeader is the decoded prefix of one BEJ tuple: sequence nnint with
// its annotation flag split out, the format nibble, and the payload
// length. The payload length is authoritative; unknown and annotation
// payloads are skipped by that many bytes without interpretation.
type tupleHeader struct {
	Sequence     uint16
	IsAnnotation bool
	Format       uint8
	Length       uint64
}

func readTupleHeader(r *ByteReader) (tupleHeader, error) {
	var t tupleHeader

	s, err := r.ReadNNInt()
	if err != nil {
		return t, err
	}
	t.IsAnnotation = s&1 != 0
	t.Sequence = uint16(s >> 1)

	f, err := r.ReadUint8()
	if err != nil {
		return t, err
	}
	t.Format = f >> 4

	t.Length, err = r.ReadNNInt()
	if err != nil {
		return t, err
	}
	return t, nil
}

// Decode parses the BEJ stream and writes the corresponding JSON document
// to w, terminated by a single newline. The stream must carry a 7-byte
// bejEncoding header followed by exactly one top-level bejSet tuple.
//
// All parse failures surface as ErrMalformedStream; the underlying cause
// is logged at debug level. Output already written to w before a failure
// is the caller's problem to discard.
func (f *File) Decode(w io.Writer) error {
	r := NewByteReader(f.data)
	jw := newJSONWriter(w)

	if err := f.decodeDocument(r, jw); err != nil {
		f.logger.Debugf("bej decode failed at offset %#x: %v", r.Pos(), err)
		return ErrMalformedStream
	}
	return jw.Flush()
}

type encodingHeader struct {
	Version     uint32
	Flags       uint16
	SchemaClass uint8
}

func (f *File) decodeDocument(r *ByteReader, jw *jsonWriter) error {
	b, err := r.ReadBytes(EncodingHeaderSize)
	if err != nil {
		return err
	}

	var hdr encodingHeader
	if err := structUnpack(b, 0, EncodingHeaderSize, &hdr); err != nil {
		return err
	}
	f.Version = hdr.Version
	f.Flags = hdr.Flags
	f.SchemaClass = hdr.SchemaClass

	t, err := readTupleHeader(r)
	if err != nil {
		return err
	}
	if t.Format != FormatSet {
		return ErrUnexpectedFormat
	}

	if err := f.decodeSet(r, jw, f.dict.RootCluster(), 0); err != nil {
		return err
	}

	jw.Newline()
	return nil
}

// decodeSet decodes a bejSet payload: an nnint member count followed by
// that many tuples, emitted as a JSON object. The cluster argument names
// the members; it is replaced on descent and restored on return by the
// recursion itself.
func (f *File) decodeSet(r *ByteReader, jw *jsonWriter, cluster Cluster,
	depth int) error {

	if depth >= f.opts.MaxSetDepth {
		return ErrMaxSetDepth
	}

	count, err := r.ReadNNInt()
	if err != nil {
		return err
	}

	jw.BeginObject()
	for i := uint64(0); i < count; i++ {
		t, err := readTupleHeader(r)
		if err != nil {
			return err
		}

		// Annotation members are invisible at every nesting depth.
		if t.IsAnnotation {
			if err := r.Skip(t.Length); err != nil {
				return err
			}
			continue
		}

		entry := f.dict.Lookup(cluster, t.Sequence)

		var name []byte
		if entry != nil && entry.NameOffset != 0 {
			name = f.dict.NameAt(entry.NameOffset)
		}
		if name == nil {
			name = []byte("seq_" + strconv.FormatUint(uint64(t.Sequence), 10))
		}
		jw.Key(name)

		switch t.Format {
		case FormatInteger:
			err = f.decodeInteger(r, jw, t.Length)
		case FormatString:
			err = f.decodeString(r, jw, t.Length)
		case FormatSet:
			err = f.decodeSet(r, jw, f.dict.ChildCluster(entry), depth+1)
		case FormatArray:
			err = f.decodeArray(r, jw)
		case FormatEnum:
			err = f.decodeEnum(r, jw, entry, t.Length)
		default:
			// bejNull and every format this decoder does not interpret:
			// the declared length tells us how much payload to step over.
			if err = r.Skip(t.Length); err == nil {
				jw.Null()
			}
		}
		if err != nil {
			return err
		}
	}
	jw.EndObject()
	return nil
}

// decodeInteger reads length little-endian payload bytes into an int64.
// The value is the zero-extended magnitude; genuine negative BEJ integers
// encoded in two's complement mis-render. Known simplification.
func (f *File) decodeInteger(r *ByteReader, jw *jsonWriter, length uint64) error {
	if length > 8 {
		return ErrIntegerTooWide
	}

	b, err := r.ReadBytes(int(length))
	if err != nil {
		return err
	}

	var v uint64
	for i, by := range b {
		v |= uint64(by) << (8 * i)
	}
	jw.Int(int64(v))
	return nil
}

// decodeString reads the payload and emits it as a JSON string. The wire
// format NUL-terminates strings; the terminator, and any further trailing
// NULs, are elided.
func (f *File) decodeString(r *ByteReader, jw *jsonWriter, length uint64) error {
	b, err := r.ReadBytes(int(length))
	if err != nil {
		return err
	}

	for len(b) > 0 && b[len(b)-1] == 0 {
		b = b[:len(b)-1]
	}
	jw.String(b)
	return nil
}

// decodeArray decodes a bejArray payload: an nnint element count followed
// by that many element tuples, emitted as a JSON array. Arrays are
// positional; element sequence numbers are read and discarded. Only
// integer and string elements are interpreted, anything else is skipped
// and holds a null in its position.
func (f *File) decodeArray(r *ByteReader, jw *jsonWriter) error {
	count, err := r.ReadNNInt()
	if err != nil {
		return err
	}

	jw.BeginArray()
	for k := uint64(0); k < count; k++ {
		t, err := readTupleHeader(r)
		if err != nil {
			return err
		}

		if k > 0 {
			jw.Separator()
		}

		switch t.Format {
		case FormatInteger:
			err = f.decodeInteger(r, jw, t.Length)
		case FormatString:
			err = f.decodeString(r, jw, t.Length)
		default:
			if err = r.Skip(t.Length); err == nil {
				jw.Null()
			}
		}
		if err != nil {
			return err
		}
	}
	jw.EndArray()
	return nil
}

// decodeEnum reads the enum ordinal as an nnint, then advances the cursor
// to the end of the payload regardless of how wide the ordinal encoding
// was; the declared tuple length wins. A width mismatch is worth a
// warning but not a failure. The ordinal is looked up as a sequence
// number in the entry's child cluster and the option name emitted as a
// JSON string.
func (f *File) decodeEnum(r *ByteReader, jw *jsonWriter,
	entry *DictionaryEntry, length uint64) error {

	start := r.Pos()
	ordinal, err := r.ReadNNInt()
	if err != nil {
		return err
	}

	if consumed := uint64(r.Pos() - start); consumed != length {
		f.logger.Warnf("enum ordinal encoded in %d bytes, tuple declares %d",
			consumed, length)
	}
	if err := r.Seek(start); err != nil {
		return err
	}
	if err := r.Skip(length); err != nil {
		return err
	}

	name := enumPlaceholder
	if entry != nil {
		options := f.dict.ChildCluster(entry)
		if opt := f.dict.Lookup(options, uint16(ordinal)); opt != nil &&
			opt.NameOffset != 0 {
			if n := f.dict.NameAt(opt.NameOffset); n != nil {
				name = n
			}
		}
	}
	jw.String(name)
	return nil
}
