// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package bej

import (
	"bufio"
	"io"
	"strconv"
)

// indentUnit is the indentation emitted per nesting level.
const indentUnit = "   "

// jsonWriter is a streaming pretty-printer for the structural events the
// decoder emits. It is not a general JSON library: objects span lines,
// arrays stay inline, and escaping covers only the quote, backslash and
// newline characters. Other control bytes pass through untouched.
type jsonWriter struct {
	w         *bufio.Writer
	indent    int
	needComma bool
}

func newJSONWriter(w io.Writer) *jsonWriter {
	return &jsonWriter{w: bufio.NewWriter(w)}
}

func (j *jsonWriter) newline() {
	j.w.WriteByte('\n')
	for i := 0; i < j.indent; i++ {
		j.w.WriteString(indentUnit)
	}
}

// BeginObject opens a JSON object and indents its members one level.
func (j *jsonWriter) BeginObject() {
	j.w.WriteByte('{')
	j.indent++
	j.needComma = false
}

// EndObject closes the current object on its own line.
func (j *jsonWriter) EndObject() {
	j.indent--
	j.newline()
	j.w.WriteByte('}')
	j.needComma = true
}

// BeginArray opens a JSON array. Elements are emitted inline, separated
// by Separator.
func (j *jsonWriter) BeginArray() {
	j.w.WriteByte('[')
	j.needComma = false
}

// EndArray closes the current array.
func (j *jsonWriter) EndArray() {
	j.w.WriteByte(']')
	j.needComma = true
}

// Separator joins consecutive array elements.
func (j *jsonWriter) Separator() {
	j.w.WriteString(", ")
}

// Key emits an object key on a fresh line and prepares for its value.
func (j *jsonWriter) Key(k []byte) {
	if j.needComma {
		j.w.WriteByte(',')
	}
	j.needComma = true
	j.newline()
	j.writeQuoted(k)
	j.w.WriteString(": ")
}

// String emits a JSON string value.
func (j *jsonWriter) String(s []byte) {
	j.writeQuoted(s)
}

// Int emits a JSON integer value in decimal.
func (j *jsonWriter) Int(v int64) {
	j.w.WriteString(strconv.FormatInt(v, 10))
}

// Null emits the JSON null literal.
func (j *jsonWriter) Null() {
	j.w.WriteString("null")
}

// Newline terminates the document.
func (j *jsonWriter) Newline() {
	j.w.WriteByte('\n')
}

// Flush drains buffered output to the underlying writer and reports any
// write error encountered along the way.
func (j *jsonWriter) Flush() error {
	return j.w.Flush()
}

func (j *jsonWriter) writeQuoted(s []byte) {
	j.w.WriteByte('"')
	for _, c := range s {
		switch c {
		case '"', '\\':
			j.w.WriteByte('\\')
			j.w.WriteByte(c)
		case '\n':
			j.w.WriteString(`\n`)
		default:
			j.w.WriteByte(c)
		}
	}
	j.w.WriteByte('"')
}
