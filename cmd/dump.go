// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	bejparser "github.com/saferwall/bej"
)

// printDictionary writes the parsed entry table in a fixed-width layout,
// one line per entry.
func printDictionary(w io.Writer, dict *bejparser.Dictionary) {

	hdr := dict.Header
	fmt.Fprintf(w, "Schema dictionary: version tag %#x, flags %#x, "+
		"schema version %#x, %d entries\n",
		hdr.VersionTag, hdr.Flags, hdr.SchemaVersion, dict.EntryCount())
	fmt.Fprintf(w, "%-5s %-6s %-6s %-9s %-9s %s\n",
		"idx", "fmt", "seq", "children", "childoff", "name")

	for i := 0; i < dict.EntryCount(); i++ {
		e := dict.Entry(i)
		name := dict.NameAt(e.NameOffset)
		if name == nil {
			name = []byte("-")
		}
		fmt.Fprintf(w, "%-5d %#-6x %-6d %-9d %#-9x %s\n",
			i, e.Format, e.Sequence, e.ChildCount, e.ChildOffset, name)
	}
}
