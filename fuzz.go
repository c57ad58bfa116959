// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package bej

import "io/ioutil"

// fuzzDictionary is a two-entry schema dictionary: a root set holding one
// integer property named N. Small enough that the fuzzer explores the
// stream decoder rather than the dictionary loader.
var fuzzDictionary = []byte{
	// header: version tag, flags, entry count, schema version, size
	0x00, 0x00, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	// entry 0: root set, child cluster at 22, 1 child, name "Root" at 32
	0x00, 0x00, 0x00, 0x16, 0x00, 0x01, 0x00, 0x05, 0x20, 0x00,
	// entry 1: integer, seq 0, no children, name "N" at 37
	0x30, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x02, 0x25, 0x00,
	// names pool
	'R', 'o', 'o', 't', 0x00, 'N', 0x00,
}

func Fuzz(data []byte) int {
	dict, err := LoadDictionary(fuzzDictionary)
	if err != nil {
		return 0
	}
	f, err := NewBytes(data, dict, &Options{})
	if err != nil {
		return 0
	}
	if err := f.Decode(ioutil.Discard); err != nil {
		return 0
	}
	return 1
}
