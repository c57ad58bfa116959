// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package bej

import (
	"os"

	mmap "github.com/edsrzf/mmap-go"
	"github.com/saferwall/bej/log"
)

// A File represents an open BEJ-encoded resource together with the schema
// dictionary that names its members.
type File struct {
	// bejEncoding header fields, populated by Decode.
	Version     uint32 `json:"version"`
	Flags       uint16 `json:"flags"`
	SchemaClass uint8  `json:"schema_class"`

	dict   *Dictionary
	data   mmap.MMap
	f      *os.File
	opts   *Options
	logger *log.Helper
}

// Options for decoding.
type Options struct {

	// Maximum bejSet nesting depth, by default (DefaultMaxSetDepth).
	MaxSetDepth int

	// A custom logger.
	Logger log.Logger
}

// New instantiates a file instance with options given a file name. The
// BEJ stream is memory mapped read-only instead of read into a buffer.
func New(name string, dict *Dictionary, opts *Options) (*File, error) {

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, err
	}

	file := newFile(data, dict, opts)
	file.f = f
	return file, nil
}

// NewBytes instantiates a file instance with options given a memory buffer.
func NewBytes(data []byte, dict *Dictionary, opts *Options) (*File, error) {
	return newFile(data, dict, opts), nil
}

func newFile(data []byte, dict *Dictionary, opts *Options) *File {
	file := File{dict: dict}
	if opts != nil {
		file.opts = opts
	} else {
		file.opts = &Options{}
	}

	if file.opts.MaxSetDepth == 0 {
		file.opts.MaxSetDepth = DefaultMaxSetDepth
	}

	if file.opts.Logger == nil {
		logger := log.NewStdLogger(os.Stdout)
		file.logger = log.NewHelper(log.NewFilter(logger,
			log.FilterLevel(log.LevelError)))
	} else {
		file.logger = log.NewHelper(file.opts.Logger)
	}

	file.data = data
	return &file
}

// Close closes the File.
func (f *File) Close() error {
	if f.f != nil {
		_ = f.data.Unmap()
		return f.f.Close()
	}
	return nil
}
