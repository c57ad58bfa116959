// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelString(t *testing.T) {

	tests := []struct {
		in  Level
		out string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LevelFatal, "FATAL"},
		{Level(42), ""},
	}

	for _, tt := range tests {
		if got := tt.in.String(); got != tt.out {
			t.Errorf("Level(%d).String() = %q, want %q", tt.in, got, tt.out)
		}
	}
}

func TestStdLogger(t *testing.T) {

	var buf bytes.Buffer
	logger := NewStdLogger(&buf)

	if err := logger.Log(LevelInfo, "msg", "hello", "count", 3); err != nil {
		t.Fatalf("Log failed, reason: %v", err)
	}

	got := buf.String()
	want := "INFO msg=hello count=3\n"
	if got != want {
		t.Errorf("Log output = %q, want %q", got, want)
	}
}

func TestStdLoggerOddKeyvals(t *testing.T) {

	var buf bytes.Buffer
	logger := NewStdLogger(&buf)

	if err := logger.Log(LevelWarn, "msg"); err != nil {
		t.Fatalf("Log failed, reason: %v", err)
	}
	if got := buf.String(); got != "WARN msg=\n" {
		t.Errorf("Log output = %q, want %q", got, "WARN msg=\n")
	}

	buf.Reset()
	if err := logger.Log(LevelWarn); err != nil {
		t.Fatalf("Log with no keyvals failed, reason: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Log with no keyvals wrote %q", buf.String())
	}
}

func TestFilterLevel(t *testing.T) {

	var buf bytes.Buffer
	logger := NewFilter(NewStdLogger(&buf), FilterLevel(LevelError))

	logger.Log(LevelDebug, "msg", "dropped")
	logger.Log(LevelWarn, "msg", "dropped")
	if buf.Len() != 0 {
		t.Fatalf("filtered records reached the sink: %q", buf.String())
	}

	logger.Log(LevelError, "msg", "kept")
	if !strings.Contains(buf.String(), "kept") {
		t.Errorf("error record did not reach the sink: %q", buf.String())
	}
}

func TestHelper(t *testing.T) {

	var buf bytes.Buffer
	h := NewHelper(NewStdLogger(&buf))

	h.Debugf("offset %#x", 16)
	if got := buf.String(); got != "DEBUG msg=offset 0x10\n" {
		t.Errorf("Debugf output = %q", got)
	}

	buf.Reset()
	h.Warn("careful")
	if got := buf.String(); got != "WARN msg=careful\n" {
		t.Errorf("Warn output = %q", got)
	}

	buf.Reset()
	h.Errorf("decode failed: %v", "boom")
	if got := buf.String(); got != "ERROR msg=decode failed: boom\n" {
		t.Errorf("Errorf output = %q", got)
	}
}
