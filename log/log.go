// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package log provides the small structured-logging facade the decoder
// logs through. Callers plug any backend by implementing Logger; the
// default backend writes logfmt-style lines to an io.Writer.
package log

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// DefaultMessageKey is the key under which Helper records the message.
const DefaultMessageKey = "msg"

// Logger is the sink for log records: a level and alternating key/value
// pairs.
type Logger interface {
	Log(level Level, keyvals ...interface{}) error
}

type stdLogger struct {
	w    io.Writer
	pool *sync.Pool
}

// NewStdLogger returns a Logger writing one line per record to w.
func NewStdLogger(w io.Writer) Logger {
	return &stdLogger{
		w: w,
		pool: &sync.Pool{
			New: func() interface{} {
				return new(bytes.Buffer)
			},
		},
	}
}

func (l *stdLogger) Log(level Level, keyvals ...interface{}) error {
	if len(keyvals) == 0 {
		return nil
	}
	if len(keyvals)%2 != 0 {
		keyvals = append(keyvals, "")
	}

	buf := l.pool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		l.pool.Put(buf)
	}()

	buf.WriteString(level.String())
	for i := 0; i < len(keyvals); i += 2 {
		fmt.Fprintf(buf, " %s=%v", keyvals[i], keyvals[i+1])
	}
	buf.WriteByte('\n')
	_, err := l.w.Write(buf.Bytes())
	return err
}
