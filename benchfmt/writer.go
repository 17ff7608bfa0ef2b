// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// A Writer writes a Google Benchmark JSON document.
//
// Records are written as elements of the "benchmarks" array as they
// arrive; Close terminates the document. The context configuration of
// the first Result becomes the document's "context" object. Other
// configuration is written back as fields of each element, except
// internal keys starting with ".", so a document read by Reader and
// written by Writer reads back to the same Results.
//
// Later Results whose context differs from the first carry the
// differing keys as element fields.
type Writer struct {
	w   io.Writer
	buf bytes.Buffer

	context map[string]Config // written context, by key

	started bool
	n       int
	closed  bool
}

// NewWriter returns a writer that writes a JSON document to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write writes Record rec to w. *SyntaxError records are ignored.
func (w *Writer) Write(rec Record) error {
	if w.closed {
		return fmt.Errorf("write after Close")
	}
	switch rec := rec.(type) {
	case *Result:
		if err := w.writeResult(rec); err != nil {
			return err
		}
	case *SyntaxError:
		return nil
	default:
		return fmt.Errorf("unknown Record type %T", rec)
	}
	return w.flush()
}

// Close terminates the document. A Writer that wrote no records
// produces an empty "benchmarks" array.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	w.start(nil)
	w.buf.WriteString("\n  ]\n}\n")
	return w.flush()
}

func (w *Writer) flush() error {
	// Writes to the buffer can't fail, so only this can.
	_, err := w.w.Write(w.buf.Bytes())
	w.buf.Reset()
	return err
}

// start writes the head of the document, taking the context from res
// if it is not nil.
func (w *Writer) start(res *Result) {
	if w.started {
		return
	}
	w.started = true
	w.context = make(map[string]Config)
	w.buf.WriteString("{\n")
	if res != nil {
		n := 0
		for _, cfg := range res.Config {
			if !cfg.Context || strings.HasPrefix(cfg.Key, ".") {
				continue
			}
			if n == 0 {
				w.buf.WriteString("  \"context\": {")
			} else {
				w.buf.WriteByte(',')
			}
			n++
			w.buf.WriteString("\n    ")
			w.buf.Write(quote(cfg.Key))
			w.buf.WriteString(": ")
			w.buf.Write(configValue(cfg))
			w.context[cfg.Key] = cfg
		}
		if n > 0 {
			w.buf.WriteString("\n  },\n")
		}
	}
	w.buf.WriteString("  \"benchmarks\": [")
}

func (w *Writer) writeResult(res *Result) error {
	for _, v := range res.Values {
		if math.IsNaN(v.Value) || math.IsInf(v.Value, 0) {
			return fmt.Errorf("%s: %s: cannot encode %v", res.Name, v.Name, v.Value)
		}
	}

	w.start(res)
	if w.n > 0 {
		w.buf.WriteByte(',')
	}
	w.n++
	w.buf.WriteString("\n    {")

	first := true
	field := func(key string, val []byte) {
		if !first {
			w.buf.WriteByte(',')
		}
		first = false
		w.buf.WriteString("\n      ")
		w.buf.Write(quote(key))
		w.buf.WriteString(": ")
		w.buf.Write(val)
	}

	field("name", quote(res.Name))
	if res.RunType != "" {
		field("run_type", quote(res.RunType))
	}
	if res.AggregateName != "" {
		field("aggregate_name", quote(res.AggregateName))
	}
	if res.Label != "" {
		field("label", quote(res.Label))
	}
	for _, cfg := range res.Config {
		if strings.HasPrefix(cfg.Key, ".") {
			continue
		}
		if c, ok := w.context[cfg.Key]; ok && cfg.Context && c.Value == cfg.Value && c.JSON == cfg.JSON {
			continue
		}
		field(cfg.Key, configValue(cfg))
	}
	for _, v := range res.Values {
		field(v.Name, strconv.AppendFloat(nil, v.Value, 'g', -1, 64))
	}
	w.buf.WriteString("\n    }")
	return nil
}

// configValue returns the JSON form of cfg's value.
func configValue(cfg Config) []byte {
	if cfg.JSON {
		return []byte(cfg.Value)
	}
	return quote(cfg.Value)
}

func quote(s string) []byte {
	// Marshaling a string cannot fail.
	b, _ := json.Marshal(s)
	return b
}
