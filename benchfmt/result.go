// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchfmt reads and writes benchmark results in the Google
// Benchmark JSON format, as produced by
//
//	benchmark_binary --benchmark_format=json
//
// A document is an object with an optional "context" object and a
// "benchmarks" array. Each element of the array becomes one Result.
// The reader streams the array element by element, so a single
// malformed element is reported as a *SyntaxError without losing the
// rest of the run.
//
// This package is designed to be used with the higher-level packages
// benchunit, benchproc, and benchseries.
package benchfmt

// A Result is a single benchmark record and all of its measurements.
//
// A Result is treated as immutable once read. Reader returns a fresh
// Result for every element, so callers may retain them.
type Result struct {
	// Name is the full benchmark name, such as "BM_frxml/1024".
	Name string

	// Label is the explicit "label" field of the record, or "".
	Label string

	// RunType is "iteration" for a measured run and "aggregate"
	// for a statistic computed over repetitions. It may be "" for
	// producers that don't report it.
	RunType string

	// AggregateName is the statistic of an aggregate record, such
	// as "mean" or "stddev".
	AggregateName string

	// Config is the set of key/value configuration pairs for this
	// result: the document's "context" fields, the record's
	// non-measurement fields (such as "time_unit"), and any
	// internal configuration supplied by tooling (such as ".file").
	//
	// Use SetConfig to add or delete keys; values may be read
	// directly.
	Config []Config

	// Values is this record's measurements in document order.
	Values []Value

	// configPos maps from Config.Key to index in Config. This
	// may be nil, which indicates the index needs to be
	// constructed.
	configPos map[string]int

	// fileName and index record where this Result was read from.
	fileName string
	index    int
}

// A Config is a single key/value configuration pair.
type Config struct {
	Key   string
	Value string
	File  bool // Set if this came from the input document, otherwise internal

	// Context is set if this came from the document's "context"
	// object rather than from the benchmark element.
	Context bool

	// JSON is set if Value is the JSON text of a number, boolean,
	// array or object rather than a string.
	JSON bool
}

// A Value is a single measurement of a benchmark record.
type Value struct {
	Name  string // JSON field name, such as "cpu_time"
	Value float64
	Unit  string // Inferred unit, such as "ns" or "B/s"; may be ""
}

// Pos returns the file name and 1-based element index of a Result
// that was read by a Reader. For Results that were not read from a
// file, it returns "", 0.
func (r *Result) Pos() (fileName string, index int) {
	return r.fileName, r.index
}

// Clone makes a copy of Result that shares no state with r.
func (r *Result) Clone() *Result {
	r2 := *r
	r2.Config = append([]Config(nil), r.Config...)
	r2.Values = append([]Value(nil), r.Values...)
	r2.configPos = nil
	return &r2
}

// SetConfig sets configuration key to value, overriding or adding the
// configuration as necessary, and marks it internal. If value is "",
// SetConfig deletes key.
func (r *Result) SetConfig(key, value string) {
	r.setConfig(Config{Key: key, Value: value})
}

func (r *Result) setConfig(cfg Config) {
	pos, ok := r.ConfigIndex(cfg.Key)
	if cfg.Value == "" {
		if ok {
			r.deleteConfig(pos)
		}
		return
	}
	if ok {
		r.Config[pos] = cfg
		return
	}
	r.configPos[cfg.Key] = len(r.Config)
	r.Config = append(r.Config, cfg)
}

// deleteConfig swaps the deleted key with the final element so the
// order of the remaining keys stays deterministic.
func (r *Result) deleteConfig(pos int) {
	last := len(r.Config) - 1
	delete(r.configPos, r.Config[pos].Key)
	if pos != last {
		r.Config[pos] = r.Config[last]
		r.configPos[r.Config[pos].Key] = pos
	}
	r.Config = r.Config[:last]
}

// GetConfig returns the value of a configuration key,
// or "" if not present.
func (r *Result) GetConfig(key string) string {
	pos, ok := r.ConfigIndex(key)
	if !ok {
		return ""
	}
	return r.Config[pos].Value
}

// ConfigIndex returns the index in r.Config of key.
func (r *Result) ConfigIndex(key string) (pos int, ok bool) {
	if r.configPos == nil {
		// This is a fresh Result. Construct the index.
		r.configPos = make(map[string]int)
		for i, cfg := range r.Config {
			r.configPos[cfg.Key] = i
		}
	}

	pos, ok = r.configPos[key]
	return
}

// Value returns the measurement with the given field name.
func (r *Result) Value(name string) (float64, bool) {
	for _, v := range r.Values {
		if v.Name == name {
			return v.Value, true
		}
	}
	return 0, false
}

// Unit returns the unit of the measurement with the given field name.
func (r *Result) Unit(name string) string {
	for _, v := range r.Values {
		if v.Name == name {
			return v.Unit
		}
	}
	return ""
}

// IsAggregate reports whether r is a statistic computed over
// repetitions rather than a measured run.
func (r *Result) IsAggregate() bool {
	return r.RunType == "aggregate"
}
