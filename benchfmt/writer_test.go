// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWriterRoundTrip(t *testing.T) {
	const input = `{
  "context": {"host_name": "box", "num_cpus": 8, "caches": [{"type": "Data", "size": 32768}]},
  "benchmarks": [
    {"name": "BM_frxml/1024", "run_type": "iteration", "threads": 1, "repetitions": 3, "iterations": 10, "real_time": 1.5, "cpu_time": 0.1, "time_unit": "ms", "label": "1024"},
    {"name": "BM_rapidxml/8_mean", "run_type": "aggregate", "aggregate_name": "mean", "cpu_time": 123456789.125},
    {"bad": true}
  ]
}`
	want := parseAll(t, input)

	var buf strings.Builder
	w := NewWriter(&buf)
	for _, rec := range want {
		if err := w.Write(rec); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	got := parseAll(t, buf.String())
	// Syntax errors are not written.
	if diff := cmp.Diff(want[:2], got, cmpResults); diff != "" {
		t.Errorf("round trip differs (-want +got):\n%s\noutput:\n%s", diff, buf.String())
	}

	// The context is written once, as an object, and numbers stay
	// numbers.
	out := buf.String()
	for _, want := range []string{
		`"context": {`,
		`"caches": [{"size":32768,"type":"Data"}]`,
		`"num_cpus": 8`,
		`"threads": 1`,
		`"repetitions": 3`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %s:\n%s", want, out)
		}
	}
	if n := strings.Count(out, `"host_name"`); n != 1 {
		t.Errorf("host_name written %d times, want 1:\n%s", n, out)
	}
}

func TestWriterContextDiffers(t *testing.T) {
	a := parseAll(t, `{"context": {"host_name": "a", "num_cpus": 8}, "benchmarks": [{"name": "BM_x/1", "cpu_time": 1}]}`)
	b := parseAll(t, `{"context": {"host_name": "b", "num_cpus": 8}, "benchmarks": [{"name": "BM_y/1", "cpu_time": 2}]}`)

	var buf strings.Builder
	w := NewWriter(&buf)
	for _, rec := range append(a, b...) {
		if err := w.Write(rec); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	got := parseAll(t, buf.String())
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2:\n%s", len(got), buf.String())
	}
	for i, host := range []string{"a", "b"} {
		if h := got[i].(*Result).GetConfig("host_name"); h != host {
			t.Errorf("record %d: host_name = %q, want %q", i, h, host)
		}
		if n := got[i].(*Result).GetConfig("num_cpus"); n != "8" {
			t.Errorf("record %d: num_cpus = %q, want 8", i, n)
		}
	}
}

func TestWriterInternalConfig(t *testing.T) {
	res := &Result{Name: "a/1", Values: []Value{{"cpu_time", 2, "ns"}}}
	res.SetConfig(".file", "x")
	var buf strings.Builder
	w := NewWriter(&buf)
	if err := w.Write(res); err != nil {
		t.Fatal(err)
	}
	w.Close()
	if strings.Contains(buf.String(), ".file") {
		t.Errorf("internal configuration written:\n%s", buf.String())
	}
}

func TestWriterEmpty(t *testing.T) {
	var buf strings.Builder
	w := NewWriter(&buf)
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if got := parseAll(t, buf.String()); len(got) != 0 {
		t.Errorf("got %d records from empty document", len(got))
	}
	if err := w.Write(&Result{Name: "a/1"}); err == nil {
		t.Errorf("Write after Close succeeded")
	}
}

func TestWriterNonFinite(t *testing.T) {
	var buf strings.Builder
	w := NewWriter(&buf)
	if err := w.Write(&Result{Name: "a/1", Values: []Value{{"cpu_time", math.Inf(1), "ns"}}}); err == nil {
		t.Fatalf("writing +Inf succeeded")
	}
	if err := w.Write(&Result{Name: "a/2", Values: []Value{{"cpu_time", 1, "ns"}}}); err != nil {
		t.Fatal(err)
	}
	w.Close()
	got := parseAll(t, buf.String())
	if len(got) != 1 || got[0].(*Result).Name != "a/2" {
		t.Errorf("got %v, want only a/2", got)
	}
}
