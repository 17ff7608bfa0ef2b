// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/frxml/benchplot/benchfmt"
	"github.com/google/go-cmp/cmp"
)

const input = `{
  "context": {"host_name": "bench1", "num_cpus": 8},
  "benchmarks": [
    {"name": "BM_frxml/1024", "iterations": 100, "cpu_time": 2.0, "time_unit": "us"},
    {"name": "BM_rapidxml/1024", "iterations": 100, "cpu_time": 2.5, "time_unit": "us"},
    {"name": "BM_pugixml/1024", "iterations": 100, "cpu_time": 4.0, "time_unit": "us"},
    {"name": "BM_expat", "iterations": 100, "cpu_time": 5.0, "time_unit": "us"},
    {"name": "BM_broken/1024", "error_occurred": true, "error_message": "oops"}
  ]
}
`

func filter(t *testing.T, args ...string) (names []string, stderr string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.json")
	if err := os.WriteFile(path, []byte(input), 0666); err != nil {
		t.Fatal(err)
	}

	var out, outErr bytes.Buffer
	if err := benchfilter(&out, &outErr, append(args, path)); err != nil {
		t.Fatal(err)
	}

	r := benchfmt.NewReader(&out, "out")
	for r.Scan() {
		switch rec := r.Result().(type) {
		case *benchfmt.Result:
			names = append(names, rec.Name)
			if got := rec.GetConfig("host_name"); got != "bench1" {
				t.Errorf("%s: host_name = %q, want bench1", rec.Name, got)
			}
		case *benchfmt.SyntaxError:
			t.Errorf("output has syntax error: %s", rec)
		}
	}
	if err := r.Err(); err != nil {
		t.Fatalf("reading output: %s\n%s", err, out.String())
	}
	return names, outErr.String()
}

func TestFilter(t *testing.T) {
	check := func(want []string, args ...string) {
		t.Helper()
		got, stderr := filter(t, args...)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%v: names (-want +got):\n%s", args, diff)
		}
		for _, msg := range []string{
			"#4: BM_expat: malformed benchmark name",
			"#5: BM_broken/1024: benchmark reported error: oops",
		} {
			if !strings.Contains(stderr, msg) {
				t.Errorf("%v: stderr does not contain %q:\n%s", args, msg, stderr)
			}
		}
	}

	check([]string{"BM_frxml/1024", "BM_rapidxml/1024", "BM_pugixml/1024"})
	check([]string{"BM_frxml/1024", "BM_pugixml/1024"}, "-exclude", "rapidxml")
	check([]string{"BM_rapidxml/1024"}, "-only", "rapidxml")
	check([]string{"BM_frxml/1024"}, "-only", "frxml,rapidxml", "-exclude", "rapidxml")
	check(nil, "-only", "libxml2")
}

func TestBadFlag(t *testing.T) {
	var out, outErr bytes.Buffer
	if err := benchfilter(&out, &outErr, []string{"-nosuchflag"}); err == nil {
		t.Fatal("want error, got nil")
	}
}
