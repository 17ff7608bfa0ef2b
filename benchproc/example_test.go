// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchproc_test

import (
	"fmt"
	"log"
	"strings"

	"github.com/frxml/benchplot/benchfmt"
	"github.com/frxml/benchplot/benchproc"
)

func Example() {
	const doc = `{
  "benchmarks": [
    {"name": "BM_frxml/1024", "cpu_time": 1.5, "time_unit": "us"},
    {"name": "BM_rapidxml/1024", "cpu_time": 2, "time_unit": "us"},
    {"name": "BM_broken", "cpu_time": 1, "time_unit": "us"}
  ]
}`
	var raws []*benchfmt.Result
	r := benchfmt.NewReader(strings.NewReader(doc), "example.json")
	for r.Scan() {
		switch rec := r.Result().(type) {
		case *benchfmt.SyntaxError:
			log.Print(rec)
		case *benchfmt.Result:
			raws = append(raws, rec)
		}
	}
	if err := r.Err(); err != nil {
		log.Fatal(err)
	}

	table, errs := benchproc.Build(raws, benchproc.NewParser(nil))
	for _, err := range errs {
		fmt.Println("skipped:", err)
	}
	for _, rec := range table.Records() {
		fmt.Printf("%s %g %.3g B/s\n", rec.Library, rec.Size, rec.Metrics["throughput"])
	}
	// Output:
	// skipped: example.json:#3: BM_broken: malformed benchmark name
	// frxml 1024 6.83e+08 B/s
	// rapidxml 1024 5.12e+08 B/s
}
