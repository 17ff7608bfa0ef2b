// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchseries_test

import (
	"fmt"
	"log"
	"os"

	"github.com/frxml/benchplot/benchproc"
	"github.com/frxml/benchplot/benchseries"
)

func Example() {
	table := benchproc.NewTable(
		benchproc.Record{Library: "lib_A", Size: 100, Metrics: map[string]float64{"time": 50}},
		benchproc.Record{Library: "lib_B", Size: 100, Metrics: map[string]float64{"time": 100}},
		benchproc.Record{Library: "lib_A", Size: 200, Metrics: map[string]float64{"time": 90}},
		benchproc.Record{Library: "lib_B", Size: 200, Metrics: map[string]float64{"time": 200}},
	)

	m := benchseries.Pivot(table, "time")
	rel, err := benchseries.Normalize(m, "lib_A")
	if err != nil {
		log.Fatal(err)
	}
	for i, size := range rel.Sizes() {
		fmt.Println(size, rel.Row(i))
	}
	if err := rel.ToCSV(os.Stdout); err != nil {
		log.Fatal(err)
	}
	// Output:
	// 100 [{1 true} {2 true}]
	// 200 [{1 true} {2.2222222222222223 true}]
	// size,lib_A,lib_B
	// 100,1,2
	// 200,1,2.2222222222222223
}
