// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchseries

import (
	"runtime"
	"sort"
	"sync"

	"github.com/frxml/benchplot/benchproc"
	"github.com/frxml/benchplot/benchunit"
)

// Pivot reshapes the records of t that report metric into a Matrix.
//
// The rows are the distinct sizes of those records in ascending order
// and the columns are their distinct libraries in order of first
// appearance. Records that don't report metric contribute neither a
// row nor a column. If several records have the same library and size,
// the last one in t wins; values are never combined.
func Pivot(t *benchproc.Table, metric string) *Matrix {
	recs := t.Records()

	var sizes []float64
	var libs []string
	seenSize := make(map[float64]bool)
	libIndex := make(map[string]int)
	unit, unitSet := "", false
	for _, rec := range recs {
		if _, ok := rec.Metrics[metric]; !ok {
			continue
		}
		if !seenSize[rec.Size] {
			seenSize[rec.Size] = true
			sizes = append(sizes, rec.Size)
		}
		if _, ok := libIndex[rec.Library]; !ok {
			libIndex[rec.Library] = len(libs)
			libs = append(libs, rec.Library)
		}

		u, ok := rec.Units[metric]
		if !ok {
			u = benchunit.UnitOf(metric, "")
		}
		if !unitSet {
			unit, unitSet = u, true
		} else if u != unit {
			unit = ""
		}
	}
	sort.Float64s(sizes)

	m := newMatrix(metric, unit, sizes, libs)
	for _, rec := range recs {
		v, ok := rec.Metrics[metric]
		if !ok {
			continue
		}
		i := sort.SearchFloat64s(sizes, rec.Size)
		m.cells[i][libIndex[rec.Library]] = Cell{Value: v, Present: true}
	}
	return m
}

// Metrics returns the names of all metrics reported by records in t,
// sorted.
func Metrics(t *benchproc.Table) []string {
	seen := make(map[string]bool)
	var names []string
	for _, rec := range t.Records() {
		for name := range rec.Metrics {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}

// PivotAll pivots t once for each of metrics. The result is in the
// order of metrics.
func PivotAll(t *benchproc.Table, metrics []string) []*Matrix {
	out := make([]*Matrix, len(metrics))

	// Each metric is independent, so pivot them in parallel with a
	// simple concurrency limit.
	limit := make(chan struct{}, runtime.GOMAXPROCS(-1))
	var wg sync.WaitGroup
	for i, metric := range metrics {
		i, metric := i, metric
		limit <- struct{}{}
		wg.Add(1)
		go func() {
			defer wg.Done()
			out[i] = Pivot(t, metric)
			<-limit
		}()
	}
	wg.Wait()
	return out
}
