// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchseries reshapes benchmark records into size × library
// matrices and compares libraries against a baseline.
//
// Pivot turns a benchproc.Table into one Matrix per metric, with a row
// for each input size and a column for each library. Normalize divides
// every column of a Matrix by a baseline library's column. The result
// can be rendered as text, CSV, JSON, HTML or a chart.
package benchseries

import (
	"encoding/json"
	"sort"
)

// A Cell is one value of a Matrix. A Cell that is not Present has no
// observation and its Value is meaningless; absent cells are never
// treated as zero.
type Cell struct {
	Value   float64
	Present bool
}

// A Matrix holds one metric of a set of benchmarks, indexed by input
// size (rows) and library (columns).
//
// A Matrix is immutable. Its accessors return copies.
type Matrix struct {
	metric   string
	unit     string
	baseline string // "" unless normalized

	sizes []float64 // ascending, unique
	libs  []string  // order of first appearance
	cells [][]Cell  // [row][col]

	issues []*NormalizeError
}

// Metric returns the name of the metric m holds, such as "cpu_time".
func (m *Matrix) Metric() string {
	return m.metric
}

// Unit returns the unit of the metric, or "" if it is unknown or the
// records disagree. For a normalized Matrix, this is the unit of the
// values the ratios were computed from.
func (m *Matrix) Unit() string {
	return m.unit
}

// Baseline returns the library m is normalized to, or "" if m holds
// raw values.
func (m *Matrix) Baseline() string {
	return m.baseline
}

// Normalized reports whether m holds ratios to a baseline.
func (m *Matrix) Normalized() bool {
	return m.baseline != ""
}

// Sizes returns the row labels of m in ascending order.
func (m *Matrix) Sizes() []float64 {
	return append([]float64(nil), m.sizes...)
}

// Libraries returns the column labels of m.
func (m *Matrix) Libraries() []string {
	return append([]string(nil), m.libs...)
}

// NumRows returns the number of sizes in m.
func (m *Matrix) NumRows() int {
	return len(m.sizes)
}

// NumCols returns the number of libraries in m.
func (m *Matrix) NumCols() int {
	return len(m.libs)
}

// At returns the cell at row i and column j.
func (m *Matrix) At(i, j int) Cell {
	return m.cells[i][j]
}

// Row returns the cells of row i, one per library.
func (m *Matrix) Row(i int) []Cell {
	return append([]Cell(nil), m.cells[i]...)
}

// LibraryIndex returns the column of lib.
func (m *Matrix) LibraryIndex(lib string) (int, bool) {
	for j, l := range m.libs {
		if l == lib {
			return j, true
		}
	}
	return 0, false
}

// Column returns the cells of lib, one per size, or nil if m has no
// such library.
func (m *Matrix) Column(lib string) []Cell {
	j, ok := m.LibraryIndex(lib)
	if !ok {
		return nil
	}
	col := make([]Cell, len(m.sizes))
	for i := range m.sizes {
		col[i] = m.cells[i][j]
	}
	return col
}

// Lookup returns the cell for lib at size. It returns an absent Cell
// if m has no such row or column.
func (m *Matrix) Lookup(size float64, lib string) Cell {
	j, ok := m.LibraryIndex(lib)
	if !ok {
		return Cell{}
	}
	i := sort.SearchFloat64s(m.sizes, size)
	if i == len(m.sizes) || m.sizes[i] != size {
		return Cell{}
	}
	return m.cells[i][j]
}

// Issues returns the row and cell problems Normalize found while
// producing m. It is empty for matrices built by Pivot.
func (m *Matrix) Issues() []*NormalizeError {
	return append([]*NormalizeError(nil), m.issues...)
}

// newMatrix returns a Matrix with every cell absent.
func newMatrix(metric, unit string, sizes []float64, libs []string) *Matrix {
	m := &Matrix{
		metric: metric,
		unit:   unit,
		sizes:  sizes,
		libs:   libs,
		cells:  make([][]Cell, len(sizes)),
	}
	for i := range m.cells {
		m.cells[i] = make([]Cell, len(libs))
	}
	return m
}

type jsonMatrix struct {
	Metric    string       `json:"metric"`
	Unit      string       `json:"unit"`
	Baseline  string       `json:"baseline,omitempty"`
	Sizes     []float64    `json:"sizes"`
	Libraries []string     `json:"libraries"`
	Cells     [][]*float64 `json:"cells"`
}

// MarshalJSON encodes m as an object with the metric, unit, baseline,
// sizes, libraries, and a cells array of rows. Absent cells are null.
func (m *Matrix) MarshalJSON() ([]byte, error) {
	jm := jsonMatrix{
		Metric:    m.metric,
		Unit:      m.unit,
		Baseline:  m.baseline,
		Sizes:     m.Sizes(),
		Libraries: m.Libraries(),
		Cells:     make([][]*float64, len(m.cells)),
	}
	if jm.Sizes == nil {
		jm.Sizes = []float64{}
	}
	if jm.Libraries == nil {
		jm.Libraries = []string{}
	}
	for i, row := range m.cells {
		jm.Cells[i] = make([]*float64, len(row))
		for j, c := range row {
			if c.Present {
				v := c.Value
				jm.Cells[i][j] = &v
			}
		}
	}
	return json.Marshal(jm)
}
