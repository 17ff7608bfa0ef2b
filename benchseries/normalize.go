// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchseries

import (
	"errors"
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
)

// An ErrorKind classifies a NormalizeError.
type ErrorKind int

const (
	// UnknownBaseline indicates the baseline library is not a
	// column of the matrix. It aborts normalization.
	UnknownBaseline ErrorKind = iota + 1
	// MissingBaselineRow indicates the baseline has no value at a
	// size, so the whole row is absent.
	MissingBaselineRow
	// ZeroBaseline indicates the baseline value at a size is zero,
	// so the whole row is absent.
	ZeroBaseline
	// NonFiniteRatio indicates a ratio that is not a finite number,
	// so the cell is absent.
	NonFiniteRatio
)

func (k ErrorKind) String() string {
	switch k {
	case UnknownBaseline:
		return "UnknownBaseline"
	case MissingBaselineRow:
		return "MissingBaselineRow"
	case ZeroBaseline:
		return "ZeroBaseline"
	case NonFiniteRatio:
		return "NonFiniteRatio"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Sentinel errors for use with errors.Is.
var (
	ErrUnknownBaseline    = errors.New("unknown baseline")
	ErrMissingBaselineRow = errors.New("baseline missing")
	ErrZeroBaseline       = errors.New("baseline is zero")
	ErrNonFiniteRatio     = errors.New("ratio is not finite")
)

// A NormalizeError describes a problem normalizing a Matrix.
//
// Only UnknownBaseline is returned as an error. The other kinds affect
// a single row or cell and are recorded in the result's Issues.
type NormalizeError struct {
	Kind     ErrorKind
	Metric   string
	Baseline string

	// Size is the affected row. It is meaningless for
	// UnknownBaseline.
	Size float64

	// Library is the affected column for NonFiniteRatio.
	Library string
}

func (e *NormalizeError) Error() string {
	switch e.Kind {
	case UnknownBaseline:
		return fmt.Sprintf("%s: %s %q", e.Metric, ErrUnknownBaseline, e.Baseline)
	case NonFiniteRatio:
		return fmt.Sprintf("%s: size %g: %s/%s: %s", e.Metric, e.Size, e.Library, e.Baseline, ErrNonFiniteRatio)
	}
	return fmt.Sprintf("%s: size %g: %s: %v", e.Metric, e.Size, e.Baseline, e.Unwrap())
}

// Unwrap returns the sentinel error for e.Kind.
func (e *NormalizeError) Unwrap() error {
	switch e.Kind {
	case UnknownBaseline:
		return ErrUnknownBaseline
	case MissingBaselineRow:
		return ErrMissingBaselineRow
	case ZeroBaseline:
		return ErrZeroBaseline
	case NonFiniteRatio:
		return ErrNonFiniteRatio
	}
	return nil
}

// Normalize returns a new Matrix with every cell of m divided by the
// baseline library's cell in the same row. It has the same rows and
// columns as m.
//
// If baseline is not a library of m, Normalize returns a nil Matrix
// and a *NormalizeError of kind UnknownBaseline.
//
// A row whose baseline cell is absent, zero, or not finite is absent
// in the result. A ratio that is not finite is absent. Each of these
// is recorded in the result's Issues. Where the baseline is present
// and non-zero, its own column is exactly 1.
func Normalize(m *Matrix, baseline string) (*Matrix, error) {
	bj, ok := m.LibraryIndex(baseline)
	if !ok {
		return nil, &NormalizeError{Kind: UnknownBaseline, Metric: m.metric, Baseline: baseline}
	}

	out := newMatrix(m.metric, m.unit, m.Sizes(), m.Libraries())
	out.baseline = baseline
	issue := func(kind ErrorKind, size float64, lib string) {
		out.issues = append(out.issues, &NormalizeError{kind, m.metric, baseline, size, lib})
	}
	for i, size := range m.sizes {
		b := m.cells[i][bj]
		switch {
		case !b.Present:
			issue(MissingBaselineRow, size, "")
			continue
		case b.Value == 0:
			issue(ZeroBaseline, size, "")
			continue
		case math.IsInf(b.Value, 0) || math.IsNaN(b.Value):
			issue(NonFiniteRatio, size, baseline)
			continue
		}
		for j, c := range m.cells[i] {
			if !c.Present {
				continue
			}
			if j == bj {
				out.cells[i][j] = Cell{Value: 1, Present: true}
				continue
			}
			r := c.Value / b.Value
			if math.IsInf(r, 0) || math.IsNaN(r) {
				issue(NonFiniteRatio, size, m.libs[j])
				continue
			}
			out.cells[i][j] = Cell{Value: r, Present: true}
		}
	}
	return out, nil
}

// Geomean returns the geometric mean of each column of m, and the
// number of rows it was computed over.
//
// Only rows in which every column is present, positive and finite
// contribute, so the means of different libraries always cover the same
// sizes and can be compared. If no row qualifies, every cell is absent.
func Geomean(m *Matrix) (cells []Cell, rows int) {
	cols := make([][]float64, len(m.libs))
	for _, row := range m.cells {
		if !comparableRow(row) {
			continue
		}
		rows++
		for j, c := range row {
			cols[j] = append(cols[j], c.Value)
		}
	}
	cells = make([]Cell, len(m.libs))
	if rows == 0 {
		return cells, 0
	}
	for j, xs := range cols {
		cells[j] = Cell{Value: stats.GeoMean(xs), Present: true}
	}
	return cells, rows
}

func comparableRow(row []Cell) bool {
	for _, c := range row {
		if !c.Present || !(c.Value > 0) || math.IsInf(c.Value, 0) {
			return false
		}
	}
	return len(row) > 0
}
