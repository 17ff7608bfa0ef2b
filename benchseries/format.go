// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchseries

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/frxml/benchplot/benchunit"
	"github.com/frxml/benchplot/internal/texttab"
)

// absent is how human-readable output shows an absent cell.
const absent = "-"

// A view is a matrix formatted for people.
type view struct {
	Title     string
	Libraries []string
	Rows      []viewRow
}

type viewRow struct {
	Label string
	Cells []string
}

// view formats the cells of m. Raw values are tidied and scaled with a
// common prefix per row; ratios are shown as multipliers. If m has more
// than one row, a geomean row is added (see Geomean).
func (m *Matrix) view() view {
	v := view{Title: m.title(), Libraries: m.Libraries()}
	for i, size := range m.sizes {
		v.Rows = append(v.Rows, viewRow{formatSize(size), m.formatCells(m.cells[i])})
	}
	if len(m.sizes) > 1 {
		gm, _ := Geomean(m)
		v.Rows = append(v.Rows, viewRow{"geomean", m.formatCells(gm)})
	}
	return v
}

func (m *Matrix) title() string {
	_, unit := benchunit.Tidy(1, m.unit)
	title := m.metric
	if unit != "" {
		title = fmt.Sprintf("%s (%s)", m.metric, unit)
	}
	if m.baseline != "" {
		title += " vs " + m.baseline
	}
	return title
}

func (m *Matrix) formatCells(cells []Cell) []string {
	out := make([]string, len(cells))
	if m.baseline != "" {
		for j, c := range cells {
			out[j] = absent
			if c.Present {
				out[j] = fmt.Sprintf("%.3fx", c.Value)
			}
		}
		return out
	}

	var unit string
	vals := make([]float64, 0, len(cells))
	for _, c := range cells {
		if c.Present {
			var v float64
			v, unit = benchunit.Tidy(c.Value, m.unit)
			vals = append(vals, v)
		}
	}
	scaler := benchunit.CommonScale(vals, benchunit.ClassOf(unit))
	for j, c := range cells {
		out[j] = absent
		if c.Present {
			v, _ := benchunit.Tidy(c.Value, m.unit)
			out[j] = scaler.Format(v)
		}
	}
	return out
}

func formatSize(size float64) string {
	return strconv.FormatFloat(size, 'g', -1, 64)
}

// ToText writes m to w as a fixed-width text table, one row per size.
func (m *Matrix) ToText(w io.Writer) error {
	v := m.view()
	if _, err := fmt.Fprintf(w, "%s\n", v.Title); err != nil {
		return err
	}
	var tab texttab.Table
	tab.Row().Cell("size")
	for _, lib := range v.Libraries {
		tab.Cell(lib, texttab.Right)
	}
	for _, row := range v.Rows {
		tab.Row().Cell(row.Label)
		for _, c := range row.Cells {
			tab.Cell(c, texttab.Right)
		}
	}
	return tab.Format(w)
}

// ToCSV writes m to w as CSV with a "size" column followed by one
// column per library. Values are written exactly, without tidying or
// scaling. Absent cells are empty.
func (m *Matrix) ToCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	cw.Write(append([]string{"size"}, m.libs...))
	for i, size := range m.sizes {
		rec := []string{benchunit.NoOpScaler.Format(size)}
		for _, c := range m.cells[i] {
			s := ""
			if c.Present {
				s = benchunit.NoOpScaler.Format(c.Value)
			}
			rec = append(rec, s)
		}
		cw.Write(rec)
	}
	cw.Flush()
	return cw.Error()
}
