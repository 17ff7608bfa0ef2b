// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texttab lays out fixed-width text tables.
package texttab

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Table does layout of text-based tables.
//
// Row and Cell return the Table so callers can chain them to build up
// a row at once.
type Table struct {
	rows [][]textCell
	cols int
}

type textCell struct {
	value      string
	leftMargin string
	alignment  align
}

// A CellOption changes how a cell is laid out.
type CellOption func(c *textCell)

// Right aligns a cell to the right of its column. Cells are left
// aligned by default.
var Right CellOption = func(c *textCell) { c.alignment = alignRight }

type align int

const (
	alignLeft align = iota
	alignRight
)

func (a align) lpad(s string, w int) string {
	switch a {
	default:
		return s
	case alignRight:
		return fmt.Sprintf("%*s", w, s)
	}
}

// Row starts a new row in table t.
func (t *Table) Row() *Table {
	t.rows = append(t.rows, nil)
	return t
}

// Cell adds a cell at the end of the current row.
func (t *Table) Cell(value string, opts ...CellOption) *Table {
	if len(t.rows) == 0 {
		t.Row()
	}
	row := &t.rows[len(t.rows)-1]
	c := textCell{value: value}
	if len(*row) > 0 && value != "" {
		c.leftMargin = " "
	}
	for _, o := range opts {
		o(&c)
	}
	*row = append(*row, c)
	if len(*row) > t.cols {
		t.cols = len(*row)
	}
	return t
}

// Format lays out table t and writes it to w.
func (t *Table) Format(w io.Writer) error {
	// Collect the widest margin and value of each column.
	lmargin := make([]int, t.cols)
	width := make([]int, t.cols)
	for _, row := range t.rows {
		for col, cell := range row {
			lmargin[col] = max(lmargin[col], utf8.RuneCountInString(cell.leftMargin))
			width[col] = max(width[col], utf8.RuneCountInString(cell.value))
		}
	}

	var line strings.Builder
	for _, row := range t.rows {
		line.Reset()
		pending := 0 // spaces owed before the next printed cell
		for col, cell := range row {
			if strings.TrimSpace(cell.value) == "" && strings.TrimSpace(cell.leftMargin) == "" {
				// Skip empty cells to avoid trailing spaces.
				pending += lmargin[col] + width[col]
				continue
			}
			fmt.Fprintf(&line, "%*s%*s", pending, "", lmargin[col], cell.leftMargin)
			s := cell.alignment.lpad(cell.value, width[col])
			line.WriteString(s)
			pending = width[col] - utf8.RuneCountInString(s)
		}
		line.WriteByte('\n')
		if _, err := io.WriteString(w, line.String()); err != nil {
			return err
		}
	}
	return nil
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
