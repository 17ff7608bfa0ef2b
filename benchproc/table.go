// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchproc

import "github.com/frxml/benchplot/benchfmt"

// A Table is an ordered sequence of Records.
//
// Tables are immutable. Records in a Table share their Metrics and
// Units maps with the Table, so callers must not modify them.
type Table struct {
	recs []Record
}

// NewTable returns a Table of recs, in order.
func NewTable(recs ...Record) *Table {
	return &Table{append([]Record(nil), recs...)}
}

// Build parses every result in raws with p. Results that fail to parse
// are left out of the Table and returned as errors, in input order.
func Build(raws []*benchfmt.Result, p *Parser) (*Table, []*ParseError) {
	t := &Table{recs: make([]Record, 0, len(raws))}
	var errs []*ParseError
	for _, raw := range raws {
		rec, err := p.Parse(raw)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		t.recs = append(t.recs, rec)
	}
	return t, errs
}

// Len returns the number of records in t.
func (t *Table) Len() int {
	return len(t.recs)
}

// Records returns the records of t in order.
func (t *Table) Records() []Record {
	return append([]Record(nil), t.recs...)
}

// Libraries returns the distinct libraries of t, in order of first
// appearance.
func (t *Table) Libraries() []string {
	var libs []string
	seen := make(map[string]bool)
	for _, rec := range t.recs {
		if !seen[rec.Library] {
			seen[rec.Library] = true
			libs = append(libs, rec.Library)
		}
	}
	return libs
}

// Filter returns a new Table of the records of t for which pred
// returns true, in order.
func (t *Table) Filter(pred func(Record) bool) *Table {
	out := &Table{}
	for _, rec := range t.recs {
		if pred(rec) {
			out.recs = append(out.recs, rec)
		}
	}
	return out
}

// GroupBy returns the records of t grouped by library. Each group is
// in table order.
func (t *Table) GroupBy() map[string][]Record {
	groups := make(map[string][]Record)
	for _, rec := range t.recs {
		groups[rec.Library] = append(groups[rec.Library], rec)
	}
	return groups
}
