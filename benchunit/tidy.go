// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchunit

import "sync"

type tidyEntry struct {
	tidied string
	factor float64
}

var tidyCache sync.Map // unit string -> *tidyEntry

// Tidy normalizes a value with a (possibly pre-scaled) unit into base
// units. Time units become "sec" and pre-scaled byte units such as
// "KiB" or "MB" become "B". For example, Tidy(1500, "us") returns
// 0.0015, "sec". Units that are already tidy are returned unchanged.
func Tidy(value float64, unit string) (tidiedValue float64, tidiedUnit string) {
	newUnit, factor := tidyUnit(unit)
	return value * factor, newUnit
}

// timeDivisors maps time tokens to the number of that unit per second.
var timeDivisors = map[string]float64{
	"ns": 1e9,
	"us": 1e6,
	"µs": 1e6,
	"μs": 1e6,
	"ms": 1e3,
	"s":  1,
}

// byteFactors maps pre-scaled byte tokens to bytes.
var byteFactors = map[string]float64{
	"KB":  1e3,
	"MB":  1e6,
	"GB":  1e9,
	"KiB": 1 << 10,
	"MiB": 1 << 20,
	"GiB": 1 << 30,
}

// tidyUnit returns the tidied version of unit and the multiplicative
// factor that converts a value in unit to a value in tidied.
func tidyUnit(unit string) (tidied string, factor float64) {
	// Fast path for the bare time units Google Benchmark reports.
	if d, ok := timeDivisors[unit]; ok {
		return "sec", 1 / d
	}
	switch unit {
	case "", "sec", "B", "B/s":
		return unit, 1
	}

	if tc, ok := tidyCache.Load(unit); ok {
		tc := tc.(*tidyEntry)
		return tc.tidied, tc.factor
	}
	tidied, factor = tidyUnitUncached(unit)
	tidyCache.Store(unit, &tidyEntry{tidied, factor})
	return
}

func tidyUnitUncached(unit string) (tidied string, factor float64) {
	type edit struct {
		pos, len int
		replace  string
	}

	factor = 1
	p := newParser(unit)
	var edits []edit
	for p.next() {
		if d, ok := timeDivisors[p.tok]; ok {
			if p.denom {
				// Rates are per "s", as in "B/s".
				if p.tok != "s" {
					factor *= d
					edits = append(edits, edit{p.pos, len(p.tok), "s"})
				}
			} else {
				factor /= d
				edits = append(edits, edit{p.pos, len(p.tok), "sec"})
			}
			continue
		}
		if f, ok := byteFactors[p.tok]; ok && !p.denom {
			factor *= f
			edits = append(edits, edit{p.pos, len(p.tok), "B"})
		}
	}
	for i := len(edits) - 1; i >= 0; i-- {
		e := edits[i]
		unit = unit[:e.pos] + e.replace + unit[e.pos+e.len:]
	}
	return unit, factor
}
