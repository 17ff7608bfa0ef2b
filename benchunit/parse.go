// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchunit manipulates the units of benchmark measurements
// and formats numbers in those units.
//
// Google Benchmark reports times in a per-record time unit ("ns",
// "us", "ms" or "s") and most other counters without any unit at all,
// so this package also infers units from well-known field names.
package benchunit

import (
	"fmt"
	"strings"
	"unicode"
)

// A Class specifies what class of unit prefixes are in use.
type Class int

const (
	// Decimal indicates values of a given unit should be scaled
	// by powers of 1000, using SI prefixes such as "k" and "M".
	Decimal Class = iota
	// Binary indicates values of a given unit should be scaled by
	// powers of 1024, using IEC prefixes such as "Ki" and "Mi".
	Binary
)

func (c Class) String() string {
	switch c {
	case Decimal:
		return "Decimal"
	case Binary:
		return "Binary"
	}
	return fmt.Sprintf("Class(%d)", int(c))
}

// ClassOf returns the Class of unit. If unit measures bytes in its
// numerator, this is Binary. Otherwise, it is Decimal.
func ClassOf(unit string) Class {
	p := newParser(unit)
	for p.next() {
		if !p.denom && isByteToken(p.tok) {
			return Binary
		}
	}
	return Decimal
}

func isByteToken(tok string) bool {
	switch tok {
	case "B", "bytes", "KB", "MB", "GB":
		return true
	}
	return len(tok) == 3 && strings.HasSuffix(tok, "iB")
}

// parser splits a unit such as "B/s" or "ns*allocs" into tokens and
// tracks whether the current token is in the denominator.
type parser struct {
	rest string // unparsed unit
	rpos int    // bytes consumed from the original unit

	tok   string
	pos   int  // byte offset of tok in the original unit
	denom bool // tok follows a '/'
}

func newParser(unit string) *parser {
	return &parser{rest: unit}
}

func isSep(r rune) bool {
	return r == '*' || r == '/' || r == '-' || unicode.IsSpace(r)
}

func (p *parser) next() bool {
	start := -1
	for i, r := range p.rest {
		switch {
		case r == '*':
			p.denom = false
		case r == '/':
			p.denom = true
		case !isSep(r):
			start = i
		}
		if start >= 0 {
			break
		}
	}
	if start < 0 {
		p.rpos += len(p.rest)
		p.rest = ""
		return false
	}
	p.rpos += start
	p.rest = p.rest[start:]

	end := strings.IndexFunc(p.rest, isSep)
	if end < 0 {
		end = len(p.rest)
	}
	p.tok = p.rest[:end]
	p.pos = p.rpos
	p.rpos += end
	p.rest = p.rest[end:]
	return true
}
