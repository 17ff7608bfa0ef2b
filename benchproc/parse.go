// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchproc

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/frxml/benchplot/benchfmt"
	"github.com/frxml/benchplot/benchunit"
)

// A Record is a benchmark result keyed by library and input size.
type Record struct {
	// Library is the library the benchmark measured, such as
	// "frxml". It is never empty.
	Library string

	// Size is the input size of the benchmark. It is always a
	// non-negative finite number.
	Size float64

	// Metrics maps each measurement of the result to its value.
	// Every numeric field of the result is present, including ones
	// this package doesn't know about, plus a derived "throughput"
	// if enabled.
	Metrics map[string]float64

	// Units maps each metric to its unit, or "" if unknown.
	Units map[string]string

	// Aggregate is the statistic an aggregate result reports, such
	// as "mean", or "" for a measured run.
	Aggregate string
}

// Throughput is the name of the derived throughput metric, in bytes
// per second.
const Throughput = "throughput"

// BytesPerSecond is the throughput counter Google Benchmark reports
// for benchmarks that call SetBytesProcessed.
const BytesPerSecond = "bytes_per_second"

// ParserOptions configures how a Parser splits benchmark names.
type ParserOptions struct {
	// Delimiter separates the segments of a benchmark name.
	Delimiter string

	// TrimPrefix is removed from the first segment of the name, if
	// present, to form the library name. If "", nothing is removed.
	TrimPrefix string

	// IgnoreLabel, if set, takes the size from the second segment
	// of the name even when the result has a non-empty label.
	IgnoreLabel bool

	// DeriveThroughput, if set, adds a "throughput" metric of Size
	// divided by the ThroughputTime metric in seconds, unless the
	// result already reports a "throughput" or a "bytes_per_second".
	DeriveThroughput bool
	ThroughputTime   string
}

// DefaultParserOptions returns the options for Google Benchmark names.
func DefaultParserOptions() *ParserOptions {
	return &ParserOptions{
		Delimiter:        "/",
		TrimPrefix:       "BM_",
		DeriveThroughput: true,
		ThroughputTime:   "cpu_time",
	}
}

// A Parser turns benchfmt.Results into Records.
type Parser struct {
	opts ParserOptions
}

// NewParser returns a new Parser. If opts is nil, it uses
// DefaultParserOptions.
func NewParser(opts *ParserOptions) *Parser {
	if opts == nil {
		opts = DefaultParserOptions()
	}
	p := &Parser{opts: *opts}
	if p.opts.Delimiter == "" {
		p.opts.Delimiter = "/"
	}
	return p
}

// Parse parses a single result. If the result's name does not yield a
// library and a size, Parse returns a *ParseError and a zero Record.
//
// Parse does not modify res.
func (p *Parser) Parse(res *benchfmt.Result) (Record, *ParseError) {
	name := res.Name
	var agg string
	if res.IsAggregate() && res.AggregateName != "" {
		// Google Benchmark reports aggregates as "<name>_<stat>".
		agg = res.AggregateName
		name = strings.TrimSuffix(name, "_"+agg)
	}

	parts := strings.SplitN(name, p.opts.Delimiter, 3)
	if len(parts) < 2 {
		return Record{}, newParseError(res, MalformedName, "")
	}
	lib := parts[0]
	if p.opts.TrimPrefix != "" {
		lib = strings.TrimPrefix(lib, p.opts.TrimPrefix)
	}
	if lib == "" {
		return Record{}, newParseError(res, MalformedName, "")
	}

	tok := parts[1]
	if res.Label != "" && !p.opts.IgnoreLabel {
		tok = res.Label
	}
	size, err := parseSize(tok)
	if err != nil {
		return Record{}, newParseError(res, InvalidSize, tok)
	}

	rec := Record{
		Library:   lib,
		Size:      size,
		Metrics:   make(map[string]float64, len(res.Values)+1),
		Units:     make(map[string]string, len(res.Values)+1),
		Aggregate: agg,
	}
	for _, v := range res.Values {
		rec.Metrics[v.Name] = v.Value
		rec.Units[v.Name] = v.Unit
	}
	if p.opts.DeriveThroughput && !hasThroughput(rec) {
		if tp, ok := throughput(size, res, p.opts.ThroughputTime); ok {
			rec.Metrics[Throughput] = tp
			rec.Units[Throughput] = "B/s"
		}
	}
	return rec, nil
}

// hasThroughput reports whether rec already carries a throughput
// measured by the benchmark itself.
func hasThroughput(rec Record) bool {
	_, tp := rec.Metrics[Throughput]
	_, bps := rec.Metrics[BytesPerSecond]
	return tp || bps
}

// throughput returns size divided by the time metric of res in
// seconds. It fails if res doesn't report the metric in a unit of time,
// or if the time is not positive.
func throughput(size float64, res *benchfmt.Result, metric string) (float64, bool) {
	t, ok := res.Value(metric)
	if !ok {
		return 0, false
	}
	secs, unit := benchunit.Tidy(t, res.Unit(metric))
	if unit != "sec" || !(secs > 0) || math.IsInf(secs, 0) {
		return 0, false
	}
	tp := size / secs
	if math.IsInf(tp, 0) || math.IsNaN(tp) {
		return 0, false
	}
	return tp, true
}

const numPrefixes = `KMGTPEZY`

var numRe = regexp.MustCompile(`^([0-9.]+)([k` + numPrefixes + `]i?)?[bB]?$`)

// parseSize parses a size token. It supports plain numbers and numbers
// with SI or IEC prefixes, such as "4k" or "64Ki". Sizes must be finite
// and non-negative.
func parseSize(x string) (float64, error) {
	v, err := parseNum(x)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, strconv.ErrRange
	}
	if v == 0 {
		// Fold -0.
		v = 0
	}
	return v, nil
}

// parseNum is a fuzzy number parser. It supports common patterns,
// such as SI prefixes.
func parseNum(x string) (float64, error) {
	// Try parsing as a regular float.
	v, err := strconv.ParseFloat(x, 64)
	if err == nil {
		return v, nil
	}

	// Try a suffixed number.
	subs := numRe.FindStringSubmatch(x)
	if subs != nil {
		v, err := strconv.ParseFloat(subs[1], 64)
		if err == nil {
			exp := 0
			if len(subs[2]) > 0 {
				pre := subs[2][0]
				if pre == 'k' {
					pre = 'K'
				}
				exp = 1 + strings.IndexByte(numPrefixes, pre)
			}
			iec := strings.HasSuffix(subs[2], "i")
			if iec {
				return v * math.Pow(1024, float64(exp)), nil
			}
			return v * math.Pow(1000, float64(exp)), nil
		}
	}

	return 0, strconv.ErrSyntax
}
