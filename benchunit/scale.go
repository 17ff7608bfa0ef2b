// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchunit

import (
	"fmt"
	"math"
	"strconv"
)

// A Scaler represents a scaling factor for a number and
// its scientific representation.
type Scaler struct {
	Prec   int     // Digits after the decimal point
	Factor float64 // Unscaled value of 1 Prefix (e.g., 1 k => 1000)
	Prefix string  // Unit prefix ("k", "M", "Ki", etc)
}

// Format formats val and appends the unit prefix according to the
// given scale. For example, if the Scaler has class Decimal,
// Format(123456789) returns "123.5M".
//
// Values with units should be tidied first (see Tidy), otherwise
// 123456789 ns would come out as "123.5M" ns.
func (s Scaler) Format(val float64) string {
	buf := make([]byte, 0, 20)
	buf = strconv.AppendFloat(buf, val/s.Factor, 'f', s.Prec, 64)
	buf = append(buf, s.Prefix...)
	return string(buf)
}

// FormatUnit is like Format, but also appends unit, separated by a
// space, if unit is non-empty.
func (s Scaler) FormatUnit(val float64, unit string) string {
	if unit == "" {
		return s.Format(val)
	}
	return s.Format(val) + " " + unit
}

// NoOpScaler is a Scaler that formats numbers with the smallest
// number of digits necessary to capture the exact value, and no
// prefix. This is intended for output consumed by another program,
// such as CSV.
var NoOpScaler = Scaler{-1, 1, ""}

type factor struct {
	factor float64
	prefix string
	// Thresholds for 100.0, 10.00, 1.000.
	t100, t10, t1 float64
}

var (
	siFactors  = mkFactors(10, 3, 12, []string{"T", "G", "M", "k", "", "m", "µ", "n"})
	iecFactors = mkFactors(2, 10, 40, []string{"Ti", "Gi", "Mi", "Ki", ""})
)

// mkFactors builds the prefix table for powers of base, starting at
// base**top and stepping down by base**step per prefix.
//
// Decimal thresholds are parsed from their printed representation so
// that they match how Format rounds. Scaling by a power of two is
// exact, so binary thresholds are simple products.
func mkFactors(base float64, step, top int, prefixes []string) []factor {
	var factors []factor
	exp := top
	for _, p := range prefixes {
		f := math.Pow(base, float64(exp))
		var t100, t10, t1 float64
		if base == 10 {
			t100, _ = strconv.ParseFloat(fmt.Sprintf("99.995e%d", exp), 64)
			t10, _ = strconv.ParseFloat(fmt.Sprintf("9.9995e%d", exp), 64)
			t1, _ = strconv.ParseFloat(fmt.Sprintf(".99995e%d", exp), 64)
		} else {
			t100, t10, t1 = 99.995*f, 9.9995*f, 0.99995*f
		}
		factors = append(factors, factor{f, p, t100, t10, t1})
		exp -= step
	}
	return factors
}

// sigfigs[i] is the threshold for printing with i+3 digits after the
// decimal point, for values below the smallest prefix.
var sigfigs = func() []float64 {
	var s []float64
	for exp := -1; exp > -9; exp-- {
		t, _ := strconv.ParseFloat(fmt.Sprintf("9.9995e%d", exp), 64)
		s = append(s, t)
	}
	return s
}()

// Scale formats val using at least three significant digits,
// appending an SI or binary prefix. See Scaler.Format for details.
func Scale(val float64, cls Class) string {
	return CommonScale([]float64{val}, cls).Format(val)
}

// CommonScale returns a common Scaler to apply to all values in vals.
// This scale will show at least three significant digits for every
// value. NaN and infinite values are ignored.
func CommonScale(vals []float64, cls Class) Scaler {
	// The common scale is determined by the non-zero value
	// closest to zero.
	var min float64
	for _, v := range vals {
		v = math.Abs(v)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if v != 0 && (min == 0 || v < min) {
			min = v
		}
	}
	if min == 0 {
		return Scaler{3, 1, ""}
	}

	var factors []factor
	switch cls {
	default:
		panic(fmt.Sprintf("bad Class %v", cls))
	case Decimal:
		factors = siFactors
	case Binary:
		factors = iecFactors
	}

	for _, f := range factors {
		switch {
		case min >= f.t100:
			return Scaler{1, f.factor, f.prefix}
		case min >= f.t10:
			return Scaler{2, f.factor, f.prefix}
		case min >= f.t1:
			return Scaler{3, f.factor, f.prefix}
		}
	}

	// Smaller than the smallest prefix. Use more precision instead.
	f := factors[len(factors)-1]
	val := min / f.factor
	for i, thresh := range sigfigs {
		if val >= thresh || i == len(sigfigs)-1 {
			return Scaler{i + 3, f.factor, f.prefix}
		}
	}
	panic("not reachable")
}
