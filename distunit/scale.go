// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package distunit formats distribution quantities for humans.
package distunit

import (
	"fmt"
	"math"
	"strconv"
)

// A Class selects how values are scaled.
type Class int

const (
	// ClassSI scales values by SI prefixes. This suits counts,
	// such as expected numbers of outcomes.
	ClassSI Class = iota
	// ClassPlain never scales values and only varies the
	// precision. This suits probabilities, which are in [0, 1].
	ClassPlain
)

func (c Class) String() string {
	switch c {
	case ClassSI:
		return "SI"
	case ClassPlain:
		return "plain"
	}
	return fmt.Sprintf("Class(%d)", int(c))
}

// Scaler represents a scaling factor for a number and its scientific
// representation.
type Scaler struct {
	Prec   int     // Digits after the decimal point
	Factor float64 // Unscaled value of 1 Prefix (e.g., 1 k => 1000)
	Prefix string  // Unit prefix
}

// Format formats val and appends the unit prefix according to the
// given scale.
func (s Scaler) Format(val float64) string {
	buf := make([]byte, 0, 20)
	buf = strconv.AppendFloat(buf, val/s.Factor, 'f', s.Prec, 64)
	buf = append(buf, s.Prefix...)
	return string(buf)
}

// NoOpScaler is a Scaler that formats numbers with the smallest
// number of digits necessary to capture the exact value, and no
// prefix. This is intended for when the output will be consumed by
// another program, such as when producing CSV format.
var NoOpScaler = Scaler{-1, 1, ""}

// maxPlainPrec bounds the precision ClassPlain will use for tiny
// values. Anything smaller prints as zero.
const maxPlainPrec = 12

type factor struct {
	factor float64
	prefix string
	// Thresholds for 100, 10.0, 1.00.
	t100, t10, t1 float64
}

var siFactors = mkSIFactors()

func mkSIFactors() []factor {
	// To ensure that the thresholds for printing values with
	// various factors exactly match how printing itself will
	// round, we construct the thresholds by parsing the printed
	// representation.
	var factors []factor
	exp := 12
	for _, p := range []string{"T", "G", "M", "k", ""} {
		t100, _ := strconv.ParseFloat(fmt.Sprintf("99.95e%d", exp), 64)
		t10, _ := strconv.ParseFloat(fmt.Sprintf("9.995e%d", exp), 64)
		t1, _ := strconv.ParseFloat(fmt.Sprintf(".9995e%d", exp), 64)
		factors = append(factors, factor{math.Pow(10, float64(exp)), p, t100, t10, t1})
		exp -= 3
	}
	return factors
}

// Scale formats val using at least three significant digits.
func Scale(val float64, cls Class) string {
	return CommonScale([]float64{val}, cls).Format(val)
}

// CommonScale returns a common Scaler to apply to all values in vals.
// This scale will show at least three significant digits for every
// value.
func CommonScale(vals []float64, cls Class) Scaler {
	// The common scale is determined by the non-zero value
	// closest to zero.
	var min float64
	for _, v := range vals {
		v = math.Abs(v)
		if v != 0 && !math.IsInf(v, 0) && !math.IsNaN(v) && (min == 0 || v < min) {
			min = v
		}
	}
	if min == 0 {
		return Scaler{2, 1, ""}
	}

	switch cls {
	default:
		panic(fmt.Sprintf("bad Class %v", cls))
	case ClassSI:
		// Counts never get fractional prefixes.
		for _, factor := range siFactors {
			switch {
			case min >= factor.t100:
				return Scaler{0, factor.factor, factor.prefix}
			case min >= factor.t10:
				return Scaler{1, factor.factor, factor.prefix}
			case min >= factor.t1:
				return Scaler{2, factor.factor, factor.prefix}
			}
		}
		return plainScaler(min)
	case ClassPlain:
		return plainScaler(min)
	}
}

// plainScaler returns an unprefixed Scaler showing three significant
// digits of min.
func plainScaler(min float64) Scaler {
	switch {
	case min >= 99.95:
		return Scaler{0, 1, ""}
	case min >= 9.995:
		return Scaler{1, 1, ""}
	}
	// Find the first significant digit after rounding to three
	// significant digits.
	s := strconv.FormatFloat(min, 'e', 2, 64)
	exp, _ := strconv.Atoi(s[len("d.dde"):])
	prec := 2 - exp
	if prec > maxPlainPrec {
		prec = maxPlainPrec
	}
	return Scaler{prec, 1, ""}
}
