/*
Package playnub implements numeric building blocks for gameplay motion:
scalar and vector value types, epsilon-aware predicates, and
interpolation helpers. Subpackages build on it: package splines evaluates
parametric curves, package action schedules timed behavior, package
dynamics integrates damped springs, and package polygon flattens and
clips 2D outlines.

# BSD License

# Copyright (c) the playnub authors

All rights reserved.

Please refer to the license file for more information.
*/
package playnub

import (
	"math"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'playnub'
func tracer() tracing.Trace {
	return tracing.Select("playnub")
}

// === Numeric Data Type =====================================================

// Deg2Rad is a constant for converting from DEG to RAD or vice versa
var Deg2Rad float64 = 0.01745329251

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Is1 is a predicate: is n = 1.0 ?
func Is1(n float64) bool {
	return math.Abs(1-n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// Round to ε.
func Round(n float64) float64 {
	return math.Round(n/Epsilon) * Epsilon
}

// Clamp restricts n to the interval [lo,hi].
func Clamp(n, lo, hi float64) float64 {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
