// File: convert.go
// Title: Representation Conversion Helpers
// Description: Implements the pure cartesian/polar conversion functions and
//              the relative-difference tolerance comparison used to validate
//              dual-representation construction. Values whose magnitude falls
//              below the zero clamp are normalized to exactly +0.0 so that
//              displayed results never show artifacts like 2.4e-16 or -0.0.
// Author: Advestis
// Version: v0.1.0
// Created: 2025-03-12
// Modified: 2025-03-12
//
// Change History:
// - 2025-03-12 v0.1.0: Initial implementation

package mathx

import (
	"math"
)

const (
	// zeroClamp is the magnitude under which a conversion output is
	// normalized to exactly +0.0
	zeroClamp = 1e-15

	// DefaultTolerance is the relative-difference threshold used by
	// CompatibleNumbers
	DefaultTolerance = 1e-8
)

// CartesianToPolar converts a cartesian pair (a, b) to its polar pair
// (r, theta). The angle is acos(a/r), negated when b <= 0, and clamped to
// exactly 0.0 when its magnitude is below 1e-15. For a == b == 0 the angle
// is NaN since a/r is undefined; callers constructing from cartesian input
// inherit that edge.
func CartesianToPolar(a, b float64) (r, theta float64) {
	r = math.Sqrt(a*a + b*b)
	if b > 0 {
		theta = math.Acos(a / r)
	} else {
		theta = -math.Acos(a / r)
	}
	if math.Abs(theta) < zeroClamp {
		theta = 0.0
	}
	return r, theta
}

// PolarToCartesian converts a polar pair (r, theta) to its cartesian pair
// (a, b). Each output is clamped to exactly 0.0 when its magnitude is below
// 1e-15, which maps angles like pi/2 to a clean zero real part.
func PolarToCartesian(r, theta float64) (a, b float64) {
	a = r * math.Cos(theta)
	b = r * math.Sin(theta)
	if math.Abs(a) < zeroClamp {
		a = 0.0
	}
	if math.Abs(b) < zeroClamp {
		b = 0.0
	}
	return a, b
}

// CompatibleNumbers reports whether x and y are exactly equal or their
// relative difference is below DefaultTolerance.
func CompatibleNumbers(x, y float64) bool {
	return CompatibleNumbersWithin(x, y, DefaultTolerance)
}

// CompatibleNumbersWithin reports whether x and y are exactly equal or
// |x-y|/x is below the given threshold.
//
// The check is asymmetric: the denominator is always the first argument, so
// CompatibleNumbersWithin(x, y, t) and CompatibleNumbersWithin(y, x, t) can
// disagree, and a zero first argument with a non-zero second yields an
// infinite ratio and therefore false. This is a known sharp edge; the
// dual-representation construction check depends on the exact behavior.
func CompatibleNumbersWithin(x, y, threshold float64) bool {
	if x == y {
		return true
	}
	return math.Abs((x-y)/x) < threshold
}
