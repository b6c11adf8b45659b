// File: format.go
// Title: Complex Number Formatting
// Description: Implements the three renderings of each representation: a
//              human-readable string, a machine-parsable string suitable for
//              re-parsing or symbolic evaluation, and a LaTeX variant.
//              Floats print with an explicit decimal part ("15.0", not "15")
//              so the three forms keep their familiar textbook shape.
// Author: Advestis
// Version: v0.1.0
// Created: 2025-03-12
// Modified: 2025-03-12
//
// Change History:
// - 2025-03-12 v0.1.0: Initial implementation

package mathx

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// formatFloat renders a float with an explicit decimal part for integral
// values
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return s
	}
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// bSign returns the sign printed between the real and imaginary terms
func (z Complex) bSign() string {
	if z.B() > 0 {
		return "+"
	}
	return "-"
}

// String implements fmt.Stringer with the human-readable cartesian form
func (z Complex) String() string {
	s, _ := z.ToString(Cartesian)
	return s
}

// ToString returns the human-readable rendering of the chosen
// representation:
//
//	cartesian  3.0 + 4.0i
//	trigo      5.0 * (cos(0.9273) + isin(0.9273))
//	exp        5.0e^0.9273i
func (z Complex) ToString(repres Representation) (string, error) {
	switch repres {
	case Cartesian:
		return fmt.Sprintf("%s %s %si", formatFloat(z.A()), z.bSign(), formatFloat(math.Abs(z.B()))), nil
	case Trigo:
		theta := formatFloat(z.Theta())
		return fmt.Sprintf("%s * (cos(%s) + isin(%s))", formatFloat(z.R()), theta, theta), nil
	case Exp:
		return fmt.Sprintf("%se^%si", formatFloat(z.R()), formatFloat(z.Theta())), nil
	default:
		return "", errUnknownRepresentation(repres, "ToString")
	}
}

// ToRepr returns the machine-parsable rendering of the chosen
// representation, with explicit multiplication and i operators:
//
//	cartesian  3.0 + 4.0 * i
//	trigo      5.0 * (cos(0.9273) + i * sin(0.9273))
//	exp        5.0 * e ** (0.9273 * i)
func (z Complex) ToRepr(repres Representation) (string, error) {
	switch repres {
	case Cartesian:
		return fmt.Sprintf("%s %s %s * i", formatFloat(z.A()), z.bSign(), formatFloat(math.Abs(z.B()))), nil
	case Trigo:
		theta := formatFloat(z.Theta())
		return fmt.Sprintf("%s * (cos(%s) + i * sin(%s))", formatFloat(z.R()), theta, theta), nil
	case Exp:
		return fmt.Sprintf("%s * e ** (%s * i)", formatFloat(z.R()), formatFloat(z.Theta())), nil
	default:
		return "", errUnknownRepresentation(repres, "ToRepr")
	}
}

// ToLaTeX returns the LaTeX rendering of the chosen representation
func (z Complex) ToLaTeX(repres Representation) (string, error) {
	switch repres {
	case Cartesian:
		return fmt.Sprintf("$%s + %si$", formatFloat(z.A()), formatFloat(z.B())), nil
	case Trigo:
		theta := formatFloat(z.Theta())
		return fmt.Sprintf("$%s \\times (\\cos(%s) + i \\sin(%s))$", formatFloat(z.R()), theta, theta), nil
	case Exp:
		return fmt.Sprintf("$%s \\text{e}^{%s i}$", formatFloat(z.R()), formatFloat(z.Theta())), nil
	default:
		return "", errUnknownRepresentation(repres, "ToLaTeX")
	}
}
