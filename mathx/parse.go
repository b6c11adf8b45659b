// File: parse.go
// Title: Complex Literal Parser
// Description: Implements the small ad-hoc parser for textual complex
//              literals. Parentheses, multiplication signs and whitespace
//              are insignificant. Accepted forms: bare real ("3"), bare
//              imaginary ("4i"), sum ("3+4i"), exponential ("5e^0.927i",
//              "5exp0.927i") and the trigonometric form
//              ("3cos(0)+4isin(0)").
// Author: Advestis
// Version: v0.1.0
// Created: 2025-03-12
// Modified: 2025-03-12
//
// Change History:
// - 2025-03-12 v0.1.0: Initial implementation

package mathx

import (
	"strconv"
	"strings"

	amerror "github.com/Advestis/htmlmerger/core/error"
	"github.com/Advestis/htmlmerger/utils/stringx"
)

// parseFloat converts residual literal text to a float; failures carry the
// PARSE_FAILURE code as the textual form is simply not a complex literal
func parseFloat(s, literal string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, amerror.Wrap(err, "unrecognized complex literal").
			WithCode(amerror.CodeParseFailure).
			WithDetail("literal", literal).
			WithDetail("residual", s).
			WithOperation("Parse")
	}
	return v, nil
}

// Parse builds a Complex from a textual literal.
//
// The literal is first stripped of parentheses, "*" and whitespace. An
// exponential form ("e^" or "exp") yields the polar pair directly. A form
// containing cos or sin yields the polar pair from the first "+"-separated
// term only: in the canonical "3cos(4) + 4isin(1)" both r and theta come
// from the cos term and the sin term is ignored entirely, even when its
// values disagree. Everything else is read as cartesian: a bare real, a
// bare imaginary ("4i") or a "+"-separated sum. Field-setting then follows
// the cartesian or polar constructor path, so the same zero clamping and
// modulus validation apply.
func Parse(s string) (Complex, error) {
	literal := s
	s = stringx.StripAll(s, "(", ")", "*", " ")

	// Exponential form. Detected before "x" stripping so "exp" survives.
	if strings.Contains(s, "e^") || strings.Contains(s, "exp") {
		sep := "e^"
		if !strings.Contains(s, "e^") {
			sep = "exp"
		}
		s = strings.ReplaceAll(s, "i", "")
		parts := strings.SplitN(s, sep, 2)
		r, err := parseFloat(stringx.StripAll(parts[0], "x"), literal)
		if err != nil {
			return Complex{}, err
		}
		theta, err := parseFloat(stringx.StripAll(parts[1], "x"), literal)
		if err != nil {
			return Complex{}, err
		}
		return NewPolar(r, theta)
	}

	// "x" doubles as a multiplication sign in the remaining forms
	s = stringx.StripAll(s, "x")

	if strings.Contains(s, "cos") || strings.Contains(s, "sin") {
		return parseTrig(s, literal)
	}

	if !strings.Contains(s, "+") {
		if strings.Contains(s, "i") {
			b, err := parseFloat(strings.ReplaceAll(s, "i", ""), literal)
			if err != nil {
				return Complex{}, err
			}
			return NewCartesian(0.0, b), nil
		}
		a, err := parseFloat(s, literal)
		if err != nil {
			return Complex{}, err
		}
		return NewCartesian(a, 0.0), nil
	}

	parts := strings.SplitN(s, "+", 2)
	a, err := parseFloat(parts[0], literal)
	if err != nil {
		return Complex{}, err
	}
	b, err := parseFloat(strings.ReplaceAll(parts[1], "i", ""), literal)
	if err != nil {
		return Complex{}, err
	}
	return NewCartesian(a, b), nil
}

// parseTrig extracts the polar pair from the first "+"-separated term of a
// trigonometric literal. With the canonical cos-first ordering the sin term
// never contributes; this asymmetry is kept on purpose.
func parseTrig(s, literal string) (Complex, error) {
	term := strings.SplitN(s, "+", 2)[0]
	term = strings.ReplaceAll(term, "i", "")

	// Removing "i" turned "sin" into "sn"
	sep := "cos"
	if !strings.Contains(term, "cos") {
		sep = "sn"
	}
	parts := strings.SplitN(term, sep, 2)
	r, err := parseFloat(parts[0], literal)
	if err != nil {
		return Complex{}, err
	}
	theta, err := parseFloat(parts[1], literal)
	if err != nil {
		return Complex{}, err
	}
	return NewPolar(r, theta)
}

// MustParse is like Parse but panics on error. Use for literals known to be
// valid, typically constants.
func MustParse(s string) Complex {
	z, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return z
}
