// File: complex.go
// Title: Complex Value Type
// Description: Implements the Complex value type with its construction
//              paths, accessors, invariant-preserving mutators, conjugate
//              and the rounding family. The four fields a, b, r, theta are
//              private; every mutation goes through a setter that recomputes
//              the partner pair, so both representations always describe the
//              same point within the conversion tolerance.
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

	amerror "github.com/Advestis/htmlmerger/core/error"
)

// Representation selects which of the three equivalent forms an operation
// works on
type Representation string

const (
	// Cartesian is the a + bi form
	Cartesian Representation = "cartesian"

	// Trigo is the r * (cos(theta) + isin(theta)) form
	Trigo Representation = "trigo"

	// Exp is the r e^(theta i) form
	Exp Representation = "exp"
)

func (r Representation) valid() bool {
	switch r {
	case Cartesian, Trigo, Exp:
		return true
	default:
		return false
	}
}

func errUnknownRepresentation(repres Representation, operation string) error {
	return amerror.Newf("unknown representation %q, possibilities are 'cartesian', 'trigo' or 'exp'", string(repres)).
		WithCode(amerror.CodeInvalidInput).
		WithOperation(operation)
}

// Complex is a complex number holding two synchronized representations: the
// cartesian pair (a, b) and the polar pair (r, theta). It is a plain value
// type; assignment produces a fully independent copy.
//
// A single instance is not safe for concurrent mutation. Setters read the
// partner field, compute and write two fields; an interleaved reader or
// writer observes a torn state.
type Complex struct {
	a     float64
	b     float64
	r     float64
	theta float64
}

// components collects the optionally supplied fields of the guessing
// constructor; nil marks an absent value
type components struct {
	a, b, r, theta *float64
}

// Option supplies one or more logical fields to New
type Option func(*components)

// WithA supplies the real part
func WithA(a float64) Option {
	return func(c *components) { c.a = &a }
}

// WithB supplies the imaginary part
func WithB(b float64) Option {
	return func(c *components) { c.b = &b }
}

// WithR supplies the modulus
func WithR(r float64) Option {
	return func(c *components) { c.r = &r }
}

// WithTheta supplies the angle in radians
func WithTheta(theta float64) Option {
	return func(c *components) { c.theta = &theta }
}

// WithCartesian supplies the full cartesian pair
func WithCartesian(a, b float64) Option {
	return func(c *components) { c.a, c.b = &a, &b }
}

// WithPolar supplies the full polar pair
func WithPolar(r, theta float64) Option {
	return func(c *components) { c.r, c.theta = &r, &theta }
}

// New builds a Complex from whichever representation the options supply.
//
// With a complete cartesian pair the polar pair is derived from it. With a
// complete polar pair the cartesian pair is derived. With both pairs the
// polar pair derived from the cartesian one is compared component-wise
// against the supplied polar pair using CompatibleNumbers; on success the
// supplied polar values are kept authoritative, on mismatch construction
// fails. Anything less than one complete pair fails with INVALID_INPUT, as
// does a negative modulus.
func New(opts ...Option) (Complex, error) {
	var c components
	for _, opt := range opts {
		opt(&c)
	}

	if c.r != nil && *c.r < 0 {
		return Complex{}, amerror.New("a complex number's norm cannot be negative").
			WithCode(amerror.CodeInvalidInput).
			WithDetail("r", *c.r).
			WithOperation("New")
	}

	cartesian := c.a != nil && c.b != nil
	polar := c.r != nil && c.theta != nil

	if !cartesian && !polar {
		return Complex{}, amerror.New("not enough information to construct a complex number").
			WithCode(amerror.CodeInvalidInput).
			WithOperation("New")
	}

	if cartesian {
		r, theta := CartesianToPolar(*c.a, *c.b)
		if polar {
			// The supplied polar values stay authoritative; they only
			// have to agree with the pair derived from (a, b).
			if !CompatibleNumbers(r, *c.r) || !CompatibleNumbers(theta, *c.theta) {
				return Complex{}, amerror.New("cartesian and trigo representations incompatible").
					WithCode(amerror.CodeInvalidInput).
					WithDetail("derived_r", r).
					WithDetail("derived_theta", theta).
					WithDetail("given_r", *c.r).
					WithDetail("given_theta", *c.theta).
					WithOperation("New")
			}
			return Complex{a: *c.a, b: *c.b, r: *c.r, theta: *c.theta}, nil
		}
		return Complex{a: *c.a, b: *c.b, r: r, theta: theta}, nil
	}

	return fromPolar(*c.r, *c.theta), nil
}

// NewCartesian builds a Complex from its real and imaginary parts. The polar
// pair is derived immediately; see CartesianToPolar for the a == b == 0
// edge, where the angle is NaN.
func NewCartesian(a, b float64) Complex {
	r, theta := CartesianToPolar(a, b)
	return Complex{a: a, b: b, r: r, theta: theta}
}

// NewPolar builds a Complex from its modulus and angle. A negative modulus
// fails with INVALID_INPUT and never produces a partial value.
func NewPolar(r, theta float64) (Complex, error) {
	if r < 0 {
		return Complex{}, amerror.New("a complex number's norm cannot be negative").
			WithCode(amerror.CodeInvalidInput).
			WithDetail("r", r).
			WithOperation("NewPolar")
	}
	return fromPolar(r, theta), nil
}

// fromPolar skips the sign check; callers pass a modulus taken from an
// already valid instance.
func fromPolar(r, theta float64) Complex {
	a, b := PolarToCartesian(r, theta)
	return Complex{a: a, b: b, r: r, theta: theta}
}

// posZero converts -0.0 to +0.0 on read
func posZero(v float64) float64 {
	if v == 0 {
		return 0.0
	}
	return v
}

// A returns the real part
func (z Complex) A() float64 {
	return posZero(z.a)
}

// B returns the imaginary part
func (z Complex) B() float64 {
	return posZero(z.b)
}

// R returns the modulus
func (z Complex) R() float64 {
	return posZero(z.r)
}

// Theta returns the angle in radians
func (z Complex) Theta() float64 {
	return posZero(z.theta)
}

// Mod is an alias for R
func (z Complex) Mod() float64 {
	return z.R()
}

// Arg is an alias for Theta
func (z Complex) Arg() float64 {
	return z.Theta()
}

// SetA stores a new real part and recomputes the polar pair from the new
// value and the current imaginary part
func (z *Complex) SetA(a float64) {
	z.a = a
	z.r, z.theta = CartesianToPolar(z.A(), z.B())
}

// SetB stores a new imaginary part and recomputes the polar pair from the
// current real part and the new value
func (z *Complex) SetB(b float64) {
	z.b = b
	z.r, z.theta = CartesianToPolar(z.A(), z.B())
}

// SetR stores a new modulus and recomputes the cartesian pair from the new
// value and the current angle
func (z *Complex) SetR(r float64) {
	z.r = r
	z.a, z.b = PolarToCartesian(z.R(), z.Theta())
}

// SetTheta stores a new angle and recomputes the cartesian pair from the
// current modulus and the new value
func (z *Complex) SetTheta(theta float64) {
	z.theta = theta
	z.a, z.b = PolarToCartesian(z.R(), z.Theta())
}

// Conjugate returns the reflection of z across the real axis: b is negated
// in cartesian form, theta in polar form. The representation chooses which
// pair seeds the new value; both describe the same point.
func (z Complex) Conjugate(repres Representation) (Complex, error) {
	switch repres {
	case Cartesian:
		return NewCartesian(z.A(), -z.B()), nil
	case Trigo, Exp:
		return fromPolar(z.R(), -z.Theta()), nil
	default:
		return Complex{}, errUnknownRepresentation(repres, "Conjugate")
	}
}

// roundTo rounds to n decimal places using banker's rounding
func roundTo(v float64, n int) float64 {
	p := math.Pow(10, float64(n))
	return math.RoundToEven(v*p) / p
}

// Round rounds both fields of the chosen representation to n decimal places
// and constructs a new value from the results
func (z Complex) Round(n int, repres Representation) (Complex, error) {
	switch repres {
	case Cartesian:
		return NewCartesian(roundTo(z.A(), n), roundTo(z.B(), n)), nil
	case Trigo, Exp:
		return NewPolar(roundTo(z.R(), n), roundTo(z.Theta(), n))
	default:
		return Complex{}, errUnknownRepresentation(repres, "Round")
	}
}

// Ceil applies math.Ceil to both fields of the chosen representation
func (z Complex) Ceil(repres Representation) (Complex, error) {
	switch repres {
	case Cartesian:
		return NewCartesian(math.Ceil(z.A()), math.Ceil(z.B())), nil
	case Trigo, Exp:
		return NewPolar(math.Ceil(z.R()), math.Ceil(z.Theta()))
	default:
		return Complex{}, errUnknownRepresentation(repres, "Ceil")
	}
}

// Floor applies math.Floor to both fields of the chosen representation
func (z Complex) Floor(repres Representation) (Complex, error) {
	switch repres {
	case Cartesian:
		return NewCartesian(math.Floor(z.A()), math.Floor(z.B())), nil
	case Trigo, Exp:
		return NewPolar(math.Floor(z.R()), math.Floor(z.Theta()))
	default:
		return Complex{}, errUnknownRepresentation(repres, "Floor")
	}
}

// Trunc applies math.Trunc to both fields of the chosen representation
func (z Complex) Trunc(repres Representation) (Complex, error) {
	switch repres {
	case Cartesian:
		return NewCartesian(math.Trunc(z.A()), math.Trunc(z.B())), nil
	case Trigo, Exp:
		return NewPolar(math.Trunc(z.R()), math.Trunc(z.Theta()))
	default:
		return Complex{}, errUnknownRepresentation(repres, "Trunc")
	}
}
