// File: arith.go
// Title: Complex Arithmetic
// Description: Implements the arithmetic and comparison operations of the
//              Complex type. Addition and subtraction work on the cartesian
//              pair, multiplication and division on the polar pair; a real
//              scalar operand touches only the matching field (a for
//              cartesian operations, r for polar ones). Operands never
//              mutate; every operation returns a new value. The package
//              level functions accept any operand on either side and cover
//              the scalar-on-the-left forms. Exp, Log and LogBase form the
//              polymorphic overload set over reals and complex values.
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

// I is the imaginary unit
var I = NewCartesian(0, 1)

func errOrderingUndefined() error {
	return amerror.New("complex numbers can not be ordered").
		WithCode(amerror.CodeOrderingUndefined)
}

// Pos is the unary plus: the identity
func (z Complex) Pos() Complex {
	return z
}

// Neg is the unary minus: both cartesian fields negated
func (z Complex) Neg() Complex {
	return NewCartesian(-z.A(), -z.B())
}

// Abs returns the absolute value, which equals the modulus
func (z Complex) Abs() float64 {
	return z.R()
}

// Add returns z plus the operand. The sum is cartesian and field-wise; a
// real scalar adds only to the real part.
func (z Complex) Add(other Operand) (Complex, error) {
	o, err := other.resolve()
	if err != nil {
		return Complex{}, err
	}
	out := z
	if w, ok := o.ComplexValue(); ok {
		out.SetA(out.A() + w.A())
		out.SetB(out.B() + w.B())
	} else {
		x, _ := o.RealValue()
		out.SetA(out.A() + x)
	}
	return out, nil
}

// Sub returns z minus the operand. The difference is cartesian and
// field-wise; a real scalar subtracts only from the real part.
func (z Complex) Sub(other Operand) (Complex, error) {
	o, err := other.resolve()
	if err != nil {
		return Complex{}, err
	}
	out := z
	if w, ok := o.ComplexValue(); ok {
		out.SetA(out.A() - w.A())
		out.SetB(out.B() - w.B())
	} else {
		x, _ := o.RealValue()
		out.SetA(out.A() - x)
	}
	return out, nil
}

// Mul returns z times the operand. The product is polar: moduli multiply
// and angles add; a real scalar multiplies only the modulus.
func (z Complex) Mul(other Operand) (Complex, error) {
	o, err := other.resolve()
	if err != nil {
		return Complex{}, err
	}
	out := z
	if w, ok := o.ComplexValue(); ok {
		out.SetR(out.R() * w.R())
		out.SetTheta(out.Theta() + w.Theta())
	} else {
		x, _ := o.RealValue()
		out.SetR(out.R() * x)
	}
	return out, nil
}

// Div returns z divided by the operand. The quotient is polar: moduli
// divide and angles subtract; a real scalar divides only the modulus.
func (z Complex) Div(other Operand) (Complex, error) {
	o, err := other.resolve()
	if err != nil {
		return Complex{}, err
	}
	out := z
	if w, ok := o.ComplexValue(); ok {
		out.SetR(out.R() / w.R())
		out.SetTheta(out.Theta() - w.Theta())
	} else {
		x, _ := o.RealValue()
		out.SetR(out.R() / x)
	}
	return out, nil
}

// Pow returns z raised to a real exponent: r^n with the angle scaled by n.
// A complex or textual exponent is not defined; the returned error carries
// UNSUPPORTED_OPERATION so generic dispatch can tell "not defined for this
// operand" apart from malformed input. The literal is not even parsed.
func (z Complex) Pow(other Operand) (Complex, error) {
	if other.kind != kindReal {
		return Complex{}, amerror.New("exponentiation is only supported for real exponents").
			WithCode(amerror.CodeUnsupportedOperation).
			WithDetail("operand", other.String()).
			WithOperation("Pow")
	}
	x := other.scalar
	out := z
	out.SetR(math.Pow(out.R(), x))
	out.SetTheta(out.Theta() * x)
	return out, nil
}

// Equal reports whether z equals the operand. Two complex values are equal
// when their cartesian pairs match or their polar pairs match; either is
// sufficient. A real scalar compares against the real part only, ignoring
// the imaginary part.
func (z Complex) Equal(other Operand) (bool, error) {
	o, err := other.resolve()
	if err != nil {
		return false, err
	}
	if w, ok := o.ComplexValue(); ok {
		if z.A() == w.A() && z.B() == w.B() {
			return true, nil
		}
		if z.R() == w.R() && z.Theta() == w.Theta() {
			return true, nil
		}
		return false, nil
	}
	x, _ := o.RealValue()
	return z.A() == x, nil
}

// NotEqual is the logical negation of Equal
func (z Complex) NotEqual(other Operand) (bool, error) {
	eq, err := z.Equal(other)
	if err != nil {
		return false, err
	}
	return !eq, nil
}

// Less always fails: ordering is undefined for complex numbers. This is a
// deliberate permanent restriction, not a transient limitation.
func (z Complex) Less(other Operand) (bool, error) {
	return false, errOrderingUndefined()
}

// Greater always fails: ordering is undefined for complex numbers
func (z Complex) Greater(other Operand) (bool, error) {
	return false, errOrderingUndefined()
}

// LessOrEqual always fails: ordering is undefined for complex numbers
func (z Complex) LessOrEqual(other Operand) (bool, error) {
	return false, errOrderingUndefined()
}

// GreaterOrEqual always fails: ordering is undefined for complex numbers
func (z Complex) GreaterOrEqual(other Operand) (bool, error) {
	return false, errOrderingUndefined()
}

// Add computes x + y for any operand combination. Two real scalars embed
// their sum on the real axis.
func Add(x, y Operand) (Complex, error) {
	rx, err := x.resolve()
	if err != nil {
		return Complex{}, err
	}
	if zx, ok := rx.ComplexValue(); ok {
		return zx.Add(y)
	}
	sx, _ := rx.RealValue()

	ry, err := y.resolve()
	if err != nil {
		return Complex{}, err
	}
	if zy, ok := ry.ComplexValue(); ok {
		return zy.Add(Real(sx))
	}
	sy, _ := ry.RealValue()
	return NewCartesian(sx+sy, 0.0), nil
}

// Sub computes x - y for any operand combination. With a scalar on the
// left the operand order is honored: the result's real part is x - a while
// the imaginary part is kept.
func Sub(x, y Operand) (Complex, error) {
	rx, err := x.resolve()
	if err != nil {
		return Complex{}, err
	}
	if zx, ok := rx.ComplexValue(); ok {
		return zx.Sub(y)
	}
	sx, _ := rx.RealValue()

	ry, err := y.resolve()
	if err != nil {
		return Complex{}, err
	}
	if zy, ok := ry.ComplexValue(); ok {
		out := zy
		out.SetA(sx - out.A())
		return out, nil
	}
	sy, _ := ry.RealValue()
	return NewCartesian(sx-sy, 0.0), nil
}

// Mul computes x * y for any operand combination
func Mul(x, y Operand) (Complex, error) {
	rx, err := x.resolve()
	if err != nil {
		return Complex{}, err
	}
	if zx, ok := rx.ComplexValue(); ok {
		return zx.Mul(y)
	}
	sx, _ := rx.RealValue()

	ry, err := y.resolve()
	if err != nil {
		return Complex{}, err
	}
	if zy, ok := ry.ComplexValue(); ok {
		return zy.Mul(Real(sx))
	}
	sy, _ := ry.RealValue()
	return NewCartesian(sx*sy, 0.0), nil
}

// Div computes x / y for any operand combination. A scalar divided by a
// complex value is computed as x * conjugate(z) / |z|^2, reusing the polar
// division path instead of deriving a separate one.
func Div(x, y Operand) (Complex, error) {
	rx, err := x.resolve()
	if err != nil {
		return Complex{}, err
	}
	if zx, ok := rx.ComplexValue(); ok {
		return zx.Div(y)
	}
	sx, _ := rx.RealValue()

	ry, err := y.resolve()
	if err != nil {
		return Complex{}, err
	}
	if zy, ok := ry.ComplexValue(); ok {
		conj, err := zy.Conjugate(Cartesian)
		if err != nil {
			return Complex{}, err
		}
		scaled, err := conj.Mul(Real(sx))
		if err != nil {
			return Complex{}, err
		}
		return scaled.Div(Real(zy.Mod() * zy.Mod()))
	}
	sy, _ := ry.RealValue()
	return NewCartesian(sx/sy, 0.0), nil
}

// Pow computes x ** y. Only a real exponent is supported; a real base with
// a complex exponent is likewise not defined.
func Pow(x, y Operand) (Complex, error) {
	rx, err := x.resolve()
	if err != nil {
		return Complex{}, err
	}
	if zx, ok := rx.ComplexValue(); ok {
		return zx.Pow(y)
	}
	sx, _ := rx.RealValue()

	if y.kind != kindReal {
		return Complex{}, amerror.New("exponentiation is only supported for real exponents").
			WithCode(amerror.CodeUnsupportedOperation).
			WithDetail("operand", y.String()).
			WithOperation("Pow")
	}
	return NewCartesian(math.Pow(sx, y.scalar), 0.0), nil
}

// Exp is the exponential over reals and complex values: a real argument
// yields a real result, a complex argument z yields e^a scaled onto the
// unit direction of angle b, so the result has modulus e^a and angle b.
func Exp(x Operand) (Operand, error) {
	o, err := x.resolve()
	if err != nil {
		return Operand{}, err
	}
	if z, ok := o.ComplexValue(); ok {
		unit := fromPolar(1.0, z.B())
		out, err := unit.Mul(Real(math.Exp(z.A())))
		if err != nil {
			return Operand{}, err
		}
		return Value(out), nil
	}
	v, _ := o.RealValue()
	return Real(math.Exp(v)), nil
}

// Log is the natural logarithm over reals and complex values: for a complex
// argument the result is ln(r) + i*theta.
func Log(x Operand) (Operand, error) {
	o, err := x.resolve()
	if err != nil {
		return Operand{}, err
	}
	if z, ok := o.ComplexValue(); ok {
		return Value(NewCartesian(math.Log(z.R()), z.Theta())), nil
	}
	v, _ := o.RealValue()
	return Real(math.Log(v)), nil
}

// LogBase is the logarithm in an arbitrary base over reals and complex
// values: for a complex argument the result is log_base(r) + i*theta/ln(base).
func LogBase(x Operand, base float64) (Operand, error) {
	o, err := x.resolve()
	if err != nil {
		return Operand{}, err
	}
	if z, ok := o.ComplexValue(); ok {
		return Value(NewCartesian(math.Log(z.R())/math.Log(base), z.Theta()/math.Log(base))), nil
	}
	v, _ := o.RealValue()
	return Real(math.Log(v) / math.Log(base)), nil
}
