// File: operand.go
// Title: Arithmetic Operand Union
// Description: Implements the tagged union of operand kinds accepted by the
//              arithmetic operations: a complex value, a real scalar or a
//              textual literal. Literals are converted to complex values
//              eagerly at the call boundary, before any dispatch, so a
//              malformed literal surfaces as a parse failure rather than a
//              half-applied operation.
// Author: Advestis
// Version: v0.1.0
// Created: 2025-03-12
// Modified: 2025-03-12
//
// Change History:
// - 2025-03-12 v0.1.0: Initial implementation

package mathx

// operandKind discriminates the Operand union
type operandKind int

const (
	kindReal operandKind = iota
	kindComplex
	kindText
)

// Operand is one argument of a binary arithmetic operation: a real scalar,
// a Complex value or a textual complex literal. The zero value is the real
// scalar 0.
type Operand struct {
	kind   operandKind
	scalar float64
	value  Complex
	text   string
}

// Real wraps a real scalar operand
func Real(v float64) Operand {
	return Operand{kind: kindReal, scalar: v}
}

// Value wraps a Complex operand
func Value(z Complex) Operand {
	return Operand{kind: kindComplex, value: z}
}

// Text wraps a textual complex literal operand; it is parsed when the
// operand is first used
func Text(s string) Operand {
	return Operand{kind: kindText, text: s}
}

// IsReal reports whether the operand is a real scalar
func (o Operand) IsReal() bool {
	return o.kind == kindReal
}

// IsComplex reports whether the operand is a complex value, including a
// not-yet-parsed literal
func (o Operand) IsComplex() bool {
	return o.kind == kindComplex || o.kind == kindText
}

// RealValue returns the scalar and true when the operand is real
func (o Operand) RealValue() (float64, bool) {
	if o.kind == kindReal {
		return o.scalar, true
	}
	return 0, false
}

// ComplexValue returns the complex value and true when the operand is an
// already-parsed complex value
func (o Operand) ComplexValue() (Complex, bool) {
	if o.kind == kindComplex {
		return o.value, true
	}
	return Complex{}, false
}

// resolve converts a textual operand to a complex value; other kinds pass
// through unchanged
func (o Operand) resolve() (Operand, error) {
	if o.kind != kindText {
		return o, nil
	}
	z, err := Parse(o.text)
	if err != nil {
		return Operand{}, err
	}
	return Value(z), nil
}

// String describes the operand kind and payload, mainly for error details
// and debugging
func (o Operand) String() string {
	switch o.kind {
	case kindReal:
		return "real " + formatFloat(o.scalar)
	case kindComplex:
		return "complex " + o.value.String()
	default:
		return "literal " + o.text
	}
}
