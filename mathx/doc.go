// Package mathx provides a complex number value type with synchronized
// cartesian and polar representations.
//
// Package: mathx
// Title: Dual-Representation Complex Numbers
// Description: This package implements the Complex value type that can be
//              constructed, displayed and manipulated interchangeably in
//              cartesian (a + bi), trigonometric (r * (cos θ + i sin θ)) and
//              exponential (r e^θi) form. Both representations are kept
//              consistent under mutation: setting one field recomputes its
//              partner pair from the current complementary value. The package
//              also provides the pure conversion helpers, the tolerance
//              comparison used to validate dual-representation construction,
//              a parser for textual complex literals, and arithmetic over a
//              tagged operand union (complex value, real scalar or literal).
// Author: Advestis
// Version: v0.1.0
// Created: 2025-03-12
// Modified: 2025-03-12
//
// Change History:
// - 2025-03-12 v0.1.0: Initial implementation of the Complex type
//
// Overview
//
// The central type is Complex, a plain value type: assignment produces an
// independent copy. The four logical fields a, b, r and theta are private;
// the public surface is exactly the accessor/mutator pairs, so the type is
// structurally closed to extension.
//
// Arithmetic follows the representation best suited to each operator:
// addition and subtraction are cartesian and field-wise, multiplication and
// division are polar (moduli multiply, angles add). Exponentiation is only
// defined for real exponents; using a complex exponent returns an error with
// code UNSUPPORTED_OPERATION, distinct from malformed input. Ordering
// comparisons are deliberately undefined and always return an error with
// code ORDERING_UNDEFINED.
//
// A single Complex instance is not safe for concurrent mutation: setters
// perform a read-compute-write sequence over two fields. Share instances
// only after construction, or guard compound updates externally.
//
// Usage Examples
//
// Basic construction and display:
//
//	z := mathx.NewCartesian(3, 4)
//	fmt.Println(z)                      // 3.0 + 4.0i
//	s, _ := z.ToString(mathx.Exp)       // 5.0e^0.9272952180016123i
//
// Arithmetic with mixed operands:
//
//	p, _ := mathx.NewPolar(3, 4)
//	q, _ := p.Mul(mathx.Text("5e^6i")) // modulus 15, angle 10
//	q, _ = p.Pow(mathx.Real(5))        // modulus 243, angle 20
package mathx
