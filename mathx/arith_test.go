// File: arith_test.go
// Title: Complex Arithmetic Tests
// Description: Tests for the arithmetic operations across operand kinds,
//              the comparison semantics, the scalar-on-the-left package
//              functions and the Exp/Log overload set.
// Author: Advestis
// Version: v0.1.0
// Created: 2025-03-12
// Modified: 2025-03-12
//
// Change History:
// - 2025-03-12 v0.1.0: Initial test implementation

package mathx

import (
	"math"
	"testing"

	amerror "github.com/Advestis/htmlmerger/core/error"
)

func TestUnaryOperations(t *testing.T) {
	z := NewCartesian(3, 4)

	if got := z.Pos(); got != z {
		t.Errorf("Pos() = %v, want %v", got, z)
	}
	if got := z.Neg(); got.A() != -3 || got.B() != -4 {
		t.Errorf("Neg() = (%v, %v), want (-3, -4)", got.A(), got.B())
	}
	if got := z.Abs(); got != 5 {
		t.Errorf("Abs() = %v, want 5", got)
	}
}

func TestAddSub(t *testing.T) {
	z := NewCartesian(3, 4)

	t.Run("complex operand", func(t *testing.T) {
		got, err := z.Add(Value(NewCartesian(5, 6)))
		if err != nil {
			t.Fatal(err)
		}
		if got.A() != 8 || got.B() != 10 {
			t.Errorf("Add = (%v, %v), want (8, 10)", got.A(), got.B())
		}

		got, err = z.Sub(Value(NewCartesian(5, 6)))
		if err != nil {
			t.Fatal(err)
		}
		if got.A() != -2 || got.B() != -2 {
			t.Errorf("Sub = (%v, %v), want (-2, -2)", got.A(), got.B())
		}
	})

	t.Run("real scalar touches only the real part", func(t *testing.T) {
		got, err := z.Add(Real(2))
		if err != nil {
			t.Fatal(err)
		}
		if got.A() != 5 || got.B() != 4 {
			t.Errorf("Add = (%v, %v), want (5, 4)", got.A(), got.B())
		}

		got, err = z.Sub(Real(2))
		if err != nil {
			t.Fatal(err)
		}
		if got.A() != 1 || got.B() != 4 {
			t.Errorf("Sub = (%v, %v), want (1, 4)", got.A(), got.B())
		}
	})

	t.Run("textual operand", func(t *testing.T) {
		got, err := z.Add(Text("1+1i"))
		if err != nil {
			t.Fatal(err)
		}
		if got.A() != 4 || got.B() != 5 {
			t.Errorf("Add = (%v, %v), want (4, 5)", got.A(), got.B())
		}
	})

	t.Run("invalid textual operand", func(t *testing.T) {
		_, err := z.Add(Text("hello"))
		if err == nil {
			t.Fatal("Add should fail on an unparsable literal")
		}
		if !amerror.HasCode(err, amerror.CodeParseFailure) {
			t.Errorf("code = %v, want PARSE_FAILURE", amerror.GetCode(err))
		}
	})

	t.Run("operand is not mutated", func(t *testing.T) {
		if _, err := z.Add(Real(100)); err != nil {
			t.Fatal(err)
		}
		if z.A() != 3 || z.B() != 4 {
			t.Errorf("receiver mutated to (%v, %v)", z.A(), z.B())
		}
	})
}

func TestMulDiv(t *testing.T) {
	z, err := NewPolar(3, 4)
	if err != nil {
		t.Fatal(err)
	}
	w, err := NewPolar(5, 6)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("product multiplies moduli and adds angles", func(t *testing.T) {
		got, err := z.Mul(Value(w))
		if err != nil {
			t.Fatal(err)
		}
		if got.R() != 15 || got.Theta() != 10 {
			t.Errorf("Mul = (r=%v, theta=%v), want (15, 10)", got.R(), got.Theta())
		}
		s, err := got.ToString(Exp)
		if err != nil {
			t.Fatal(err)
		}
		if s != "15.0e^10.0i" {
			t.Errorf("Mul exp form = %q, want %q", s, "15.0e^10.0i")
		}
	})

	t.Run("quotient divides moduli and subtracts angles", func(t *testing.T) {
		got, err := w.Div(Value(z))
		if err != nil {
			t.Fatal(err)
		}
		if !approxEqual(got.R(), 5.0/3.0, 1e-12) || got.Theta() != 2 {
			t.Errorf("Div = (r=%v, theta=%v), want (5/3, 2)", got.R(), got.Theta())
		}
	})

	t.Run("real scalar touches only the modulus", func(t *testing.T) {
		got, err := z.Mul(Real(2))
		if err != nil {
			t.Fatal(err)
		}
		if got.R() != 6 || got.Theta() != 4 {
			t.Errorf("Mul = (r=%v, theta=%v), want (6, 4)", got.R(), got.Theta())
		}

		got, err = z.Div(Real(2))
		if err != nil {
			t.Fatal(err)
		}
		if got.R() != 1.5 || got.Theta() != 4 {
			t.Errorf("Div = (r=%v, theta=%v), want (1.5, 4)", got.R(), got.Theta())
		}
	})
}

func TestPow(t *testing.T) {
	z, err := NewPolar(3, 4)
	if err != nil {
		t.Fatal(err)
	}

	got, err := z.Pow(Real(5))
	if err != nil {
		t.Fatal(err)
	}
	if got.R() != 243 || got.Theta() != 20 {
		t.Errorf("Pow = (r=%v, theta=%v), want (243, 20)", got.R(), got.Theta())
	}
	s, err := got.ToString(Exp)
	if err != nil {
		t.Fatal(err)
	}
	if s != "243.0e^20.0i" {
		t.Errorf("Pow exp form = %q, want %q", s, "243.0e^20.0i")
	}
}

func TestPowRejectsNonRealExponents(t *testing.T) {
	z := NewCartesian(3, 4)

	tests := []struct {
		name    string
		operand Operand
	}{
		{"complex exponent", Value(NewCartesian(1, 1))},
		{"textual exponent", Text("1+1i")},
		// The literal is rejected before parsing, so even garbage
		// reports an unsupported operation rather than a parse failure.
		{"unparsable textual exponent", Text("hello")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := z.Pow(tt.operand)
			if err == nil {
				t.Fatal("Pow should reject a non-real exponent")
			}
			if !amerror.HasCode(err, amerror.CodeUnsupportedOperation) {
				t.Errorf("code = %v, want UNSUPPORTED_OPERATION", amerror.GetCode(err))
			}
		})
	}
}

func TestEqual(t *testing.T) {
	z := NewCartesian(3, 4)

	t.Run("matching cartesian pair", func(t *testing.T) {
		eq, err := z.Equal(Value(NewCartesian(3, 4)))
		if err != nil {
			t.Fatal(err)
		}
		if !eq {
			t.Error("identical cartesian values should be equal")
		}
	})

	t.Run("matching polar pair", func(t *testing.T) {
		w, err := NewPolar(5, math.Acos(3.0/5.0))
		if err != nil {
			t.Fatal(err)
		}
		eq, err := z.Equal(Value(w))
		if err != nil {
			t.Fatal(err)
		}
		if !eq {
			t.Error("matching polar pairs should be equal")
		}
	})

	t.Run("different values", func(t *testing.T) {
		eq, err := z.Equal(Value(NewCartesian(3, 5)))
		if err != nil {
			t.Fatal(err)
		}
		if eq {
			t.Error("different values should not be equal")
		}
		ne, err := z.NotEqual(Value(NewCartesian(3, 5)))
		if err != nil {
			t.Fatal(err)
		}
		if !ne {
			t.Error("NotEqual should report true for different values")
		}
	})

	t.Run("scalar compares the real part only", func(t *testing.T) {
		eq, err := z.Equal(Real(3))
		if err != nil {
			t.Fatal(err)
		}
		if !eq {
			t.Error("scalar equality ignores the imaginary part")
		}
		eq, err = z.Equal(Real(4))
		if err != nil {
			t.Fatal(err)
		}
		if eq {
			t.Error("scalar with a different real part should not be equal")
		}
	})
}

func TestOrderingIsUndefined(t *testing.T) {
	z := NewCartesian(3, 4)
	w := Value(NewCartesian(1, 1))

	ops := []struct {
		name string
		call func() (bool, error)
	}{
		{"Less", func() (bool, error) { return z.Less(w) }},
		{"Greater", func() (bool, error) { return z.Greater(w) }},
		{"LessOrEqual", func() (bool, error) { return z.LessOrEqual(w) }},
		{"GreaterOrEqual", func() (bool, error) { return z.GreaterOrEqual(w) }},
	}

	for _, op := range ops {
		t.Run(op.name, func(t *testing.T) {
			_, err := op.call()
			if err == nil {
				t.Fatal("ordering comparison should fail")
			}
			if !amerror.HasCode(err, amerror.CodeOrderingUndefined) {
				t.Errorf("code = %v, want ORDERING_UNDEFINED", amerror.GetCode(err))
			}
		})
	}
}

func TestPackageLevelScalarLeft(t *testing.T) {
	z := NewCartesian(3, 4)

	t.Run("addition commutes", func(t *testing.T) {
		got, err := Add(Real(2), Value(z))
		if err != nil {
			t.Fatal(err)
		}
		if got.A() != 5 || got.B() != 4 {
			t.Errorf("Add = (%v, %v), want (5, 4)", got.A(), got.B())
		}
	})

	t.Run("subtraction honors operand order", func(t *testing.T) {
		got, err := Sub(Real(1), Value(z))
		if err != nil {
			t.Fatal(err)
		}
		if got.A() != -2 || got.B() != 4 {
			t.Errorf("Sub = (%v, %v), want (-2, 4)", got.A(), got.B())
		}
	})

	t.Run("scalar divided by complex", func(t *testing.T) {
		got, err := Div(Real(3), Value(z))
		if err != nil {
			t.Fatal(err)
		}
		if !approxEqual(got.A(), 0.36, 1e-9) || !approxEqual(got.B(), -0.48, 1e-9) {
			t.Errorf("Div = (%v, %v), want (0.36, -0.48)", got.A(), got.B())
		}
	})

	t.Run("two real scalars embed on the real axis", func(t *testing.T) {
		got, err := Mul(Real(6), Real(7))
		if err != nil {
			t.Fatal(err)
		}
		if got.A() != 42 || got.B() != 0 {
			t.Errorf("Mul = (%v, %v), want (42, 0)", got.A(), got.B())
		}

		got, err = Pow(Real(2), Real(10))
		if err != nil {
			t.Fatal(err)
		}
		if got.A() != 1024 || got.B() != 0 {
			t.Errorf("Pow = (%v, %v), want (1024, 0)", got.A(), got.B())
		}
	})

	t.Run("real base with complex exponent", func(t *testing.T) {
		_, err := Pow(Real(2), Value(z))
		if err == nil {
			t.Fatal("Pow should reject a complex exponent")
		}
		if !amerror.HasCode(err, amerror.CodeUnsupportedOperation) {
			t.Errorf("code = %v, want UNSUPPORTED_OPERATION", amerror.GetCode(err))
		}
	})
}

func TestImaginaryUnitComposition(t *testing.T) {
	scaled, err := Mul(Real(2), Value(I))
	if err != nil {
		t.Fatal(err)
	}
	got, err := scaled.Add(Real(3))
	if err != nil {
		t.Fatal(err)
	}
	if !approxEqual(got.A(), 3, 1e-12) || !approxEqual(got.B(), 2, 1e-12) {
		t.Errorf("3 + 2i composition = (%v, %v)", got.A(), got.B())
	}
}

func TestExpLogOverloads(t *testing.T) {
	t.Run("real argument", func(t *testing.T) {
		out, err := Exp(Real(1))
		if err != nil {
			t.Fatal(err)
		}
		v, ok := out.RealValue()
		if !ok {
			t.Fatal("Exp of a real should stay real")
		}
		if !approxEqual(v, math.E, 1e-12) {
			t.Errorf("Exp(1) = %v, want e", v)
		}

		out, err = Log(Real(math.E))
		if err != nil {
			t.Fatal(err)
		}
		v, ok = out.RealValue()
		if !ok {
			t.Fatal("Log of a real should stay real")
		}
		if !approxEqual(v, 1, 1e-12) {
			t.Errorf("Log(e) = %v, want 1", v)
		}
	})

	t.Run("complex exponential", func(t *testing.T) {
		out, err := Exp(Value(NewCartesian(1, 2)))
		if err != nil {
			t.Fatal(err)
		}
		z, ok := out.ComplexValue()
		if !ok {
			t.Fatal("Exp of a complex should stay complex")
		}
		if z.R() != math.Exp(1) || z.Theta() != 2 {
			t.Errorf("Exp = (r=%v, theta=%v), want (e, 2)", z.R(), z.Theta())
		}
	})

	t.Run("complex logarithm", func(t *testing.T) {
		w, err := NewPolar(2, 0.5)
		if err != nil {
			t.Fatal(err)
		}
		out, err := Log(Value(w))
		if err != nil {
			t.Fatal(err)
		}
		z, ok := out.ComplexValue()
		if !ok {
			t.Fatal("Log of a complex should stay complex")
		}
		if z.A() != math.Log(2) || z.B() != 0.5 {
			t.Errorf("Log = (%v, %v), want (ln 2, 0.5)", z.A(), z.B())
		}
	})

	t.Run("arbitrary base", func(t *testing.T) {
		w, err := NewPolar(8, 1)
		if err != nil {
			t.Fatal(err)
		}
		out, err := LogBase(Value(w), 2)
		if err != nil {
			t.Fatal(err)
		}
		z, ok := out.ComplexValue()
		if !ok {
			t.Fatal("LogBase of a complex should stay complex")
		}
		if z.A() != math.Log(8)/math.Log(2) || z.B() != 1/math.Log(2) {
			t.Errorf("LogBase = (%v, %v)", z.A(), z.B())
		}
	})
}
