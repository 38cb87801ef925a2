package contfrac

import "testing"
import "errors"
import "math"
import "math/big"

func TestValueConstructors(t *testing.T) {
	tests := []struct {
		in  Value
		out string
	}{
		{Int(0), "0"},
		{Int(42), "42"},
		{Int(-7), "-7"},
		{mustRatio(415, 93), "415/93"},
		{mustRatio(415, -93), "-415/93"},
		{mustRatio(-4, -2), "2"},
		{mustRatio(6, 4), "3/2"},
		{mustFloat64(0.5), "1/2"},
		{mustFloat64(-0.25), "-1/4"},
		{mustFloat64(0.84375), "27/32"},
	}

	for i, test := range tests {
		out := test.in.String()
		if out != test.out {
			str := "test #%d: expected %s, but got %s"
			t.Fatalf(str, i, test.out, out)
		}
	}
}

func TestValueInvalidInputs(t *testing.T) {
	_, err := Ratio(1, 0)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("Ratio(1, 0): expected ErrInvalidInput, got %v", err)
	}
	_, err = Float64(math.NaN())
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("Float64(NaN): expected ErrInvalidInput, got %v", err)
	}
	_, err = Float64(math.Inf(1))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("Float64(+Inf): expected ErrInvalidInput, got %v", err)
	}
	_, err = Float64(math.Inf(-1))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("Float64(-Inf): expected ErrInvalidInput, got %v", err)
	}
	_, err = FromRat(nil)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("FromRat(nil): expected ErrInvalidInput, got %v", err)
	}
}

func TestValueFromRatCopies(t *testing.T) {
	rat := big.NewRat(415, 93)
	x, err := FromRat(rat)
	if err != nil { t.Fatalf("unexpected error: %v", err) }
	rat.SetInt64(1) // mutating the argument must not leak into x
	if x.String() != "415/93" {
		t.Fatalf("expected 415/93, but got %s", x.String())
	}
}

func TestValueFloat64Accessor(t *testing.T) {
	tests := []struct {
		in  Value
		out float64
	}{
		{Int(3), 3.0},
		{mustRatio(1, 2), 0.5},
		{mustRatio(-1, 4), -0.25},
		{mustFloat64(2.718281828459045), 2.718281828459045},
	}

	for i, test := range tests {
		out := test.in.Float64()
		if out != test.out {
			str := "test #%d: expected %f, but got %f"
			t.Fatalf(str, i, test.out, out)
		}
	}
}

func TestValueZeroValuePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on zero Value")
		}
	}()
	var x Value
	_ = ContinuedFraction(x, 0)
}
