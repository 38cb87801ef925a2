package contfrac

import "testing"
import "errors"
import "math"
import "math/big"

func TestConvergents(t *testing.T) {
	tests := []struct {
		in       Value
		maxGrade int
		out      []Convergent
	}{
		{mustRatio(415, 93), -1, pairs(4, 1, 9, 2, 58, 13, 415, 93)},
		{mustFloat64(0.84375), 10, pairs(0, 1, 1, 1, 5, 6, 11, 13, 27, 32)},
		{mustFloat64(math.Sqrt(9073)), 4, pairs(95, 1, 286, 3, 381, 4, 10192, 107, 20765, 218)},
		{
			mustRatio(6792605526025, 9449868410449), 8,
			pairs(0, 1, 1, 1, 2, 3, 3, 4, 5, 7, 18, 25, 23, 32, 409, 569, 1659, 2308),
		},
		{Int(7), -1, pairs(7, 1)},
		{mustRatio(415, 93), 0, pairs(4, 1)}, // grade 0 is always (a0, 1)
	}

	for i, test := range tests {
		out := Convergents(test.in, test.maxGrade).Collect()
		if !convsEqual(out, test.out) {
			str := "test #%d: expected %v, but got %v"
			t.Fatalf(str, i, test.out, out)
		}
	}
}

func TestConvergentsReconstructExactInput(t *testing.T) {
	value := mustRatio(415, 93)
	convs := Convergents(value, -1).Collect()
	last := convs[len(convs)-1]
	if last.Rat().Cmp(value.Rat()) != 0 {
		str := "expected last convergent to equal 415/93, but got %s"
		t.Fatalf(str, last.String())
	}
}

func TestConvergentAt(t *testing.T) {
	tests := []struct {
		in       Value
		grade    int
		num, den int64
	}{
		{mustFloat64(0.84375), 3, 11, 13},
		{mustFloat64(math.Sqrt(9073)), 2, 381, 4},
		{mustRatio(6792605526025, 9449868410449), 1, 1, 1},
		{mustFloat64(math.E), 3, 11, 4},
		{mustFloat64(math.E), 7, 193, 71},
		{mustRatio(415, 93), 0, 4, 1},
	}

	for i, test := range tests {
		out, err := ConvergentAt(test.in, test.grade)
		if err != nil {
			t.Fatalf("test #%d: unexpected error: %v", i, err)
		}
		if out.Num.Cmp(big.NewInt(test.num)) != 0 || out.Den.Cmp(big.NewInt(test.den)) != 0 {
			str := "test #%d: expected %d/%d, but got %s"
			t.Fatalf(str, i, test.num, test.den, out.String())
		}
	}
}

func TestConvergentAtErrors(t *testing.T) {
	_, err := ConvergentAt(mustRatio(415, 93), -1)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("negative grade: expected ErrInvalidInput, got %v", err)
	}
	_, err = ConvergentAt(mustRatio(415, 93), 4) // expansion has 4 terms, grades 0..3
	if !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("grade 4: expected ErrOutOfRange, got %v", err)
	}
	_, err = ConvergentAt(Int(5), 1)
	if !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("grade 1 of whole number: expected ErrOutOfRange, got %v", err)
	}
}

func TestConvergentDeterminant(t *testing.T) {
	// consecutive convergents satisfy |h[i]*k[i-1] - h[i-1]*k[i]| == 1
	values := []Value{
		mustRatio(415, 93),
		mustRatio(-649, 200),
		mustFloat64(math.Pi),
		mustFloat64(math.E),
		mustFloat64((1 + math.Sqrt(5)) / 2),
	}
	one := big.NewInt(1)
	for i, value := range values {
		convs := Convergents(value, 25).Collect()
		for j := 1; j < len(convs); j++ {
			det := new(big.Int).Mul(convs[j].Num, convs[j-1].Den)
			det.Sub(det, new(big.Int).Mul(convs[j-1].Num, convs[j].Den))
			if det.Abs(det).Cmp(one) != 0 {
				str := "value #%d: determinant %s between grades %d and %d"
				t.Fatalf(str, i, det.String(), j-1, j)
			}
		}
	}
}

func TestConvergentAccuracyImproves(t *testing.T) {
	values := []Value{
		mustRatio(415, 93),
		mustFloat64(math.Pi),
		mustFloat64(math.E),
		mustFloat64(math.Sqrt(9073)),
	}
	for i, value := range values {
		target := value.Rat()
		convs := Convergents(value, 20).Collect()
		prevErr := (*big.Rat)(nil)
		for j, conv := range convs {
			convErr := new(big.Rat).Sub(target, conv.Rat())
			convErr.Abs(convErr)
			if prevErr != nil && convErr.Cmp(prevErr) > 0 {
				str := "value #%d: accuracy regressed at grade %d"
				t.Fatalf(str, i, j)
			}
			prevErr = convErr
		}
	}
}

func TestConvergentsMatchContinuedFraction(t *testing.T) {
	// one convergent per coefficient, in lockstep
	value := mustFloat64(math.Pi)
	coeffs := ContinuedFraction(value, 15).Collect()
	convs := Convergents(value, 14).Collect()
	if len(coeffs) != len(convs) {
		t.Fatalf("expected %d convergents, got %d", len(coeffs), len(convs))
	}

	// each convergent evaluates the coefficient prefix exactly
	for i := range convs {
		rat, err := EvaluateRat(coeffs[:i+1])
		if err != nil { t.Fatalf("grade %d: unexpected error: %v", i, err) }
		if rat.Cmp(convs[i].Rat()) != 0 {
			str := "grade %d: prefix evaluates to %s, convergent is %s"
			t.Fatalf(str, i, rat.RatString(), convs[i].String())
		}
	}
}
