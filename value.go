package contfrac

import "fmt"
import "math"
import "math/big"

// A Value is a numeric input normalized for continued fraction expansion.
// Values are created through [Int], [Float64], [Ratio] or [FromRat] and
// internally always hold an exact rational number. The zero Value is
// invalid and will make the expansion functions panic; only misuse of
// the package can produce one.
type Value struct {
	rat *big.Rat
}

// Wraps a whole number. The resulting expansion has a single
// coefficient, the number itself.
func Int(n int64) Value {
	return Value{rat: new(big.Rat).SetInt64(n)}
}

// Wraps a floating point number as the exact binary fraction it encodes.
// For example, Float64(0.5) is exactly 1/2, but Float64(3.245) is
// 3653545197704315/2^50 rather than 649/200, because 3.245 has no
// finite binary representation. The expansion of such a Value is exact
// with respect to the float, yet may look different from the expansion
// of the decimal number you had in mind; prefer [Ratio] when you know
// the intended fraction.
//
// NaN and infinities are rejected with [ErrInvalidInput].
func Float64(f float64) (Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}, fmt.Errorf("%w: float %v", ErrInvalidInput, f)
	}
	return Value{rat: new(big.Rat).SetFloat64(f)}, nil
}

// Wraps a ratio of two integers. The sign may live on either operand
// and the ratio doesn't need to be in lowest terms. A zero denominator
// is rejected with [ErrInvalidInput].
func Ratio(num, den int64) (Value, error) {
	if den == 0 {
		return Value{}, fmt.Errorf("%w: zero denominator", ErrInvalidInput)
	}
	return Value{rat: new(big.Rat).SetFrac64(num, den)}, nil
}

// Wraps an arbitrary precision rational. The rational is copied, so
// later mutations of the argument don't affect the Value. A nil
// rational is rejected with [ErrInvalidInput].
func FromRat(r *big.Rat) (Value, error) {
	if r == nil {
		return Value{}, fmt.Errorf("%w: nil rational", ErrInvalidInput)
	}
	return Value{rat: new(big.Rat).Set(r)}, nil
}

// Returns a copy of the exact rational form of the Value.
func (self Value) Rat() *big.Rat {
	return new(big.Rat).Set(self.mustRat())
}

// Returns the nearest floating point representation of the Value.
func (self Value) Float64() float64 {
	f, _ := self.mustRat().Float64()
	return f
}

// Returns the Value as "num/den", or only "num" for whole numbers.
func (self Value) String() string {
	return self.mustRat().RatString()
}

func (self Value) mustRat() *big.Rat {
	if self.rat == nil {
		panic("contfrac: use of uninitialized Value")
	}
	return self.rat
}
