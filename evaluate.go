package contfrac

import "fmt"
import "math/big"

// Computes the exact rational value of a finite coefficient sequence
// by back-substitution, last term to first. An empty sequence
// evaluates to zero. Sequences produced by [ContinuedFraction] always
// evaluate cleanly; hand-crafted sequences may run into a zero divisor
// (e.g. [1, 0]), reported as [ErrZeroDivision], and nil coefficients
// are rejected with [ErrInvalidInput].
func EvaluateRat(coeffs []*big.Int) (*big.Rat, error) {
	for i, coeff := range coeffs {
		if coeff == nil {
			return nil, fmt.Errorf("%w: nil coefficient at index %d", ErrInvalidInput, i)
		}
	}
	if len(coeffs) == 0 { return new(big.Rat), nil }

	acc := new(big.Rat)
	for i := len(coeffs) - 1; i > 0; i-- {
		acc.Add(acc, new(big.Rat).SetInt(coeffs[i]))
		if acc.Sign() == 0 {
			return nil, fmt.Errorf("%w: zero divisor at index %d", ErrZeroDivision, i)
		}
		acc.Inv(acc)
	}
	return acc.Add(acc, new(big.Rat).SetInt(coeffs[0])), nil
}

// Like [EvaluateRat], but returns the nearest floating point
// representation of the result.
func Evaluate(coeffs []*big.Int) (float64, error) {
	rat, err := EvaluateRat(coeffs)
	if err != nil { return 0, err }
	f, _ := rat.Float64()
	return f, nil
}
