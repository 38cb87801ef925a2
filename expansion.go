package contfrac

import "math/big"

// An Expansion lazily generates the continued fraction coefficients
// a0, a1, a2... of a [Value]:
//
//	                     1
//	    x = a0 + -----------------
//	                       1
//	             a1 + ------------
//	                         1
//	                  a2 + -------
//	                       a3 + ...
//
// The first coefficient is floor(x) and may be any integer; every
// later coefficient is at least 1. Expansions always terminate on
// their own, in as many steps as the Euclidean algorithm takes on
// the Value's numerator and denominator.
//
// Expansions are cheap, single use and not safe for concurrent use;
// call [ContinuedFraction] again whenever you need a fresh one.
type Expansion struct {
	num  *big.Int
	den  *big.Int
	left int
}

// Starts the continued fraction expansion of the given value. If
// maxTerms is positive the expansion yields at most that many
// coefficients, truncating without error; otherwise it runs until
// natural termination.
func ContinuedFraction(x Value, maxTerms int) *Expansion {
	rat := x.mustRat()
	if maxTerms <= 0 { maxTerms = -1 }
	return &Expansion{
		num:  new(big.Int).Set(rat.Num()),
		den:  new(big.Int).Set(rat.Denom()),
		left: maxTerms,
	}
}

// Returns the next coefficient of the expansion, or false once the
// expansion is over. Each returned value is freshly allocated, the
// caller owns it.
func (self *Expansion) Next() (*big.Int, bool) {
	if self.left == 0 || self.den.Sign() == 0 {
		return nil, false
	}

	// one Euclidean step: emit floor(num/den), keep the remainder.
	// the denominator is always kept positive, so DivMod floors and
	// every coefficient after the first comes out >= 1
	coeff, rem := new(big.Int).DivMod(self.num, self.den, new(big.Int))
	self.num, self.den = self.den, rem
	if self.left > 0 { self.left -= 1 }
	return coeff, true
}

// Drains the expansion into a slice. Convenient for finite or capped
// expansions that you want to pass to [Evaluate] or [ArithmeticalExpr].
func (self *Expansion) Collect() []*big.Int {
	var coeffs []*big.Int
	for {
		coeff, ok := self.Next()
		if !ok { return coeffs }
		coeffs = append(coeffs, coeff)
	}
}
