package contfrac

import "fmt"
import "math/big"

// A Convergent is the rational number obtained by truncating a
// continued fraction after a given coefficient, expressed as a
// numerator and denominator pair. Convergents of growing grade are
// the best rational approximations of the expanded value.
type Convergent struct {
	Num *big.Int
	Den *big.Int
}

// Returns the convergent as an exact rational.
func (self Convergent) Rat() *big.Rat {
	return new(big.Rat).SetFrac(self.Num, self.Den)
}

// Returns the nearest floating point representation of the convergent.
func (self Convergent) Float64() float64 {
	f, _ := self.Rat().Float64()
	return f
}

// Returns the convergent as "num/den".
func (self Convergent) String() string {
	return self.Num.String() + "/" + self.Den.String()
}

// A ConvergentSeq lazily generates the convergents of a [Value] in
// increasing grade order, consuming one coefficient of the underlying
// [Expansion] per generated pair. Like expansions, sequences are
// single use and not safe for concurrent use.
type ConvergentSeq struct {
	coeffs   *Expansion
	numPrev  *big.Int // h[i-1]
	numPrev2 *big.Int // h[i-2]
	denPrev  *big.Int // k[i-1]
	denPrev2 *big.Int // k[i-2]
}

// Starts the convergent sequence of the given value. If maxGrade is
// non-negative the sequence stops after the convergent of that grade
// (so it yields at most maxGrade + 1 pairs); otherwise it runs until
// the underlying expansion terminates.
func Convergents(x Value, maxGrade int) *ConvergentSeq {
	maxTerms := -1
	if maxGrade >= 0 { maxTerms = maxGrade + 1 }
	return &ConvergentSeq{
		coeffs:   ContinuedFraction(x, maxTerms),
		numPrev:  big.NewInt(1),
		numPrev2: big.NewInt(0),
		denPrev:  big.NewInt(0),
		denPrev2: big.NewInt(1),
	}
}

// Returns the next convergent, or false once the sequence is over.
// The grade of the first returned convergent is 0 and its value is
// (a0, 1); consecutive pairs always satisfy the determinant identity
// |num*prevDen - prevNum*den| == 1.
func (self *ConvergentSeq) Next() (Convergent, bool) {
	coeff, ok := self.coeffs.Next()
	if !ok { return Convergent{}, false }

	// h[i] = a[i]*h[i-1] + h[i-2], same recurrence for k[i]
	num := new(big.Int).Mul(coeff, self.numPrev)
	num.Add(num, self.numPrev2)
	den := new(big.Int).Mul(coeff, self.denPrev)
	den.Add(den, self.denPrev2)
	self.numPrev2, self.numPrev = self.numPrev, num
	self.denPrev2, self.denPrev = self.denPrev, den

	// copies, so callers can't corrupt the recurrence state
	return Convergent{
		Num: new(big.Int).Set(num),
		Den: new(big.Int).Set(den),
	}, true
}

// Drains the sequence into a slice.
func (self *ConvergentSeq) Collect() []Convergent {
	var convs []Convergent
	for {
		conv, ok := self.Next()
		if !ok { return convs }
		convs = append(convs, conv)
	}
}

// Returns only the convergent of the given grade, in O(grade) time and
// constant auxiliary space. Negative grades are rejected with
// [ErrInvalidInput]; grades beyond the end of the expansion are
// rejected with [ErrOutOfRange].
func ConvergentAt(x Value, grade int) (Convergent, error) {
	if grade < 0 {
		return Convergent{}, fmt.Errorf("%w: negative grade %d", ErrInvalidInput, grade)
	}

	seq := Convergents(x, grade)
	var conv Convergent
	for i := 0; i <= grade; i++ {
		next, ok := seq.Next()
		if !ok {
			return Convergent{}, fmt.Errorf(
				"%w: grade %d requested, expansion has only %d terms",
				ErrOutOfRange, grade, i,
			)
		}
		conv = next
	}
	return conv, nil
}
