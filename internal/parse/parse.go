// Package parse converts between the number syntax used on the
// contfrac command line and library values.
package parse

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/tinne26/contfrac"
)

// Value parses one of the three accepted input forms:
//   - "415/93" — an exact ratio of two integers, arbitrary size
//   - "2.718"  — a decimal, read as a float64 (so subject to binary
//     representation error, exactly like a float argument in code)
//   - "42"     — a whole number
func Value(input string) (contfrac.Value, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return contfrac.Value{}, fmt.Errorf("empty value")
	}

	if strings.Contains(input, "/") {
		parts := strings.SplitN(input, "/", 2)
		num, ok := new(big.Int).SetString(strings.TrimSpace(parts[0]), 10)
		if !ok {
			return contfrac.Value{}, fmt.Errorf("invalid numerator %q", parts[0])
		}
		den, ok := new(big.Int).SetString(strings.TrimSpace(parts[1]), 10)
		if !ok {
			return contfrac.Value{}, fmt.Errorf("invalid denominator %q", parts[1])
		}
		if den.Sign() == 0 {
			return contfrac.Value{}, fmt.Errorf("zero denominator in %q", input)
		}
		return contfrac.FromRat(new(big.Rat).SetFrac(num, den))
	}

	if strings.ContainsAny(input, ".eE") {
		f, err := strconv.ParseFloat(input, 64)
		if err != nil {
			return contfrac.Value{}, fmt.Errorf("invalid number %q", input)
		}
		return contfrac.Float64(f)
	}

	whole, ok := new(big.Int).SetString(input, 10)
	if !ok {
		return contfrac.Value{}, fmt.Errorf("invalid number %q", input)
	}
	return contfrac.FromRat(new(big.Rat).SetInt(whole))
}

// Notation renders coefficients in the standard "[a0; a1, a2]" form,
// with a trailing ellipsis when the sequence was truncated.
func Notation(coeffs []*big.Int, complete bool) string {
	inner := ""
	if len(coeffs) > 0 {
		inner = coeffs[0].String()
		if len(coeffs) > 1 {
			parts := make([]string, len(coeffs)-1)
			for i, coeff := range coeffs[1:] {
				parts[i] = coeff.String()
			}
			inner += "; " + strings.Join(parts, ", ")
		}
	}
	if !complete {
		inner += ", ..."
	}
	return "[" + inner + "]"
}

// Coeffs parses a list of integer continued fraction coefficients.
func Coeffs(args []string) ([]*big.Int, error) {
	coeffs := make([]*big.Int, len(args))
	for i, arg := range args {
		coeff, ok := new(big.Int).SetString(strings.TrimSpace(arg), 10)
		if !ok {
			return nil, fmt.Errorf("invalid coefficient %q", arg)
		}
		coeffs[i] = coeff
	}
	return coeffs, nil
}
