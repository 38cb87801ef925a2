package contfrac

import "math/big"
import "strings"

// Configures the output of [ArithmeticalExprStyled]. The zero value
// reproduces the default [ArithmeticalExpr] rendering.
type ExprStyle struct {
	// Drops the spaces around the plus signs.
	OmitSpaces bool

	// Renders reciprocals as "1.0/(...)" instead of "1/(...)", for
	// consumption by languages where the slash means integer division.
	ForceFloats bool
}

// Renders a finite coefficient sequence as a nested arithmetical
// expression like "4 + 1/(2 + 1/(6 + 1/(7)))", ready to be pasted
// into a calculator or interpreter. An empty sequence renders as the
// empty string.
func ArithmeticalExpr(coeffs []*big.Int) string {
	return ArithmeticalExprStyled(coeffs, ExprStyle{})
}

// Like [ArithmeticalExpr], with explicit output configuration.
func ArithmeticalExprStyled(coeffs []*big.Int, style ExprStyle) string {
	if len(coeffs) == 0 { return "" }

	joiner := " + 1/("
	if style.OmitSpaces { joiner = "+1/(" }
	if style.ForceFloats { joiner = strings.Replace(joiner, "1/", "1.0/", 1) }

	var builder strings.Builder
	for i, coeff := range coeffs {
		if i > 0 { builder.WriteString(joiner) }
		builder.WriteString(coeff.String())
	}
	for i := 1; i < len(coeffs); i++ {
		builder.WriteByte(')')
	}
	return builder.String()
}
