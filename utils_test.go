package contfrac

import "math/big"

// helpers shared by the package tests

func bigs(values ...int64) []*big.Int {
	coeffs := make([]*big.Int, len(values))
	for i, value := range values {
		coeffs[i] = big.NewInt(value)
	}
	return coeffs
}

func coeffsEqual(a, b []*big.Int) bool {
	if len(a) != len(b) { return false }
	for i := range a {
		if a[i].Cmp(b[i]) != 0 { return false }
	}
	return true
}

func coeffsString(coeffs []*big.Int) string {
	str := "["
	for i, coeff := range coeffs {
		if i > 0 { str += " " }
		str += coeff.String()
	}
	return str + "]"
}

func pairs(values ...int64) []Convergent {
	if len(values)%2 != 0 { panic("pairs() needs an even argument count") }
	convs := make([]Convergent, len(values)/2)
	for i := 0; i < len(convs); i++ {
		convs[i] = Convergent{
			Num: big.NewInt(values[i*2]),
			Den: big.NewInt(values[i*2+1]),
		}
	}
	return convs
}

func convsEqual(a, b []Convergent) bool {
	if len(a) != len(b) { return false }
	for i := range a {
		if a[i].Num.Cmp(b[i].Num) != 0 { return false }
		if a[i].Den.Cmp(b[i].Den) != 0 { return false }
	}
	return true
}

func mustRatio(num, den int64) Value {
	x, err := Ratio(num, den)
	if err != nil { panic(err) }
	return x
}

func mustFloat64(f float64) Value {
	x, err := Float64(f)
	if err != nil { panic(err) }
	return x
}
