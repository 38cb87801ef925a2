// contfrac is a package for computing continued fraction representations
// of numbers, their rational approximations (convergents) and the values
// those representations stand for.
//
// Usage revolves around a couple functions and very little ceremony.
// First, you wrap the number you care about in a [Value]:
//   x, err := contfrac.Ratio(415, 93)
//   if err != nil { ... }
//
// Then you expand it into its continued fraction coefficients:
//   coeffs := contfrac.ContinuedFraction(x, 0).Collect() // [4, 2, 6, 7]
//
// ...or walk its convergents, each one a better rational approximation
// than the previous:
//   seq := contfrac.Convergents(x, -1)
//   for {
//       conv, ok := seq.Next()
//       if !ok { break }
//       fmt.Println(conv) // 4/1, 9/2, 58/13, 415/93
//   }
//
// All arithmetic is exact: inputs are normalized to a rational number
// on entry (floats through the exact binary fraction they encode, see
// [Float64]) and expanded with math/big, so coefficient generation never
// accumulates rounding error. The only imprecision you can ever observe
// is the one already baked into a float argument itself.
package contfrac
