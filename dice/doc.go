// Package dice models dice sets and clusters and turns them into generating
// polynomials.
//
// Nomenclature:
//
//	A Set is n identical f-sided dice, written "ndf" (3d6 is three six-sided
//	dice). A Cluster is an ordered list of sets whose grand total is of
//	interest, written with "+" (2d4+3d6).
//
// The generating polynomial of one f-sided die is x + x² + … + x^f. Summing n
// independent dice convolves their distributions, so a Set's polynomial is
// that base raised to the n-th power (GeneratingFunction) and a Cluster's
// joint polynomial is the product over its sets (Combine).
//
// Invalid dice (n < 1, f < 1) and empty clusters fail with an error wrapping
// ErrInvalidParameter; nothing is silently coerced.
package dice
