// Package poly implements generating polynomials with exact, non-negative
// integer coefficients: the algebra behind dice-sum distributions.
//
// 🚀 What is a generating polynomial?
//
//	A polynomial whose coefficient at x^t counts the ways to reach the value t.
//	One six-sided die is x + x² + … + x⁶; the sum of two independent dice is
//	the product of their polynomials, because multiplying polynomials convolves
//	their coefficient sequences.
//
// ✨ Key features:
//   - explicit offset tracking: a Polynomial stores its lowest exponent and a
//     dense coefficient run, trimmed only at the two extremities, so interior
//     zero coefficients (parity gaps) are never lost
//   - exact arithmetic: coefficients are *big.Int, counts never overflow
//   - two multiplication strategies: schoolbook convolution and Kronecker
//     substitution backed by FFT big-integer multiplication (bigfft)
//   - exponentiation by squaring: O(log n) multiplications for p^n
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvdice/poly"
//
//	d6, _ := poly.Uniform(1, 6)
//	threeD6, _ := poly.Pow(d6, 3)
//	fmt.Println(threeD6.Coeff(10)) // 27
//
// Performance:
//
//   - Schoolbook Mul: O(N·M) big-integer multiply-adds
//   - Kronecker Mul:  one big-integer product of ~(N+M)·k bits, where k bounds
//     the bit size of every output coefficient
//   - Pow:            O(log n) Mul calls
//
// Values are immutable: every operation returns a new Polynomial and accessors
// return copies, so a Polynomial may be shared freely between goroutines.
package poly
