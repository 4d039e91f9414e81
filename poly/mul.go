package poly

import (
	"fmt"
	"math/big"
)

// Mul returns the product p·q.
//
// Description:
//
//	Multiplying generating polynomials convolves their coefficient
//	sequences: (p·q)[t] = Σ_i p[i]·q[t-i]. When p and q count the outcomes
//	of two independent random sums, p·q counts the outcomes of their total.
//
// Algorithm Outline:
//  1. If either operand is zero, the product is zero.
//  2. offset(p·q) = offset(p) + offset(q); length = len(p) + len(q) - 1.
//  3. Convolve the dense runs with the strategy chosen by opts
//     (Schoolbook, Kronecker, or Auto by operand length).
//  4. Normalize (a product of non-zero end coefficients is non-zero, so this
//     never trims in practice, but it keeps the invariant local).
//
// Complexity:
//
//	Schoolbook: O(N·M) big-integer multiply-adds.
//	Kronecker:  one FFT big-integer product of O((N+M)·k) bits.
//
// Mul never mutates p or q.
func Mul(p, q Polynomial, opts ...Option) Polynomial {
	if p.IsZero() || q.IsZero() {
		return Polynomial{}
	}
	cfg := gatherOptions(opts)

	var coeffs []*big.Int
	switch cfg.pick(len(p.coeffs), len(q.coeffs)) {
	case Kronecker:
		coeffs = kroneckerConvolve(p.coeffs, q.coeffs)
	default:
		coeffs = schoolbookConvolve(p.coeffs, q.coeffs)
	}
	return normalize(p.offset+q.offset, coeffs)
}

// Pow returns p^n using exponentiation by squaring.
//
// Pow(p, 0) is Identity() for every p, including the zero polynomial.
//
// Errors:
//   - ErrNegativeExponent: if n < 0.
//
// Complexity: O(log n) calls to Mul on operands of growing size.
func Pow(p Polynomial, n int, opts ...Option) (Polynomial, error) {
	if n < 0 {
		return Polynomial{}, fmt.Errorf("%w: %d", ErrNegativeExponent, n)
	}
	result := Identity()
	base := p
	for n > 0 {
		if n&1 == 1 {
			result = Mul(result, base, opts...)
		}
		n >>= 1
		if n > 0 {
			base = Mul(base, base, opts...)
		}
	}
	return result, nil
}

// schoolbookConvolve computes the full linear convolution of a and b.
// Zero entries of a are skipped, which keeps sparse operands cheap.
func schoolbookConvolve(a, b []*big.Int) []*big.Int {
	out := make([]*big.Int, len(a)+len(b)-1)
	for i := range out {
		out[i] = new(big.Int)
	}
	term := new(big.Int)
	for i, x := range a {
		if x.Sign() == 0 {
			continue
		}
		for j, y := range b {
			if y.Sign() == 0 {
				continue
			}
			term.Mul(x, y)
			out[i+j].Add(out[i+j], term)
		}
	}
	return out
}
