package poly

import (
	"math/big"
	"math/bits"

	"github.com/remyoudompheng/bigfft"
)

// kroneckerConvolve computes the linear convolution of a and b by Kronecker
// substitution.
//
// Algorithm Outline:
//  1. Choose a slot width of k machine words such that every output
//     coefficient fits: c_t ≤ min(N,M)·max(a)·max(b) < 2^(k·W).
//  2. Pack a into the integer A = Σ a_i·2^(i·k·W), likewise b into B.
//     Because all coefficients are non-negative, no borrows occur.
//  3. C = A·B via bigfft (FFT multiplication for large operands).
//  4. Slot i of C is exactly c_i, since no slot overflows into the next.
//
// Slots are word-aligned so packing and unpacking are plain word copies.
func kroneckerConvolve(a, b []*big.Int) []*big.Int {
	slot := slotWords(a, b)
	x := pack(a, slot)
	y := pack(b, slot)
	z := bigfft.Mul(x, y)
	return unpack(z, slot, len(a)+len(b)-1)
}

// slotWords returns the number of words each packed coefficient occupies.
func slotWords(a, b []*big.Int) int {
	bound := new(big.Int).Mul(maxCoeff(a), maxCoeff(b))
	bound.Mul(bound, big.NewInt(int64(min(len(a), len(b)))))
	n := (bound.BitLen() + bits.UintSize - 1) / bits.UintSize
	if n < 1 {
		n = 1
	}
	return n
}

func maxCoeff(cs []*big.Int) *big.Int {
	m := new(big.Int)
	for _, c := range cs {
		if c.Cmp(m) > 0 {
			m.Set(c)
		}
	}
	return m
}

// pack lays out cs[i] at word offset i*slot of a single integer.
func pack(cs []*big.Int, slot int) *big.Int {
	words := make([]big.Word, len(cs)*slot)
	for i, c := range cs {
		copy(words[i*slot:], c.Bits())
	}
	return new(big.Int).SetBits(words)
}

// unpack splits z into n coefficients of slot words each.
// The returned integers own their words; z is left untouched.
func unpack(z *big.Int, slot, n int) []*big.Int {
	words := z.Bits()
	out := make([]*big.Int, n)
	for i := range out {
		lo := i * slot
		if lo >= len(words) {
			out[i] = new(big.Int)
			continue
		}
		hi := min(lo+slot, len(words))
		chunk := make([]big.Word, hi-lo)
		copy(chunk, words[lo:hi])
		out[i] = new(big.Int).SetBits(chunk)
	}
	return out
}
