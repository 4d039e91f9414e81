package poly

import (
	"fmt"
	"math/big"
	"strings"
)

// Polynomial is an immutable polynomial with non-negative integer coefficients.
//
// Representation:
//   - offset: exponent of coeffs[0];
//   - coeffs: dense run of coefficients for exponents offset..offset+len-1.
//
// Invariant: coeffs is either empty (the zero polynomial) or its first and
// last entries are non-zero. Zeros strictly inside the run are kept.
//
// The zero value is the zero polynomial and is ready to use.
type Polynomial struct {
	offset int
	coeffs []*big.Int
}

// Strategy selects how Mul convolves two coefficient sequences.
type Strategy int

const (
	// Auto picks Kronecker once both operands reach the configured threshold
	// and Schoolbook otherwise.
	Auto Strategy = iota

	// Schoolbook performs the direct O(N·M) convolution.
	Schoolbook

	// Kronecker packs both operands into single integers, multiplies them
	// with FFT-based big-integer multiplication and unpacks the product.
	Kronecker
)

// String returns the lower-case name of the strategy.
func (s Strategy) String() string {
	switch s {
	case Auto:
		return "auto"
	case Schoolbook:
		return "schoolbook"
	case Kronecker:
		return "kronecker"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "auto", "schoolbook" or "kronecker" (case-insensitive)
// to a Strategy. The empty string means Auto.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return Auto, nil
	case "schoolbook", "naive":
		return Schoolbook, nil
	case "kronecker", "fft":
		return Kronecker, nil
	default:
		return Auto, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}
