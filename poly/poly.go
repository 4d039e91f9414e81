package poly

import (
	"fmt"
	"math/big"
	"strings"
)

// Zero returns the zero polynomial: every coefficient is 0.
func Zero() Polynomial {
	return Polynomial{}
}

// Identity returns the multiplicative identity, 1·x⁰.
func Identity() Polynomial {
	return Polynomial{offset: 0, coeffs: []*big.Int{big.NewInt(1)}}
}

// New builds a polynomial whose coefficient at x^(offset+i) is coeffs[i].
// Leading and trailing zeros are trimmed; interior zeros are kept.
//
// Errors:
//   - ErrNegativeCoefficient: if any coefficient is < 0.
func New(offset int, coeffs ...int64) (Polynomial, error) {
	out := make([]*big.Int, len(coeffs))
	for i, c := range coeffs {
		if c < 0 {
			return Polynomial{}, fmt.Errorf("%w: x^%d has %d", ErrNegativeCoefficient, offset+i, c)
		}
		out[i] = big.NewInt(c)
	}
	return normalize(offset, out), nil
}

// FromBig is New for arbitrary-precision coefficients. The inputs are copied.
//
// Errors:
//   - ErrNilCoefficient: if any entry is nil.
//   - ErrNegativeCoefficient: if any entry is < 0.
func FromBig(offset int, coeffs []*big.Int) (Polynomial, error) {
	out := make([]*big.Int, len(coeffs))
	for i, c := range coeffs {
		if c == nil {
			return Polynomial{}, fmt.Errorf("%w: x^%d", ErrNilCoefficient, offset+i)
		}
		if c.Sign() < 0 {
			return Polynomial{}, fmt.Errorf("%w: x^%d has %s", ErrNegativeCoefficient, offset+i, c)
		}
		out[i] = new(big.Int).Set(c)
	}
	return normalize(offset, out), nil
}

// Uniform returns x^lo + x^(lo+1) + … + x^hi: every exponent in [lo, hi]
// with coefficient 1. Uniform(1, f) is the generating polynomial of one
// f-sided die.
//
// Errors:
//   - ErrEmptyRange: if hi < lo.
//
// Complexity: O(hi-lo) time and space.
func Uniform(lo, hi int) (Polynomial, error) {
	if hi < lo {
		return Polynomial{}, fmt.Errorf("%w: [%d, %d]", ErrEmptyRange, lo, hi)
	}
	coeffs := make([]*big.Int, hi-lo+1)
	for i := range coeffs {
		coeffs[i] = big.NewInt(1)
	}
	return Polynomial{offset: lo, coeffs: coeffs}, nil
}

// normalize trims zero coefficients at both ends and shifts offset so the
// representation invariant holds. It takes ownership of coeffs.
func normalize(offset int, coeffs []*big.Int) Polynomial {
	lo, hi := 0, len(coeffs)
	for lo < hi && coeffs[lo].Sign() == 0 {
		lo++
	}
	for hi > lo && coeffs[hi-1].Sign() == 0 {
		hi--
	}
	if lo == hi {
		return Polynomial{}
	}
	return Polynomial{offset: offset + lo, coeffs: coeffs[lo:hi]}
}

// IsZero reports whether every coefficient is 0.
func (p Polynomial) IsZero() bool {
	return len(p.coeffs) == 0
}

// Len returns the number of stored coefficients, MaxExp()-MinExp()+1,
// or 0 for the zero polynomial.
func (p Polynomial) Len() int {
	return len(p.coeffs)
}

// MinExp returns the lowest exponent with a non-zero coefficient.
// For the zero polynomial it returns 0.
func (p Polynomial) MinExp() int {
	return p.offset
}

// MaxExp returns the highest exponent with a non-zero coefficient.
// For the zero polynomial it returns MinExp()-1, so that the loop
// `for t := MinExp(); t <= MaxExp(); t++` runs zero times.
func (p Polynomial) MaxExp() int {
	return p.offset + len(p.coeffs) - 1
}

// Degree is an alias of MaxExp kept for readers used to the algebra name.
func (p Polynomial) Degree() int {
	return p.MaxExp()
}

// Coeff returns a copy of the coefficient at x^t. Any t outside
// [MinExp, MaxExp] yields 0; Coeff never panics.
func (p Polynomial) Coeff(t int) *big.Int {
	i := t - p.offset
	if i < 0 || i >= len(p.coeffs) {
		return new(big.Int)
	}
	return new(big.Int).Set(p.coeffs[i])
}

// Coefficients returns copies of the coefficients for exponents
// MinExp()..MaxExp(), interior zeros included.
func (p Polynomial) Coefficients() []*big.Int {
	out := make([]*big.Int, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = new(big.Int).Set(c)
	}
	return out
}

// Sum returns the sum of all coefficients, i.e. p evaluated at x = 1.
// For a generating polynomial this is the size of the sample space.
func (p Polynomial) Sum() *big.Int {
	total := new(big.Int)
	for _, c := range p.coeffs {
		total.Add(total, c)
	}
	return total
}

// Equal reports whether p and q have identical coefficients at every exponent.
func Equal(p, q Polynomial) bool {
	if len(p.coeffs) != len(q.coeffs) {
		return false
	}
	if len(p.coeffs) == 0 {
		return true
	}
	if p.offset != q.offset {
		return false
	}
	for i := range p.coeffs {
		if p.coeffs[i].Cmp(q.coeffs[i]) != 0 {
			return false
		}
	}
	return true
}

// String renders p in ascending exponent order, e.g. "x^2 + 2x^3 + x^4".
// Zero coefficients are omitted; the zero polynomial prints as "0".
func (p Polynomial) String() string {
	if p.IsZero() {
		return "0"
	}
	var sb strings.Builder
	first := true
	for i, c := range p.coeffs {
		if c.Sign() == 0 {
			continue
		}
		if !first {
			sb.WriteString(" + ")
		}
		first = false
		exp := p.offset + i
		one := c.IsInt64() && c.Int64() == 1
		switch {
		case exp == 0:
			sb.WriteString(c.String())
		case one && exp == 1:
			sb.WriteString("x")
		case one:
			fmt.Fprintf(&sb, "x^%d", exp)
		case exp == 1:
			fmt.Fprintf(&sb, "%sx", c)
		default:
			fmt.Fprintf(&sb, "%sx^%d", c, exp)
		}
	}
	return sb.String()
}
