package dice

import (
	"fmt"

	"github.com/katalvlaran/lvdice/poly"
)

// GeneratingFunction returns the polynomial whose coefficient at x^t is the
// number of ways s can total t.
//
// Algorithm:
//
//	base = x + x² + … + x^f      (one die, every face once)
//	P    = base^n                (n independent dice ⇒ n-fold convolution)
//
// Pow squares its way to n, so the cost is O(log n) convolutions. For f = 1
// the result is the single term x^n.
//
// Errors:
//   - ErrInvalidCount, ErrInvalidFaces (both wrap ErrInvalidParameter).
func GeneratingFunction(s Set, opts ...poly.Option) (poly.Polynomial, error) {
	if err := s.Validate(); err != nil {
		return poly.Polynomial{}, err
	}
	base, err := poly.Uniform(1, s.Faces)
	if err != nil {
		return poly.Polynomial{}, fmt.Errorf("dice: base polynomial for %s: %w", s, err)
	}
	p, err := poly.Pow(base, s.Count, opts...)
	if err != nil {
		return poly.Polynomial{}, fmt.Errorf("dice: power for %s: %w", s, err)
	}
	return p, nil
}

// Combine returns the joint generating polynomial of every set in c.
//
// Starting from the identity polynomial, each set's generating function is
// multiplied in, in cluster order. Convolution commutes, so the order does
// not affect the result; it only fixes the sequence of work. A one-set
// cluster yields exactly that set's polynomial.
//
// The whole cluster is validated before any multiplication happens.
//
// Errors:
//   - ErrEmptyCluster, ErrInvalidCount, ErrInvalidFaces.
func Combine(c Cluster, opts ...poly.Option) (poly.Polynomial, error) {
	if err := c.Validate(); err != nil {
		return poly.Polynomial{}, err
	}
	joint := poly.Identity()
	for _, s := range c {
		p, err := GeneratingFunction(s, opts...)
		if err != nil {
			return poly.Polynomial{}, err
		}
		joint = poly.Mul(joint, p, opts...)
	}
	return joint, nil
}
