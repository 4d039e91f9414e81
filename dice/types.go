package dice

import (
	"fmt"
	"math/big"
	"strings"
)

// Set is Count identical dice with Faces faces each, numbered 1..Faces.
type Set struct {
	Count int
	Faces int
}

// Validate reports whether s describes at least one die with at least one face.
func (s Set) Validate() error {
	if s.Count < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidCount, s.Count)
	}
	if s.Faces < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidFaces, s.Faces)
	}
	return nil
}

// MinSum is the total when every die shows 1.
func (s Set) MinSum() int { return s.Count }

// MaxSum is the total when every die shows Faces.
func (s Set) MaxSum() int { return s.Count * s.Faces }

// Outcomes returns Faces^Count, the number of equally likely face combinations.
func (s Set) Outcomes() *big.Int {
	return new(big.Int).Exp(big.NewInt(int64(s.Faces)), big.NewInt(int64(s.Count)), nil)
}

// Mean returns the expected total, Count·(Faces+1)/2.
func (s Set) Mean() float64 {
	return float64(s.Count) * float64(s.Faces+1) / 2
}

// String renders s in dice notation, e.g. "3d6".
func (s Set) String() string {
	return fmt.Sprintf("%dd%d", s.Count, s.Faces)
}

// Cluster is an ordered collection of sets whose totals are added together.
// Order never changes a distribution but is kept for deterministic output.
type Cluster []Set

// Validate checks the cluster is non-empty and every set is valid.
func (c Cluster) Validate() error {
	if len(c) == 0 {
		return ErrEmptyCluster
	}
	for i, s := range c {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("set %d (%s): %w", i, s, err)
		}
	}
	return nil
}

// MinSum is Σ nᵢ.
func (c Cluster) MinSum() int {
	total := 0
	for _, s := range c {
		total += s.MinSum()
	}
	return total
}

// MaxSum is Σ nᵢ·fᵢ.
func (c Cluster) MaxSum() int {
	total := 0
	for _, s := range c {
		total += s.MaxSum()
	}
	return total
}

// Outcomes returns ∏ fᵢ^nᵢ, the size of the cluster's sample space.
func (c Cluster) Outcomes() *big.Int {
	total := big.NewInt(1)
	for _, s := range c {
		total.Mul(total, s.Outcomes())
	}
	return total
}

// Means returns the expected total of each set, in cluster order.
func (c Cluster) Means() []float64 {
	out := make([]float64, len(c))
	for i, s := range c {
		out[i] = s.Mean()
	}
	return out
}

// Mean returns the expected grand total.
func (c Cluster) Mean() float64 {
	total := 0.0
	for _, s := range c {
		total += s.Mean()
	}
	return total
}

// String renders c in dice notation, e.g. "2d4+3d6".
func (c Cluster) String() string {
	parts := make([]string, len(c))
	for i, s := range c {
		parts[i] = s.String()
	}
	return strings.Join(parts, "+")
}
