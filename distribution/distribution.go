package distribution

import (
	"fmt"
	"math"
	"math/big"

	"github.com/katalvlaran/lvdice/dice"
	"github.com/katalvlaran/lvdice/poly"
)

// Distribution is the exact distribution of a cluster's total.
// It is immutable and safe for concurrent reads.
type Distribution struct {
	name  string
	joint poly.Polynomial
	total *big.Int
}

// New combines c into its joint polynomial and wraps it for queries.
//
// Errors:
//   - any dice validation error (errors.Is(err, dice.ErrInvalidParameter)).
func New(c dice.Cluster, opts ...Option) (*Distribution, error) {
	cfg := gather(opts)
	joint, err := dice.Combine(c, cfg.polyOpts...)
	if err != nil {
		return nil, err
	}
	name := cfg.name
	if name == "" {
		name = c.String()
	}
	return &Distribution{name: name, joint: joint, total: c.Outcomes()}, nil
}

// FromPolynomial wraps an arbitrary generating polynomial; its coefficient
// sum becomes the normalizing total.
//
// Errors:
//   - ErrZeroPolynomial: p has no non-zero coefficient.
func FromPolynomial(p poly.Polynomial, opts ...Option) (*Distribution, error) {
	if p.IsZero() {
		return nil, ErrZeroPolynomial
	}
	cfg := gather(opts)
	name := cfg.name
	if name == "" {
		name = "distribution"
	}
	return &Distribution{name: name, joint: p, total: p.Sum()}, nil
}

func gather(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Name returns the label of the distribution, by default the dice notation
// of the cluster it came from.
func (d *Distribution) Name() string { return d.name }

// Polynomial returns the joint generating polynomial.
func (d *Distribution) Polynomial() poly.Polynomial { return d.joint }

// MinSum is the smallest achievable total.
func (d *Distribution) MinSum() int { return d.joint.MinExp() }

// MaxSum is the largest achievable total.
func (d *Distribution) MaxSum() int { return d.joint.MaxExp() }

// Support returns [MinSum, MaxSum].
func (d *Distribution) Support() (lo, hi int) {
	return d.MinSum(), d.MaxSum()
}

// Len is the number of totals in the support, MaxSum-MinSum+1.
func (d *Distribution) Len() int { return d.joint.Len() }

// Sums returns MinSum, MinSum+1, …, MaxSum.
func (d *Distribution) Sums() []int {
	out := make([]int, d.Len())
	for i := range out {
		out[i] = d.MinSum() + i
	}
	return out
}

// TotalOutcomes returns a copy of the sample-space size ∏ fᵢ^nᵢ.
func (d *Distribution) TotalOutcomes() *big.Int {
	return new(big.Int).Set(d.total)
}

// Ways returns the exact number of outcomes totalling t.
// It is 0 for any t outside the support and never fails.
func (d *Distribution) Ways(t int) *big.Int {
	return d.joint.Coeff(t)
}

// ProbabilityRat returns Ways(t) / TotalOutcomes exactly.
func (d *Distribution) ProbabilityRat(t int) *big.Rat {
	return new(big.Rat).SetFrac(d.Ways(t), d.total)
}

// Probability returns Ways(t) / TotalOutcomes rounded to the nearest float64.
func (d *Distribution) Probability(t int) float64 {
	f, _ := d.ProbabilityRat(t).Float64()
	return f
}

// FullSeries returns Ways(t) for every t in the support, in order.
// Zero counts strictly inside the support are kept.
func (d *Distribution) FullSeries() []*big.Int {
	return d.joint.Coefficients()
}

// ProbabilitySeries returns Probability(t) for every t in the support.
func (d *Distribution) ProbabilitySeries() []float64 {
	ways := d.joint.Coefficients()
	out := make([]float64, len(ways))
	r := new(big.Rat)
	for i, w := range ways {
		out[i], _ = r.SetFrac(w, d.total).Float64()
	}
	return out
}

// CumulativeSeries returns P(total ≤ t) for every t in the support.
//
// The running sum is kept as an exact integer count and converted per
// element, so the series is non-decreasing and its last element is exactly 1.
func (d *Distribution) CumulativeSeries() []float64 {
	ways := d.joint.Coefficients()
	out := make([]float64, len(ways))
	running := new(big.Int)
	r := new(big.Rat)
	for i, w := range ways {
		running.Add(running, w)
		out[i], _ = r.SetFrac(running, d.total).Float64()
	}
	return out
}

// AtMost returns P(total ≤ t).
func (d *Distribution) AtMost(t int) float64 {
	if t < d.MinSum() {
		return 0
	}
	if t >= d.MaxSum() {
		return 1
	}
	return d.rangeProbability(d.MinSum(), t)
}

// AtLeast returns P(total ≥ t).
func (d *Distribution) AtLeast(t int) float64 {
	if t <= d.MinSum() {
		return 1
	}
	if t > d.MaxSum() {
		return 0
	}
	return d.rangeProbability(t, d.MaxSum())
}

// rangeProbability sums Ways over [lo, hi] exactly and normalizes once.
func (d *Distribution) rangeProbability(lo, hi int) float64 {
	count := new(big.Int)
	for t := lo; t <= hi; t++ {
		count.Add(count, d.joint.Coeff(t))
	}
	f, _ := new(big.Rat).SetFrac(count, d.total).Float64()
	return f
}

// Percentile returns the smallest total t with P(total ≤ t) ≥ p.
// Percentile(0) is MinSum and Percentile(1) is MaxSum.
//
// Errors:
//   - ErrInvalidPercentile: p is NaN or outside [0, 1].
func (d *Distribution) Percentile(p float64) (int, error) {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidPercentile, p)
	}
	// cum/total ≥ p  ⇔  cum ≥ p·total, compared exactly.
	threshold := new(big.Rat).Mul(new(big.Rat).SetFloat64(p), new(big.Rat).SetInt(d.total))
	running := new(big.Rat)
	w := new(big.Rat)
	lo, hi := d.Support()
	for t := lo; t <= hi; t++ {
		running.Add(running, w.SetInt(d.joint.Coeff(t)))
		if running.Cmp(threshold) >= 0 {
			return t, nil
		}
	}
	return hi, nil
}
