package distribution

import (
	"math"
	"math/big"
)

// Stats summarizes a distribution. Moments are computed exactly and
// rounded once at the end.
type Stats struct {
	Min      int
	Max      int
	Mean     float64
	Variance float64
	StdDev   float64
	Median   int
	Modes    []int // every total sharing the largest count, ascending
}

// Stats computes the summary of d.
//
// Complexity: O(Len) big-integer operations.
func (d *Distribution) Stats() Stats {
	lo, hi := d.Support()
	first := new(big.Int)  // Σ t·w
	second := new(big.Int) // Σ t²·w
	term := new(big.Int)
	best := new(big.Int)
	var modes []int

	for t := lo; t <= hi; t++ {
		w := d.joint.Coeff(t)
		bt := big.NewInt(int64(t))
		term.Mul(bt, w)
		first.Add(first, term)
		term.Mul(term, bt)
		second.Add(second, term)

		switch w.Cmp(best) {
		case 1:
			best.Set(w)
			modes = append(modes[:0], t)
		case 0:
			if w.Sign() > 0 {
				modes = append(modes, t)
			}
		}
	}

	total := new(big.Rat).SetInt(d.total)
	mean := new(big.Rat).Quo(new(big.Rat).SetInt(first), total)
	variance := new(big.Rat).Quo(new(big.Rat).SetInt(second), total)
	variance.Sub(variance, new(big.Rat).Mul(mean, mean))

	meanF, _ := mean.Float64()
	varF, _ := variance.Float64()
	median, _ := d.Percentile(0.5)

	return Stats{
		Min:      lo,
		Max:      hi,
		Mean:     meanF,
		Variance: varF,
		StdDev:   math.Sqrt(varF),
		Median:   median,
		Modes:    modes,
	}
}
