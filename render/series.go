package render

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/katalvlaran/lvdice/distribution"
)

// Series is what a Renderer displays: Y[i] is plotted against X[i].
type Series struct {
	X      []int
	Y      []float64
	XLabel string
	YLabel string
	Title  string
}

// Validate checks the series is non-empty and aligned.
func (s Series) Validate() error {
	if len(s.X) == 0 {
		return ErrEmptySeries
	}
	if len(s.X) != len(s.Y) {
		return fmt.Errorf("%w: %d x, %d y", ErrLengthMismatch, len(s.X), len(s.Y))
	}
	return nil
}

// Kind selects which series of a distribution is rendered.
type Kind int

const (
	// Counts plots the exact number of ways per total.
	Counts Kind = iota
	// Probabilities plots P(total = t).
	Probabilities
	// Cumulative plots P(total ≤ t).
	Cumulative
)

// String returns the flag spelling of k.
func (k Kind) String() string {
	switch k {
	case Counts:
		return "counts"
	case Probabilities:
		return "probability"
	case Cumulative:
		return "cumulative"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps "counts", "probability" or "cumulative" to a Kind.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "counts", "ways":
		return Counts, nil
	case "", "probability", "p":
		return Probabilities, nil
	case "cumulative", "cdf":
		return Cumulative, nil
	default:
		return Counts, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
}

// SeriesOf builds the series of kind k from d.
func SeriesOf(d *distribution.Distribution, k Kind) (Series, error) {
	switch k {
	case Counts:
		return CountsSeries(d), nil
	case Probabilities:
		return ProbabilitySeries(d), nil
	case Cumulative:
		return CumulativeSeries(d), nil
	default:
		return Series{}, fmt.Errorf("%w: %s", ErrUnknownKind, k)
	}
}

// CountsSeries plots Ways against the total. Counts are converted to
// float64 only here, at the display boundary.
func CountsSeries(d *distribution.Distribution) Series {
	ways := d.FullSeries()
	y := make([]float64, len(ways))
	f := new(big.Float)
	for i, w := range ways {
		y[i], _ = f.SetInt(w).Float64()
	}
	return Series{
		X:      d.Sums(),
		Y:      y,
		XLabel: "Sum",
		YLabel: "Ways",
		Title:  d.Name(),
	}
}

// ProbabilitySeries plots P(total = t).
func ProbabilitySeries(d *distribution.Distribution) Series {
	return Series{
		X:      d.Sums(),
		Y:      d.ProbabilitySeries(),
		XLabel: "Sum",
		YLabel: "Probability",
		Title:  d.Name(),
	}
}

// CumulativeSeries plots P(total ≤ t).
func CumulativeSeries(d *distribution.Distribution) Series {
	return Series{
		X:      d.Sums(),
		Y:      d.CumulativeSeries(),
		XLabel: "Sum",
		YLabel: "Cumulative probability",
		Title:  d.Name(),
	}
}
