package distribution

import "github.com/katalvlaran/lvdice/poly"

// Tolerance is the absolute error accepted when comparing float64
// probability totals against 1.
const Tolerance = 1e-9

// Option customizes New.
type Option func(*config)

type config struct {
	polyOpts []poly.Option
	name     string
}

// WithPolyOptions forwards multiplication options (strategy, threshold) to
// the cluster combiner.
func WithPolyOptions(opts ...poly.Option) Option {
	return func(c *config) {
		c.polyOpts = append(c.polyOpts, opts...)
	}
}

// WithName overrides the label reported by Name. Panics on an empty name.
func WithName(name string) Option {
	if name == "" {
		panic("distribution: WithName(\"\")")
	}
	return func(c *config) {
		c.name = name
	}
}
