// SPDX-License-Identifier: MIT
// Package: lvdice/poly
//
// options.go: functional options for Mul and Pow.
//
// Contract:
//   • Options are functional (type Option func(*mulConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//   • Options never change results, only the multiplication route.

package poly

// DefaultKroneckerThreshold is the shorter-operand length from which Auto
// switches from schoolbook convolution to Kronecker substitution.
const DefaultKroneckerThreshold = 64

// Option customizes polynomial multiplication.
type Option func(*mulConfig)

type mulConfig struct {
	strategy  Strategy
	threshold int
}

// WithStrategy forces a multiplication strategy.
// Panics on values outside Auto, Schoolbook, Kronecker.
func WithStrategy(s Strategy) Option {
	if s < Auto || s > Kronecker {
		panic("poly: WithStrategy(unknown)")
	}
	return func(c *mulConfig) {
		c.strategy = s
	}
}

// WithKroneckerThreshold sets the operand length at which Auto switches to
// Kronecker substitution. Panics on n < 1.
func WithKroneckerThreshold(n int) Option {
	if n < 1 {
		panic("poly: WithKroneckerThreshold(n < 1)")
	}
	return func(c *mulConfig) {
		c.threshold = n
	}
}

// gatherOptions resolves opts on top of the defaults.
func gatherOptions(opts []Option) mulConfig {
	cfg := mulConfig{
		strategy:  Auto,
		threshold: DefaultKroneckerThreshold,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// pick returns the concrete strategy for operands of lengths n and m.
func (c mulConfig) pick(n, m int) Strategy {
	if c.strategy != Auto {
		return c.strategy
	}
	if n >= c.threshold && m >= c.threshold {
		return Kronecker
	}
	return Schoolbook
}
