// Package config loads lvdice settings from the environment.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/katalvlaran/lvdice/poly"
)

// Prefix is prepended to every variable name, e.g. LVDICE_FORMAT.
const Prefix = "LVDICE_"

// ErrInvalidConfig indicates a parsed value outside its allowed domain.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config holds the environment-backed settings. Flags override them.
type Config struct {
	// Format is the plot output: "text" for the terminal, or an image
	// format gonum/plot can encode (png, svg, pdf, ...).
	Format string `env:"FORMAT" envDefault:"text"`

	// OutputDir receives image files written without an explicit -out path.
	OutputDir string `env:"OUTPUT_DIR" envDefault:"."`

	// WidthIn and HeightIn size image plots, in inches.
	WidthIn  float64 `env:"WIDTH_IN" envDefault:"6"`
	HeightIn float64 `env:"HEIGHT_IN" envDefault:"4"`

	// Seed makes the roll command reproducible; 0 means unseeded.
	Seed int64 `env:"SEED"`

	// Strategy selects polynomial multiplication: auto, schoolbook, kronecker.
	Strategy string `env:"STRATEGY" envDefault:"auto"`
}

// Load parses Config from environ, or from the process environment when
// environ is nil, and validates it.
func Load(environ map[string]string) (Config, error) {
	opts := env.Options{Prefix: Prefix}
	if environ != nil {
		opts.Environment = environ
	}
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value domains.
func (c Config) Validate() error {
	if c.Format == "" {
		return fmt.Errorf("%w: empty format", ErrInvalidConfig)
	}
	if c.WidthIn <= 0 || c.HeightIn <= 0 {
		return fmt.Errorf("%w: plot size %gx%g in", ErrInvalidConfig, c.WidthIn, c.HeightIn)
	}
	if _, err := poly.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// PolyStrategy returns the parsed multiplication strategy.
func (c Config) PolyStrategy() poly.Strategy {
	s, err := poly.ParseStrategy(c.Strategy)
	if err != nil {
		return poly.Auto
	}
	return s
}
