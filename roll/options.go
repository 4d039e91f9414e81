package roll

// Option customizes a Roller.
type Option func(*Roller)

// WithSeed makes the Roller deterministic.
func WithSeed(seed int64) Option {
	return func(r *Roller) {
		r.src = rngFromSeed(seed)
	}
}

// WithSource supplies the random source directly. Panics on nil.
func WithSource(src Source) Option {
	if src == nil {
		panic("roll: WithSource(nil)")
	}
	return func(r *Roller) {
		r.src = src
	}
}
