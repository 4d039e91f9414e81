// Package roll draws random dice totals for clusters.
//
// Sampling is a thin boundary around a uniform integer source: each die is
// one independent draw in [1, f]. It exists to compare simulated totals with
// the exact distributions computed by package distribution, not as an
// engine of its own.
//
// A Roller built with New() is seeded from crypto/rand and is not
// reproducible. Use WithSeed for deterministic tests and WithSource to plug
// in any generator. A Roller is NOT safe for concurrent use, because
// math/rand.Rand is not.
package roll
