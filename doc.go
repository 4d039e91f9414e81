// Package lvdice computes exact distributions of dice totals, from a single
// die to large mixed pools, and renders them as tables and plots.
//
// 🚀 What is lvdice?
//
//	A small, pure-Go engine built on generating polynomials:
//		• poly:         exact polynomials, convolution, exponentiation by squaring
//		• dice:         dice sets, clusters, dice notation, generating functions
//		• distribution: ways, probabilities, cumulative series, statistics
//		• render:       gonum/plot and text sinks for the computed series
//		• roll:         uniform random rolls to compare against the exact numbers
//
// ✨ Why generating polynomials?
//
//   - Exact – counts are arbitrary-precision integers, never rounded
//   - Fast – p^n in O(log n) multiplications, FFT products for big pools
//   - Honest – sums outside the support are zero, not errors
//
// Under the hood:
//
//	poly/        : Polynomial, Mul (schoolbook | Kronecker), Pow
//	dice/        : Set, Cluster, Parse, GeneratingFunction, Combine
//	distribution/: Distribution, Stats
//	render/      : Series, Renderer, PlotRenderer, TextRenderer
//	roll/        : Roller, RollSet, RollCluster, RollN
//	cmd/lvdice/  : command-line demo
//
// Quick example, two six-sided dice:
//
//	(x + x² + … + x⁶)² = x² + 2x³ + 3x⁴ + 4x⁵ + 5x⁶ + 6x⁷ + 5x⁸ + … + x¹²
//
// so 7 can be rolled 6 ways out of 36.
//
//	go get github.com/katalvlaran/lvdice
package lvdice
