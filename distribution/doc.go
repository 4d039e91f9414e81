// Package distribution extracts exact outcome counts and probabilities from
// a joint generating polynomial.
//
// A Distribution is built once per cluster (New) or from any non-zero
// polynomial (FromPolynomial) and then answers queries without recomputing:
//
//	Ways(t)             exact count, *big.Int; 0 outside the support
//	Probability(t)      Ways(t) / TotalOutcomes as float64
//	ProbabilityRat(t)   the same ratio, exact
//	FullSeries()        Ways over MinSum..MaxSum, interior zeros kept
//	ProbabilitySeries() probabilities over the same domain
//	CumulativeSeries()  running probability; non-decreasing, ends at 1
//	Stats()             mean, variance, standard deviation, median, modes
//
// Queries outside [MinSum, MaxSum] are not errors: they are well-defined
// zero answers. Counts stay exact until the final conversion to float64;
// running sums are accumulated as *big.Rat so that the cumulative series
// cannot drift above 1 or lose monotonicity.
package distribution
