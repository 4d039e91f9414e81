package distribution

import "errors"

var (
	// ErrZeroPolynomial indicates FromPolynomial received the zero polynomial,
	// which has no outcomes to normalize by.
	ErrZeroPolynomial = errors.New("distribution: polynomial has no outcomes")

	// ErrInvalidPercentile indicates Percentile got p outside [0, 1] or NaN.
	ErrInvalidPercentile = errors.New("distribution: percentile must be within [0, 1]")
)
