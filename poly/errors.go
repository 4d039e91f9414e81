// SPDX-License-Identifier: MIT
// Package: lvdice/poly
//
// errors.go: sentinel errors for the poly package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Algorithms never panic on caller input; option constructors (WithX) do.

package poly

import "errors"

var (
	// ErrNegativeCoefficient indicates a constructor received a coefficient < 0.
	// Generating polynomials count outcomes, so every coefficient is ≥ 0.
	ErrNegativeCoefficient = errors.New("poly: coefficient must be non-negative")

	// ErrNilCoefficient indicates FromBig received a nil *big.Int.
	ErrNilCoefficient = errors.New("poly: nil coefficient")

	// ErrEmptyRange indicates Uniform was asked for an interval with hi < lo.
	ErrEmptyRange = errors.New("poly: empty exponent range")

	// ErrNegativeExponent indicates Pow was called with n < 0.
	ErrNegativeExponent = errors.New("poly: exponent must be non-negative")

	// ErrUnknownStrategy indicates ParseStrategy could not recognise its input.
	ErrUnknownStrategy = errors.New("poly: unknown multiplication strategy")
)
