package dice

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter is the umbrella for every malformed dice input.
	// All validation errors below satisfy errors.Is(err, ErrInvalidParameter).
	ErrInvalidParameter = errors.New("dice: invalid parameter")

	// ErrInvalidCount indicates a Set with fewer than one die.
	ErrInvalidCount = fmt.Errorf("%w: dice count must be at least 1", ErrInvalidParameter)

	// ErrInvalidFaces indicates a Set whose dice have fewer than one face.
	ErrInvalidFaces = fmt.Errorf("%w: faces must be at least 1", ErrInvalidParameter)

	// ErrEmptyCluster indicates a Cluster without any Set.
	ErrEmptyCluster = fmt.Errorf("%w: cluster must contain at least one set", ErrInvalidParameter)

	// ErrSyntax indicates Parse could not read a dice expression.
	ErrSyntax = fmt.Errorf("%w: malformed dice expression", ErrInvalidParameter)
)
