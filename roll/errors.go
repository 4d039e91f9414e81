package roll

import "errors"

// ErrInvalidTrials indicates RollN was asked for fewer than one roll.
var ErrInvalidTrials = errors.New("roll: number of rolls must be at least 1")
