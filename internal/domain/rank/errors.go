package rank

import "errors"

// Sentinel kinds for ranking errors.
var (
	// ErrInvalidInterval reports a non-positive reporting interval passed
	// to the online engine.
	ErrInvalidInterval = errors.New("reporting interval must be positive")
)
