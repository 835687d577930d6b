package stream

import "errors"

// Sentinel kinds for stream errors.
var (
	// ErrExhausted reports a pull against a stream with no players left.
	ErrExhausted = errors.New("no players remaining in stream")
)
