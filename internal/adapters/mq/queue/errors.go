package queue

import "errors"

// Sentinel kinds for queue errors.
var (
	// ErrClosed reports an operation against a queue that was already
	// closed.
	ErrClosed = errors.New("queue closed")
)
