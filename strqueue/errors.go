package strqueue

import "errors"

var (
	// ErrAbsentQueue indicates that an operation was issued against a nil queue.
	ErrAbsentQueue = errors.New("queue is nil")

	// ErrAllocationFailure indicates that the string copy for a new element could not be allocated.
	ErrAllocationFailure = errors.New("failed to allocate queue element")

	// ErrEmptyQueue indicates that a removal was attempted on a queue with no elements.
	ErrEmptyQueue = errors.New("queue is empty")

	// ErrInvalidDestination indicates that the output buffer of a removal is nil or has zero capacity.
	ErrInvalidDestination = errors.New("destination buffer is nil or zero length")
)
