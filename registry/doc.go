// Package registry manages named strqueue queues for programs that drive many
// queues at once, such as test harnesses, REPLs and fuzzers.
//
// A strqueue.Queue has no internal synchronization. Registry provides it from the
// outside: every operation on a handle runs while holding that handle's lock, and
// the handle table itself is a concurrent map, so a Registry can be shared freely
// between goroutines.
//
// Handle lifecycle:
//   - Create registers an empty queue under a name.
//   - Destroy frees the queue and forgets the name. Any later operation on the
//     name returns ErrUnknownHandle instead of touching freed state.
//
// Errors returned by the queue (strqueue.ErrEmptyQueue, strqueue.ErrInvalidDestination,
// strqueue.ErrAllocationFailure) are wrapped with the operation and handle name and
// can be tested with errors.Is.
//
// Configuration:
// A Registry is configured with functional options (WithLogger, WithRemoveBufferSize,
// WithAllocator, WithMetrics, WithLogLevel), or from environment variables with
// OptionsFromEnv.
//
// Metrics:
// Operation counters are kept in a Metrics value which can be exported to
// Prometheus with Metrics.Register.
package registry
