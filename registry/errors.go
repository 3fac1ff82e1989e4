package registry

import "errors"

var (
	// ErrConfigNil indicates that a nil Config was provided to an option.
	ErrConfigNil = errors.New("registry config is nil")

	// ErrLoggerNil indicates that a nil logger was provided.
	ErrLoggerNil = errors.New("logger is nil")

	// ErrMetricsNil indicates that a nil Metrics was provided.
	ErrMetricsNil = errors.New("metrics is nil")
)

var (
	// ErrInvalidName indicates that an empty handle name was provided.
	ErrInvalidName = errors.New("handle name is empty")

	// ErrHandleExists indicates that a queue with the same name is already registered.
	ErrHandleExists = errors.New("handle already exists")

	// ErrUnknownHandle indicates that no queue is registered under the name,
	// either because it was never created or because it has been destroyed.
	ErrUnknownHandle = errors.New("unknown or destroyed handle")
)
