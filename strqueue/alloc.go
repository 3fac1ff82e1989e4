package strqueue

import "strings"

// Allocator produces the owned copy of a string stored in a queue element.
//
// CopyString returns the copy and true, or false if the copy could not be made.
// A returned copy must not share memory with s.
type Allocator interface {
	CopyString(s string) (string, bool)
}

// AllocatorFunc adapts an ordinary function to the Allocator interface.
type AllocatorFunc func(s string) (string, bool)

// CopyString calls f(s).
func (f AllocatorFunc) CopyString(s string) (string, bool) {
	return f(s)
}

type cloneAllocator struct{}

func (cloneAllocator) CopyString(s string) (string, bool) {
	return strings.Clone(s), true
}

// DefaultAllocator returns the allocator used when no WithAllocator option is given.
// It never fails; the Go runtime aborts the process on out-of-memory instead.
func DefaultAllocator() Allocator {
	return cloneAllocator{}
}

// Option configures a Queue created by New.
type Option func(*Queue)

// WithAllocator sets the allocator used to copy inserted strings.
// A nil allocator keeps the default.
func WithAllocator(a Allocator) Option {
	return func(q *Queue) {
		if a != nil {
			q.alloc = a
		}
	}
}
