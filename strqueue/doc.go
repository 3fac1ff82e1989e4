// Package strqueue provides a singly-linked queue of owned strings.
//
// A Queue supports O(1) insertion at both ends, O(1) removal from the head into a
// caller supplied fixed-capacity buffer, O(1) size queries, in-place reversal and a
// stable merge sort over the linked chain.
//
// Ownership:
// Every inserted string is copied, so the queue never shares memory with the caller.
// The head pointer is the only owning reference into the chain; the tail pointer is
// an alias of the last node and is re-pointed by every operation that can change it.
//
// Truncation:
// RemoveHead copies at most len(dst)-1 bytes of the removed string and writes a zero
// byte after them, so a too-small buffer yields a truncated copy and never an
// out-of-range write.
//
// Concurrency:
// A Queue has no internal synchronization. Callers that share a queue between
// goroutines must serialize access, for example with the registry package.
package strqueue
