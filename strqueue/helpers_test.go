package strqueue

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// values walks the chain from head and returns the stored strings.
func values(q *Queue) []string {
	vals := make([]string, 0, q.Size())
	for n := q.head; n != nil; n = n.next {
		vals = append(vals, n.value)
	}

	return vals
}

// checkInvariants verifies the structural invariants of q.
func checkInvariants(q *Queue) error {
	if q.head == nil || q.tail == nil || q.size == 0 {
		if q.head != nil || q.tail != nil || q.size != 0 {
			return fmt.Errorf("inconsistent empty state: head=%p tail=%p size=%d", q.head, q.tail, q.size)
		}
		return nil
	}

	count := 0
	var last *node
	for n := q.head; n != nil; n = n.next {
		count++
		if count > q.size {
			return errors.New("chain is longer than size, or cyclic")
		}
		last = n
	}

	if count != q.size {
		return fmt.Errorf("size is %d but chain has %d nodes", q.size, count)
	}
	if last != q.tail {
		return errors.New("tail does not point to the last node")
	}
	if q.tail.next != nil {
		return errors.New("tail.next is not nil")
	}

	return nil
}

func requireValid(t *testing.T, q *Queue) {
	t.Helper()
	require.NoError(t, checkInvariants(q))
}

func newQueueOf(t *testing.T, vals ...string) *Queue {
	t.Helper()
	q := New()
	for _, v := range vals {
		require.NoError(t, q.InsertTail(v))
	}

	return q
}

// guardedBuffer returns a buffer of capacity bytes surrounded by guard bytes.
// The returned slice has capacity exactly equal to its length, so writes past the end
// would panic, and the guards detect writes through the backing array.
func guardedBuffer(capacity int) (full []byte, dst []byte) {
	const guard = 4
	full = make([]byte, capacity+2*guard)
	for i := range full {
		full[i] = 0xAA
	}

	return full, full[guard : guard+capacity : guard+capacity]
}

func requireGuardsIntact(t *testing.T, full []byte, capacity int) {
	t.Helper()
	const guard = 4
	for i := 0; i < guard; i++ {
		require.Equal(t, byte(0xAA), full[i], "front guard byte %d overwritten", i)
		require.Equal(t, byte(0xAA), full[guard+capacity+i], "rear guard byte %d overwritten", i)
	}
}

// cString returns the bytes of buf up to the first zero byte.
func cString(buf []byte) string {
	for i, b := range buf {
		if b == 0 {
			return string(buf[:i])
		}
	}

	return string(buf)
}
