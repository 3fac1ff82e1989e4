package strqueue

// node represents an element in the queue chain.
type node struct {
	value string
	next  *node
}

// Queue is a singly-linked queue of strings.
//
// The zero value is an empty queue that uses the default allocator.
type Queue struct {
	head *node
	tail *node
	size int

	alloc Allocator
}

// New creates an empty queue.
func New(opts ...Option) *Queue {
	q := &Queue{alloc: DefaultAllocator()}
	for _, opt := range opts {
		opt(q)
	}

	return q
}

// Free releases every element from head to tail and leaves the queue empty.
//
// The queue must not be used by the caller after Free returns, it is only kept
// in a consistent empty state so that a stray call cannot corrupt memory.
func (q *Queue) Free() {
	if q == nil {
		return
	}

	cur := q.head
	for cur != nil {
		next := cur.next
		cur.next = nil
		cur.value = ""
		cur = next
	}

	q.head = nil
	q.tail = nil
	q.size = 0
}

// InsertHead stores a copy of s as the new first element.
//
// It returns ErrAbsentQueue if q is nil and ErrAllocationFailure if the copy
// could not be made. The queue is unchanged on error.
func (q *Queue) InsertHead(s string) error {
	n, err := q.newNode(s)
	if err != nil {
		return err
	}

	n.next = q.head
	q.head = n
	if q.tail == nil {
		q.tail = n
	}
	q.size++

	return nil
}

// InsertTail stores a copy of s as the new last element.
//
// It returns ErrAbsentQueue if q is nil and ErrAllocationFailure if the copy
// could not be made. The queue is unchanged on error.
func (q *Queue) InsertTail(s string) error {
	n, err := q.newNode(s)
	if err != nil {
		return err
	}

	if q.tail == nil {
		q.head = n
	} else {
		q.tail.next = n
	}
	q.tail = n
	q.size++

	return nil
}

// RemoveHead removes the first element and copies its string into dst.
//
// At most len(dst)-1 bytes are copied and a zero byte is written right after
// them, so longer strings are truncated. It returns the number of string bytes
// copied.
//
// It returns ErrAbsentQueue, ErrEmptyQueue or ErrInvalidDestination without
// touching the queue or dst.
func (q *Queue) RemoveHead(dst []byte) (int, error) {
	if q == nil {
		return 0, ErrAbsentQueue
	}
	if q.size == 0 {
		return 0, ErrEmptyQueue
	}
	if len(dst) == 0 {
		return 0, ErrInvalidDestination
	}

	n := q.head
	q.head = n.next
	if q.head == nil {
		q.tail = nil
	}
	q.size--

	copied := copy(dst[:len(dst)-1], n.value)
	dst[copied] = 0

	n.next = nil
	n.value = ""

	return copied, nil
}

// Size returns the number of elements in the queue, or 0 if q is nil.
func (q *Queue) Size() int {
	if q == nil {
		return 0
	}

	return q.size
}

// IsEmpty returns true if the queue is nil or has no elements.
func (q *Queue) IsEmpty() bool {
	return q.Size() == 0
}

// Reverse reverses the order of elements in place by relinking the chain.
// It allocates nothing and is a no-op for nil, empty and single-element queues.
func (q *Queue) Reverse() {
	if q == nil || q.size < 2 {
		return
	}

	var prev *node
	cur := q.head
	for cur != nil {
		next := cur.next
		cur.next = prev
		prev = cur
		cur = next
	}

	q.head, q.tail = q.tail, q.head
}

func (q *Queue) newNode(s string) (*node, error) {
	if q == nil {
		return nil, ErrAbsentQueue
	}
	if q.alloc == nil {
		q.alloc = DefaultAllocator()
	}

	v, ok := q.alloc.CopyString(s)
	if !ok {
		return nil, ErrAllocationFailure
	}

	return &node{value: v}, nil
}
