package strqueue

// Sort orders the elements by ascending byte-wise lexicographic value.
//
// The sort is a stable merge sort that splices nodes instead of copying values;
// elements that compare equal keep their relative order. It is a no-op for nil
// queues and queues with fewer than two elements.
func (q *Queue) Sort() {
	if q == nil || q.size < 2 {
		return
	}

	q.head = mergeSort(q.head)

	// the old tail is almost never the new last node
	last := q.head
	for last.next != nil {
		last = last.next
	}
	q.tail = last
}

// mergeSort sorts a nil-terminated chain and returns its new head.
// Recursion depth is bounded by log2 of the chain length.
func mergeSort(head *node) *node {
	if head == nil || head.next == nil {
		return head
	}

	right := split(head)

	return merge(mergeSort(head), mergeSort(right))
}

// split cuts the chain after its middle node and returns the head of the second half.
// The first half keeps at least as many nodes as the second one.
func split(head *node) *node {
	slow, fast := head, head.next
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
	}

	right := slow.next
	slow.next = nil

	return right
}

// merge splices two sorted chains into one, taking from left on ties.
func merge(left, right *node) *node {
	var dummy node
	tail := &dummy

	for left != nil && right != nil {
		if left.value <= right.value {
			tail.next = left
			left = left.next
		} else {
			tail.next = right
			right = right.next
		}
		tail = tail.next
	}

	if left != nil {
		tail.next = left
	} else {
		tail.next = right
	}

	return dummy.next
}
