package queue

// Q is a generic FIFO queue used to hold tokens awaiting consumption.
// Enqueue is O(1) amortized, Dequeue is O(1).
type Q[T any] struct {
	items []T
	head  int
}

// New creates a new Q, optionally seeded with items
func New[T any](items ...T) *Q[T] {
	q := &Q[T]{}
	q.items = append(q.items, items...)
	return q
}

// Enqueue adds an item to the end of the queue
func (q *Q[T]) Enqueue(item T) {
	q.items = append(q.items, item)
}

// Dequeue removes and returns the first item from the queue
func (q *Q[T]) Dequeue() (T, bool) {
	if q.Len() == 0 {
		var zero T
		return zero, false
	}
	item := q.items[q.head]
	var zero T
	q.items[q.head] = zero
	q.head++
	return item, true
}

// Peek returns the first item without removing it
func (q *Q[T]) Peek() (T, bool) {
	if q.Len() == 0 {
		var zero T
		return zero, false
	}
	return q.items[q.head], true
}

// Drain removes and returns all remaining items in queue order
func (q *Q[T]) Drain() []T {
	rest := q.Remaining()
	q.Clear()
	return rest
}

// Remaining returns a copy of the remaining items without consuming them
func (q *Q[T]) Remaining() []T {
	rest := make([]T, q.Len())
	copy(rest, q.items[q.head:])
	return rest
}

// Len returns the number of items in the Q
func (q *Q[T]) Len() int {
	return len(q.items) - q.head
}

// Clear removes all items
func (q *Q[T]) Clear() {
	q.items = q.items[:0]
	q.head = 0
}
