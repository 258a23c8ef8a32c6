package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueue_FIFO(t *testing.T) {
	q := New[int]()

	q.Enqueue(1)
	q.Enqueue(2)
	q.Enqueue(3)

	item, ok := q.Dequeue()
	assert.True(t, ok)
	assert.Equal(t, 1, item)

	item, ok = q.Peek()
	assert.True(t, ok)
	assert.Equal(t, 2, item)
	assert.Equal(t, 2, q.Len())

	item, _ = q.Dequeue()
	assert.Equal(t, 2, item)
	item, _ = q.Dequeue()
	assert.Equal(t, 3, item)

	_, ok = q.Dequeue()
	assert.False(t, ok, "dequeue on empty queue")
	_, ok = q.Peek()
	assert.False(t, ok)
}

func TestQueue_DrainAndRemaining(t *testing.T) {
	q := New("a", "b", "c")
	_, _ = q.Dequeue()

	assert.Equal(t, []string{"b", "c"}, q.Remaining())
	assert.Equal(t, 2, q.Len(), "remaining must not consume")

	assert.Equal(t, []string{"b", "c"}, q.Drain())
	assert.Equal(t, 0, q.Len())
	assert.Empty(t, q.Drain())

	q.Enqueue("d")
	item, ok := q.Dequeue()
	assert.True(t, ok)
	assert.Equal(t, "d", item)
}
