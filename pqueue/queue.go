/*
Package pqueue provides a priority queue keyed by numeric priority.

The element with the numerically lowest priority is served first. Elements
sharing a priority are served in the order they were enqueued.
*/
package pqueue

import (
	"github.com/zyedidia/generic/heap"
)

// entry wraps a queued value with its priority and insertion sequence.
type entry[T any] struct {
	priority float64
	seq      uint64
	data     T
}

// Queue is a min-priority queue backed by a binary heap.
// It is not safe for concurrent use.
type Queue[T any] struct {
	items *heap.Heap[entry[T]]
	seq   uint64
}

// New creates an empty Queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{
		items: heap.New(func(a, b entry[T]) bool {
			if a.priority != b.priority {
				return a.priority < b.priority
			}
			return a.seq < b.seq
		}),
	}
}

// Enqueue adds data to the queue with the given priority.
func (q *Queue[T]) Enqueue(priority float64, data T) {
	q.items.Push(entry[T]{priority: priority, seq: q.seq, data: data})
	q.seq++
}

// Dequeue removes and returns the element with the lowest priority.
// The second result is false when the queue is empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	e, ok := q.items.Pop()
	return e.data, ok
}

// Peek returns the element with the lowest priority without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	e, ok := q.items.Peek()
	return e.data, ok
}

// Size returns the number of queued elements.
func (q *Queue[T]) Size() int {
	return q.items.Size()
}
