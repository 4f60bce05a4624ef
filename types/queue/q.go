// Package queue provides a typed stack/queue on top of ef-ds/deque.
package queue

import (
	"github.com/ef-ds/deque"
)

// Q is a generic structure supporting both stack and queue operations,
// all O(1) amortized.
type Q[T any] struct {
	items deque.Deque
}

// New creates a new Q
func New[T any]() *Q[T] {
	return &Q[T]{}
}

// Stack Operations

// Push adds an item to the top of the stack (stack behavior)
func (q *Q[T]) Push(item T) {
	q.items.PushBack(item)
}

// Pop removes and returns the top item from the stack (stack behavior)
func (q *Q[T]) Pop() (T, bool) {
	item, ok := q.items.PopBack()
	if !ok {
		var zero T
		return zero, false
	}
	return item.(T), true
}

// Peek returns the top item from the stack without removing it
func (q *Q[T]) Peek() (T, bool) {
	item, ok := q.items.Back()
	if !ok {
		var zero T
		return zero, false
	}
	return item.(T), true
}

// Queue Operations

// Enqueue adds an item to the end of the queue (queue behavior)
func (q *Q[T]) Enqueue(item T) {
	q.items.PushBack(item)
}

// Dequeue removes and returns the first item from the queue (queue behavior)
func (q *Q[T]) Dequeue() (T, bool) {
	item, ok := q.items.PopFront()
	if !ok {
		var zero T
		return zero, false
	}
	return item.(T), true
}

// Front returns the first item of the queue without removing it
func (q *Q[T]) Front() (T, bool) {
	item, ok := q.items.Front()
	if !ok {
		var zero T
		return zero, false
	}
	return item.(T), true
}

// Len returns the number of items in the Q
func (q *Q[T]) Len() int {
	return q.items.Len()
}
