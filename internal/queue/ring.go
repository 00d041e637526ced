// Package queue provides a growable FIFO queue backed by a circular buffer.
package queue

import "errors"

// DefaultCapacity is the initial slot count used by New.
const DefaultCapacity = 4

// ErrEmptyQueue is returned by Dequeue when the queue holds no elements.
var ErrEmptyQueue = errors.New("queue is empty")

// RingBuffer is a FIFO queue stored in a circular slice.
//
// Logical element i lives at physical slot (head+i) % len(buf). When the
// buffer is full the next Enqueue doubles the capacity and rewrites the
// elements from slot 0 in logical order. Capacity never shrinks.
//
// A RingBuffer is not safe for concurrent use.
type RingBuffer[T any] struct {
	buf  []T
	head int
	size int
}

// New returns an empty queue with DefaultCapacity slots.
func New[T any]() *RingBuffer[T] {
	return NewWithCapacity[T](DefaultCapacity)
}

// NewWithCapacity returns an empty queue with the given number of slots.
// A negative capacity is treated as zero; the first Enqueue then grows to 1.
func NewWithCapacity[T any](capacity int) *RingBuffer[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &RingBuffer[T]{buf: make([]T, capacity)}
}

// Len returns the number of queued elements.
func (q *RingBuffer[T]) Len() int { return q.size }

// Cap returns the number of physical slots currently allocated.
func (q *RingBuffer[T]) Cap() int { return len(q.buf) }

// Enqueue appends item at the back, growing the buffer first when full.
func (q *RingBuffer[T]) Enqueue(item T) {
	if q.size == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.size)%len(q.buf)] = item
	q.size++
}

// Dequeue removes and returns the front element.
// It returns ErrEmptyQueue and the zero value when the queue is empty.
func (q *RingBuffer[T]) Dequeue() (T, error) {
	var zero T
	if q.size == 0 {
		return zero, ErrEmptyQueue
	}
	item := q.buf[q.head]
	q.buf[q.head] = zero // drop the reference held by the vacated slot
	q.head = (q.head + 1) % len(q.buf)
	q.size--
	return item, nil
}

// Peek returns the front element without removing it.
func (q *RingBuffer[T]) Peek() (T, bool) {
	if q.size == 0 {
		var zero T
		return zero, false
	}
	return q.buf[q.head], true
}

// Slice returns a new slice holding the queued elements front to back.
func (q *RingBuffer[T]) Slice() []T {
	out := make([]T, q.size)
	for i := range q.size {
		out[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	return out
}

// grow doubles the capacity, unrolling the elements to start at slot 0.
func (q *RingBuffer[T]) grow() {
	newCap := len(q.buf) * 2
	if newCap == 0 {
		newCap = 1
	}
	nb := make([]T, newCap)
	for i := range q.size {
		nb[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	clear(q.buf)
	q.buf = nb
	q.head = 0
}
