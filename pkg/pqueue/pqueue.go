// Package pqueue provides a priority queue that always surfaces the element
// its comparator ranks greatest. A Queue is not safe for concurrent use.
package pqueue

import "container/heap"

// CompareFn returns a negative number when a < b, zero when a == b and a
// positive number when a > b.
type CompareFn[T any] func(a, b T) int

type Queue[T any] struct {
	h items[T]
}

func New[T any](cmp CompareFn[T], init ...T) *Queue[T] {
	q := &Queue[T]{
		h: items[T]{
			cmp:  cmp,
			data: append(make([]T, 0, len(init)), init...),
		},
	}
	heap.Init(&q.h)
	return q
}

func (r *Queue[T]) Len() int { return r.h.Len() }

func (r *Queue[T]) Push(x T) { heap.Push(&r.h, x) }

// Pop removes and returns the greatest element. ok is false if r is empty.
func (r *Queue[T]) Pop() (x T, ok bool) {
	if r.h.Len() == 0 {
		return x, false
	}
	return heap.Pop(&r.h).(T), true
}

// Peek returns the greatest element without removing it.
func (r *Queue[T]) Peek() (x T, ok bool) {
	if r.h.Len() == 0 {
		return x, false
	}
	return r.h.data[0], true
}

// Drain pops every element, greatest first.
func (r *Queue[T]) Drain() []T {
	out := make([]T, 0, r.h.Len())
	for {
		x, ok := r.Pop()
		if !ok {
			return out
		}
		out = append(out, x)
	}
}

// items adapts container/heap, which pops its minimum, by swapping the
// comparator arguments in Less.
type items[T any] struct {
	cmp  CompareFn[T]
	data []T
}

func (h items[T]) Len() int           { return len(h.data) }
func (h items[T]) Less(i, j int) bool { return h.cmp(h.data[i], h.data[j]) > 0 }
func (h items[T]) Swap(i, j int)      { h.data[i], h.data[j] = h.data[j], h.data[i] }

func (h *items[T]) Push(x any) {
	h.data = append(h.data, x.(T))
}

func (h *items[T]) Pop() any {
	last := len(h.data) - 1
	x := h.data[last]
	var zero T
	h.data[last] = zero
	h.data = h.data[:last]
	return x
}
