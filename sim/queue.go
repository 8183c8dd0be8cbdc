package sim

import (
	"container/heap"
)

// actionQueue is a min-heap of actions keyed by time. It does not lock; the
// scheduler guards it with its own mutex so that the emptiness check, the wait
// and the pop happen under one lock.
type actionQueue[T any] struct {
	actions actionHeap[T]
}

func newActionQueue[T any](less func(a, b T) bool) *actionQueue[T] {
	q := &actionQueue[T]{}
	q.actions = actionHeap[T]{
		less:  less,
		items: make([]TimedAction[T], 0),
	}
	heap.Init(&q.actions)

	return q
}

func (q *actionQueue[T]) Push(action TimedAction[T]) {
	heap.Push(&q.actions, action)
}

// Pop removes and returns the earliest action. It returns nil if the queue is
// empty.
func (q *actionQueue[T]) Pop() TimedAction[T] {
	if q.actions.Len() == 0 {
		return nil
	}

	return heap.Pop(&q.actions).(TimedAction[T])
}

// Peek returns the earliest action without removing it. It returns nil if the
// queue is empty.
func (q *actionQueue[T]) Peek() TimedAction[T] {
	if q.actions.Len() == 0 {
		return nil
	}

	return q.actions.items[0]
}

func (q *actionQueue[T]) Len() int {
	return q.actions.Len()
}

// Clear drops all the actions and returns how many were dropped.
func (q *actionQueue[T]) Clear() int {
	n := q.actions.Len()
	clear(q.actions.items)
	q.actions.items = q.actions.items[:0]

	return n
}

type actionHeap[T any] struct {
	less  func(a, b T) bool
	items []TimedAction[T]
}

// Len returns the number of actions in the heap.
func (h actionHeap[T]) Len() int {
	return len(h.items)
}

// Less returns true if the i-th action happens before the j-th action.
func (h actionHeap[T]) Less(i, j int) bool {
	return h.less(h.items[i].Time(), h.items[j].Time())
}

// Swap changes the position of two actions in the heap.
func (h actionHeap[T]) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
}

// Push adds an action to the end of the heap storage.
func (h *actionHeap[T]) Push(x any) {
	h.items = append(h.items, x.(TimedAction[T]))
}

// Pop removes and returns the last action of the heap storage.
func (h *actionHeap[T]) Pop() any {
	old := h.items
	n := len(old)
	action := old[n-1]
	old[n-1] = nil
	h.items = old[:n-1]

	return action
}
