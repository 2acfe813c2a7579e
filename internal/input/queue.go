package input

// Queue is a frame-scoped event queue. Producers push during a frame and the
// single consumer drains it once; anything left over is discarded with Clear
// rather than carried into the next frame.
type Queue[T any] struct {
	items []T
}

func (q *Queue[T]) Push(v T) {
	q.items = append(q.items, v)
}

func (q *Queue[T]) Len() int {
	return len(q.items)
}

func (q *Queue[T]) IsEmpty() bool {
	return len(q.items) == 0
}

// Drain returns the queued events in push order and empties the queue.
func (q *Queue[T]) Drain() []T {
	items := q.items
	q.items = nil
	return items
}

func (q *Queue[T]) Clear() {
	q.items = nil
}
