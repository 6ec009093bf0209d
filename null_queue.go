package handoffqueue

import "sync/atomic"

// NullQueue implements Queue with no storage and no blocking. Push reports
// success and discards the value; the pop operations report "no value"
// immediately. It serves call sites that must hand a Queue to a collaborator
// but want all data dropped.
type NullQueue[T any] struct {
	id       string
	shutdown atomic.Bool
}

var _ Queue[int] = (*NullQueue[int])(nil)

// NewNull creates a no-op queue with the given diagnostic id.
func NewNull[T any](id string) *NullQueue[T] {
	return &NullQueue[T]{id: id}
}

// ID returns the diagnostic identifier of the queue.
func (q *NullQueue[T]) ID() string {
	return q.id
}

// Push discards value and reports success.
func (q *NullQueue[T]) Push(value T) bool {
	return true
}

// PopBlocking reports "no value" immediately; it never blocks.
func (q *NullQueue[T]) PopBlocking() (zero T, _ bool) {
	return zero, false
}

// Pop reports "no value" immediately.
func (q *NullQueue[T]) Pop() (zero T, _ bool) {
	return zero, false
}

// BatchPop enforces the same destination precondition as ThreadsafeQueue and
// reports false; there is never anything to drain.
func (q *NullQueue[T]) BatchPop(dst *Batch[T]) bool {
	if dst == nil {
		panic("handoffqueue: BatchPop destination is nil")
	}
	if dst.Len() != 0 {
		panic("handoffqueue: BatchPop destination must be empty")
	}
	return false
}

// Shutdown toggles the flag for interface parity. Nothing ever blocks on a
// NullQueue, so there is no one to wake.
func (q *NullQueue[T]) Shutdown() {
	q.shutdown.Store(true)
}

// Resume clears the flag set by Shutdown.
func (q *NullQueue[T]) Resume() {
	q.shutdown.Store(false)
}

// IsEmpty always reports true; nothing is ever stored.
func (q *NullQueue[T]) IsEmpty() bool {
	return true
}
