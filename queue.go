// Package handoffqueue provides an unbounded, thread-safe FIFO queue for
// handing ownership of values between producer and consumer goroutines.
//
// The queue carries an explicit shutdown/resume protocol: Shutdown wakes every
// blocked consumer and makes all push and pop operations report "no value"
// until Resume clears the flag again. This lets pipelines tear down without
// leaving consumers parked on a queue that will never receive data.
//
// Two implementations of the Queue interface exist. ThreadsafeQueue is the
// real monitor-based queue. NullQueue is a no-op stand-in for call sites that
// need the interface but want to discard all data.
package handoffqueue

import (
	"github.com/rs/zerolog"

	"github.com/timzifer/handoff_queue/internal/queue"
)

// Queue is the handoff surface shared by ThreadsafeQueue and NullQueue.
// Callers pick the implementation at construction time.
type Queue[T any] interface {
	// ID returns the diagnostic identifier of the queue instance.
	ID() string
	// Push hands ownership of value to the queue. It reports false when the
	// queue is shut down; the value is not enqueued in that case.
	Push(value T) bool
	// PopBlocking waits until a value is available or the queue is shut
	// down. Shutdown wins: it reports false even if values remain queued.
	PopBlocking() (T, bool)
	// Pop checks once, without waiting, and reports false when the queue is
	// empty or shut down.
	Pop() (T, bool)
	// BatchPop detaches the entire current contents into dst in one step.
	// dst must be non-nil and empty; violating that is a programming error
	// and panics. Reports false when the queue is empty or shut down.
	BatchPop(dst *Batch[T]) bool
	// Shutdown sets the shutdown flag and wakes all waiters. Idempotent.
	Shutdown()
	// Resume clears the shutdown flag and wakes all waiters. It does not
	// recover anything; it only re-enables future operations.
	Resume()
	// IsEmpty reports whether the queue currently holds no values. The
	// answer is advisory and may be stale as soon as it returns.
	IsEmpty() bool
}

// Batch receives the contents of a bulk drain. Values come out in the same
// order a sequence of single pops would have produced. The zero value is an
// empty batch ready for use.
type Batch[T any] struct {
	list queue.FIFO[T]
}

// Len returns the number of values remaining in the batch.
func (b *Batch[T]) Len() int {
	return b.list.Len()
}

// Next removes and returns the oldest value in the batch.
func (b *Batch[T]) Next() (T, bool) {
	return b.list.PopFront()
}

type options struct {
	logger zerolog.Logger
}

// Option configures a ThreadsafeQueue.
type Option func(*options)

// WithLogger sets the logger that receives the queue's diagnostic events.
// Without it the queue logs nothing.
func WithLogger(logger zerolog.Logger) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}

func defaultOptions() options {
	return options{
		logger: zerolog.Nop(),
	}
}
