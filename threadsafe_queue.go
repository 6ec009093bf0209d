package handoffqueue

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/timzifer/handoff_queue/internal/queue"
	"github.com/timzifer/handoff_queue/internal/telemetry"
)

// ThreadsafeQueue is an unbounded FIFO protected by a mutex/condition pair.
// Any number of producers and consumers may operate on it concurrently;
// instances share no state with each other.
type ThreadsafeQueue[T any] struct {
	id string

	mu       sync.Mutex
	notEmpty *sync.Cond
	list     queue.FIFO[T]

	// shutdown is read lock-free on the push/pop fast paths. Every write
	// happens under mu and is followed by a broadcast so that no waiter can
	// miss the transition.
	shutdown atomic.Bool

	logger  zerolog.Logger
	metrics *telemetry.HandoffMetrics
}

var _ Queue[int] = (*ThreadsafeQueue[int])(nil)

// New creates an empty queue in the Active state. The id only shows up in
// diagnostics; an empty id is replaced with a generated UUID so log events
// stay attributable.
func New[T any](id string, opts ...Option) *ThreadsafeQueue[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if id == "" {
		id = uuid.NewString()
	}

	q := &ThreadsafeQueue[T]{
		id:      id,
		logger:  o.logger,
		metrics: telemetry.DefaultHandoffMetrics(),
	}
	q.notEmpty = sync.NewCond(&q.mu)
	return q
}

// ID returns the diagnostic identifier of the queue.
func (q *ThreadsafeQueue[T]) ID() string {
	return q.id
}

// Push appends value to the tail and wakes one waiting consumer. It reports
// false without enqueuing when the queue is shut down. A non-empty queue at
// insertion time emits a "queue growing" debug event; that is observability
// only and never affects the result.
func (q *ThreadsafeQueue[T]) Push(value T) bool {
	if q.shutdown.Load() {
		q.metrics.CountRejected()
		return false
	}

	q.mu.Lock()
	if size := q.list.Len(); size != 0 {
		q.logger.Debug().Str("queue", q.id).Int("size", size).Msg("queue growing")
		q.metrics.CountGrowthNotice()
	}
	q.list.PushBack(value)
	// Unlock before waking so the consumer does not immediately block on mu.
	q.mu.Unlock()
	q.notEmpty.Signal()

	q.metrics.CountPush()
	return true
}

// PopBlocking waits until the queue is non-empty or shut down, then removes
// and returns the head value. On shutdown it reports false even if values
// remain queued; the values stay in place and become reachable again after
// Resume.
func (q *ThreadsafeQueue[T]) PopBlocking() (zero T, _ bool) {
	q.mu.Lock()
	for q.list.Len() == 0 && !q.shutdown.Load() {
		q.notEmpty.Wait()
	}
	if q.shutdown.Load() {
		q.mu.Unlock()
		q.metrics.CountMiss()
		return zero, false
	}
	value, _ := q.list.PopFront()
	q.mu.Unlock()

	q.metrics.CountPop()
	return value, true
}

// Pop checks once without waiting. It reports false when the queue is empty
// or shut down.
func (q *ThreadsafeQueue[T]) Pop() (zero T, _ bool) {
	if q.shutdown.Load() {
		q.metrics.CountMiss()
		return zero, false
	}

	q.mu.Lock()
	value, ok := q.list.PopFront()
	q.mu.Unlock()

	if !ok {
		q.metrics.CountMiss()
		return zero, false
	}
	q.metrics.CountPop()
	return value, true
}

// BatchPop detaches the entire backlog into dst as one constant-time splice,
// leaving the queue empty. dst must be non-nil and empty; anything else is a
// contract violation and panics. It reports false when the queue is empty or
// shut down, without touching dst.
func (q *ThreadsafeQueue[T]) BatchPop(dst *Batch[T]) bool {
	if q.shutdown.Load() {
		return false
	}
	if dst == nil {
		panic("handoffqueue: BatchPop destination is nil")
	}
	if dst.Len() != 0 {
		panic("handoffqueue: BatchPop destination must be empty")
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	n := q.list.Len()
	if n == 0 {
		return false
	}
	dst.list.Append(&q.list)

	q.metrics.CountPops(uint64(n))
	return true
}

// Shutdown moves the queue to the Shutdown state and wakes all waiters.
// Calling it repeatedly has no effect beyond re-broadcasting.
func (q *ThreadsafeQueue[T]) Shutdown() {
	q.mu.Lock()
	// The flag is atomic, but the transition must still happen under the
	// mutex to publish it correctly to threads parked in Wait.
	q.shutdown.Store(true)
	q.mu.Unlock()
	q.notEmpty.Broadcast()
}

// Resume moves the queue back to the Active state and wakes all waiters so
// they re-check the emptiness condition. It does not replay anything.
func (q *ThreadsafeQueue[T]) Resume() {
	q.mu.Lock()
	q.shutdown.Store(false)
	q.mu.Unlock()
	q.notEmpty.Broadcast()
}

// IsEmpty reports whether the queue holds no values right now. The state may
// change immediately after the call returns.
func (q *ThreadsafeQueue[T]) IsEmpty() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.list.Len() == 0
}

// Len returns the current number of queued values. Advisory, like IsEmpty.
func (q *ThreadsafeQueue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.list.Len()
}
