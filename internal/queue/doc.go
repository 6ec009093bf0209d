// Package queue provides the raw FIFO storage behind the public handoff
// queue. The list is intentionally unsynchronised; the facade owns the mutex
// and condition variable and decides when access is safe.
//
// Append exists so a bulk drain can detach an entire backlog as a single
// pointer splice instead of copying element by element. The splice preserves
// the order a sequential dequeue would have produced and leaves the source
// list empty.
package queue
