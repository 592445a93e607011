// File: api/bip.go
// Package api defines the bipartite buffer contracts.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// A bipartite (bip) queue is a fixed-capacity single-producer/single-consumer
// byte or element queue that always hands out contiguous spans on both sides.
// The producer reserves a writable span, fills it, and commits a prefix; the
// consumer peeks at the committed span and consumes a prefix. Neither side
// ever sees a span split across the wrap point.

package api

// SpanWriter is the producer half of a bipartite queue.
// All methods must be called from a single producer goroutine.
type SpanWriter[T any] interface {
	// ReserveLargest returns a contiguous writable span of at most n
	// elements. The span may be shorter than n, or nil when no contiguous
	// space is available. A nil return while a reservation is already
	// pending signals rejection, not exhaustion.
	ReserveLargest(n int) []T

	// ReserveExact returns a contiguous writable span of exactly n elements,
	// or ok=false when that much contiguous space is not available.
	ReserveExact(n int) ([]T, bool)

	// Commit publishes the first k elements of the pending reservation to
	// the consumer and retires the reservation. Commit(0) retires the
	// reservation with no observable effect.
	Commit(k int)

	// Cancel retires the pending reservation without publishing anything.
	Cancel()
}

// SpanReader is the consumer half of a bipartite queue.
// All methods must be called from a single consumer goroutine.
type SpanReader[T any] interface {
	// Peek returns the contiguous span of committed, unconsumed elements.
	// A nil or empty span means no data is currently readable. Peek does
	// not mutate queue state; a fresh Peek supersedes any previous view.
	Peek() []T

	// Consume releases the first k elements of the most recent Peek view.
	// Consume(0) is a no-op.
	Consume(k int)
}

// SpanQueue combines both halves with lifecycle and introspection.
type SpanQueue[T any] interface {
	SpanWriter[T]
	SpanReader[T]

	// Len returns the number of committed, unconsumed elements.
	Len() int

	// Cap returns the usable capacity, one less than the storage length.
	Cap() int

	// Reset returns the queue to its initial empty state. Legal only while
	// no reservation or peek view is outstanding.
	Reset()

	// State returns a diagnostic snapshot of the queue indices.
	State() QueueState
}

// QueueState is a point-in-time snapshot of queue indices for diagnostics
// and debug probes. Values are read individually; under concurrent use the
// snapshot is advisory, not transactional.
type QueueState struct {
	Capacity int  // Storage length N (usable capacity is N-1)
	Head     int  // Next write position
	Tail     int  // Next read position
	Mark     int  // Watermark: end of the high committed region when wrapped
	Used     int  // Committed, unconsumed elements
	Wrapped  bool // True when committed data spans [tail,mark) + [0,head)
}
