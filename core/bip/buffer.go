// File: core/bip/buffer.go
// Package bip bipartite SPSC queue.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Buffer is the element-generic bipartite queue core. One goroutine owns the
// producer role (ReserveLargest/ReserveExact/Commit/Cancel), one goroutine
// owns the consumer role (Peek/Consume). The backing storage is supplied by
// the caller and never reallocated; external code must not touch it while a
// reservation or peek is outstanding.

package bip

import (
	"github.com/momentics/hioload-bip/api"
)

// Ensure compile-time interface compliance.
var _ api.SpanQueue[byte] = (*Buffer[byte])(nil)

// Buffer is a fixed-capacity bipartite SPSC queue over caller-owned storage.
type Buffer[T any] struct {
	data []T
	cur  cursors

	checks bool

	// Producer-private reservation bookkeeping. Only the producer
	// goroutine touches these.
	res    reservePlan
	resSet bool

	// Consumer-private view bookkeeping. Only the consumer goroutine
	// touches these.
	view    peekPlan
	viewSet bool
}

// Option configures a Buffer at construction.
type Option func(*options)

type options struct {
	unsync    bool
	unchecked bool
}

// Unsync selects the single-threaded specialization: index publication
// degrades to ordinary loads and stores. Both roles must then run on the
// same goroutine.
func Unsync() Option { return func(o *options) { o.unsync = true } }

// Unchecked disables contract validation on the hot path. Violations of the
// reserve/commit and peek/consume discipline are then undefined behavior.
func Unchecked() Option { return func(o *options) { o.unchecked = true } }

// New binds a Buffer to the given storage. The storage length fixes the
// capacity; usable capacity is len(storage)-1. Empty storage is a contract
// violation.
func New[T any](storage []T, opts ...Option) *Buffer[T] {
	if len(storage) == 0 {
		violation("empty backing storage")
	}
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	b := &Buffer[T]{
		data:   storage,
		checks: !o.unchecked,
	}
	if o.unsync {
		b.cur = &plainCursors{}
	} else {
		b.cur = &atomicCursors{}
	}
	return b
}

// ReserveLargest returns a contiguous writable span of at most want
// elements. The span may be shorter than want, or nil when no contiguous
// space is free. While a reservation is pending, further reserves return
// nil until Commit or Cancel retires it.
func (b *Buffer[T]) ReserveLargest(want int) []T {
	if b.checks && want < 0 {
		violation("negative reserve count %d", want)
	}
	if b.resSet {
		return nil
	}
	h := b.cur.head()
	t := b.cur.tail()
	p := planReserve(h, t, b.cur.mark(), len(b.data), want)
	if p.n == 0 {
		return nil
	}
	b.res = p
	b.resSet = true
	return b.data[p.start : p.start+p.n : p.start+p.n]
}

// ReserveExact returns a span of exactly want elements, or ok=false when
// that much contiguous space is unavailable. A failed ReserveExact leaves
// no observable state behind; the producer may retry freely. ReserveExact(0)
// trivially succeeds with an empty span and creates no pending reservation.
func (b *Buffer[T]) ReserveExact(want int) ([]T, bool) {
	if b.checks && want < 0 {
		violation("negative reserve count %d", want)
	}
	if b.resSet {
		return nil, false
	}
	if want == 0 {
		return nil, true
	}
	h := b.cur.head()
	t := b.cur.tail()
	p := planReserve(h, t, b.cur.mark(), len(b.data), want)
	if p.n != want {
		return nil, false
	}
	b.res = p
	b.resSet = true
	return b.data[p.start : p.start+p.n : p.start+p.n], true
}

// Commit publishes the first k elements of the pending reservation and
// retires it. Commit(0) retires the reservation with no index effect.
// The mark store precedes the head store: the consumer reads mark only
// after observing the new head.
func (b *Buffer[T]) Commit(k int) {
	if !b.resSet {
		if b.checks {
			violation("commit without reservation")
		}
		return
	}
	p := b.res
	b.resSet = false
	if k == 0 {
		return
	}
	if b.checks && (k < 0 || k > p.n) {
		violation("commit %d exceeds reservation of %d", k, p.n)
	}
	if p.markShift {
		b.cur.setMark(p.markBase + k)
	} else {
		b.cur.setMark(p.markBase)
	}
	b.cur.setHead(nextHead(p.start, k, len(b.data)))
}

// Cancel retires the pending reservation without publishing anything.
// Cancel with no reservation pending is a no-op.
func (b *Buffer[T]) Cancel() {
	b.resSet = false
}

// Peek returns the contiguous span of committed, unconsumed elements, or
// nil when none are readable. Peek does not mutate indices; each call takes
// a fresh snapshot and supersedes the previous view.
func (b *Buffer[T]) Peek() []T {
	t := b.cur.tail()
	h := b.cur.head()
	var p peekPlan
	if h >= t {
		p = peekPlan{start: t, n: h - t, tail: t}
	} else {
		p = planPeek(h, t, b.cur.mark())
	}
	b.view = p
	b.viewSet = true
	if p.n == 0 {
		return nil
	}
	return b.data[p.start : p.start+p.n : p.start+p.n]
}

// Consume releases the first k elements of the most recent Peek view and
// retires it. Consume(0) retires the view with no index effect. Draining a
// wrapped view entirely jumps tail back to zero.
func (b *Buffer[T]) Consume(k int) {
	if !b.viewSet {
		if b.checks {
			violation("consume without peek")
		}
		return
	}
	p := b.view
	b.viewSet = false
	if k == 0 {
		return
	}
	if b.checks && (k < 0 || k > p.n) {
		violation("consume %d exceeds view of %d", k, p.n)
	}
	b.cur.setTail(nextTail(p, k))
}

// Len returns the number of committed, unconsumed elements.
func (b *Buffer[T]) Len() int {
	h := b.cur.head()
	t := b.cur.tail()
	if h >= t {
		return h - t
	}
	return usedCount(h, t, b.cur.mark())
}

// Cap returns the usable capacity, one less than the storage length.
func (b *Buffer[T]) Cap() int {
	return len(b.data) - 1
}

// Reset returns the queue to its initial empty state. Legal only while no
// reservation or peek is outstanding.
func (b *Buffer[T]) Reset() {
	if b.checks && (b.resSet || b.viewSet) {
		violation("reset with tokens outstanding")
	}
	b.resSet = false
	b.viewSet = false
	b.cur.setMark(0)
	b.cur.setHead(0)
	b.cur.setTail(0)
}

// State returns a diagnostic snapshot of the queue indices. Under
// concurrent use the snapshot is advisory.
func (b *Buffer[T]) State() api.QueueState {
	h := b.cur.head()
	t := b.cur.tail()
	m := b.cur.mark()
	return api.QueueState{
		Capacity: len(b.data),
		Head:     h,
		Tail:     t,
		Mark:     m,
		Used:     usedCount(h, t, m),
		Wrapped:  h < t,
	}
}
