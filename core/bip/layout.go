// File: core/bip/layout.go
// Package bip index-layout arithmetic.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Pure span arithmetic over the three indices. head and tail live in [0,N),
// mark in [0,N]. Committed data occupies [tail,head) while head >= tail
// (linear layout) and [tail,mark) + [0,head) while head < tail (wrapped
// layout). One slot stays unused so a full queue is distinguishable from an
// empty one.

package bip

// reservePlan is the producer-side token: where the pending write span
// starts, how long it may be, and how mark moves on commit.
type reservePlan struct {
	start     int  // span offset into storage
	n         int  // span length granted
	markBase  int  // mark value published on commit
	markShift bool // mark tracks the committed count on top of markBase
}

// peekPlan is the consumer-side token: the readable span and how tail moves
// on consume.
type peekPlan struct {
	start int  // span offset into storage
	n     int  // span length
	tail  int  // tail snapshot the consume advances from
	wrap  bool // consuming the full span returns tail to zero
}

// planReserve computes the reservation for a producer that wants up to
// `want` contiguous elements, given index snapshots and storage size.
//
// Linear layout: the span after head is granted when it covers the request;
// otherwise the reservation wraps to offset 0 and mark freezes at head.
// Wrapping is impossible while tail == 0 (the sentinel would be consumed),
// so the producer gets the short end gap instead. Wrapped layout: the span
// grows toward tail-1 and mark stays frozen.
func planReserve(head, tail, mark, size, want int) reservePlan {
	if head >= tail {
		endGap := size - head
		if tail == 0 {
			endGap = size - 1 - head
		}
		if endGap >= want {
			return reservePlan{start: head, n: want, markBase: head, markShift: true}
		}
		if tail == 0 {
			return reservePlan{start: head, n: endGap, markBase: head, markShift: true}
		}
		n := tail - 1
		if n > want {
			n = want
		}
		return reservePlan{start: 0, n: n, markBase: head, markShift: false}
	}
	n := tail - head - 1
	if n > want {
		n = want
	}
	return reservePlan{start: head, n: n, markBase: mark, markShift: false}
}

// planPeek computes the readable span for a consumer given index snapshots.
//
// While wrapped, the high region [tail,mark) drains first. Once tail meets
// mark the high region is empty and the view relinearizes to [0,head); the
// plan then carries tail=0 so consuming advances from offset zero.
func planPeek(head, tail, mark int) peekPlan {
	if head >= tail {
		return peekPlan{start: tail, n: head - tail, tail: tail}
	}
	if tail == mark {
		return peekPlan{start: 0, n: head}
	}
	return peekPlan{start: tail, n: mark - tail, tail: tail, wrap: true}
}

// nextHead advances a span base by the committed count, folding the exact
// end-of-storage case back to zero.
func nextHead(base, k, size int) int {
	next := base + k
	if next == size {
		return 0
	}
	return next
}

// nextTail advances the consume position; draining a wrapped view entirely
// jumps tail back to zero, reclaiming the slack above the watermark.
func nextTail(p peekPlan, k int) int {
	if p.wrap && k == p.n {
		return 0
	}
	return p.tail + k
}

// usedCount returns the number of committed, unconsumed elements.
func usedCount(head, tail, mark int) int {
	if head >= tail {
		return head - tail
	}
	return (mark - tail) + head
}
