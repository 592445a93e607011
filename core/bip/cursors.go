// File: core/bip/cursors.go
// Package bip index publication.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// cursors abstracts how the three indices are read and published. The
// atomic implementation carries the cross-goroutine happens-before edges:
// the producer's head store releases the filled span to the consumer, the
// consumer's tail store releases drained slots back to the producer. mark
// is only read by the consumer after it has observed head < tail, at which
// point the producer cannot move mark again until tail re-linearizes the
// queue, so no extra ordering is required beyond the head edge. The plain
// implementation elides all atomics for single-goroutine use.

package bip

import "sync/atomic"

type cursors interface {
	head() int
	setHead(int)
	tail() int
	setTail(int)
	mark() int
	setMark(int)
}

// atomicCursors keeps the producer-written and consumer-written indices on
// separate cache lines, same padding idiom as concurrency.LockFreeQueue.
type atomicCursors struct {
	h atomic.Int64 // written by producer
	m atomic.Int64 // written by producer
	_ [64]byte
	t atomic.Int64 // written by consumer
	_ [64]byte
}

func (c *atomicCursors) head() int     { return int(c.h.Load()) }
func (c *atomicCursors) setHead(v int) { c.h.Store(int64(v)) }
func (c *atomicCursors) tail() int     { return int(c.t.Load()) }
func (c *atomicCursors) setTail(v int) { c.t.Store(int64(v)) }
func (c *atomicCursors) mark() int     { return int(c.m.Load()) }
func (c *atomicCursors) setMark(v int) { c.m.Store(int64(v)) }

// plainCursors is the single-threaded specialization: ordinary loads and
// stores, no fences.
type plainCursors struct {
	h, t, m int
}

func (c *plainCursors) head() int     { return c.h }
func (c *plainCursors) setHead(v int) { c.h = v }
func (c *plainCursors) tail() int     { return c.t }
func (c *plainCursors) setTail(v int) { c.t = v }
func (c *plainCursors) mark() int     { return c.m }
func (c *plainCursors) setMark(v int) { c.m = v }
