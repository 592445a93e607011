// File: pool/slab.go
// Package pool size-classed storage pooling.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// SlabPool recycles arena-backed arrays across queue lifetimes. Each size
// class keeps a bounded lock-free freelist; overflow is unmapped rather
// than hoarded. Several pipes may acquire and release concurrently.

package pool

import (
	"sync/atomic"

	"github.com/momentics/hioload-bip/api"
	"github.com/momentics/hioload-bip/internal/concurrency"
)

// sizeClasses are the storage lengths the pool hands out. Requests above
// the largest class get a dedicated, unpooled mapping.
var sizeClasses = []int{
	4 * 1024,
	16 * 1024,
	64 * 1024,
	256 * 1024,
	1024 * 1024,
	4 * 1024 * 1024,
}

const classFreelistCapacity = 64

// SlabPool is a size-classed storage pool over the mmap arena.
type SlabPool struct {
	classes    []*slabClass
	closed     atomic.Bool
	totalAlloc atomic.Int64
	totalFree  atomic.Int64
}

type slabClass struct {
	size int
	free *concurrency.LockFreeQueue[[]byte]
}

// Ensure compile-time interface compliance.
var _ api.BytePool = (*SlabPool)(nil)

// NewSlabPool creates an empty pool; mappings are created on demand.
func NewSlabPool() *SlabPool {
	sp := &SlabPool{classes: make([]*slabClass, len(sizeClasses))}
	for i, size := range sizeClasses {
		sp.classes[i] = &slabClass{
			size: size,
			free: concurrency.NewLockFreeQueue[[]byte](classFreelistCapacity),
		}
	}
	return sp
}

// classFor returns the smallest class covering n, or nil when n exceeds
// every class.
func (sp *SlabPool) classFor(n int) *slabClass {
	for _, c := range sp.classes {
		if n <= c.size {
			return c
		}
	}
	return nil
}

// Acquire returns a slice of at least n bytes, reusing a pooled mapping
// when one is free.
func (sp *SlabPool) Acquire(n int) []byte {
	if n <= 0 || sp.closed.Load() {
		return nil
	}
	c := sp.classFor(n)
	if c == nil {
		buf, err := mapStorage(n)
		if err != nil {
			return nil
		}
		sp.totalAlloc.Add(1)
		return buf
	}
	if buf, ok := c.free.Dequeue(); ok {
		return buf
	}
	buf, err := mapStorage(c.size)
	if err != nil {
		return nil
	}
	sp.totalAlloc.Add(1)
	return buf
}

// Release returns a buffer to its size class. Buffers that match no class,
// or overflow a full freelist, are unmapped immediately.
func (sp *SlabPool) Release(buf []byte) {
	if buf == nil {
		return
	}
	buf = buf[:cap(buf)]
	if !sp.closed.Load() {
		if c := sp.classFor(len(buf)); c != nil && c.size == len(buf) {
			if c.free.Enqueue(buf) {
				return
			}
		}
	}
	if unmapStorage(buf) == nil {
		sp.totalFree.Add(1)
	}
}

// Stats exposes allocation accounting for observability.
func (sp *SlabPool) Stats() api.StorageStats {
	alloc := sp.totalAlloc.Load()
	free := sp.totalFree.Load()
	return api.StorageStats{
		TotalAlloc: alloc,
		TotalFree:  free,
		InUse:      alloc - free,
	}
}

// Close drains every freelist and unmaps the pooled storage. Buffers still
// in use stay valid; releasing them after Close unmaps them directly.
func (sp *SlabPool) Close() {
	if sp.closed.Swap(true) {
		return
	}
	for _, c := range sp.classes {
		for {
			buf, ok := c.free.Dequeue()
			if !ok {
				break
			}
			if unmapStorage(buf) == nil {
				sp.totalFree.Add(1)
			}
		}
	}
}
