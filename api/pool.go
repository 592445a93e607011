// File: api/pool.go
// Author: momentics <momentics@gmail.com>
//
// Defines abstract pooling APIs: zero-copy allocators for backing storage reuse.

package api

// BytePool provides reusable []byte backing arrays for bip queues.
type BytePool interface {
	// Acquire returns a slice of at least n bytes.
	Acquire(n int) []byte

	// Release returns a buffer to the pool.
	Release(buf []byte)
}

// StorageStats aggregates storage allocation/reuse stats.
type StorageStats struct {
	TotalAlloc int64
	TotalFree  int64
	InUse      int64
}
