// Package pool
// Author: momentics <momentics@gmail.com>
//
// Backing-storage layer for bip queues. The queue core never allocates; it
// binds to storage the caller supplies. This package supplies that storage:
// page-aligned mmap arenas on Linux (with a transparent-hugepage hint for
// large arrays) behind a size-classed, lock-free slab pool.
// See arena_linux.go, slab.go for implementation details.
package pool
