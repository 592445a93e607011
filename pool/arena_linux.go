//go:build linux
// +build linux

// File: pool/arena_linux.go
// Package pool mmap arena.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Anonymous private mappings give page-aligned storage outside the Go heap,
// which suits DMA-style consumers and keeps large queue arrays off the GC
// scan path. Arrays of a megabyte or more get a MADV_HUGEPAGE hint.

package pool

import (
	"golang.org/x/sys/unix"
)

const hugePageThreshold = 1 << 20

// mapStorage allocates a page-aligned anonymous mapping of n bytes.
func mapStorage(n int) ([]byte, error) {
	buf, err := unix.Mmap(-1, 0, n,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, err
	}
	if n >= hugePageThreshold {
		// Best effort; not all kernels enable THP.
		_ = unix.Madvise(buf, unix.MADV_HUGEPAGE)
	}
	return buf, nil
}

// unmapStorage releases a mapping created by mapStorage.
func unmapStorage(buf []byte) error {
	if buf == nil {
		return nil
	}
	return unix.Munmap(buf)
}
