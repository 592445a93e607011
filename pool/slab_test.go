// File: pool/slab_test.go
// Package pool tests storage pooling.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSlabPool_AcquireRounding tests class rounding for small requests.
func TestSlabPool_AcquireRounding(t *testing.T) {
	sp := NewSlabPool()
	defer sp.Close()

	buf := sp.Acquire(100)
	require.NotNil(t, buf)
	assert.Equal(t, 4*1024, len(buf), "smallest class should cover 100 bytes")
	sp.Release(buf)

	buf = sp.Acquire(5 * 1024)
	require.NotNil(t, buf)
	assert.Equal(t, 16*1024, len(buf))
	sp.Release(buf)
}

// TestSlabPool_Reuse tests that released storage is handed out again.
func TestSlabPool_Reuse(t *testing.T) {
	sp := NewSlabPool()
	defer sp.Close()

	first := sp.Acquire(4096)
	require.NotNil(t, first)
	firstPtr := &first[0]
	sp.Release(first)

	second := sp.Acquire(4096)
	require.NotNil(t, second)
	assert.Same(t, firstPtr, &second[0], "expected the pooled mapping back")
	sp.Release(second)
}

// TestSlabPool_Oversize tests dedicated mappings above the largest class.
func TestSlabPool_Oversize(t *testing.T) {
	sp := NewSlabPool()
	defer sp.Close()

	n := 8 * 1024 * 1024
	buf := sp.Acquire(n)
	require.NotNil(t, buf)
	assert.Equal(t, n, len(buf))
	sp.Release(buf)
}

// TestSlabPool_Stats tests allocation accounting.
func TestSlabPool_Stats(t *testing.T) {
	sp := NewSlabPool()

	a := sp.Acquire(4096)
	b := sp.Acquire(4096)
	require.NotNil(t, a)
	require.NotNil(t, b)

	st := sp.Stats()
	assert.EqualValues(t, 2, st.TotalAlloc)
	assert.EqualValues(t, 2, st.InUse)

	sp.Release(a)
	sp.Release(b)
	sp.Close()

	st = sp.Stats()
	assert.EqualValues(t, st.TotalAlloc, st.TotalFree, "Close should unmap pooled storage")
	assert.EqualValues(t, 0, st.InUse)
}

// TestSlabPool_ClosedAcquire tests that a closed pool refuses new storage.
func TestSlabPool_ClosedAcquire(t *testing.T) {
	sp := NewSlabPool()
	sp.Close()

	assert.Nil(t, sp.Acquire(4096))
}
