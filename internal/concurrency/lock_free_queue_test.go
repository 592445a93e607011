// File: internal/concurrency/lock_free_queue_test.go
// Package concurrency tests the bounded queue and backoff.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package concurrency

import (
	"sync"
	"testing"
)

// TestLockFreeQueue_EnqueueDequeue tests basic FIFO behavior.
func TestLockFreeQueue_EnqueueDequeue(t *testing.T) {
	q := NewLockFreeQueue[int](8)

	if !q.Enqueue(42) {
		t.Errorf("Expected Enqueue to succeed on empty queue")
	}
	item, ok := q.Dequeue()
	if !ok || item != 42 {
		t.Errorf("Expected 42, got %d ok=%v", item, ok)
	}
	if _, ok := q.Dequeue(); ok {
		t.Errorf("Expected Dequeue to fail on empty queue")
	}
}

// TestLockFreeQueue_Full tests rejection when every slot is occupied.
func TestLockFreeQueue_Full(t *testing.T) {
	q := NewLockFreeQueue[int](2)

	if !q.Enqueue(1) || !q.Enqueue(2) {
		t.Fatalf("Expected two enqueues to succeed")
	}
	if q.Enqueue(3) {
		t.Errorf("Expected Enqueue to fail when queue is full")
	}
}

// TestLockFreeQueue_Concurrent tests MPMC traffic with no loss or
// duplication.
func TestLockFreeQueue_Concurrent(t *testing.T) {
	const (
		producers = 4
		perWorker = 10000
	)
	q := NewLockFreeQueue[int](1024)

	seen := make([]int32, producers*perWorker)
	var wg sync.WaitGroup
	var mu sync.Mutex

	for w := 0; w < producers; w++ {
		wg.Add(2)
		base := w * perWorker
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				for !q.Enqueue(base + i) {
				}
			}
		}()
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				for {
					v, ok := q.Dequeue()
					if ok {
						mu.Lock()
						seen[v]++
						mu.Unlock()
						break
					}
				}
			}
		}()
	}
	wg.Wait()

	for v, n := range seen {
		if n != 1 {
			t.Fatalf("Value %d seen %d times", v, n)
		}
	}
}

// TestBackoff_Escalates tests that the wait strategy starts from spins and
// resets.
func TestBackoff_Escalates(t *testing.T) {
	var b Backoff

	for i := 0; i < backoffYields+8; i++ {
		b.Wait()
	}
	if b.n <= backoffYields {
		t.Errorf("Expected escalation past yields, got n=%d", b.n)
	}

	b.Reset()
	if b.n != 0 {
		t.Errorf("Expected Reset to return to spinning, got n=%d", b.n)
	}
}
