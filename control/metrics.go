// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Flow counters for the two roles of a bip queue. The producer and the
// consumer report from their own goroutines; a monitor reads snapshots
// without stopping traffic.

package control

import "sync/atomic"

// FlowMetrics aggregates producer-side and consumer-side operation counts
// for one queue.
type FlowMetrics struct {
	reserves  atomic.Int64 // granted reservations
	commits   atomic.Int64 // commit calls
	committed atomic.Int64 // elements published
	peeks     atomic.Int64 // non-empty views
	consumes  atomic.Int64 // consume calls
	consumed  atomic.Int64 // elements released
}

// NewFlowMetrics creates a zeroed counter set.
func NewFlowMetrics() *FlowMetrics {
	return &FlowMetrics{}
}

// CountReserve records one granted reservation.
func (m *FlowMetrics) CountReserve() {
	m.reserves.Add(1)
}

// CountCommit records a commit publishing n elements.
func (m *FlowMetrics) CountCommit(n int) {
	m.commits.Add(1)
	m.committed.Add(int64(n))
}

// CountPeek records one non-empty view.
func (m *FlowMetrics) CountPeek() {
	m.peeks.Add(1)
}

// CountConsume records a consume releasing n elements.
func (m *FlowMetrics) CountConsume(n int) {
	m.consumes.Add(1)
	m.consumed.Add(int64(n))
}

// Committed returns the total elements published so far.
func (m *FlowMetrics) Committed() int64 {
	return m.committed.Load()
}

// Consumed returns the total elements released so far.
func (m *FlowMetrics) Consumed() int64 {
	return m.consumed.Load()
}

// Snapshot returns the counters keyed for a stats map.
func (m *FlowMetrics) Snapshot() map[string]any {
	return map[string]any{
		"flow.reserves":  m.reserves.Load(),
		"flow.commits":   m.commits.Load(),
		"flow.committed": m.committed.Load(),
		"flow.peeks":     m.peeks.Load(),
		"flow.consumes":  m.consumes.Load(),
		"flow.consumed":  m.consumed.Load(),
	}
}
