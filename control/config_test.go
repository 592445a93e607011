// control/config_test.go
// Author: momentics <momentics@gmail.com>
//
// Tests config snapshots and hot-reload dispatch.

package control

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/momentics/hioload-bip/api"
)

// TestConfigStore_SnapshotIsolation tests that snapshots do not alias the
// live map.
func TestConfigStore_SnapshotIsolation(t *testing.T) {
	cs := NewConfigStore()
	cs.SetConfig(map[string]any{"k": 1})

	snap := cs.GetSnapshot()
	snap["k"] = 2

	assert.Equal(t, 1, cs.GetSnapshot()["k"])
}

// TestHotReload_SyncDispatch tests deterministic reload notification.
func TestHotReload_SyncDispatch(t *testing.T) {
	fired := 0
	RegisterReloadHook(func() { fired++ })

	TriggerHotReloadSync()

	assert.GreaterOrEqual(t, fired, 1)
}

// TestProbeRegistry_Dump tests free-form and typed queue probes.
func TestProbeRegistry_Dump(t *testing.T) {
	pr := NewProbeRegistry()
	pr.RegisterProbe("answer", func() any { return 42 })
	pr.RegisterQueue("q", func() api.QueueState {
		return api.QueueState{Capacity: 17, Head: 14, Tail: 5, Mark: 14, Used: 9}
	})

	out := pr.DumpState()
	assert.Equal(t, 42, out["answer"])
	assert.Equal(t, 9, out["q.state"].(api.QueueState).Used)
	assert.InDelta(t, 9.0/16.0, out["q.fill"], 1e-9)
}

// TestFlowMetrics_Snapshot tests role counters and their stats keys.
func TestFlowMetrics_Snapshot(t *testing.T) {
	m := NewFlowMetrics()
	m.CountReserve()
	m.CountCommit(9)
	m.CountCommit(4)
	m.CountPeek()
	m.CountConsume(9)

	assert.EqualValues(t, 13, m.Committed())
	assert.EqualValues(t, 9, m.Consumed())

	snap := m.Snapshot()
	assert.EqualValues(t, 2, snap["flow.commits"])
	assert.EqualValues(t, 13, snap["flow.committed"])
	assert.EqualValues(t, 1, snap["flow.peeks"])
}
