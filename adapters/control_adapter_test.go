// Package adapters
// Author: momentics <momentics@gmail.com>
//
// Tests the control adapter surface: config snapshots, flow counters, and
// queue probes.

package adapters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-bip/api"
)

// TestControlAdapter_ConfigRoundTrip tests set/get of dynamic config.
func TestControlAdapter_ConfigRoundTrip(t *testing.T) {
	c := NewControlAdapter()

	require.NoError(t, c.SetConfig(map[string]any{"capacity": 4096}))

	cfg := c.GetConfig()
	assert.Equal(t, 4096, cfg["capacity"])
}

// TestControlAdapter_StatsCombinesFlowAndProbes tests that flow counters,
// queue probes, and debug probes merge into one stats map.
func TestControlAdapter_StatsCombinesFlowAndProbes(t *testing.T) {
	c := NewControlAdapter()

	c.Flow().CountReserve()
	c.Flow().CountCommit(64)
	c.Flow().CountPeek()
	c.Flow().CountConsume(32)

	c.AttachQueue("q0", func() api.QueueState {
		return api.QueueState{Capacity: 17, Head: 9, Tail: 2, Mark: 9, Used: 7}
	})
	c.RegisterDebugProbe("custom", func() any { return "ok" })

	stats := c.Stats()
	assert.EqualValues(t, 64, stats["flow.committed"])
	assert.EqualValues(t, 32, stats["flow.consumed"])
	assert.Equal(t, "ok", stats["debug.custom"])
	assert.Contains(t, stats, "debug.platform.cpus")

	st, ok := stats["debug.q0.state"].(api.QueueState)
	require.True(t, ok, "queue probe should surface the typed snapshot")
	assert.Equal(t, 7, st.Used)
	assert.InDelta(t, 7.0/16.0, stats["debug.q0.fill"], 1e-9)
}

// TestControlAdapter_QueueStates tests the typed queue snapshot map.
func TestControlAdapter_QueueStates(t *testing.T) {
	c := NewControlAdapter()
	c.AttachQueue("q0", func() api.QueueState {
		return api.QueueState{Capacity: 8, Used: 3}
	})

	states := c.QueueStates()
	require.Len(t, states, 1)
	assert.Equal(t, 3, states["q0"].Used)
}
