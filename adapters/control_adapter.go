// Package adapters
// Author: momentics <momentics@gmail.com>
//
// Control adapter binding the api.Control surface to one queue's telemetry:
// dynamic config, flow counters for the producer and consumer roles, and
// typed queue-state probes.

package adapters

import (
	"github.com/momentics/hioload-bip/api"
	"github.com/momentics/hioload-bip/control"
)

// ControlAdapter aggregates config, flow metrics, and probes for a queue.
type ControlAdapter struct {
	config *control.ConfigStore
	flow   *control.FlowMetrics
	probes *control.ProbeRegistry
}

// NewControlAdapter wires the control primitives together.
func NewControlAdapter() *ControlAdapter {
	adapter := &ControlAdapter{
		config: control.NewConfigStore(),
		flow:   control.NewFlowMetrics(),
		probes: control.NewProbeRegistry(),
	}
	control.RegisterPlatformProbes(adapter.probes)
	return adapter
}

// Ensure compile-time interface compliance.
var _ api.Control = (*ControlAdapter)(nil)

// Flow exposes the role counters for the producer and consumer paths.
func (c *ControlAdapter) Flow() *control.FlowMetrics {
	return c.flow
}

// AttachQueue registers a typed state probe for a queue under name.
func (c *ControlAdapter) AttachQueue(name string, state func() api.QueueState) {
	c.probes.RegisterQueue(name, state)
}

// QueueStates returns the current snapshot of every attached queue.
func (c *ControlAdapter) QueueStates() map[string]api.QueueState {
	return c.probes.QueueStates()
}

func (c *ControlAdapter) GetConfig() map[string]any {
	return c.config.GetSnapshot()
}

func (c *ControlAdapter) SetConfig(cfg map[string]any) error {
	c.config.SetConfig(cfg)
	return nil
}

// Stats merges the flow counters with every debug and queue probe.
func (c *ControlAdapter) Stats() map[string]any {
	combined := c.flow.Snapshot()
	for k, v := range c.probes.DumpState() {
		combined["debug."+k] = v
	}
	return combined
}

func (c *ControlAdapter) OnReload(fn func()) {
	c.config.OnReload(fn)
	control.RegisterReloadHook(fn)
}

func (c *ControlAdapter) RegisterDebugProbe(name string, fn func() any) {
	c.probes.RegisterProbe(name, fn)
}
