// control/debug.go
// Author: momentics <momentics@gmail.com>
//
// Runtime probe registry for internal inspection. Queues register their
// typed state snapshots here so live index positions and occupancy can be
// dumped without stopping traffic; free-form probes cover everything else.

package control

import (
	"sync"

	"github.com/momentics/hioload-bip/api"
)

// ProbeRegistry holds free-form debug hooks and typed queue-state probes.
type ProbeRegistry struct {
	mu     sync.RWMutex
	probes map[string]func() any
	queues map[string]func() api.QueueState
}

// NewProbeRegistry creates an empty registry.
func NewProbeRegistry() *ProbeRegistry {
	return &ProbeRegistry{
		probes: make(map[string]func() any),
		queues: make(map[string]func() api.QueueState),
	}
}

// RegisterProbe inserts a named free-form debug hook.
func (r *ProbeRegistry) RegisterProbe(name string, fn func() any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.probes[name] = fn
}

// RegisterQueue inserts a typed state probe for one queue.
func (r *ProbeRegistry) RegisterQueue(name string, state func() api.QueueState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queues[name] = state
}

// QueueStates returns the current snapshot of every registered queue.
func (r *ProbeRegistry) QueueStates() map[string]api.QueueState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]api.QueueState, len(r.queues))
	for name, fn := range r.queues {
		out[name] = fn()
	}
	return out
}

// DumpState returns the output of all probes. Queue probes contribute the
// typed snapshot under "<name>.state" and a derived occupancy ratio under
// "<name>.fill".
func (r *ProbeRegistry) DumpState() map[string]any {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]any, len(r.probes)+2*len(r.queues))
	for name, fn := range r.probes {
		out[name] = fn()
	}
	for name, fn := range r.queues {
		st := fn()
		out[name+".state"] = st
		if usable := st.Capacity - 1; usable > 0 {
			out[name+".fill"] = float64(st.Used) / float64(usable)
		}
	}
	return out
}
