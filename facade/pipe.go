// File: facade/pipe.go
// Unified facade layer for the hioload-bip library.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Pipe aggregates the byte-specialized queue core with backing-storage
// pooling, CPU affinity for the two roles, and the control/debug surface.
// It exposes chunked non-blocking WriteSome/ReadSome convenience calls on
// top of the span-level reserve/commit and peek/consume protocol, which
// stays reachable through Queue() for zero-copy callers.

package facade

import (
	"sync/atomic"

	"github.com/momentics/hioload-bip/adapters"
	"github.com/momentics/hioload-bip/affinity"
	"github.com/momentics/hioload-bip/api"
	"github.com/momentics/hioload-bip/control"
	"github.com/momentics/hioload-bip/core/bip"
)

// Config holds parameters immutable per Pipe.
type Config struct {
	Capacity    int          // Usable capacity in bytes; storage is Capacity+1
	Storage     []byte       // Optional caller-owned storage; overrides Capacity
	StoragePool api.BytePool // Optional pool to draw storage from
	Unsync      bool         // Elide atomics; both roles on one goroutine
	Unchecked   bool         // Disable contract validation on the hot path
	EnableDebug bool         // Register queue-state debug probes
}

// DefaultConfig returns default configuration values.
func DefaultConfig() *Config {
	return &Config{
		Capacity:    64*1024 - 1, // One 64 KiB storage page per pipe
		EnableDebug: true,
	}
}

// Pipe is a byte stream over a bipartite queue.
type Pipe struct {
	q      *bip.Buffer[byte]
	arena  []byte       // Full pool allocation backing the queue storage
	pool   api.BytePool // Pool the arena returns to on Close, if any
	ctrl   *adapters.ControlAdapter
	flow   *control.FlowMetrics
	closed atomic.Bool

	producerPin affinity.Pinner
	consumerPin affinity.Pinner
}

// New constructs a Pipe with the given configuration.
func New(cfg *Config) (*Pipe, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	p := &Pipe{ctrl: adapters.NewControlAdapter()}
	p.flow = p.ctrl.Flow()

	storage := cfg.Storage
	switch {
	case storage != nil:
	case cfg.Capacity <= 0:
		return nil, api.NewError(api.ErrCodeInvalidArgument, "pipe capacity must be positive").
			WithContext("capacity", cfg.Capacity)
	case cfg.StoragePool != nil:
		arena := cfg.StoragePool.Acquire(cfg.Capacity + 1)
		if arena == nil {
			return nil, api.NewError(api.ErrCodeResourceExhausted, "storage pool refused allocation").
				WithContext("capacity", cfg.Capacity)
		}
		p.arena = arena
		p.pool = cfg.StoragePool
		storage = arena[:cfg.Capacity+1]
	default:
		storage = make([]byte, cfg.Capacity+1)
	}

	var opts []bip.Option
	if cfg.Unsync {
		opts = append(opts, bip.Unsync())
	}
	if cfg.Unchecked {
		opts = append(opts, bip.Unchecked())
	}
	p.q = bip.New(storage, opts...)

	if cfg.EnableDebug {
		p.ctrl.AttachQueue("pipe", p.q.State)
	}
	return p, nil
}

// Queue exposes the span-level protocol for zero-copy callers.
func (p *Pipe) Queue() api.SpanQueue[byte] {
	return p.q
}

// Control exposes runtime config, metrics, and debug probes.
func (p *Pipe) Control() api.Control {
	return p.ctrl
}

// WriteSome copies as much of data as currently fits and returns the byte
// count, zero when the queue is full or the pipe closed. Producer role only.
func (p *Pipe) WriteSome(data []byte) int {
	if p.closed.Load() {
		return 0
	}
	written := 0
	for written < len(data) {
		span := p.q.ReserveLargest(len(data) - written)
		if span == nil {
			break
		}
		p.flow.CountReserve()
		n := copy(span, data[written:])
		p.q.Commit(n)
		p.flow.CountCommit(n)
		written += n
	}
	return written
}

// ReadSome copies committed bytes into buf and returns the byte count,
// zero when nothing is readable or the pipe closed. Consumer role only.
func (p *Pipe) ReadSome(buf []byte) int {
	if p.closed.Load() {
		return 0
	}
	read := 0
	for read < len(buf) {
		view := p.q.Peek()
		if view == nil {
			break
		}
		p.flow.CountPeek()
		n := copy(buf[read:], view)
		p.q.Consume(n)
		p.flow.CountConsume(n)
		read += n
	}
	return read
}

// Len returns the committed, unread byte count.
func (p *Pipe) Len() int { return p.q.Len() }

// Cap returns the usable capacity in bytes.
func (p *Pipe) Cap() int { return p.q.Cap() }

// State returns a diagnostic snapshot of the queue indices.
func (p *Pipe) State() api.QueueState { return p.q.State() }

// Reset empties the pipe. Legal only while neither role holds a span.
func (p *Pipe) Reset() { p.q.Reset() }

// BindProducer pins the calling goroutine to the given CPU for the producer
// role. Call from the producer goroutine.
func (p *Pipe) BindProducer(cpuID int) error {
	return p.producerPin.Pin(cpuID)
}

// BindConsumer pins the calling goroutine to the given CPU for the consumer
// role. Call from the consumer goroutine.
func (p *Pipe) BindConsumer(cpuID int) error {
	return p.consumerPin.Pin(cpuID)
}

// UnbindProducer releases the producer binding. Call from the producer
// goroutine.
func (p *Pipe) UnbindProducer() error {
	return p.producerPin.Unpin()
}

// UnbindConsumer releases the consumer binding. Call from the consumer
// goroutine.
func (p *Pipe) UnbindConsumer() error {
	return p.consumerPin.Unpin()
}

// Close marks the pipe closed and returns pooled storage. The caller must
// ensure both roles have stopped; spans handed out earlier become invalid.
func (p *Pipe) Close() error {
	if p.closed.Swap(true) {
		return api.ErrPipeClosed
	}
	if p.pool != nil && p.arena != nil {
		p.pool.Release(p.arena)
		p.arena = nil
	}
	return nil
}
