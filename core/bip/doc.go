// Package bip implements a bipartite circular buffer: a fixed-capacity
// single-producer/single-consumer queue whose reservations and peeks are
// always contiguous spans of the backing array.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// A classic ring buffer splits data across the wrap point, which breaks
// zero-copy integration with vectored I/O sinks, contiguous parsers, and DMA
// descriptors. The bip buffer trades one sentinel slot (usable capacity is
// N-1) plus a watermark index for the guarantee that every producer
// reservation and every consumer peek is one contiguous span.
//
// Producer workflow:
//
//	span := q.ReserveLargest(128)
//	n := fill(span)
//	q.Commit(n)
//
// Consumer workflow:
//
//	view := q.Peek()
//	n := drain(view)
//	q.Consume(n)
//
// All operations are non-blocking. An empty span is the flow-control signal;
// callers that need to wait should spin or yield (see internal/concurrency
// Backoff) around the reserve/peek call.
package bip
