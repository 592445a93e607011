// Package concurrency provides the lock-free support primitives behind the
// bipartite buffer library: a bounded MPMC queue used as a storage freelist
// and an escalating backoff for callers polling a non-blocking queue.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
package concurrency
