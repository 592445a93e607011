// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral API for CPU affinity. Platform-specific implementations
// live in separate files (affinity_linux.go, affinity_stub.go) guarded by
// build tags.
//
// Pinning the producer and consumer of a bip queue to distinct cores keeps
// the index cache lines resident on their owning side and stabilizes
// latency under sustained load.

package affinity

import (
	"runtime"

	"github.com/momentics/hioload-bip/api"
)

// SetAffinity pins the current OS thread to a given logical CPU/core on
// supported platforms. On unsupported platforms returns an error.
func SetAffinity(cpuID int) error {
	return setAffinityPlatform(cpuID)
}

// ClearAffinity restores the current OS thread to the full CPU set.
func ClearAffinity() error {
	return clearAffinityPlatform()
}

// Pinner binds a goroutine to an OS thread and that thread to a CPU.
type Pinner struct {
	pinned bool
}

// Ensure compile-time interface compliance.
var _ api.Affinity = (*Pinner)(nil)

// Pin locks the calling goroutine to its OS thread and binds the thread to
// the given logical CPU.
func (p *Pinner) Pin(cpuID int) error {
	runtime.LockOSThread()
	if err := setAffinityPlatform(cpuID); err != nil {
		runtime.UnlockOSThread()
		return err
	}
	p.pinned = true
	return nil
}

// Unpin releases the CPU binding and the OS thread.
func (p *Pinner) Unpin() error {
	if !p.pinned {
		return nil
	}
	err := clearAffinityPlatform()
	runtime.UnlockOSThread()
	p.pinned = false
	return err
}
