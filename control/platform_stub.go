//go:build !linux
// +build !linux

// control/platform_stub.go
// Author: momentics <momentics@gmail.com>
//
// Platform probe registration for platforms without specific integrations.

package control

import "runtime"

// RegisterPlatformProbes sets generic debug metrics.
func RegisterPlatformProbes(pr *ProbeRegistry) {
	pr.RegisterProbe("platform.cpus", func() any {
		return runtime.NumCPU()
	})
}
