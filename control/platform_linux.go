//go:build linux
// +build linux

// control/platform_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux-specific platform metrics or debug probe integrations.

package control

import (
	"os"
	"runtime"
)

// RegisterPlatformProbes sets Linux-specific debug metrics.
func RegisterPlatformProbes(pr *ProbeRegistry) {
	pr.RegisterProbe("platform.cpus", func() any {
		return runtime.NumCPU()
	})
	pr.RegisterProbe("platform.pagesize", func() any {
		return os.Getpagesize()
	})
}
