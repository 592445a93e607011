// File: core/bip/check.go
// Package bip contract-violation reporting.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// A violated contract means the single-producer/single-consumer discipline
// itself is broken; no partial recovery is attempted.

package bip

import "fmt"

// violation aborts with a message identifying the broken contract.
func violation(format string, args ...any) {
	panic(fmt.Sprintf("bip: "+format, args...))
}
