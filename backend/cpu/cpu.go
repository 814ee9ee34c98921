// Copyright 2026 The Narrows Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	"github.com/narrows-ml/narrows/array"
	internalcpu "github.com/narrows-ml/narrows/internal/backend/cpu"
)

// Backend is the pure Go CPU engine.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements array.Backend.
var _ array.Backend = (*Backend)(nil)

// New creates a new CPU engine.
//
// Example:
//
//	import (
//	    "github.com/narrows-ml/narrows/backend/cpu"
//	    "github.com/narrows-ml/narrows/slow"
//	)
//
//	func main() {
//	    r := slow.NewReducer(cpu.New())
//	    dev := r.Backend().Device()
//	    _ = dev
//	}
func New() *Backend {
	return internalcpu.New()
}
