// Copyright 2026 The Narrows Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the pure Go CPU engine for array operations.
//
// # Overview
//
// This package implements the array.Backend interface with:
//   - Pure Go implementation (no CGO)
//   - Float32, Float64, Int32, Int64, Uint8 and Bool support
//   - NumPy-compatible broadcasting
//   - NaN-aware reductions alongside the ordinary ones
//
// # Basic Usage
//
//	import (
//	    "github.com/narrows-ml/narrows/array"
//	    "github.com/narrows-ml/narrows/backend/cpu"
//	    "github.com/narrows-ml/narrows/slow"
//	)
//
//	func main() {
//	    r := slow.NewReducer(cpu.New())
//
//	    a, _ := array.FromSlice([]float64{1, 2, 5}, array.Shape{3})
//	    m := r.Median(a, slow.None)
//	    _ = m
//	}
//
// # Thread Safety
//
// The CPU engine holds no mutable state. Operations on distinct arrays may
// run concurrently; in-place operations on a shared array require external
// synchronization.
package cpu
