// Copyright 2026 The Narrows Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package slow provides the public API for the narrows reference
// reductions: flat, stateless functions computing medians, NaN-aware
// statistics, sums of squares, nearest-neighbor searches and in-place
// replacement over n-dimensional arrays.
//
// These are the always-correct fallbacks for ndim/dtype combinations an
// accelerated implementation does not cover. All functions are bound to the
// pure-Go CPU engine; use NewReducer to substitute another engine.
//
// Example:
//
//	a, _ := array.FromSlice([]float64{1, 2, 5}, array.Shape{3})
//	s := slow.SS(a, 0)          // 30.0
//	m := slow.Median(a, slow.None)
package slow

import (
	"github.com/narrows-ml/narrows/array"
	"github.com/narrows-ml/narrows/backend/cpu"
	"github.com/narrows-ml/narrows/internal/slow"
)

// Axis selects the dimension a reduction collapses.
type Axis = slow.Axis

// None means "reduce over the flattened array".
const None Axis = slow.None

// Error kinds surfaced by NN and Replace.
var (
	ErrInvalidArgument = slow.ErrInvalidArgument
	ErrNotAnArray      = slow.ErrNotAnArray
	ErrUnsafeCast      = slow.ErrUnsafeCast
)

// Reducer implements the slow reduction path on top of a numeric engine.
type Reducer = slow.Reducer

// NewReducer creates a Reducer backed by the given engine.
func NewReducer(b array.Backend) *Reducer {
	return slow.NewReducer(b)
}

// std is the default engine every package-level function delegates to.
// The CPU backend is stateless, so sharing it across callers is safe.
var std = slow.NewReducer(cpu.New())

// Median computes the ordinary median along axis (None for the flattened
// array). Floating-point inputs keep their element type; integer inputs
// produce a Float64 result.
func Median(arr *array.Array, axis Axis) *array.Array {
	return std.Median(arr, axis)
}

// NaNMedian computes the median along axis ignoring NaN entries. An all-NaN
// or zero-length slice yields NaN at that position.
func NaNMedian(arr *array.Array, axis Axis) *array.Array {
	return std.NaNMedian(arr, axis)
}

// NaNArgMin returns the index of the minimum along axis, ignoring NaNs.
// For an all-NaN slice the index is implementation-defined.
func NaNArgMin(arr *array.Array, axis Axis) *array.Array {
	return std.NaNArgMin(arr, axis)
}

// NaNArgMax returns the index of the maximum along axis, ignoring NaNs.
// For an all-NaN slice the index is implementation-defined.
func NaNArgMax(arr *array.Array, axis Axis) *array.Array {
	return std.NaNArgMax(arr, axis)
}

// SS computes the sum of squared elements along axis.
func SS(arr *array.Array, axis Axis) *array.Array {
	return std.SS(arr, axis)
}

// NN finds the candidate in points nearest to query by Euclidean distance,
// returning the distance and the candidate index. points must be 2-d and
// query 1-d; axis selects whether rows (1) or columns (0) are candidates.
func NN(points, query *array.Array, axis int) (float64, int, error) {
	return std.NN(points, query, axis)
}

// Replace replaces, in place, every occurrence of old in arr with new.
// NaN old values match NaN entries; integer arrays reject values that are
// not exactly representable as integers.
func Replace(arr *array.Array, old, new float64) error {
	return std.Replace(arr, old, new)
}

// AnyNaN reports whether any element along axis is NaN.
func AnyNaN(arr *array.Array, axis Axis) *array.Array {
	return std.AnyNaN(arr, axis)
}

// AllNaN reports whether all elements along axis are NaN.
func AllNaN(arr *array.Array, axis Axis) *array.Array {
	return std.AllNaN(arr, axis)
}

// Sum sums elements along axis.
func Sum(arr *array.Array, axis Axis) *array.Array {
	return std.Sum(arr, axis)
}

// Mean computes the mean along axis.
func Mean(arr *array.Array, axis Axis) *array.Array {
	return std.Mean(arr, axis)
}

// Var computes the population variance along axis.
func Var(arr *array.Array, axis Axis) *array.Array {
	return std.Var(arr, axis)
}

// Std computes the population standard deviation along axis.
func Std(arr *array.Array, axis Axis) *array.Array {
	return std.Std(arr, axis)
}

// Min computes the minimum along axis.
func Min(arr *array.Array, axis Axis) *array.Array {
	return std.Min(arr, axis)
}

// Max computes the maximum along axis.
func Max(arr *array.Array, axis Axis) *array.Array {
	return std.Max(arr, axis)
}

// NaNSum sums non-NaN elements along axis; an all-NaN slice sums to zero.
func NaNSum(arr *array.Array, axis Axis) *array.Array {
	return std.NaNSum(arr, axis)
}

// NaNMean computes the mean of non-NaN elements along axis.
func NaNMean(arr *array.Array, axis Axis) *array.Array {
	return std.NaNMean(arr, axis)
}

// NaNVar computes the population variance of non-NaN elements along axis.
func NaNVar(arr *array.Array, axis Axis) *array.Array {
	return std.NaNVar(arr, axis)
}

// NaNStd computes the population standard deviation of non-NaN elements
// along axis.
func NaNStd(arr *array.Array, axis Axis) *array.Array {
	return std.NaNStd(arr, axis)
}

// NaNMin computes the minimum of non-NaN elements along axis.
func NaNMin(arr *array.Array, axis Axis) *array.Array {
	return std.NaNMin(arr, axis)
}

// NaNMax computes the maximum of non-NaN elements along axis.
func NaNMax(arr *array.Array, axis Axis) *array.Array {
	return std.NaNMax(arr, axis)
}
