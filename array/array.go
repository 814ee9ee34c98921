// Copyright 2026 The Narrows Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package array provides the public API for the narrows n-dimensional
// array type.
//
// The package re-exports the core types and constructors:
//   - Array: flat row-major buffer with runtime dtype and shape
//   - Shape, DataType, Device: core type definitions
//   - Backend: interface for numeric engine implementations
package array

import (
	"github.com/narrows-ml/narrows/internal/array"
)

// Type aliases for public API

// DType is a constraint for array element types.
// Supported types: float32, float64, int32, int64, uint8, bool.
type DType = array.DType

// DataType represents the underlying element type of an array.
type DataType = array.DataType

// Element type constants.
const (
	Float32 DataType = array.Float32
	Float64 DataType = array.Float64
	Int32   DataType = array.Int32
	Int64   DataType = array.Int64
	Uint8   DataType = array.Uint8
	Bool    DataType = array.Bool
)

// Device represents the device where array data resides.
type Device = array.Device

// Device constants.
const (
	CPU Device = array.CPU
)

// Shape represents the dimensions of an array.
// Example: Shape{2, 3, 4} represents a 3D array with dimensions 2×3×4.
type Shape = array.Shape

// Array is the n-dimensional array with runtime type information.
type Array = array.Array

// Backend is the capability boundary to a numeric engine: elementwise
// arithmetic, reductions, sorting, and masking.
type Backend = array.Backend

// Creation functions

// New creates a zero-initialized array with the given shape and type.
func New(shape Shape, dtype DataType, device Device) (*Array, error) {
	return array.New(shape, dtype, device)
}

// FromSlice creates an array from a Go slice. The slice is copied.
//
// Example:
//
//	a, err := array.FromSlice([]float64{1, 2, 5}, array.Shape{3})
func FromSlice[T DType](data []T, shape Shape) (*Array, error) {
	return array.FromSlice[T](data, shape)
}

// Zeros creates an array filled with zeros.
func Zeros[T DType](shape Shape) *Array {
	return array.Zeros[T](shape)
}

// Full creates an array filled with a specific value.
func Full[T DType](shape Shape, value T) *Array {
	return array.Full[T](shape, value)
}

// Arange creates a 1D array with values from start to end (exclusive).
func Arange[T DType](start, end T) *Array {
	return array.Arange[T](start, end)
}

// Values returns a typed slice view of the array's data.
// WARNING: Modifications to the returned slice will modify the array.
func Values[T DType](a *Array) []T {
	return array.Values[T](a)
}

// BroadcastShapes implements NumPy-style broadcasting rules.
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	return array.BroadcastShapes(a, b)
}
