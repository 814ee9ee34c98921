// Package cpu implements the pure-Go reference engine backing the slow
// reduction path. It favors a single obviously-correct code path per
// operation over speed: accelerated implementations live behind the dispatch
// layer, outside this module.
package cpu

import (
	"fmt"

	"github.com/narrows-ml/narrows/internal/array"
)

// number is the constraint for element types numeric kernels accept.
type number interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint8
}

// float is the constraint for element types that can hold NaN.
type float interface {
	~float32 | ~float64
}

// integer is the constraint for integer element types.
type integer interface {
	~int32 | ~int64 | ~uint8
}

// CPUBackend implements array.Backend with straightforward Go loops.
type CPUBackend struct {
	device array.Device
}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{
		device: array.CPU,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() array.Device {
	return cpu.device
}

// Reshape returns an array with the same data but different shape.
func (cpu *CPUBackend) Reshape(x *array.Array, newShape array.Shape) *array.Array {
	if err := newShape.Validate(); err != nil {
		panic(fmt.Sprintf("reshape: invalid shape: %v", err))
	}

	if x.NumElements() != newShape.NumElements() {
		panic(fmt.Sprintf("reshape: incompatible shapes: %v -> %v (different number of elements)",
			x.Shape(), newShape))
	}

	result, err := array.New(newShape, x.DType(), x.Device())
	if err != nil {
		panic(fmt.Sprintf("reshape: %v", err))
	}

	copy(result.Data(), x.Data())
	return result
}

// Cast converts the array to a different element type.
// Returns a copy even when the target dtype equals the source dtype.
func (cpu *CPUBackend) Cast(x *array.Array, dtype array.DataType) *array.Array {
	if dtype == x.DType() {
		return x.Clone()
	}

	result, err := array.New(x.Shape(), dtype, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("cast: %v", err))
	}

	switch x.DType() {
	case array.Float32:
		castFrom(result, x.AsFloat32())
	case array.Float64:
		castFrom(result, x.AsFloat64())
	case array.Int32:
		castFrom(result, x.AsInt32())
	case array.Int64:
		castFrom(result, x.AsInt64())
	case array.Uint8:
		castFrom(result, x.AsUint8())
	default:
		panic(fmt.Sprintf("cast: unsupported source dtype %s", x.DType()))
	}

	return result
}

// castFrom writes src into dst element-wise, converting to dst's dtype.
func castFrom[T number](dst *array.Array, src []T) {
	switch dst.DType() {
	case array.Float32:
		out := dst.AsFloat32()
		for i, v := range src {
			out[i] = float32(v)
		}
	case array.Float64:
		out := dst.AsFloat64()
		for i, v := range src {
			out[i] = float64(v)
		}
	case array.Int32:
		out := dst.AsInt32()
		for i, v := range src {
			out[i] = int32(v)
		}
	case array.Int64:
		out := dst.AsInt64()
		for i, v := range src {
			out[i] = int64(v)
		}
	case array.Uint8:
		out := dst.AsUint8()
		for i, v := range src {
			out[i] = uint8(v)
		}
	default:
		panic(fmt.Sprintf("cast: unsupported target dtype %s", dst.DType()))
	}
}

// normalizeDim resolves negative dimension indices and validates the range.
func normalizeDim(opName string, dim, ndim int) int {
	if dim < 0 {
		dim = ndim + dim
	}
	if dim < 0 || dim >= ndim {
		panic(fmt.Sprintf("%s: dimension %d out of range for %dD array", opName, dim, ndim))
	}
	return dim
}

// reducedShape computes the output shape when collapsing dim.
func reducedShape(shape array.Shape, dim int, keepDim bool) array.Shape {
	if keepDim {
		out := shape.Clone()
		out[dim] = 1
		return out
	}
	return shape.Reduced(dim)
}
