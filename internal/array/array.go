package array

import (
	"fmt"
	"unsafe"
)

// Device represents the compute device an array lives on.
// The slow reference path only ever allocates on the CPU; accelerated
// implementations live behind the dispatch layer, outside this module.
type Device int

// Supported compute devices.
const (
	CPU Device = iota
)

// String returns a human-readable device name.
func (d Device) String() string {
	switch d {
	case CPU:
		return "CPU"
	default:
		return "Unknown"
	}
}

// Array is the low-level n-dimensional array representation.
// Data is stored in a flat row-major byte buffer with runtime type
// information, so a single code path can serve every ndim/dtype combination.
type Array struct {
	data   []byte   // Flat row-major buffer
	shape  Shape    // Array dimensions
	stride []int    // Memory strides (row-major)
	dtype  DataType // Runtime type information
	device Device   // Compute device
}

// New creates a new Array with the given shape and type.
// Memory is allocated and zero-initialized.
func New(shape Shape, dtype DataType, device Device) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	numElements := shape.NumElements()
	byteSize := numElements * dtype.Size()

	return &Array{
		data:   make([]byte, byteSize),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  dtype,
		device: device,
	}, nil
}

// Shape returns the array's shape.
func (a *Array) Shape() Shape {
	return a.shape
}

// Strides returns the array's memory strides.
func (a *Array) Strides() []int {
	return a.stride
}

// DType returns the array's element type.
func (a *Array) DType() DataType {
	return a.dtype
}

// Device returns the array's compute device.
func (a *Array) Device() Device {
	return a.device
}

// NumElements returns the total number of elements.
func (a *Array) NumElements() int {
	return a.shape.NumElements()
}

// ByteSize returns the total memory size in bytes.
func (a *Array) ByteSize() int {
	return a.NumElements() * a.dtype.Size()
}

// Data returns the raw byte slice.
// WARNING: Direct access to underlying memory. Use with caution.
func (a *Array) Data() []byte {
	return a.data
}

// AsFloat32 interprets the data as []float32.
// Panics if the array's dtype is not Float32.
func (a *Array) AsFloat32() []float32 {
	if a.dtype != Float32 {
		panic(fmt.Sprintf("array dtype is %s, not float32", a.dtype))
	}
	if len(a.data) == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*float32)(unsafe.Pointer(&a.data[0])), a.NumElements())
}

// AsFloat64 interprets the data as []float64.
// Panics if the array's dtype is not Float64.
func (a *Array) AsFloat64() []float64 {
	if a.dtype != Float64 {
		panic(fmt.Sprintf("array dtype is %s, not float64", a.dtype))
	}
	if len(a.data) == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*float64)(unsafe.Pointer(&a.data[0])), a.NumElements())
}

// AsInt32 interprets the data as []int32.
// Panics if the array's dtype is not Int32.
func (a *Array) AsInt32() []int32 {
	if a.dtype != Int32 {
		panic(fmt.Sprintf("array dtype is %s, not int32", a.dtype))
	}
	if len(a.data) == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*int32)(unsafe.Pointer(&a.data[0])), a.NumElements())
}

// AsInt64 interprets the data as []int64.
// Panics if the array's dtype is not Int64.
func (a *Array) AsInt64() []int64 {
	if a.dtype != Int64 {
		panic(fmt.Sprintf("array dtype is %s, not int64", a.dtype))
	}
	if len(a.data) == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*int64)(unsafe.Pointer(&a.data[0])), a.NumElements())
}

// AsUint8 interprets the data as []uint8.
// Panics if the array's dtype is not Uint8.
func (a *Array) AsUint8() []uint8 {
	if a.dtype != Uint8 {
		panic(fmt.Sprintf("array dtype is %s, not uint8", a.dtype))
	}
	return a.data // Already []byte = []uint8
}

// AsBool interprets the data as []bool.
// Panics if the array's dtype is not Bool.
func (a *Array) AsBool() []bool {
	if a.dtype != Bool {
		panic(fmt.Sprintf("array dtype is %s, not bool", a.dtype))
	}
	if len(a.data) == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*bool)(unsafe.Pointer(&a.data[0])), a.NumElements())
}

// Clone creates a deep copy of the array.
func (a *Array) Clone() *Array {
	data := make([]byte, len(a.data))
	copy(data, a.data)
	return &Array{
		data:   data,
		shape:  a.shape.Clone(),
		stride: append([]int(nil), a.stride...),
		dtype:  a.dtype,
		device: a.device,
	}
}

// flatOffset computes the flat buffer index for the given indices.
func (a *Array) flatOffset(indices []int) int {
	if len(indices) != len(a.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(a.shape), len(indices)))
	}
	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= a.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, a.shape[i]))
		}
		offset += idx * a.stride[i]
	}
	return offset
}

// At returns the element at the given indices as a float64.
// Integer and boolean elements are widened; use the typed accessors for
// exact integer reads. Panics if indices are out of bounds.
func (a *Array) At(indices ...int) float64 {
	offset := a.flatOffset(indices)
	switch a.dtype {
	case Float32:
		return float64(a.AsFloat32()[offset])
	case Float64:
		return a.AsFloat64()[offset]
	case Int32:
		return float64(a.AsInt32()[offset])
	case Int64:
		return float64(a.AsInt64()[offset])
	case Uint8:
		return float64(a.AsUint8()[offset])
	case Bool:
		if a.AsBool()[offset] {
			return 1
		}
		return 0
	default:
		panic(fmt.Sprintf("at: unsupported dtype %s", a.dtype))
	}
}

// Set stores a float64 value at the given indices, converting to the
// array's element type. Panics if indices are out of bounds.
func (a *Array) Set(value float64, indices ...int) {
	offset := a.flatOffset(indices)
	switch a.dtype {
	case Float32:
		a.AsFloat32()[offset] = float32(value)
	case Float64:
		a.AsFloat64()[offset] = value
	case Int32:
		a.AsInt32()[offset] = int32(value)
	case Int64:
		a.AsInt64()[offset] = int64(value)
	case Uint8:
		a.AsUint8()[offset] = uint8(value)
	case Bool:
		a.AsBool()[offset] = value != 0
	default:
		panic(fmt.Sprintf("set: unsupported dtype %s", a.dtype))
	}
}

// String returns a human-readable representation of the array.
func (a *Array) String() string {
	return fmt.Sprintf("Array[%s]%v on %s", a.dtype, a.shape, a.device)
}
