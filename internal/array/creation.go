package array

import "fmt"

// FromSlice creates an array from a Go slice.
// The slice is copied into the array's memory.
func FromSlice[T DType](data []T, shape Shape) (*Array, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	var dummy T
	dtype := inferDataType(dummy)

	a, err := New(shape, dtype, CPU)
	if err != nil {
		return nil, err
	}

	copy(Values[T](a), data)
	return a, nil
}

// Zeros creates an array filled with zeros.
func Zeros[T DType](shape Shape) *Array {
	var dummy T
	a, err := New(shape, inferDataType(dummy), CPU)
	if err != nil {
		panic(err) // Shape validation should prevent this
	}
	// Data is already zero-initialized by make()
	return a
}

// Full creates an array filled with a specific value.
func Full[T DType](shape Shape, value T) *Array {
	a := Zeros[T](shape)
	data := Values[T](a)
	for i := range data {
		data[i] = value
	}
	return a
}

// Arange creates a 1D array with values from start to end (exclusive),
// stepping by one. Only works with numeric types (not bool).
func Arange[T DType](start, end T) *Array {
	var numElements int
	switch s := any(start).(type) {
	case float32:
		numElements = int(any(end).(float32) - s)
	case float64:
		numElements = int(any(end).(float64) - s)
	case int32:
		numElements = int(any(end).(int32) - s)
	case int64:
		numElements = int(any(end).(int64) - s)
	case uint8:
		numElements = int(any(end).(uint8) - s)
	default:
		panic("Arange not supported for this type")
	}

	if numElements < 0 {
		panic("end must not be less than start")
	}

	a := Zeros[T](Shape{numElements})
	data := Values[T](a)

	switch any(start).(type) {
	case float32:
		s := any(start).(float32)
		for i := range data {
			data[i] = any(s + float32(i)).(T)
		}
	case float64:
		s := any(start).(float64)
		for i := range data {
			data[i] = any(s + float64(i)).(T)
		}
	case int32:
		s := any(start).(int32)
		for i := range data {
			data[i] = any(s + int32(i)).(T) //nolint:gosec // G115: i is within valid range.
		}
	case int64:
		s := any(start).(int64)
		for i := range data {
			data[i] = any(s + int64(i)).(T)
		}
	case uint8:
		s := any(start).(uint8)
		for i := range data {
			data[i] = any(s + uint8(i)).(T) //nolint:gosec // G115: i is within valid range.
		}
	}
	return a
}

// Values returns a typed slice view of the array's data.
// The slice directly accesses the underlying memory (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the array.
func Values[T DType](a *Array) []T {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return any(a.AsFloat32()).([]T)
	case float64:
		return any(a.AsFloat64()).([]T)
	case int32:
		return any(a.AsInt32()).([]T)
	case int64:
		return any(a.AsInt64()).([]T)
	case uint8:
		return any(a.AsUint8()).([]T)
	case bool:
		return any(a.AsBool()).([]T)
	default:
		panic("unsupported type")
	}
}
