package cpu

import (
	"fmt"
	"math"

	"github.com/narrows-ml/narrows/internal/array"
)

// forEachSlice iterates the reduction groups of shape along dim, in row-major
// order of the reduced shape. For each group it yields the group's output
// index, the base offset of the slice, the stride between consecutive slice
// elements, and the slice length.
func forEachSlice(shape array.Shape, dim int, fn func(outIdx, base, stride, n int)) {
	strides := shape.ComputeStrides()
	dimSize := shape[dim]
	dimStride := strides[dim]

	numGroups := 1
	for i, d := range shape {
		if i != dim {
			numGroups *= d
		}
	}

	for group := 0; group < numGroups; group++ {
		base := 0
		remaining := group
		for i := len(shape) - 1; i >= 0; i-- {
			if i == dim {
				continue
			}
			coord := remaining % shape[i]
			remaining /= shape[i]
			base += coord * strides[i]
		}
		fn(group, base, dimStride, dimSize)
	}
}

// Sum computes the total sum of all elements (scalar result).
func (cpu *CPUBackend) Sum(x *array.Array) *array.Array {
	result, err := array.New(array.Shape{}, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("sum: %v", err))
	}

	switch x.DType() {
	case array.Float32:
		sumFlat(x.AsFloat32(), result.AsFloat32())
	case array.Float64:
		sumFlat(x.AsFloat64(), result.AsFloat64())
	case array.Int32:
		sumFlat(x.AsInt32(), result.AsInt32())
	case array.Int64:
		sumFlat(x.AsInt64(), result.AsInt64())
	case array.Uint8:
		sumFlat(x.AsUint8(), result.AsUint8())
	default:
		panic(fmt.Sprintf("sum: unsupported dtype %s", x.DType()))
	}
	return result
}

func sumFlat[T number](src, dst []T) {
	var sum T
	for _, v := range src {
		sum += v
	}
	dst[0] = sum
}

// SumDim sums elements along the specified dimension.
// NaN entries propagate into the result.
func (cpu *CPUBackend) SumDim(x *array.Array, dim int, keepDim bool) *array.Array {
	shape := x.Shape()
	dim = normalizeDim("sumdim", dim, len(shape))

	result, err := array.New(reducedShape(shape, dim, keepDim), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("sumdim: %v", err))
	}

	switch x.DType() {
	case array.Float32:
		sumDimKernel(x.AsFloat32(), result.AsFloat32(), shape, dim)
	case array.Float64:
		sumDimKernel(x.AsFloat64(), result.AsFloat64(), shape, dim)
	case array.Int32:
		sumDimKernel(x.AsInt32(), result.AsInt32(), shape, dim)
	case array.Int64:
		sumDimKernel(x.AsInt64(), result.AsInt64(), shape, dim)
	case array.Uint8:
		sumDimKernel(x.AsUint8(), result.AsUint8(), shape, dim)
	default:
		panic(fmt.Sprintf("sumdim: unsupported dtype %s", x.DType()))
	}
	return result
}

func sumDimKernel[T number](src, dst []T, shape array.Shape, dim int) {
	forEachSlice(shape, dim, func(out, base, stride, n int) {
		var sum T
		for i := 0; i < n; i++ {
			sum += src[base+i*stride]
		}
		dst[out] = sum
	})
}

// MeanDim computes the mean along the specified dimension.
// Integer inputs are promoted to Float64 first.
func (cpu *CPUBackend) MeanDim(x *array.Array, dim int, keepDim bool) *array.Array {
	if !x.DType().IsFloat() {
		return cpu.MeanDim(cpu.Cast(x, array.Float64), dim, keepDim)
	}

	shape := x.Shape()
	dim = normalizeDim("meandim", dim, len(shape))

	result, err := array.New(reducedShape(shape, dim, keepDim), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("meandim: %v", err))
	}

	switch x.DType() {
	case array.Float32:
		meanDimKernel(x.AsFloat32(), result.AsFloat32(), shape, dim)
	case array.Float64:
		meanDimKernel(x.AsFloat64(), result.AsFloat64(), shape, dim)
	}
	return result
}

func meanDimKernel[T float](src, dst []T, shape array.Shape, dim int) {
	forEachSlice(shape, dim, func(out, base, stride, n int) {
		var sum float64
		for i := 0; i < n; i++ {
			sum += float64(src[base+i*stride])
		}
		dst[out] = T(sum / float64(n))
	})
}

// VarDim computes the population variance (ddof=0) along the specified
// dimension. Integer inputs are promoted to Float64 first.
func (cpu *CPUBackend) VarDim(x *array.Array, dim int, keepDim bool) *array.Array {
	if !x.DType().IsFloat() {
		return cpu.VarDim(cpu.Cast(x, array.Float64), dim, keepDim)
	}

	shape := x.Shape()
	dim = normalizeDim("vardim", dim, len(shape))

	result, err := array.New(reducedShape(shape, dim, keepDim), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("vardim: %v", err))
	}

	switch x.DType() {
	case array.Float32:
		varDimKernel(x.AsFloat32(), result.AsFloat32(), shape, dim)
	case array.Float64:
		varDimKernel(x.AsFloat64(), result.AsFloat64(), shape, dim)
	}
	return result
}

func varDimKernel[T float](src, dst []T, shape array.Shape, dim int) {
	forEachSlice(shape, dim, func(out, base, stride, n int) {
		var sum float64
		for i := 0; i < n; i++ {
			sum += float64(src[base+i*stride])
		}
		mean := sum / float64(n)

		var sq float64
		for i := 0; i < n; i++ {
			d := float64(src[base+i*stride]) - mean
			sq += d * d
		}
		dst[out] = T(sq / float64(n))
	})
}

// StdDim computes the population standard deviation (ddof=0) along the
// specified dimension.
func (cpu *CPUBackend) StdDim(x *array.Array, dim int, keepDim bool) *array.Array {
	result := cpu.VarDim(x, dim, keepDim)
	switch result.DType() {
	case array.Float32:
		data := result.AsFloat32()
		for i, v := range data {
			data[i] = float32(math.Sqrt(float64(v)))
		}
	case array.Float64:
		data := result.AsFloat64()
		for i, v := range data {
			data[i] = math.Sqrt(v)
		}
	}
	return result
}

// MinDim computes the minimum along the specified dimension.
// A NaN anywhere in a slice makes that slice's result NaN.
func (cpu *CPUBackend) MinDim(x *array.Array, dim int, keepDim bool) *array.Array {
	return cpu.extremumDim("mindim", x, dim, keepDim, true)
}

// MaxDim computes the maximum along the specified dimension.
// A NaN anywhere in a slice makes that slice's result NaN.
func (cpu *CPUBackend) MaxDim(x *array.Array, dim int, keepDim bool) *array.Array {
	return cpu.extremumDim("maxdim", x, dim, keepDim, false)
}

func (cpu *CPUBackend) extremumDim(opName string, x *array.Array, dim int, keepDim, min bool) *array.Array {
	shape := x.Shape()
	dim = normalizeDim(opName, dim, len(shape))
	if shape[dim] == 0 {
		panic(fmt.Sprintf("%s: zero-size array reduction has no identity", opName))
	}

	result, err := array.New(reducedShape(shape, dim, keepDim), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", opName, err))
	}

	switch x.DType() {
	case array.Float32:
		extremumDimFloat(x.AsFloat32(), result.AsFloat32(), shape, dim, min)
	case array.Float64:
		extremumDimFloat(x.AsFloat64(), result.AsFloat64(), shape, dim, min)
	case array.Int32:
		extremumDimInt(x.AsInt32(), result.AsInt32(), shape, dim, min)
	case array.Int64:
		extremumDimInt(x.AsInt64(), result.AsInt64(), shape, dim, min)
	case array.Uint8:
		extremumDimInt(x.AsUint8(), result.AsUint8(), shape, dim, min)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", opName, x.DType()))
	}
	return result
}

func extremumDimFloat[T float](src, dst []T, shape array.Shape, dim int, min bool) {
	forEachSlice(shape, dim, func(out, base, stride, n int) {
		m := src[base]
		for i := 1; i < n; i++ {
			v := src[base+i*stride]
			if math.IsNaN(float64(v)) {
				m = v
				break
			}
			if (min && v < m) || (!min && v > m) {
				m = v
			}
		}
		dst[out] = m
	})
}

func extremumDimInt[T integer](src, dst []T, shape array.Shape, dim int, min bool) {
	forEachSlice(shape, dim, func(out, base, stride, n int) {
		m := src[base]
		for i := 1; i < n; i++ {
			v := src[base+i*stride]
			if (min && v < m) || (!min && v > m) {
				m = v
			}
		}
		dst[out] = m
	})
}

// Argmin returns the index of the minimum value along the specified
// dimension, as an Int64 array. The first NaN in a slice wins, mirroring the
// underlying-library convention the slow path wraps.
func (cpu *CPUBackend) Argmin(x *array.Array, dim int) *array.Array {
	return cpu.argExtremum("argmin", x, dim, true)
}

// Argmax returns the index of the maximum value along the specified
// dimension, as an Int64 array. The first NaN in a slice wins.
func (cpu *CPUBackend) Argmax(x *array.Array, dim int) *array.Array {
	return cpu.argExtremum("argmax", x, dim, false)
}

func (cpu *CPUBackend) argExtremum(opName string, x *array.Array, dim int, min bool) *array.Array {
	shape := x.Shape()
	dim = normalizeDim(opName, dim, len(shape))
	if shape[dim] == 0 {
		panic(fmt.Sprintf("%s: zero-size array reduction has no identity", opName))
	}

	result, err := array.New(shape.Reduced(dim), array.Int64, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", opName, err))
	}

	switch x.DType() {
	case array.Float32:
		argExtremumFloat(x.AsFloat32(), result.AsInt64(), shape, dim, min)
	case array.Float64:
		argExtremumFloat(x.AsFloat64(), result.AsInt64(), shape, dim, min)
	case array.Int32:
		argExtremumInt(x.AsInt32(), result.AsInt64(), shape, dim, min)
	case array.Int64:
		argExtremumInt(x.AsInt64(), result.AsInt64(), shape, dim, min)
	case array.Uint8:
		argExtremumInt(x.AsUint8(), result.AsInt64(), shape, dim, min)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", opName, x.DType()))
	}
	return result
}

func argExtremumFloat[T float](src []T, dst []int64, shape array.Shape, dim int, min bool) {
	forEachSlice(shape, dim, func(out, base, stride, n int) {
		bestVal := src[base]
		if math.IsNaN(float64(bestVal)) {
			dst[out] = 0
			return
		}
		best := int64(0)
		for i := 1; i < n; i++ {
			v := src[base+i*stride]
			if math.IsNaN(float64(v)) {
				best = int64(i)
				break
			}
			if (min && v < bestVal) || (!min && v > bestVal) {
				bestVal = v
				best = int64(i)
			}
		}
		dst[out] = best
	})
}

func argExtremumInt[T integer](src []T, dst []int64, shape array.Shape, dim int, min bool) {
	forEachSlice(shape, dim, func(out, base, stride, n int) {
		bestVal := src[base]
		best := int64(0)
		for i := 1; i < n; i++ {
			v := src[base+i*stride]
			if (min && v < bestVal) || (!min && v > bestVal) {
				bestVal = v
				best = int64(i)
			}
		}
		dst[out] = best
	})
}
