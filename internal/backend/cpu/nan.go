package cpu

import (
	"fmt"
	"math"

	"github.com/narrows-ml/narrows/internal/array"
)

// NaN-aware reductions. NaN entries are skipped; integer arrays cannot hold
// NaN so they route straight to the ordinary counterparts.

// NaNSumDim sums non-NaN elements along the specified dimension.
// An all-NaN slice sums to zero.
func (cpu *CPUBackend) NaNSumDim(x *array.Array, dim int, keepDim bool) *array.Array {
	if !x.DType().IsFloat() {
		return cpu.SumDim(x, dim, keepDim)
	}

	shape := x.Shape()
	dim = normalizeDim("nansumdim", dim, len(shape))

	result, err := array.New(reducedShape(shape, dim, keepDim), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("nansumdim: %v", err))
	}

	switch x.DType() {
	case array.Float32:
		nanSumDimKernel(x.AsFloat32(), result.AsFloat32(), shape, dim)
	case array.Float64:
		nanSumDimKernel(x.AsFloat64(), result.AsFloat64(), shape, dim)
	}
	return result
}

func nanSumDimKernel[T float](src, dst []T, shape array.Shape, dim int) {
	forEachSlice(shape, dim, func(out, base, stride, n int) {
		var sum float64
		for i := 0; i < n; i++ {
			v := float64(src[base+i*stride])
			if !math.IsNaN(v) {
				sum += v
			}
		}
		dst[out] = T(sum)
	})
}

// NaNMeanDim computes the mean of non-NaN elements along the specified
// dimension. An all-NaN slice yields NaN.
func (cpu *CPUBackend) NaNMeanDim(x *array.Array, dim int, keepDim bool) *array.Array {
	if !x.DType().IsFloat() {
		return cpu.MeanDim(x, dim, keepDim)
	}

	shape := x.Shape()
	dim = normalizeDim("nanmeandim", dim, len(shape))

	result, err := array.New(reducedShape(shape, dim, keepDim), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("nanmeandim: %v", err))
	}

	switch x.DType() {
	case array.Float32:
		nanMeanDimKernel(x.AsFloat32(), result.AsFloat32(), shape, dim)
	case array.Float64:
		nanMeanDimKernel(x.AsFloat64(), result.AsFloat64(), shape, dim)
	}
	return result
}

func nanMeanDimKernel[T float](src, dst []T, shape array.Shape, dim int) {
	forEachSlice(shape, dim, func(out, base, stride, n int) {
		var sum float64
		count := 0
		for i := 0; i < n; i++ {
			v := float64(src[base+i*stride])
			if !math.IsNaN(v) {
				sum += v
				count++
			}
		}
		dst[out] = T(sum / float64(count))
	})
}

// NaNVarDim computes the population variance (ddof=0) of non-NaN elements
// along the specified dimension. An all-NaN slice yields NaN.
func (cpu *CPUBackend) NaNVarDim(x *array.Array, dim int, keepDim bool) *array.Array {
	if !x.DType().IsFloat() {
		return cpu.VarDim(x, dim, keepDim)
	}

	shape := x.Shape()
	dim = normalizeDim("nanvardim", dim, len(shape))

	result, err := array.New(reducedShape(shape, dim, keepDim), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("nanvardim: %v", err))
	}

	switch x.DType() {
	case array.Float32:
		nanVarDimKernel(x.AsFloat32(), result.AsFloat32(), shape, dim)
	case array.Float64:
		nanVarDimKernel(x.AsFloat64(), result.AsFloat64(), shape, dim)
	}
	return result
}

func nanVarDimKernel[T float](src, dst []T, shape array.Shape, dim int) {
	forEachSlice(shape, dim, func(out, base, stride, n int) {
		var sum float64
		count := 0
		for i := 0; i < n; i++ {
			v := float64(src[base+i*stride])
			if !math.IsNaN(v) {
				sum += v
				count++
			}
		}
		mean := sum / float64(count)

		var sq float64
		for i := 0; i < n; i++ {
			v := float64(src[base+i*stride])
			if !math.IsNaN(v) {
				d := v - mean
				sq += d * d
			}
		}
		dst[out] = T(sq / float64(count))
	})
}

// NaNStdDim computes the population standard deviation (ddof=0) of non-NaN
// elements along the specified dimension.
func (cpu *CPUBackend) NaNStdDim(x *array.Array, dim int, keepDim bool) *array.Array {
	result := cpu.NaNVarDim(x, dim, keepDim)
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

// NaNMinDim computes the minimum of non-NaN elements along the specified
// dimension. An all-NaN slice yields NaN.
func (cpu *CPUBackend) NaNMinDim(x *array.Array, dim int, keepDim bool) *array.Array {
	return cpu.nanExtremumDim("nanmindim", x, dim, keepDim, true)
}

// NaNMaxDim computes the maximum of non-NaN elements along the specified
// dimension. An all-NaN slice yields NaN.
func (cpu *CPUBackend) NaNMaxDim(x *array.Array, dim int, keepDim bool) *array.Array {
	return cpu.nanExtremumDim("nanmaxdim", x, dim, keepDim, false)
}

func (cpu *CPUBackend) nanExtremumDim(opName string, x *array.Array, dim int, keepDim, min bool) *array.Array {
	if !x.DType().IsFloat() {
		if min {
			return cpu.MinDim(x, dim, keepDim)
		}
		return cpu.MaxDim(x, dim, keepDim)
	}

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
		nanExtremumDimKernel(x.AsFloat32(), result.AsFloat32(), shape, dim, min)
	case array.Float64:
		nanExtremumDimKernel(x.AsFloat64(), result.AsFloat64(), shape, dim, min)
	}
	return result
}

func nanExtremumDimKernel[T float](src, dst []T, shape array.Shape, dim int, min bool) {
	forEachSlice(shape, dim, func(out, base, stride, n int) {
		m := math.NaN()
		found := false
		for i := 0; i < n; i++ {
			v := float64(src[base+i*stride])
			if math.IsNaN(v) {
				continue
			}
			if !found || (min && v < m) || (!min && v > m) {
				m = v
				found = true
			}
		}
		dst[out] = T(m)
	})
}

// NaNArgmin returns the index of the minimum non-NaN value along the
// specified dimension, as an Int64 array. An all-NaN slice yields index 0;
// callers must not rely on that value.
func (cpu *CPUBackend) NaNArgmin(x *array.Array, dim int) *array.Array {
	return cpu.nanArgExtremum("nanargmin", x, dim, true)
}

// NaNArgmax returns the index of the maximum non-NaN value along the
// specified dimension, as an Int64 array. An all-NaN slice yields index 0;
// callers must not rely on that value.
func (cpu *CPUBackend) NaNArgmax(x *array.Array, dim int) *array.Array {
	return cpu.nanArgExtremum("nanargmax", x, dim, false)
}

func (cpu *CPUBackend) nanArgExtremum(opName string, x *array.Array, dim int, min bool) *array.Array {
	if !x.DType().IsFloat() {
		if min {
			return cpu.Argmin(x, dim)
		}
		return cpu.Argmax(x, dim)
	}

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
		nanArgExtremumKernel(x.AsFloat32(), result.AsInt64(), shape, dim, min)
	case array.Float64:
		nanArgExtremumKernel(x.AsFloat64(), result.AsInt64(), shape, dim, min)
	}
	return result
}

func nanArgExtremumKernel[T float](src []T, dst []int64, shape array.Shape, dim int, min bool) {
	forEachSlice(shape, dim, func(out, base, stride, n int) {
		best := int64(0)
		bestVal := math.NaN()
		found := false
		for i := 0; i < n; i++ {
			v := float64(src[base+i*stride])
			if math.IsNaN(v) {
				continue
			}
			if !found || (min && v < bestVal) || (!min && v > bestVal) {
				bestVal = v
				best = int64(i)
				found = true
			}
		}
		dst[out] = best
	})
}
