package slow

import (
	"fmt"
	"math"

	"github.com/narrows-ml/narrows/internal/array"
)

// Axis selects the dimension a reduction collapses.
type Axis int

// None means "reduce over the flattened array".
const None Axis = math.MinInt

// Reducer implements the slow reduction path on top of a numeric engine.
// Every method is a stateless, synchronous, single-pass computation; the
// engine does the actual work.
type Reducer struct {
	b array.Backend
}

// NewReducer creates a Reducer backed by the given engine.
func NewReducer(b array.Backend) *Reducer {
	return &Reducer{b: b}
}

// Backend returns the engine this Reducer delegates to.
func (r *Reducer) Backend() array.Backend {
	return r.b
}

// along resolves an Axis against arr: None flattens the array and reduces
// dimension 0, anything else reduces the named dimension of arr as-is.
func (r *Reducer) along(arr *array.Array, axis Axis) (*array.Array, int) {
	if axis == None {
		return r.b.Reshape(arr, array.Shape{arr.NumElements()}), 0
	}
	return arr, int(axis)
}

// restoreDType casts y back to arr's element type when arr is
// floating-point and the engine produced a different type. Non-float inputs
// keep whatever type the operation required (e.g. Float64 medians).
func (r *Reducer) restoreDType(arr, y *array.Array) *array.Array {
	if y.DType() != arr.DType() && arr.DType().IsFloat() {
		return r.b.Cast(y, arr.DType())
	}
	return y
}

// Median computes the ordinary median along axis (or of the flattened array
// for None). Floating-point inputs keep their element type; integer inputs
// produce a Float64 result.
func (r *Reducer) Median(arr *array.Array, axis Axis) *array.Array {
	x, dim := r.along(arr, axis)
	return r.restoreDType(arr, r.b.MedianDim(x, dim, false))
}

// NaNMedian computes the median along axis ignoring NaN entries. A slice
// that is entirely NaN (or of zero length) yields NaN at that position.
// Integer inputs cannot hold NaN and route through Median, producing a
// Float64 result. A 0-d result is read back with At().
func (r *Reducer) NaNMedian(arr *array.Array, axis Axis) *array.Array {
	if !arr.DType().IsFloat() {
		return r.Median(arr, axis)
	}

	x, dim := r.along(arr, axis)
	shape := x.Shape()
	if dim < 0 {
		dim += len(shape)
	}
	if dim < 0 || dim >= len(shape) {
		panic(fmt.Sprintf("nanmedian: dimension %d out of range for %dD array", int(axis), len(shape)))
	}

	result, err := array.New(shape.Reduced(dim), x.DType(), x.Device())
	if err != nil {
		panic(err)
	}

	if shape[dim] == 0 {
		// Zero-length reduction axis: an empty result of the reduced
		// shape, NaN-filled, not a failure.
		fillNaN(result)
		return result
	}

	// Sort pushes NaNs past every real value, so each slice's survivors
	// are exactly its sorted non-NaN prefix.
	sorted := r.b.SortDim(x, dim)
	switch x.DType() {
	case array.Float32:
		nanMedianSlices(sorted.AsFloat32(), result.AsFloat32(), shape, dim)
	case array.Float64:
		nanMedianSlices(sorted.AsFloat64(), result.AsFloat64(), shape, dim)
	}
	return result
}

// NaNArgMin returns the index of the minimum along axis, ignoring NaNs, as
// an Int64 array. For an all-NaN slice the index is implementation-defined
// (currently 0); callers must not rely on a specific value.
func (r *Reducer) NaNArgMin(arr *array.Array, axis Axis) *array.Array {
	x, dim := r.along(arr, axis)
	return r.b.NaNArgmin(x, dim)
}

// NaNArgMax returns the index of the maximum along axis, ignoring NaNs, as
// an Int64 array. For an all-NaN slice the index is implementation-defined
// (currently 0); callers must not rely on a specific value.
func (r *Reducer) NaNArgMax(arr *array.Array, axis Axis) *array.Array {
	x, dim := r.along(arr, axis)
	return r.b.NaNArgmax(x, dim)
}

// SS computes the sum of squared elements along axis (None for the whole
// array). The result keeps the input element type.
func (r *Reducer) SS(arr *array.Array, axis Axis) *array.Array {
	x, dim := r.along(arr, axis)
	return r.b.SumDim(r.b.Mul(x, x), dim, false)
}

// AnyNaN reports whether any element along axis is NaN, as a Bool scalar or
// Bool array. Integer arrays never contain NaN.
func (r *Reducer) AnyNaN(arr *array.Array, axis Axis) *array.Array {
	mask := r.b.IsNaN(arr)
	if axis == None {
		return r.b.Any(mask)
	}
	return r.b.AnyDim(mask, int(axis), false)
}

// AllNaN reports whether all elements along axis are NaN, as a Bool scalar
// or Bool array.
func (r *Reducer) AllNaN(arr *array.Array, axis Axis) *array.Array {
	mask := r.b.IsNaN(arr)
	if axis == None {
		return r.b.All(mask)
	}
	return r.b.AllDim(mask, int(axis), false)
}

// Passthrough reductions: no added logic beyond axis resolution, exactly the
// engine's own primitives re-exported.

// Sum sums elements along axis.
func (r *Reducer) Sum(arr *array.Array, axis Axis) *array.Array {
	x, dim := r.along(arr, axis)
	return r.b.SumDim(x, dim, false)
}

// Mean computes the mean along axis.
func (r *Reducer) Mean(arr *array.Array, axis Axis) *array.Array {
	x, dim := r.along(arr, axis)
	return r.b.MeanDim(x, dim, false)
}

// Var computes the population variance along axis.
func (r *Reducer) Var(arr *array.Array, axis Axis) *array.Array {
	x, dim := r.along(arr, axis)
	return r.b.VarDim(x, dim, false)
}

// Std computes the population standard deviation along axis.
func (r *Reducer) Std(arr *array.Array, axis Axis) *array.Array {
	x, dim := r.along(arr, axis)
	return r.b.StdDim(x, dim, false)
}

// Min computes the minimum along axis.
func (r *Reducer) Min(arr *array.Array, axis Axis) *array.Array {
	x, dim := r.along(arr, axis)
	return r.b.MinDim(x, dim, false)
}

// Max computes the maximum along axis.
func (r *Reducer) Max(arr *array.Array, axis Axis) *array.Array {
	x, dim := r.along(arr, axis)
	return r.b.MaxDim(x, dim, false)
}

// NaNSum sums non-NaN elements along axis; an all-NaN slice sums to zero.
func (r *Reducer) NaNSum(arr *array.Array, axis Axis) *array.Array {
	x, dim := r.along(arr, axis)
	return r.b.NaNSumDim(x, dim, false)
}

// NaNMean computes the mean of non-NaN elements along axis.
func (r *Reducer) NaNMean(arr *array.Array, axis Axis) *array.Array {
	x, dim := r.along(arr, axis)
	return r.b.NaNMeanDim(x, dim, false)
}

// NaNVar computes the population variance of non-NaN elements along axis.
func (r *Reducer) NaNVar(arr *array.Array, axis Axis) *array.Array {
	x, dim := r.along(arr, axis)
	return r.b.NaNVarDim(x, dim, false)
}

// NaNStd computes the population standard deviation of non-NaN elements
// along axis.
func (r *Reducer) NaNStd(arr *array.Array, axis Axis) *array.Array {
	x, dim := r.along(arr, axis)
	return r.b.NaNStdDim(x, dim, false)
}

// NaNMin computes the minimum of non-NaN elements along axis.
func (r *Reducer) NaNMin(arr *array.Array, axis Axis) *array.Array {
	x, dim := r.along(arr, axis)
	return r.b.NaNMinDim(x, dim, false)
}

// NaNMax computes the maximum of non-NaN elements along axis.
func (r *Reducer) NaNMax(arr *array.Array, axis Axis) *array.Array {
	x, dim := r.along(arr, axis)
	return r.b.NaNMaxDim(x, dim, false)
}

// floatType is the constraint for element types that can hold NaN.
type floatType interface {
	~float32 | ~float64
}

// nanMedianSlices writes the median of each slice's non-NaN prefix. src must
// already be sorted along dim with NaNs last.
func nanMedianSlices[T floatType](src, dst []T, shape array.Shape, dim int) {
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

		// Count the non-NaN prefix.
		n := 0
		for n < dimSize && !math.IsNaN(float64(src[base+n*dimStride])) {
			n++
		}

		switch {
		case n == 0:
			dst[group] = T(math.NaN())
		case n%2 == 1:
			dst[group] = src[base+(n/2)*dimStride]
		default:
			lo := src[base+(n/2-1)*dimStride]
			hi := src[base+(n/2)*dimStride]
			dst[group] = T((float64(lo) + float64(hi)) / 2)
		}
	}
}

// fillNaN sets every element of a floating-point array to NaN.
func fillNaN(a *array.Array) {
	switch a.DType() {
	case array.Float32:
		data := a.AsFloat32()
		for i := range data {
			data[i] = float32(math.NaN())
		}
	case array.Float64:
		data := a.AsFloat64()
		for i := range data {
			data[i] = math.NaN()
		}
	}
}
