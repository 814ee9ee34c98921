package cpu

import (
	"fmt"
	"math"
	"sort"

	"github.com/narrows-ml/narrows/internal/array"
)

// MedianDim computes the median along the specified dimension.
// The result is always Float64 (the interior computation averages the two
// middle elements for even-length slices); callers that need the input dtype
// back cast afterwards. A NaN anywhere in a slice makes that slice's result
// NaN. A zero-length slice yields NaN.
func (cpu *CPUBackend) MedianDim(x *array.Array, dim int, keepDim bool) *array.Array {
	shape := x.Shape()
	dim = normalizeDim("mediandim", dim, len(shape))

	result, err := array.New(reducedShape(shape, dim, keepDim), array.Float64, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("mediandim: %v", err))
	}

	switch x.DType() {
	case array.Float32:
		medianDimKernel(x.AsFloat32(), result.AsFloat64(), shape, dim)
	case array.Float64:
		medianDimKernel(x.AsFloat64(), result.AsFloat64(), shape, dim)
	case array.Int32:
		medianDimKernel(x.AsInt32(), result.AsFloat64(), shape, dim)
	case array.Int64:
		medianDimKernel(x.AsInt64(), result.AsFloat64(), shape, dim)
	case array.Uint8:
		medianDimKernel(x.AsUint8(), result.AsFloat64(), shape, dim)
	default:
		panic(fmt.Sprintf("mediandim: unsupported dtype %s", x.DType()))
	}
	return result
}

func medianDimKernel[T number](src []T, dst []float64, shape array.Shape, dim int) {
	scratch := make([]float64, 0, shape[dim])

	forEachSlice(shape, dim, func(out, base, stride, n int) {
		scratch = scratch[:0]
		for i := 0; i < n; i++ {
			v := float64(src[base+i*stride])
			if math.IsNaN(v) {
				dst[out] = math.NaN()
				return
			}
			scratch = append(scratch, v)
		}
		dst[out] = medianSorted(scratch)
	})
}

// medianSorted sorts vals in place and returns their median, or NaN for an
// empty slice.
func medianSorted(vals []float64) float64 {
	n := len(vals)
	if n == 0 {
		return math.NaN()
	}
	sort.Float64s(vals)
	if n%2 == 1 {
		return vals[n/2]
	}
	return (vals[n/2-1] + vals[n/2]) / 2
}
