package cpu

import (
	"fmt"
	"math"
	"sort"

	"github.com/narrows-ml/narrows/internal/array"
)

// SortDim returns a copy of the array with each slice along dim sorted
// ascending. NaN entries order last, so the non-NaN prefix of a sorted slice
// is exactly its NaN-free content.
func (cpu *CPUBackend) SortDim(x *array.Array, dim int) *array.Array {
	shape := x.Shape()
	dim = normalizeDim("sortdim", dim, len(shape))

	result := x.Clone()

	switch x.DType() {
	case array.Float32:
		sortDimFloat(result.AsFloat32(), shape, dim)
	case array.Float64:
		sortDimFloat(result.AsFloat64(), shape, dim)
	case array.Int32:
		sortDimInt(result.AsInt32(), shape, dim)
	case array.Int64:
		sortDimInt(result.AsInt64(), shape, dim)
	case array.Uint8:
		sortDimInt(result.AsUint8(), shape, dim)
	default:
		panic(fmt.Sprintf("sortdim: unsupported dtype %s", x.DType()))
	}
	return result
}

func sortDimFloat[T float](data []T, shape array.Shape, dim int) {
	scratch := make([]T, shape[dim])

	forEachSlice(shape, dim, func(_, base, stride, n int) {
		for i := 0; i < n; i++ {
			scratch[i] = data[base+i*stride]
		}
		sort.Slice(scratch[:n], func(i, j int) bool {
			a, b := scratch[i], scratch[j]
			if math.IsNaN(float64(b)) {
				return !math.IsNaN(float64(a))
			}
			return a < b
		})
		for i := 0; i < n; i++ {
			data[base+i*stride] = scratch[i]
		}
	})
}

func sortDimInt[T integer](data []T, shape array.Shape, dim int) {
	scratch := make([]T, shape[dim])

	forEachSlice(shape, dim, func(_, base, stride, n int) {
		for i := 0; i < n; i++ {
			scratch[i] = data[base+i*stride]
		}
		sort.Slice(scratch[:n], func(i, j int) bool { return scratch[i] < scratch[j] })
		for i := 0; i < n; i++ {
			data[base+i*stride] = scratch[i]
		}
	})
}
