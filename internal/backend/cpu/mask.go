package cpu

import (
	"fmt"

	"github.com/narrows-ml/narrows/internal/array"
)

// Boolean reductions and masked writes.

// Any reports whether any element of a Bool array is true (scalar result).
func (cpu *CPUBackend) Any(x *array.Array) *array.Array {
	data := boolData("any", x)

	result, err := array.New(array.Shape{}, array.Bool, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("any: %v", err))
	}

	out := result.AsBool()
	for _, v := range data {
		if v {
			out[0] = true
			break
		}
	}
	return result
}

// All reports whether every element of a Bool array is true (scalar result).
// An empty array is vacuously all-true.
func (cpu *CPUBackend) All(x *array.Array) *array.Array {
	data := boolData("all", x)

	result, err := array.New(array.Shape{}, array.Bool, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("all: %v", err))
	}

	out := result.AsBool()
	out[0] = true
	for _, v := range data {
		if !v {
			out[0] = false
			break
		}
	}
	return result
}

// AnyDim reduces a Bool array with logical OR along the specified dimension.
func (cpu *CPUBackend) AnyDim(x *array.Array, dim int, keepDim bool) *array.Array {
	return cpu.boolReduceDim("anydim", x, dim, keepDim, false)
}

// AllDim reduces a Bool array with logical AND along the specified dimension.
func (cpu *CPUBackend) AllDim(x *array.Array, dim int, keepDim bool) *array.Array {
	return cpu.boolReduceDim("alldim", x, dim, keepDim, true)
}

func (cpu *CPUBackend) boolReduceDim(opName string, x *array.Array, dim int, keepDim, all bool) *array.Array {
	data := boolData(opName, x)
	shape := x.Shape()
	dim = normalizeDim(opName, dim, len(shape))

	result, err := array.New(reducedShape(shape, dim, keepDim), array.Bool, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", opName, err))
	}

	dst := result.AsBool()
	forEachSlice(shape, dim, func(out, base, stride, n int) {
		acc := all
		for i := 0; i < n; i++ {
			v := data[base+i*stride]
			if all {
				acc = acc && v
			} else {
				acc = acc || v
			}
		}
		dst[out] = acc
	})
	return result
}

func boolData(opName string, x *array.Array) []bool {
	if x.DType() != array.Bool {
		panic(fmt.Sprintf("%s: array must be bool dtype, got %s", opName, x.DType()))
	}
	return x.AsBool()
}

// MaskedFill writes value into every position of x where mask is true.
// The write is in place and covers all matching positions in a single pass.
// The mask must be a Bool array of the same shape as x.
func (cpu *CPUBackend) MaskedFill(x, mask *array.Array, value float64) {
	if mask.DType() != array.Bool {
		panic(fmt.Sprintf("maskedfill: mask must be bool dtype, got %s", mask.DType()))
	}
	if !x.Shape().Equal(mask.Shape()) {
		panic(fmt.Sprintf("maskedfill: shape mismatch: %v vs %v", x.Shape(), mask.Shape()))
	}

	maskData := mask.AsBool()
	switch x.DType() {
	case array.Float32:
		maskedFillKernel(x.AsFloat32(), maskData, float32(value))
	case array.Float64:
		maskedFillKernel(x.AsFloat64(), maskData, value)
	case array.Int32:
		maskedFillKernel(x.AsInt32(), maskData, int32(value))
	case array.Int64:
		maskedFillKernel(x.AsInt64(), maskData, int64(value))
	case array.Uint8:
		maskedFillKernel(x.AsUint8(), maskData, uint8(value))
	default:
		panic(fmt.Sprintf("maskedfill: unsupported dtype %s", x.DType()))
	}
}

func maskedFillKernel[T number](data []T, mask []bool, value T) {
	for i, m := range mask {
		if m {
			data[i] = value
		}
	}
}
