package cpu

import (
	"fmt"

	"github.com/narrows-ml/narrows/internal/array"
)

// Element-wise binary operations with NumPy-style broadcasting.

// Add performs element-wise addition with broadcasting.
func (cpu *CPUBackend) Add(a, b *array.Array) *array.Array {
	result, outShape, bc := cpu.binaryResult("add", a, b)
	switch a.DType() {
	case array.Float32:
		binaryKernel(result, a, b, outShape, bc, func(x, y float32) float32 { return x + y })
	case array.Float64:
		binaryKernel(result, a, b, outShape, bc, func(x, y float64) float64 { return x + y })
	case array.Int32:
		binaryKernel(result, a, b, outShape, bc, func(x, y int32) int32 { return x + y })
	case array.Int64:
		binaryKernel(result, a, b, outShape, bc, func(x, y int64) int64 { return x + y })
	case array.Uint8:
		binaryKernel(result, a, b, outShape, bc, func(x, y uint8) uint8 { return x + y })
	default:
		panic(fmt.Sprintf("add: unsupported dtype %s", a.DType()))
	}
	return result
}

// Sub performs element-wise subtraction with broadcasting.
func (cpu *CPUBackend) Sub(a, b *array.Array) *array.Array {
	result, outShape, bc := cpu.binaryResult("sub", a, b)
	switch a.DType() {
	case array.Float32:
		binaryKernel(result, a, b, outShape, bc, func(x, y float32) float32 { return x - y })
	case array.Float64:
		binaryKernel(result, a, b, outShape, bc, func(x, y float64) float64 { return x - y })
	case array.Int32:
		binaryKernel(result, a, b, outShape, bc, func(x, y int32) int32 { return x - y })
	case array.Int64:
		binaryKernel(result, a, b, outShape, bc, func(x, y int64) int64 { return x - y })
	case array.Uint8:
		binaryKernel(result, a, b, outShape, bc, func(x, y uint8) uint8 { return x - y })
	default:
		panic(fmt.Sprintf("sub: unsupported dtype %s", a.DType()))
	}
	return result
}

// Mul performs element-wise multiplication with broadcasting.
func (cpu *CPUBackend) Mul(a, b *array.Array) *array.Array {
	result, outShape, bc := cpu.binaryResult("mul", a, b)
	switch a.DType() {
	case array.Float32:
		binaryKernel(result, a, b, outShape, bc, func(x, y float32) float32 { return x * y })
	case array.Float64:
		binaryKernel(result, a, b, outShape, bc, func(x, y float64) float64 { return x * y })
	case array.Int32:
		binaryKernel(result, a, b, outShape, bc, func(x, y int32) int32 { return x * y })
	case array.Int64:
		binaryKernel(result, a, b, outShape, bc, func(x, y int64) int64 { return x * y })
	case array.Uint8:
		binaryKernel(result, a, b, outShape, bc, func(x, y uint8) uint8 { return x * y })
	default:
		panic(fmt.Sprintf("mul: unsupported dtype %s", a.DType()))
	}
	return result
}

// Div performs element-wise division with broadcasting.
func (cpu *CPUBackend) Div(a, b *array.Array) *array.Array {
	result, outShape, bc := cpu.binaryResult("div", a, b)
	switch a.DType() {
	case array.Float32:
		binaryKernel(result, a, b, outShape, bc, func(x, y float32) float32 { return x / y })
	case array.Float64:
		binaryKernel(result, a, b, outShape, bc, func(x, y float64) float64 { return x / y })
	case array.Int32:
		binaryKernel(result, a, b, outShape, bc, func(x, y int32) int32 { return x / y })
	case array.Int64:
		binaryKernel(result, a, b, outShape, bc, func(x, y int64) int64 { return x / y })
	case array.Uint8:
		binaryKernel(result, a, b, outShape, bc, func(x, y uint8) uint8 { return x / y })
	default:
		panic(fmt.Sprintf("div: unsupported dtype %s", a.DType()))
	}
	return result
}

// binaryResult validates operand dtypes, broadcasts shapes and allocates the
// result array.
func (cpu *CPUBackend) binaryResult(opName string, a, b *array.Array) (*array.Array, array.Shape, bool) {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: operands must have same dtype, got %s and %s", opName, a.DType(), b.DType()))
	}

	outShape, needsBroadcast, err := array.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", opName, err))
	}

	result, err := array.New(outShape, a.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result array: %v", opName, err))
	}

	return result, outShape, needsBroadcast
}

// binaryKernel applies op element-wise, using stride-0 index mapping when
// broadcasting is required.
func binaryKernel[T number](dst, a, b *array.Array, outShape array.Shape, needsBroadcast bool, op func(T, T) T) {
	dstData := array.Values[T](dst)
	aData := array.Values[T](a)
	bData := array.Values[T](b)

	if !needsBroadcast {
		for i := range dstData {
			dstData[i] = op(aData[i], bData[i])
		}
		return
	}

	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(a.Shape(), outShape)
	bStrides := broadcastStrides(b.Shape(), outShape)

	n := outShape.NumElements()
	for i := 0; i < n; i++ {
		aIdx := flatIndex(i, outStrides, aStrides)
		bIdx := flatIndex(i, outStrides, bStrides)
		dstData[i] = op(aData[aIdx], bData[bIdx])
	}
}
