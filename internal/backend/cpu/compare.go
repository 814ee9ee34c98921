package cpu

import (
	"fmt"
	"math"

	"github.com/narrows-ml/narrows/internal/array"
)

// Comparison operations - return Bool arrays.

// Equal returns a == b element-wise.
// NaN compares unequal to everything, NaN included.
func (cpu *CPUBackend) Equal(a, b *array.Array) *array.Array {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("equal: operands must have same dtype, got %s and %s", a.DType(), b.DType()))
	}

	outShape, needsBroadcast, err := array.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("equal: %v", err))
	}

	result, err := array.New(outShape, array.Bool, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("equal: %v", err))
	}

	switch a.DType() {
	case array.Float32:
		compareKernel(result, a, b, outShape, needsBroadcast, func(x, y float32) bool { return x == y })
	case array.Float64:
		compareKernel(result, a, b, outShape, needsBroadcast, func(x, y float64) bool { return x == y })
	case array.Int32:
		compareKernel(result, a, b, outShape, needsBroadcast, func(x, y int32) bool { return x == y })
	case array.Int64:
		compareKernel(result, a, b, outShape, needsBroadcast, func(x, y int64) bool { return x == y })
	case array.Uint8:
		compareKernel(result, a, b, outShape, needsBroadcast, func(x, y uint8) bool { return x == y })
	default:
		panic(fmt.Sprintf("equal: unsupported dtype %s", a.DType()))
	}
	return result
}

// EqualScalar returns x == scalar element-wise.
// The scalar is converted to x's element type before comparing, so integer
// arrays compare exactly.
func (cpu *CPUBackend) EqualScalar(x *array.Array, scalar float64) *array.Array {
	result, err := array.New(x.Shape(), array.Bool, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("equalScalar: %v", err))
	}

	dst := result.AsBool()
	switch x.DType() {
	case array.Float32:
		s := float32(scalar)
		for i, v := range x.AsFloat32() {
			dst[i] = v == s
		}
	case array.Float64:
		for i, v := range x.AsFloat64() {
			dst[i] = v == scalar
		}
	case array.Int32:
		s := int32(scalar)
		for i, v := range x.AsInt32() {
			dst[i] = v == s
		}
	case array.Int64:
		s := int64(scalar)
		for i, v := range x.AsInt64() {
			dst[i] = v == s
		}
	case array.Uint8:
		s := uint8(scalar)
		for i, v := range x.AsUint8() {
			dst[i] = v == s
		}
	default:
		panic(fmt.Sprintf("equalScalar: unsupported dtype %s", x.DType()))
	}
	return result
}

// IsNaN returns a Bool array marking NaN entries.
// Integer arrays cannot hold NaN, so their mask is all false.
func (cpu *CPUBackend) IsNaN(x *array.Array) *array.Array {
	result, err := array.New(x.Shape(), array.Bool, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("isnan: %v", err))
	}

	dst := result.AsBool()
	switch x.DType() {
	case array.Float32:
		for i, v := range x.AsFloat32() {
			dst[i] = math.IsNaN(float64(v))
		}
	case array.Float64:
		for i, v := range x.AsFloat64() {
			dst[i] = math.IsNaN(v)
		}
	case array.Int32, array.Int64, array.Uint8:
		// Zero value of bool is false; nothing to do.
	default:
		panic(fmt.Sprintf("isnan: unsupported dtype %s", x.DType()))
	}
	return result
}

// compareKernel applies a boolean predicate element-wise into a Bool array.
func compareKernel[T number](dst, a, b *array.Array, outShape array.Shape, needsBroadcast bool, pred func(T, T) bool) {
	dstData := dst.AsBool()
	aData := array.Values[T](a)
	bData := array.Values[T](b)

	if !needsBroadcast {
		for i := range dstData {
			dstData[i] = pred(aData[i], bData[i])
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
		dstData[i] = pred(aData[aIdx], bData[bIdx])
	}
}
