package cpu

import (
	"github.com/narrows-ml/narrows/internal/array"
)

// broadcastStrides computes strides for broadcasting inShape to outShape.
// Dimensions of size 1 (or padded on the left) get stride 0.
func broadcastStrides(inShape, outShape array.Shape) []int {
	outDim := len(outShape)
	strides := make([]int, outDim)

	inDim := len(inShape)
	offset := outDim - inDim

	origStrides := inShape.ComputeStrides()

	for i := 0; i < outDim; i++ {
		inIdx := i - offset
		switch {
		case inIdx < 0 || inIdx >= inDim:
			// Padded dimension
			strides[i] = 0
		case inShape[inIdx] == 1:
			// Broadcast dimension
			strides[i] = 0
		default:
			strides[i] = origStrides[inIdx]
		}
	}
	return strides
}

// flatIndex maps a flat output index to the flat input index under the given
// (possibly broadcast) input strides.
func flatIndex(flatOut int, outStrides, inStrides []int) int {
	idx := 0
	for d := 0; d < len(outStrides); d++ {
		coord := flatOut / outStrides[d]
		flatOut %= outStrides[d]
		idx += coord * inStrides[d]
	}
	return idx
}
