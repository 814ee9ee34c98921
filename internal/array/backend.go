package array

// Backend is the capability boundary to the numeric engine that does all
// actual computation: elementwise arithmetic, reductions, sorting, and
// masking. The slow reference path composes these primitives; keeping them
// behind an interface keeps the fallback layer substitutable.
//
// Implementations:
//   - cpu: pure Go reference engine (internal/backend/cpu)
type Backend interface {
	// Element-wise binary operations (NumPy-style broadcasting)
	Add(a, b *Array) *Array
	Sub(a, b *Array) *Array
	Mul(a, b *Array) *Array
	Div(a, b *Array) *Array

	// Comparison operations (return Bool arrays)
	Equal(a, b *Array) *Array
	EqualScalar(x *Array, scalar float64) *Array
	IsNaN(x *Array) *Array

	// Ordinary reductions
	Sum(x *Array) *Array                           // total sum (scalar result)
	SumDim(x *Array, dim int, keepDim bool) *Array // sum along dimension
	MeanDim(x *Array, dim int, keepDim bool) *Array
	VarDim(x *Array, dim int, keepDim bool) *Array
	StdDim(x *Array, dim int, keepDim bool) *Array
	MinDim(x *Array, dim int, keepDim bool) *Array
	MaxDim(x *Array, dim int, keepDim bool) *Array
	MedianDim(x *Array, dim int, keepDim bool) *Array // always Float64 result
	Argmin(x *Array, dim int) *Array                  // Int64 index array
	Argmax(x *Array, dim int) *Array

	// NaN-aware reductions (skip NaN entries; integer inputs route to the
	// ordinary counterparts since integers cannot hold NaN)
	NaNSumDim(x *Array, dim int, keepDim bool) *Array
	NaNMeanDim(x *Array, dim int, keepDim bool) *Array
	NaNVarDim(x *Array, dim int, keepDim bool) *Array
	NaNStdDim(x *Array, dim int, keepDim bool) *Array
	NaNMinDim(x *Array, dim int, keepDim bool) *Array
	NaNMaxDim(x *Array, dim int, keepDim bool) *Array
	NaNArgmin(x *Array, dim int) *Array
	NaNArgmax(x *Array, dim int) *Array

	// Boolean reductions (operate on Bool arrays)
	Any(x *Array) *Array
	All(x *Array) *Array
	AnyDim(x *Array, dim int, keepDim bool) *Array
	AllDim(x *Array, dim int, keepDim bool) *Array

	// Sorting (ascending, NaNs ordered last)
	SortDim(x *Array, dim int) *Array

	// Masking
	MaskedFill(x, mask *Array, value float64) // in-place masked write

	// Shape and type operations
	Reshape(x *Array, newShape Shape) *Array
	Cast(x *Array, dtype DataType) *Array

	// Metadata
	Name() string
	Device() Device
}
