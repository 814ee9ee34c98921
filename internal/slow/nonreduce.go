package slow

import (
	"fmt"
	"math"

	"github.com/narrows-ml/narrows/internal/array"
)

// NN finds the candidate in points nearest to query by Euclidean distance.
//
// points must be 2-d and query 1-d. With axis=1 each row of points is a
// candidate compared against query broadcast across columns; with axis=0
// each column is a candidate, comparing against query reshaped as a column
// vector. Returns the distance to the nearest candidate and its index.
func (r *Reducer) NN(points, query *array.Array, axis int) (float64, int, error) {
	if len(points.Shape()) != 2 {
		return 0, 0, fmt.Errorf("%w: `points` must be 2d", ErrInvalidArgument)
	}
	if len(query.Shape()) != 1 {
		return 0, 0, fmt.Errorf("%w: `query` must be 1d", ErrInvalidArgument)
	}

	var d *array.Array
	switch axis {
	case 1:
		if n := query.NumElements(); n != points.Shape()[1] && n != 1 {
			return 0, 0, fmt.Errorf("%w: `query` length %d does not match `points` row length %d",
				ErrInvalidArgument, n, points.Shape()[1])
		}
		diff := r.b.Sub(points, query)
		d = r.b.SumDim(r.b.Mul(diff, diff), 1, false)
	case 0:
		if n := query.NumElements(); n != points.Shape()[0] && n != 1 {
			return 0, 0, fmt.Errorf("%w: `query` length %d does not match `points` column length %d",
				ErrInvalidArgument, n, points.Shape()[0])
		}
		col := r.b.Reshape(query, array.Shape{query.NumElements(), 1})
		diff := r.b.Sub(points, col)
		d = r.b.SumDim(r.b.Mul(diff, diff), 0, false)
	default:
		return 0, 0, fmt.Errorf("%w: `axis` must be 0 or 1", ErrInvalidArgument)
	}

	idx := int(r.b.Argmin(d, 0).AsInt64()[0])
	return math.Sqrt(d.At(idx)), idx, nil
}

// Replace replaces, in place, every occurrence of old in arr with new.
//
// When old is NaN, matching is NaN-aware (NaN matches NaN); otherwise
// ordinary equality applies. For integer element types a NaN old is a no-op
// (integers never contain NaN), and both old and new must be exactly
// representable as integers. The mutation is a single masked write covering
// all matching positions at once.
func (r *Reducer) Replace(arr *array.Array, old, new float64) error {
	if arr == nil {
		return fmt.Errorf("%w: `arr` must be an *array.Array", ErrNotAnArray)
	}
	if !arr.DType().IsFloat() {
		if math.IsNaN(old) {
			// int arrays do not contain NaN
			return nil
		}
		if float64(int64(old)) != old {
			return fmt.Errorf("%w: cannot safely cast `old` to int", ErrUnsafeCast)
		}
		if float64(int64(new)) != new {
			return fmt.Errorf("%w: cannot safely cast `new` to int", ErrUnsafeCast)
		}
	}

	var mask *array.Array
	if math.IsNaN(old) {
		mask = r.b.IsNaN(arr)
	} else {
		mask = r.b.EqualScalar(arr, old)
	}
	r.b.MaskedFill(arr, mask, new)
	return nil
}
