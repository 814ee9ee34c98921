package cpu

import (
	"math"
	"testing"

	"github.com/narrows-ml/narrows/internal/array"
)

var nan = math.NaN()

func TestNaNSumDim(t *testing.T) {
	backend := New()

	x := fromSlice(t, []float64{1, nan, 3, nan, nan, nan}, array.Shape{2, 3})

	data := backend.NaNSumDim(x, 1, false).AsFloat64()
	if data[0] != 4 {
		t.Errorf("Row 0: expected 4, got %v", data[0])
	}
	// All-NaN slice sums to zero.
	if data[1] != 0 {
		t.Errorf("Row 1: expected 0, got %v", data[1])
	}
}

func TestNaNMeanDim(t *testing.T) {
	backend := New()

	x := fromSlice(t, []float64{1, nan, 3, nan, nan, nan}, array.Shape{2, 3})

	data := backend.NaNMeanDim(x, 1, false).AsFloat64()
	if data[0] != 2 {
		t.Errorf("Row 0: expected 2, got %v", data[0])
	}
	if !math.IsNaN(data[1]) {
		t.Errorf("Row 1: expected NaN, got %v", data[1])
	}
}

func TestNaNVarStdDim(t *testing.T) {
	backend := New()

	x := fromSlice(t, []float64{1, nan, 2, 3, 4, nan}, array.Shape{2, 3})

	v := backend.NaNVarDim(x, 1, false).AsFloat64()
	if v[0] != 0.25 {
		t.Errorf("Row 0 var: expected 0.25, got %v", v[0])
	}
	if v[1] != 0.25 {
		t.Errorf("Row 1 var: expected 0.25, got %v", v[1])
	}

	s := backend.NaNStdDim(x, 1, false).AsFloat64()
	if s[0] != 0.5 {
		t.Errorf("Row 0 std: expected 0.5, got %v", s[0])
	}
}

func TestNaNMinMaxDim(t *testing.T) {
	backend := New()

	x := fromSlice(t, []float64{3, nan, 1, nan, nan, nan}, array.Shape{2, 3})

	minData := backend.NaNMinDim(x, 1, false).AsFloat64()
	if minData[0] != 1 {
		t.Errorf("Row 0 min: expected 1, got %v", minData[0])
	}
	if !math.IsNaN(minData[1]) {
		t.Errorf("Row 1 min: expected NaN, got %v", minData[1])
	}

	maxData := backend.NaNMaxDim(x, 1, false).AsFloat64()
	if maxData[0] != 3 {
		t.Errorf("Row 0 max: expected 3, got %v", maxData[0])
	}
}

func TestNaNArgminArgmax(t *testing.T) {
	backend := New()

	x := fromSlice(t, []float64{3, nan, 1, 5, 4, nan}, array.Shape{2, 3})

	argmin := backend.NaNArgmin(x, 1).AsInt64()
	if argmin[0] != 2 || argmin[1] != 1 {
		t.Errorf("NaNArgmin: expected [2 1], got %v", argmin)
	}

	argmax := backend.NaNArgmax(x, 1).AsInt64()
	if argmax[0] != 0 || argmax[1] != 0 {
		t.Errorf("NaNArgmax: expected [0 0], got %v", argmax)
	}
}

func TestNaNArgmin_AllNaN(t *testing.T) {
	backend := New()

	x := fromSlice(t, []float64{nan, nan, nan}, array.Shape{3})
	got := backend.NaNArgmin(x, 0).AsInt64()[0]
	if got != 0 {
		t.Errorf("All-NaN NaNArgmin: expected 0, got %d", got)
	}
}

func TestNaNSumDim_IntFallsBackToSum(t *testing.T) {
	backend := New()

	x, err := array.FromSlice([]int64{1, 2, 3}, array.Shape{3})
	if err != nil {
		t.Fatal(err)
	}

	result := backend.NaNSumDim(x, 0, false)
	if result.DType() != array.Int64 {
		t.Errorf("Expected int64 result, got %s", result.DType())
	}
	if result.AsInt64()[0] != 6 {
		t.Errorf("Expected 6, got %v", result.AsInt64()[0])
	}
}

func TestNaNMeanDim_Float32(t *testing.T) {
	backend := New()

	x, err := array.FromSlice([]float32{2, float32(nan), 4}, array.Shape{3})
	if err != nil {
		t.Fatal(err)
	}

	result := backend.NaNMeanDim(x, 0, false)
	if result.DType() != array.Float32 {
		t.Errorf("Expected float32 result, got %s", result.DType())
	}
	if result.AsFloat32()[0] != 3 {
		t.Errorf("Expected 3, got %v", result.AsFloat32()[0])
	}
}
