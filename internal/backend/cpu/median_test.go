package cpu

import (
	"math"
	"testing"

	"github.com/narrows-ml/narrows/internal/array"
)

func TestMedianDim_Odd(t *testing.T) {
	backend := New()

	x := fromSlice(t, []float64{3, 1, 2}, array.Shape{3})
	result := backend.MedianDim(x, 0, false)
	if result.DType() != array.Float64 {
		t.Fatalf("Expected float64 result, got %s", result.DType())
	}
	if result.AsFloat64()[0] != 2 {
		t.Errorf("Expected 2, got %v", result.AsFloat64()[0])
	}
}

func TestMedianDim_Even(t *testing.T) {
	backend := New()

	x := fromSlice(t, []float64{4, 1, 3, 2}, array.Shape{4})
	got := backend.MedianDim(x, 0, false).AsFloat64()[0]
	if got != 2.5 {
		t.Errorf("Expected 2.5, got %v", got)
	}
}

func TestMedianDim_2D(t *testing.T) {
	backend := New()

	x := fromSlice(t, []float64{3, 1, 2, 6, 4, 5}, array.Shape{2, 3})

	rows := backend.MedianDim(x, 1, false).AsFloat64()
	if rows[0] != 2 || rows[1] != 5 {
		t.Errorf("Expected [2 5], got %v", rows)
	}

	cols := backend.MedianDim(x, 0, false).AsFloat64()
	if cols[0] != 4.5 || cols[1] != 2.5 || cols[2] != 3.5 {
		t.Errorf("Expected [4.5 2.5 3.5], got %v", cols)
	}
}

func TestMedianDim_NaNPropagates(t *testing.T) {
	backend := New()

	x := fromSlice(t, []float64{1, math.NaN(), 3}, array.Shape{3})
	got := backend.MedianDim(x, 0, false).AsFloat64()[0]
	if !math.IsNaN(got) {
		t.Errorf("Expected NaN, got %v", got)
	}
}

func TestMedianDim_IntInput(t *testing.T) {
	backend := New()

	x, err := array.FromSlice([]int32{3, 1, 2, 4}, array.Shape{4})
	if err != nil {
		t.Fatal(err)
	}

	result := backend.MedianDim(x, 0, false)
	if result.DType() != array.Float64 {
		t.Fatalf("Expected float64 result, got %s", result.DType())
	}
	if result.AsFloat64()[0] != 2.5 {
		t.Errorf("Expected 2.5, got %v", result.AsFloat64()[0])
	}
}

func TestSortDim(t *testing.T) {
	backend := New()

	x := fromSlice(t, []float64{3, 1, 2, 6, 4, 5}, array.Shape{2, 3})

	sorted := backend.SortDim(x, 1)
	data := sorted.AsFloat64()
	want := []float64{1, 2, 3, 4, 5, 6}
	for i, exp := range want {
		if data[i] != exp {
			t.Errorf("Index %d: expected %v, got %v", i, exp, data[i])
		}
	}

	// Input must be untouched.
	if x.AsFloat64()[0] != 3 {
		t.Error("SortDim should not modify its input")
	}
}

func TestSortDim_Columns(t *testing.T) {
	backend := New()

	x := fromSlice(t, []float64{4, 1, 2, 3}, array.Shape{2, 2})

	data := backend.SortDim(x, 0).AsFloat64()
	want := []float64{2, 1, 4, 3}
	for i, exp := range want {
		if data[i] != exp {
			t.Errorf("Index %d: expected %v, got %v", i, exp, data[i])
		}
	}
}

func TestSortDim_NaNsLast(t *testing.T) {
	backend := New()

	x := fromSlice(t, []float64{math.NaN(), 2, 1}, array.Shape{3})

	data := backend.SortDim(x, 0).AsFloat64()
	if data[0] != 1 || data[1] != 2 || !math.IsNaN(data[2]) {
		t.Errorf("Expected [1 2 NaN], got %v", data)
	}
}

func TestSortDim_Int(t *testing.T) {
	backend := New()

	x, err := array.FromSlice([]int64{5, -1, 3}, array.Shape{3})
	if err != nil {
		t.Fatal(err)
	}

	data := backend.SortDim(x, 0).AsInt64()
	if data[0] != -1 || data[1] != 3 || data[2] != 5 {
		t.Errorf("Expected [-1 3 5], got %v", data)
	}
}
