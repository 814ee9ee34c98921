package cpu

import (
	"math"
	"testing"

	"github.com/narrows-ml/narrows/internal/array"
)

func boolArray(t *testing.T, data []bool, shape array.Shape) *array.Array {
	t.Helper()
	a, err := array.FromSlice(data, shape)
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func TestAnyAll(t *testing.T) {
	backend := New()

	mixed := boolArray(t, []bool{false, true, false}, array.Shape{3})
	if !backend.Any(mixed).AsBool()[0] {
		t.Error("Any over {false true false} should be true")
	}
	if backend.All(mixed).AsBool()[0] {
		t.Error("All over {false true false} should be false")
	}

	none := boolArray(t, []bool{false, false}, array.Shape{2})
	if backend.Any(none).AsBool()[0] {
		t.Error("Any over all-false should be false")
	}

	all := boolArray(t, []bool{true, true}, array.Shape{2})
	if !backend.All(all).AsBool()[0] {
		t.Error("All over all-true should be true")
	}
}

func TestAll_EmptyIsTrue(t *testing.T) {
	backend := New()

	empty, err := array.New(array.Shape{0}, array.Bool, backend.Device())
	if err != nil {
		t.Fatal(err)
	}
	if !backend.All(empty).AsBool()[0] {
		t.Error("All over an empty array should be vacuously true")
	}
	if backend.Any(empty).AsBool()[0] {
		t.Error("Any over an empty array should be false")
	}
}

func TestAnyDimAllDim(t *testing.T) {
	backend := New()

	mask := boolArray(t, []bool{true, false, true, true}, array.Shape{2, 2})

	anyRows := backend.AnyDim(mask, 1, false).AsBool()
	if !anyRows[0] || !anyRows[1] {
		t.Errorf("AnyDim rows: expected [true true], got %v", anyRows)
	}

	allRows := backend.AllDim(mask, 1, false).AsBool()
	if allRows[0] || !allRows[1] {
		t.Errorf("AllDim rows: expected [false true], got %v", allRows)
	}

	allCols := backend.AllDim(mask, 0, false).AsBool()
	if !allCols[0] || allCols[1] {
		t.Errorf("AllDim cols: expected [true false], got %v", allCols)
	}
}

func TestIsNaN(t *testing.T) {
	backend := New()

	x := fromSlice(t, []float64{1, math.NaN(), 3}, array.Shape{3})
	mask := backend.IsNaN(x)
	if mask.DType() != array.Bool {
		t.Fatalf("Expected bool mask, got %s", mask.DType())
	}
	data := mask.AsBool()
	if data[0] || !data[1] || data[2] {
		t.Errorf("Expected [false true false], got %v", data)
	}
}

func TestIsNaN_IntAlwaysFalse(t *testing.T) {
	backend := New()

	x, err := array.FromSlice([]int32{1, 2}, array.Shape{2})
	if err != nil {
		t.Fatal(err)
	}
	data := backend.IsNaN(x).AsBool()
	if data[0] || data[1] {
		t.Errorf("Integer arrays never contain NaN, got %v", data)
	}
}

func TestEqualScalar(t *testing.T) {
	backend := New()

	x := fromSlice(t, []float64{1, 2, 1}, array.Shape{3})
	data := backend.EqualScalar(x, 1).AsBool()
	if !data[0] || data[1] || !data[2] {
		t.Errorf("Expected [true false true], got %v", data)
	}
}

func TestEqual_Broadcast(t *testing.T) {
	backend := New()

	a := fromSlice(t, []float64{1, 2, 1, 4}, array.Shape{2, 2})
	b := fromSlice(t, []float64{1, 2}, array.Shape{2})

	result := backend.Equal(a, b)
	if !result.Shape().Equal(array.Shape{2, 2}) {
		t.Fatalf("Expected shape [2, 2], got %v", result.Shape())
	}
	data := result.AsBool()
	if !data[0] || !data[1] || !data[2] || data[3] {
		t.Errorf("Expected [true true true false], got %v", data)
	}
}

func TestMaskedFill(t *testing.T) {
	backend := New()

	x := fromSlice(t, []float64{1, 2, 3}, array.Shape{3})
	mask := boolArray(t, []bool{true, false, true}, array.Shape{3})

	backend.MaskedFill(x, mask, 9)
	data := x.AsFloat64()
	if data[0] != 9 || data[1] != 2 || data[2] != 9 {
		t.Errorf("Expected [9 2 9], got %v", data)
	}
}

func TestMaskedFill_Int(t *testing.T) {
	backend := New()

	x, err := array.FromSlice([]int64{1, 2}, array.Shape{2})
	if err != nil {
		t.Fatal(err)
	}
	mask := boolArray(t, []bool{false, true}, array.Shape{2})

	backend.MaskedFill(x, mask, -7)
	data := x.AsInt64()
	if data[0] != 1 || data[1] != -7 {
		t.Errorf("Expected [1 -7], got %v", data)
	}
}

func TestMaskedFill_ShapeMismatchPanics(t *testing.T) {
	backend := New()

	defer func() {
		if recover() == nil {
			t.Error("MaskedFill with mismatched shapes should panic")
		}
	}()
	x := fromSlice(t, []float64{1, 2, 3}, array.Shape{3})
	mask := boolArray(t, []bool{true}, array.Shape{1})
	backend.MaskedFill(x, mask, 0)
}
