package cpu

import (
	"testing"

	"github.com/narrows-ml/narrows/internal/array"
)

func TestAdd(t *testing.T) {
	backend := New()

	a := fromSlice(t, []float64{1, 2, 3}, array.Shape{3})
	b := fromSlice(t, []float64{10, 20, 30}, array.Shape{3})

	result := backend.Add(a, b)
	data := result.AsFloat64()
	want := []float64{11, 22, 33}
	for i, exp := range want {
		if data[i] != exp {
			t.Errorf("Index %d: expected %v, got %v", i, exp, data[i])
		}
	}
}

func TestSubMulDiv(t *testing.T) {
	backend := New()

	a := fromSlice(t, []float64{10, 20, 30}, array.Shape{3})
	b := fromSlice(t, []float64{2, 4, 5}, array.Shape{3})

	sub := backend.Sub(a, b).AsFloat64()
	mul := backend.Mul(a, b).AsFloat64()
	div := backend.Div(a, b).AsFloat64()

	if sub[0] != 8 || sub[1] != 16 || sub[2] != 25 {
		t.Errorf("Sub: got %v", sub)
	}
	if mul[0] != 20 || mul[1] != 80 || mul[2] != 150 {
		t.Errorf("Mul: got %v", mul)
	}
	if div[0] != 5 || div[1] != 5 || div[2] != 6 {
		t.Errorf("Div: got %v", div)
	}
}

func TestAdd_Broadcast(t *testing.T) {
	backend := New()

	// [2, 3] + [3] broadcasts the row vector across both rows.
	a := fromSlice(t, []float64{1, 2, 3, 4, 5, 6}, array.Shape{2, 3})
	b := fromSlice(t, []float64{10, 20, 30}, array.Shape{3})

	result := backend.Add(a, b)
	if !result.Shape().Equal(array.Shape{2, 3}) {
		t.Fatalf("Expected shape [2, 3], got %v", result.Shape())
	}
	data := result.AsFloat64()
	want := []float64{11, 22, 33, 14, 25, 36}
	for i, exp := range want {
		if data[i] != exp {
			t.Errorf("Index %d: expected %v, got %v", i, exp, data[i])
		}
	}
}

func TestSub_BroadcastColumn(t *testing.T) {
	backend := New()

	// [3, 1] - [1, 2] -> [3, 2]
	a := fromSlice(t, []float64{1, 2, 3}, array.Shape{3, 1})
	b := fromSlice(t, []float64{10, 100}, array.Shape{1, 2})

	result := backend.Sub(a, b)
	if !result.Shape().Equal(array.Shape{3, 2}) {
		t.Fatalf("Expected shape [3, 2], got %v", result.Shape())
	}
	data := result.AsFloat64()
	want := []float64{-9, -99, -8, -98, -7, -97}
	for i, exp := range want {
		if data[i] != exp {
			t.Errorf("Index %d: expected %v, got %v", i, exp, data[i])
		}
	}
}

func TestAdd_Int32(t *testing.T) {
	backend := New()

	a, err := array.FromSlice([]int32{1, 2}, array.Shape{2})
	if err != nil {
		t.Fatal(err)
	}
	b, err := array.FromSlice([]int32{3, 4}, array.Shape{2})
	if err != nil {
		t.Fatal(err)
	}

	result := backend.Add(a, b)
	if result.DType() != array.Int32 {
		t.Errorf("Expected int32 result, got %s", result.DType())
	}
	data := result.AsInt32()
	if data[0] != 4 || data[1] != 6 {
		t.Errorf("Expected [4 6], got %v", data)
	}
}

func TestAdd_DTypeMismatchPanics(t *testing.T) {
	backend := New()

	defer func() {
		if recover() == nil {
			t.Error("Add with mismatched dtypes should panic")
		}
	}()
	a := fromSlice(t, []float64{1}, array.Shape{1})
	b, _ := array.FromSlice([]float32{1}, array.Shape{1})
	backend.Add(a, b)
}

func TestCast(t *testing.T) {
	backend := New()

	x := fromSlice(t, []float64{1.5, 2.9, -3.1}, array.Shape{3})

	asInt := backend.Cast(x, array.Int64)
	if asInt.DType() != array.Int64 {
		t.Fatalf("Expected int64, got %s", asInt.DType())
	}
	data := asInt.AsInt64()
	if data[0] != 1 || data[1] != 2 || data[2] != -3 {
		t.Errorf("Expected [1 2 -3], got %v", data)
	}

	// Same-dtype cast returns an independent copy.
	same := backend.Cast(x, array.Float64)
	same.AsFloat64()[0] = 99
	if x.AsFloat64()[0] != 1.5 {
		t.Error("Cast to same dtype should not alias the input")
	}
}

func TestReshape(t *testing.T) {
	backend := New()

	x := fromSlice(t, []float64{1, 2, 3, 4, 5, 6}, array.Shape{2, 3})

	r := backend.Reshape(x, array.Shape{3, 2})
	if !r.Shape().Equal(array.Shape{3, 2}) {
		t.Fatalf("Expected shape [3, 2], got %v", r.Shape())
	}
	if r.AsFloat64()[5] != 6 {
		t.Errorf("Expected 6 at flat index 5, got %v", r.AsFloat64()[5])
	}
}
