// Copyright 2026 The Narrows Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package slow_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narrows-ml/narrows/array"
	"github.com/narrows-ml/narrows/backend/cpu"
	"github.com/narrows-ml/narrows/slow"
)

func TestPackageLevelFunctions(t *testing.T) {
	a, err := array.FromSlice([]float64{1, 2, 5}, array.Shape{3})
	require.NoError(t, err)

	assert.Equal(t, 30.0, slow.SS(a, slow.None).AsFloat64()[0])
	assert.Equal(t, 2.0, slow.Median(a, slow.None).AsFloat64()[0])
	assert.Equal(t, 8.0, slow.Sum(a, 0).AsFloat64()[0])
	assert.Equal(t, 5.0, slow.Max(a, slow.None).AsFloat64()[0])
}

func TestNaNFunctions(t *testing.T) {
	a, err := array.FromSlice([]float64{1, math.NaN(), 3}, array.Shape{3})
	require.NoError(t, err)

	assert.Equal(t, 2.0, slow.NaNMedian(a, slow.None).AsFloat64()[0])
	assert.Equal(t, 4.0, slow.NaNSum(a, slow.None).AsFloat64()[0])
	assert.True(t, slow.AnyNaN(a, slow.None).AsBool()[0])
	assert.False(t, slow.AllNaN(a, slow.None).AsBool()[0])
	assert.Equal(t, int64(0), slow.NaNArgMin(a, slow.None).AsInt64()[0])
	assert.Equal(t, int64(2), slow.NaNArgMax(a, slow.None).AsInt64()[0])
}

func TestNNAndReplace(t *testing.T) {
	points, err := array.FromSlice([]float64{0, 0, 3, 4, 1, 1}, array.Shape{3, 2})
	require.NoError(t, err)
	query, err := array.FromSlice([]float64{0, 0}, array.Shape{2})
	require.NoError(t, err)

	dist, idx, err := slow.NN(points, query, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
	assert.Equal(t, 0.0, dist)

	a, err := array.FromSlice([]float64{1, math.NaN(), 3}, array.Shape{3})
	require.NoError(t, err)
	require.NoError(t, slow.Replace(a, math.NaN(), 0))
	assert.Equal(t, []float64{1, 0, 3}, a.AsFloat64())
}

func TestNewReducerWithCustomEngine(t *testing.T) {
	r := slow.NewReducer(cpu.New())

	a, err := array.FromSlice([]float64{4, 1, 3, 2}, array.Shape{4})
	require.NoError(t, err)
	assert.Equal(t, 2.5, r.Median(a, slow.None).AsFloat64()[0])
}
