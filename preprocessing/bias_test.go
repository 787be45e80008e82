package preprocessing

import (
	"testing"

	"github.com/YuminosukeSato/mlprimer/core/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddBias(t *testing.T) {
	X := tensor.Matrix{{2, 3}, {4, 5}}

	got := AddBias(X)

	assert.Equal(t, tensor.Matrix{{1, 2, 3}, {1, 4, 5}}, got)
	assert.Equal(t, tensor.Matrix{{2, 3}, {4, 5}}, X)
}

func TestAddBiasEmpty(t *testing.T) {
	assert.Empty(t, AddBias(tensor.Matrix{}))
	assert.Equal(t, tensor.Matrix{{1}}, AddBias(tensor.Matrix{{}}))
}

func TestAddBiasLargeInputRunsInParallel(t *testing.T) {
	n := parallelThreshold * 3
	X := tensor.NewMatrix(n, 2)
	for i := range X {
		X[i][0] = float64(i)
		X[i][1] = float64(-i)
	}

	got := AddBias(X)
	require.Len(t, got, n)
	for i, row := range got {
		require.Equal(t, []float64{1, float64(i), float64(-i)}, row)
	}
}
