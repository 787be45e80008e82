package selection

import (
	"sort"
	"testing"

	"github.com/YuminosukeSato/mlprimer/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKFoldSplitPartition(t *testing.T) {
	folds, err := KFoldSplit(10, 5)
	require.NoError(t, err)
	require.Len(t, folds, 5)

	var allTest []int
	for i, f := range folds {
		assert.Len(t, f.TestIndices, 2, "fold %d", i)
		assert.Len(t, f.TrainIndices, 8, "fold %d", i)
		assert.True(t, sort.IntsAreSorted(f.TrainIndices))
		for _, idx := range f.TestIndices {
			assert.NotContains(t, f.TrainIndices, idx)
		}
		allTest = append(allTest, f.TestIndices...)
	}

	sort.Ints(allTest)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, allTest)
}

func TestKFoldSplitRemainderGoesToLastFold(t *testing.T) {
	folds, err := KFoldSplit(11, 3)
	require.NoError(t, err)
	require.Len(t, folds, 3)

	assert.Equal(t, []int{0, 1, 2}, folds[0].TestIndices)
	assert.Equal(t, []int{3, 4, 5}, folds[1].TestIndices)
	assert.Equal(t, []int{6, 7, 8, 9, 10}, folds[2].TestIndices)
	assert.Equal(t, []int{0, 1, 2, 6, 7, 8, 9, 10}, folds[1].TrainIndices)
}

func TestKFoldSplitEdgeCases(t *testing.T) {
	tests := []struct {
		name    string
		n, k    int
		wantErr bool
	}{
		{"k equals n", 4, 4, false},
		{"single fold", 4, 1, false},
		{"k greater than n", 3, 4, true},
		{"zero folds", 3, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			folds, err := KFoldSplit(tt.n, tt.k)
			if tt.wantErr {
				var valErr *errors.ValidationError
				assert.True(t, errors.As(err, &valErr))
				return
			}
			require.NoError(t, err)
			assert.Len(t, folds, tt.k)
		})
	}
}

func TestKFoldSplitSingleFoldHasEmptyTrain(t *testing.T) {
	folds, err := KFoldSplit(3, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, folds[0].TestIndices)
	assert.Empty(t, folds[0].TrainIndices)
}
