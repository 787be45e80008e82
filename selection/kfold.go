package selection

import (
	"github.com/YuminosukeSato/mlprimer/pkg/errors"
)

// Fold is one train/test assignment of a cross-validation round.
type Fold struct {
	TrainIndices []int
	TestIndices  []int
}

// KFoldSplit partitions [0, n) into k contiguous folds and returns one Fold
// per held-out block.
//
// Every fold holds floor(n/k) indices except the last, which also takes the
// remainder. TrainIndices lists every index outside the fold in ascending
// order.
func KFoldSplit(n, k int) ([]Fold, error) {
	if k < 1 {
		return nil, errors.NewValidationError("k", "must be at least 1", k)
	}
	if k > n {
		return nil, errors.NewValidationError("k", "cannot exceed the number of samples", k)
	}

	foldSize := n / k
	folds := make([]Fold, k)
	for i := 0; i < k; i++ {
		start := i * foldSize
		end := start + foldSize
		if i == k-1 {
			end = n
		}

		test := make([]int, 0, end-start)
		train := make([]int, 0, n-(end-start))
		for j := 0; j < n; j++ {
			if j >= start && j < end {
				test = append(test, j)
			} else {
				train = append(train, j)
			}
		}
		folds[i] = Fold{TrainIndices: train, TestIndices: test}
	}
	return folds, nil
}
