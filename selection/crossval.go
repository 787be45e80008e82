package selection

import (
	"sync"

	"github.com/YuminosukeSato/mlprimer/core"
	"github.com/YuminosukeSato/mlprimer/core/tensor"
	"github.com/YuminosukeSato/mlprimer/pkg/errors"
	"gonum.org/v1/gonum/stat"
)

// CVResult holds the per-fold scores of CrossValidate.
type CVResult struct {
	TrainScores []float64
	TestScores  []float64
}

// MeanScore returns the mean test score.
func (cv *CVResult) MeanScore() float64 {
	return stat.Mean(cv.TestScores, nil)
}

// StdScore returns the sample standard deviation of the test scores.
func (cv *CVResult) StdScore() float64 {
	if len(cv.TestScores) < 2 {
		return 0
	}
	return stat.StdDev(cv.TestScores, nil)
}

// CrossValidate fits a fresh model from newModel on each KFoldSplit fold and
// scores it on the held-out rows. Folds run concurrently; a panicking model
// surfaces as a *errors.PanicError.
func CrossValidate(newModel func() core.Regressor, X tensor.Matrix, y tensor.Vector, k int) (*CVResult, error) {
	if err := tensor.ValidateSamples("CrossValidate", X, y); err != nil {
		return nil, err
	}
	folds, err := KFoldSplit(len(X), k)
	if err != nil {
		return nil, err
	}

	result := &CVResult{
		TrainScores: make([]float64, len(folds)),
		TestScores:  make([]float64, len(folds)),
	}
	errs := make([]error, len(folds))

	var wg sync.WaitGroup
	for i, fold := range folds {
		wg.Add(1)
		go func(idx int, fold Fold) {
			defer wg.Done()
			errs[idx] = errors.SafeExecute("CrossValidate", func() error {
				trainX, trainY := GatherRows(X, fold.TrainIndices), GatherVector(y, fold.TrainIndices)
				testX, testY := GatherRows(X, fold.TestIndices), GatherVector(y, fold.TestIndices)

				m := newModel()
				if err := m.Fit(trainX, trainY); err != nil {
					return errors.Wrapf(err, "fold %d training failed", idx)
				}
				trainScore, err := m.Score(trainX, trainY)
				if err != nil {
					return errors.Wrapf(err, "fold %d scoring failed", idx)
				}
				testScore, err := m.Score(testX, testY)
				if err != nil {
					return errors.Wrapf(err, "fold %d scoring failed", idx)
				}
				result.TrainScores[idx] = trainScore
				result.TestScores[idx] = testScore
				return nil
			})
		}(i, fold)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}
