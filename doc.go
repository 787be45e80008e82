// Package mlprimer is a small machine learning toolkit for Go: data
// preparation, evaluation metrics, linear-algebra helpers and a linear
// regression model, all working on plain [][]float64 and []float64 values.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/mlprimer/core/tensor"
//	    "github.com/YuminosukeSato/mlprimer/linear"
//	    "github.com/YuminosukeSato/mlprimer/selection"
//	)
//
//	func main() {
//	    X := tensor.Matrix{{1}, {2}, {3}, {4}, {5}, {6}, {7}, {8}, {9}, {10}}
//	    y := tensor.Vector{3, 5, 7, 9, 11, 13, 15, 17, 19, 21}
//
//	    split, err := selection.TrainTestSplit(X, y, 0.3, selection.WithSeed(42))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    model := linear.NewLinearRegression()
//	    if err := model.Fit(split.XTrain, split.YTrain); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    score, err := model.Score(split.XTest, split.YTest)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Printf("R² = %.3f\n", score)
//	}
//
// # Packages
//
//   - core/tensor: Matrix and Vector types, shape validation, gonum bridges
//   - linalg: dot product, transpose, matrix multiply, Gauss-Jordan inverse
//   - preprocessing: standardization, min-max normalization, bias column
//   - selection: train/test split, mini-batches, k-fold indices, cross-validation
//   - distance: Euclidean and Manhattan distances
//   - metrics: classification, regression and ranking (ROC/AUC) metrics
//   - linear: LinearRegression fitted by normal equation or gradient descent
//   - core/model: fitted-state tracking, weight export and gob persistence
//   - core/parallel: row-wise parallel loops
//   - pkg/errors: structured errors and warnings built on cockroachdb/errors
//   - pkg/log: slog and zerolog backed structured logging
//
// # Errors and Warnings
//
// Invalid input is reported as an error immediately. Degenerate but valid
// cases, such as a zero precision denominator or a constant target, return a
// defined value (usually 0) and emit a warning through errors.Warn, which the
// application can route with errors.SetWarningHandler or
// log.InstallZerologWarnings.
package mlprimer
