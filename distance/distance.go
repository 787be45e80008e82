// Package distance provides vector distance functions.
package distance

import (
	"math"

	"github.com/YuminosukeSato/mlprimer/core/tensor"
	"github.com/YuminosukeSato/mlprimer/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Func is the signature shared by Euclidean and Manhattan.
type Func func(a, b tensor.Vector) (float64, error)

// Euclidean returns the L2 norm of a-b.
func Euclidean(a, b tensor.Vector) (float64, error) {
	if len(a) != len(b) {
		return 0, errors.NewDimensionError("Euclidean", len(a), len(b), 0)
	}
	return floats.Distance(a, b, 2), nil
}

// Manhattan returns the L1 norm of a-b.
func Manhattan(a, b tensor.Vector) (float64, error) {
	if len(a) != len(b) {
		return 0, errors.NewDimensionError("Manhattan", len(a), len(b), 0)
	}
	return floats.Distance(a, b, 1), nil
}

// Pairwise returns the distance between every row of X and every row of Y.
func Pairwise(X, Y tensor.Matrix, fn Func) (tensor.Matrix, error) {
	out := tensor.NewMatrix(len(X), len(Y))
	for i, a := range X {
		for j, b := range Y {
			d, err := fn(a, b)
			if err != nil {
				return nil, err
			}
			out[i][j] = d
		}
	}
	return out, nil
}

// Nearest returns the index of the row of X closest to q, and its distance.
// It returns -1 and +Inf when X is empty.
func Nearest(X tensor.Matrix, q tensor.Vector, fn Func) (int, float64, error) {
	best, bestDist := -1, math.Inf(1)
	for i, row := range X {
		d, err := fn(row, q)
		if err != nil {
			return -1, 0, err
		}
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, bestDist, nil
}
