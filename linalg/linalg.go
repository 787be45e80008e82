// Package linalg provides the small set of dense linear-algebra helpers the
// normal-equation solver needs: dot product, transpose, matrix product and
// Gauss-Jordan inversion.
//
// Products go through gonum's BLAS-backed *mat.Dense. Inversion is done by
// hand so that the pivoting rule and the singularity tolerance are fixed and
// identical on every platform.
package linalg

import (
	"math"

	"github.com/YuminosukeSato/mlprimer/core/tensor"
	"github.com/YuminosukeSato/mlprimer/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// SingularTolerance is the smallest pivot magnitude Inverse accepts.
const SingularTolerance = 1e-10

// Dot returns the sum of element-wise products of a and b.
func Dot(a, b tensor.Vector) (float64, error) {
	if len(a) != len(b) {
		return 0, errors.NewDimensionError("Dot", len(a), len(b), 0)
	}
	return floats.Dot(a, b), nil
}

// Transpose returns a new matrix with rows and columns swapped.
// Transpose of an empty or zero-width matrix is an empty matrix; ragged rows
// are a DimensionError.
func Transpose(X tensor.Matrix) (tensor.Matrix, error) {
	if len(X) == 0 || len(X[0]) == 0 {
		for _, row := range X {
			if len(row) != 0 {
				return nil, errors.NewDimensionError("Transpose", 0, len(row), 1)
			}
		}
		return tensor.Matrix{}, nil
	}
	if err := tensor.ValidateMatrix("Transpose", X); err != nil {
		return nil, err
	}
	return tensor.FromDense(tensor.ToDense(X).T()), nil
}

// MatMul returns the product A·B. Both operands must be non-empty and the
// column count of A must equal the row count of B.
func MatMul(A, B tensor.Matrix) (tensor.Matrix, error) {
	if err := tensor.ValidateMatrix("MatMul", A); err != nil {
		return nil, err
	}
	if err := tensor.ValidateMatrix("MatMul", B); err != nil {
		return nil, err
	}
	ar, ac := A.Dims()
	br, bc := B.Dims()
	if ac != br {
		return nil, errors.NewShapeError("MatMul", ar, ac, br, bc)
	}

	var out mat.Dense
	out.Mul(tensor.ToDense(A), tensor.ToDense(B))
	return tensor.FromDense(&out), nil
}

// MatVec returns A·v.
func MatVec(A tensor.Matrix, v tensor.Vector) (tensor.Vector, error) {
	if err := tensor.ValidateMatrix("MatVec", A); err != nil {
		return nil, err
	}
	_, ac := A.Dims()
	if ac != len(v) {
		return nil, errors.NewDimensionError("MatVec", ac, len(v), 1)
	}
	out := make(tensor.Vector, len(A))
	for i, row := range A {
		out[i] = floats.Dot(row, v)
	}
	return out, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) tensor.Matrix {
	I := tensor.NewMatrix(n, n)
	for i := 0; i < n; i++ {
		I[i][i] = 1
	}
	return I
}

// Inverse computes M⁻¹ by Gauss-Jordan elimination on [M | I] with partial
// pivoting. For each column the remaining row with the largest absolute value
// becomes the pivot; if that magnitude is below SingularTolerance the matrix
// is treated as singular and ErrSingularMatrix is returned.
func Inverse(M tensor.Matrix) (tensor.Matrix, error) {
	if err := tensor.ValidateMatrix("Inverse", M); err != nil {
		return nil, err
	}
	n, c := M.Dims()
	if n != c {
		return nil, errors.NewDimensionError("Inverse", n, c, 1)
	}

	// augmented [M | I]
	aug := tensor.NewMatrix(n, 2*n)
	for i := 0; i < n; i++ {
		copy(aug[i], M[i])
		aug[i][n+i] = 1
	}

	for col := 0; col < n; col++ {
		pivotRow := col
		pivotAbs := math.Abs(aug[col][col])
		for r := col + 1; r < n; r++ {
			if v := math.Abs(aug[r][col]); v > pivotAbs {
				pivotRow, pivotAbs = r, v
			}
		}
		if pivotAbs < SingularTolerance {
			return nil, errors.NewModelError("Inverse", "near-zero pivot", errors.ErrSingularMatrix)
		}
		aug[col], aug[pivotRow] = aug[pivotRow], aug[col]

		floats.Scale(1/aug[col][col], aug[col])

		for r := 0; r < n; r++ {
			if r == col || aug[r][col] == 0 {
				continue
			}
			// row_r -= factor * row_col
			floats.AddScaled(aug[r], -aug[r][col], aug[col])
		}
	}

	inv := tensor.NewMatrix(n, n)
	for i := 0; i < n; i++ {
		copy(inv[i], aug[i][n:])
	}
	return inv, nil
}
