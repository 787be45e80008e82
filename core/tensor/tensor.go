// Package tensor defines the data shapes shared by every mlprimer package.
//
// A Matrix is a rectangular slice of rows (n samples × d features) and a
// Vector is a flat slice of numbers. Both are plain slices so that callers can
// build them from literals; ToDense and FromDense bridge to gonum when a
// computation is easier to express on *mat.Dense.
package tensor

import (
	"github.com/YuminosukeSato/mlprimer/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Matrix is an ordered sequence of equal-length rows.
type Matrix [][]float64

// Vector is an ordered sequence of numbers.
type Vector []float64

// Dims returns the number of rows and the length of the first row.
func (m Matrix) Dims() (rows, cols int) {
	if len(m) == 0 {
		return 0, 0
	}
	return len(m), len(m[0])
}

// Clone returns a deep copy of m.
func (m Matrix) Clone() Matrix {
	if m == nil {
		return nil
	}
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = append([]float64(nil), row...)
	}
	return out
}

// Column returns a copy of column j.
func (m Matrix) Column(j int) Vector {
	col := make(Vector, len(m))
	for i, row := range m {
		col[i] = row[j]
	}
	return col
}

// Clone returns a copy of v.
func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}
	return append(Vector(nil), v...)
}

// NewMatrix allocates a zero-filled rows×cols Matrix backed by one slice.
func NewMatrix(rows, cols int) Matrix {
	data := make([]float64, rows*cols)
	m := make(Matrix, rows)
	for i := range m {
		m[i] = data[i*cols : (i+1)*cols : (i+1)*cols]
	}
	return m
}

// ValidateMatrix checks that X has at least one row and one column and that
// every row has the same length as the first.
func ValidateMatrix(op string, X Matrix) error {
	if len(X) == 0 || len(X[0]) == 0 {
		return errors.NewEmptyDataError(op)
	}
	cols := len(X[0])
	for _, row := range X[1:] {
		if len(row) != cols {
			return errors.NewDimensionError(op, cols, len(row), 1)
		}
	}
	return nil
}

// ValidatePair checks that a and b are non-empty and of equal length.
func ValidatePair(op string, a, b Vector) error {
	if len(a) != len(b) {
		return errors.NewDimensionError(op, len(a), len(b), 0)
	}
	if len(a) == 0 {
		return errors.NewEmptyDataError(op)
	}
	return nil
}

// ValidateSamples checks that X is a valid matrix with one target per row.
func ValidateSamples(op string, X Matrix, y Vector) error {
	if len(X) != len(y) {
		return errors.NewDimensionError(op, len(X), len(y), 0)
	}
	return ValidateMatrix(op, X)
}

// ToDense copies X into a new *mat.Dense. X must be valid and non-empty.
func ToDense(X Matrix) *mat.Dense {
	r, c := X.Dims()
	d := mat.NewDense(r, c, nil)
	for i, row := range X {
		d.SetRow(i, row)
	}
	return d
}

// FromDense copies any gonum matrix into a Matrix.
func FromDense(m mat.Matrix) Matrix {
	r, c := m.Dims()
	out := NewMatrix(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out[i][j] = m.At(i, j)
		}
	}
	return out
}

// VectorFromMatrix extracts the first column of an n×1 gonum matrix.
func VectorFromMatrix(m mat.Matrix) Vector {
	r, _ := m.Dims()
	v := make(Vector, r)
	for i := range v {
		v[i] = m.At(i, 0)
	}
	return v
}

// ColumnVector wraps v as an n×1 *mat.Dense.
func ColumnVector(v Vector) *mat.Dense {
	return mat.NewDense(len(v), 1, v.Clone())
}
