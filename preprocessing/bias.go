package preprocessing

import (
	"github.com/YuminosukeSato/mlprimer/core/parallel"
	"github.com/YuminosukeSato/mlprimer/core/tensor"
)

// parallelThreshold 以下の行数では逐次処理を使用する
const parallelThreshold = 1000

// AddBias は各行の先頭に定数 1 を追加する（線形モデルの切片用）
func AddBias(X tensor.Matrix) tensor.Matrix {
	out := make(tensor.Matrix, len(X))
	parallel.ParallelizeWithThreshold(len(X), parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			row := make([]float64, len(X[i])+1)
			row[0] = 1.0
			copy(row[1:], X[i])
			out[i] = row
		}
	})
	return out
}
