// Package preprocessing は特徴量の標準化・正規化とバイアス列の追加を提供します。
package preprocessing

import (
	"github.com/YuminosukeSato/mlprimer/core/tensor"
	"github.com/YuminosukeSato/mlprimer/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DefaultFeatureRange は Normalize の既定の出力範囲 [0, 1]
var DefaultFeatureRange = [2]float64{0, 1}

// StandardizeResult は標準化後の行列と、再適用のための列ごとの統計量
type StandardizeResult struct {
	// XScaled は平均0・標準偏差1に変換された行列
	XScaled tensor.Matrix

	// Mean は各特徴量の平均値
	Mean tensor.Vector

	// Std は各特徴量の母標準偏差（0 の列は 1 に置き換え済み）
	Std tensor.Vector
}

// NormalizeResult はMin-Max正規化後の行列と列ごとの最小値・最大値
type NormalizeResult struct {
	XScaled tensor.Matrix
	Min     tensor.Vector
	Max     tensor.Vector
}

// Standardize は各特徴量を平均0、標準偏差1に変換する
//
// 標準偏差は母標準偏差（n で割る）。標準偏差が 0 の列は 1 で割るため、
// その列は NaN ではなくすべて 0 になる。
//
// 使用例:
//
//	res, err := preprocessing.Standardize(XTrain)
//	XTest, err := preprocessing.ApplyStandardize(XTest, res.Mean, res.Std)
func Standardize(X tensor.Matrix) (*StandardizeResult, error) {
	if err := tensor.ValidateMatrix("Standardize", X); err != nil {
		return nil, err
	}
	_, c := X.Dims()

	mean := make(tensor.Vector, c)
	std := make(tensor.Vector, c)
	for j := 0; j < c; j++ {
		mean[j], std[j] = stat.PopMeanStdDev(X.Column(j), nil)
		if std[j] == 0 {
			std[j] = 1
		}
	}

	scaled, err := ApplyStandardize(X, mean, std)
	if err != nil {
		return nil, err
	}
	return &StandardizeResult{XScaled: scaled, Mean: mean, Std: std}, nil
}

// ApplyStandardize は既存の平均・標準偏差で X を標準化する
// テストデータに訓練データの統計量を適用する場合に使う
func ApplyStandardize(X tensor.Matrix, mean, std tensor.Vector) (tensor.Matrix, error) {
	if err := checkStats("ApplyStandardize", X, mean, std); err != nil {
		return nil, err
	}
	r, c := X.Dims()
	out := tensor.NewMatrix(r, c)
	for i, row := range X {
		for j, v := range row {
			out[i][j] = (v - mean[j]) / std[j]
		}
	}
	return out, nil
}

// InverseStandardize は標準化されたデータを元のスケールに戻す
func InverseStandardize(XScaled tensor.Matrix, mean, std tensor.Vector) (tensor.Matrix, error) {
	if err := checkStats("InverseStandardize", XScaled, mean, std); err != nil {
		return nil, err
	}
	r, c := XScaled.Dims()
	out := tensor.NewMatrix(r, c)
	for i, row := range XScaled {
		for j, v := range row {
			out[i][j] = v*std[j] + mean[j]
		}
	}
	return out, nil
}

// Normalize は各特徴量を featureRange（省略時 [0, 1]）に線形変換する
//
// 最大値と最小値が等しい列はすべて範囲の下限に写像する。
func Normalize(X tensor.Matrix, featureRange ...[2]float64) (*NormalizeResult, error) {
	if err := tensor.ValidateMatrix("Normalize", X); err != nil {
		return nil, err
	}
	_, c := X.Dims()

	lo := make(tensor.Vector, c)
	hi := make(tensor.Vector, c)
	for j := 0; j < c; j++ {
		col := X.Column(j)
		lo[j] = floats.Min(col)
		hi[j] = floats.Max(col)
	}

	scaled, err := ApplyNormalize(X, lo, hi, featureRange...)
	if err != nil {
		return nil, err
	}
	return &NormalizeResult{XScaled: scaled, Min: lo, Max: hi}, nil
}

// ApplyNormalize は既存の最小値・最大値で X を featureRange に変換する
func ApplyNormalize(X tensor.Matrix, colMin, colMax tensor.Vector, featureRange ...[2]float64) (tensor.Matrix, error) {
	fr, err := resolveFeatureRange(featureRange)
	if err != nil {
		return nil, err
	}
	if err := checkStats("ApplyNormalize", X, colMin, colMax); err != nil {
		return nil, err
	}

	span := fr[1] - fr[0]
	r, c := X.Dims()
	out := tensor.NewMatrix(r, c)
	for i, row := range X {
		for j, v := range row {
			dataRange := colMax[j] - colMin[j]
			if dataRange == 0 {
				out[i][j] = fr[0]
				continue
			}
			out[i][j] = fr[0] + (v-colMin[j])/dataRange*span
		}
	}
	return out, nil
}

func resolveFeatureRange(featureRange [][2]float64) ([2]float64, error) {
	if len(featureRange) == 0 {
		return DefaultFeatureRange, nil
	}
	fr := featureRange[0]
	if fr[0] > fr[1] {
		return fr, errors.NewValidationError("featureRange", "lower bound must not exceed upper bound", fr)
	}
	return fr, nil
}

func checkStats(op string, X tensor.Matrix, a, b tensor.Vector) error {
	if err := tensor.ValidateMatrix(op, X); err != nil {
		return err
	}
	_, c := X.Dims()
	if len(a) != c {
		return errors.NewDimensionError(op, c, len(a), 1)
	}
	if len(b) != c {
		return errors.NewDimensionError(op, c, len(b), 1)
	}
	return nil
}
