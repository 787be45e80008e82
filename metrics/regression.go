// Package metrics は分類・回帰・ランキングの評価指標を提供する
//
// 定義できない縮退ケース（分母が0など）はエラーではなく既定値を返し、
// UndefinedMetricWarning を発行する。
package metrics

import (
	"math"

	"github.com/YuminosukeSato/mlprimer/core/tensor"
	"github.com/YuminosukeSato/mlprimer/pkg/errors"
	"gonum.org/v1/gonum/stat"
)

// MSE は平均二乗誤差（Mean Squared Error）を計算する
func MSE(yTrue, yPred tensor.Vector) (float64, error) {
	if err := tensor.ValidatePair("MSE", yTrue, yPred); err != nil {
		return 0, err
	}

	// MSE = (1/n) * Σ(yTrue - yPred)²
	var sum float64
	for i := range yTrue {
		diff := yTrue[i] - yPred[i]
		sum += diff * diff
	}

	return sum / float64(len(yTrue)), nil
}

// RMSE は平方根平均二乗誤差（Root Mean Squared Error）を計算する
func RMSE(yTrue, yPred tensor.Vector) (float64, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// MAE は平均絶対誤差（Mean Absolute Error）を計算する
func MAE(yTrue, yPred tensor.Vector) (float64, error) {
	if err := tensor.ValidatePair("MAE", yTrue, yPred); err != nil {
		return 0, err
	}

	// MAE = (1/n) * Σ|yTrue - yPred|
	var sum float64
	for i := range yTrue {
		sum += math.Abs(yTrue[i] - yPred[i])
	}

	return sum / float64(len(yTrue)), nil
}

// R2Score は決定係数（R²）を計算する
//
// 予測が完全に一致する場合は必ず 1 を返す。
// yTrue の全変動が0の場合は 0 を返し、警告を発行する。
func R2Score(yTrue, yPred tensor.Vector) (float64, error) {
	if err := tensor.ValidatePair("R2Score", yTrue, yPred); err != nil {
		return 0, err
	}

	yMean := stat.Mean(yTrue, nil)

	// 全変動（TSS）と残差変動（RSS）を計算
	var tss, rss float64
	for i := range yTrue {
		tss += (yTrue[i] - yMean) * (yTrue[i] - yMean)
		rss += (yTrue[i] - yPred[i]) * (yTrue[i] - yPred[i])
	}

	if rss == 0 {
		return 1, nil
	}

	// 全変動が0の場合（すべてのyTrueが同じ値）
	if tss == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("R2Score", "zero variance in yTrue", 0))
		return 0, nil
	}

	// R² = 1 - RSS/TSS
	return 1 - rss/tss, nil
}

// MAPE は平均絶対パーセンテージ誤差を計算する
// yTrue が0のサンプルは除外する
func MAPE(yTrue, yPred tensor.Vector) (float64, error) {
	if err := tensor.ValidatePair("MAPE", yTrue, yPred); err != nil {
		return 0, err
	}

	// MAPE = (100/n) * Σ|yTrue - yPred|/|yTrue|
	var sum float64
	validCount := 0
	for i, t := range yTrue {
		if t != 0 {
			sum += math.Abs(t-yPred[i]) / math.Abs(t)
			validCount++
		}
	}

	if validCount == 0 {
		return 0, errors.NewValueError("MAPE", "all yTrue values are zero")
	}

	return (sum / float64(validCount)) * 100, nil
}

// ExplainedVarianceScore は説明分散スコアを計算する
func ExplainedVarianceScore(yTrue, yPred tensor.Vector) (float64, error) {
	if err := tensor.ValidatePair("ExplainedVarianceScore", yTrue, yPred); err != nil {
		return 0, err
	}

	diff := make([]float64, len(yTrue))
	for i := range yTrue {
		diff[i] = yTrue[i] - yPred[i]
	}

	// 母分散で計算する
	_, varYTrue := stat.PopMeanVariance(yTrue, nil)
	_, varDiff := stat.PopMeanVariance(diff, nil)

	if varYTrue == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("ExplainedVarianceScore", "zero variance in yTrue", 0))
		return 0, nil
	}

	// 説明分散スコア = 1 - Var(yTrue - yPred) / Var(yTrue)
	return 1 - varDiff/varYTrue, nil
}
