// Package linear は線形回帰モデルを提供する
package linear

import (
	"fmt"
	"math"
	"time"

	"github.com/YuminosukeSato/mlprimer/core"
	"github.com/YuminosukeSato/mlprimer/core/model"
	"github.com/YuminosukeSato/mlprimer/core/parallel"
	"github.com/YuminosukeSato/mlprimer/core/tensor"
	"github.com/YuminosukeSato/mlprimer/linalg"
	"github.com/YuminosukeSato/mlprimer/metrics"
	"github.com/YuminosukeSato/mlprimer/pkg/errors"
	"github.com/YuminosukeSato/mlprimer/pkg/log"
	"github.com/YuminosukeSato/mlprimer/preprocessing"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const modelName = "LinearRegression"

// 並列処理の閾値（この値以下の行数では逐次処理を使用）
const parallelThreshold = 1000

// LinearRegression は線形回帰モデル
//
// Fit（正規方程式）または FitGradientDescent（最急降下法）のどちらかで学習する。
// 再学習は以前の状態を上書きする。
type LinearRegression struct {
	state        *model.StateManager
	weights      tensor.Vector // 重み（係数）
	bias         float64       // 切片
	fitIntercept bool
	logger       log.Logger
}

var _ core.Regressor = (*LinearRegression)(nil)

// Weights は学習済みの重みと切片のコピー
type Weights struct {
	Weights tensor.Vector
	Bias    float64
}

// GDResult は FitGradientDescent の学習履歴
type GDResult struct {
	// Losses は各イテレーションの更新前の MSE（長さはイテレーション数と等しい）
	Losses []float64
}

// NewLinearRegression は新しい線形回帰モデルを作成する
//
// 使用例:
//
//	lr := linear.NewLinearRegression(linear.WithFitIntercept(true))
//	if err := lr.Fit(X, y); err != nil {
//	    return err
//	}
//	pred, err := lr.Predict(XTest)
func NewLinearRegression(opts ...Option) *LinearRegression {
	lr := &LinearRegression{
		state:        model.NewStateManager(),
		fitIntercept: true,
	}
	for _, opt := range opts {
		opt(lr)
	}
	if lr.logger == nil {
		lr.logger = log.GetLogger()
	}
	lr.logger = lr.logger.With(log.ModelNameKey, modelName)
	return lr
}

// Fit はモデルを訓練データで学習させる
// 正規方程式 w = (X^T * X)^(-1) * X^T * y を使用
//
// X^T * X が特異な場合は ErrSingularMatrix を返す。
func (lr *LinearRegression) Fit(X tensor.Matrix, y tensor.Vector) (err error) {
	defer errors.Recover(&err, "LinearRegression.Fit")

	if err := tensor.ValidateSamples("LinearRegression.Fit", X, y); err != nil {
		return lr.reject(log.OperationFit, err)
	}
	n, d := X.Dims()
	start := time.Now()

	// 切片項のために X に 1 の列を追加
	design := X
	if lr.fitIntercept {
		design = preprocessing.AddBias(X)
	}

	XT, err := linalg.Transpose(design)
	if err != nil {
		return err
	}
	XTX, err := linalg.MatMul(XT, design)
	if err != nil {
		return err
	}

	XTXInv, err := linalg.Inverse(XTX)
	if err != nil {
		lr.logger.Error("Normal equation failed",
			err,
			log.OperationKey, log.OperationFit,
			log.ErrorCodeKey, log.ErrorSingularMatrix,
			log.SuggestionKey, "remove collinear features or use FitGradientDescent",
		)
		return errors.Wrap(err, "LinearRegression.Fit")
	}

	XTy, err := linalg.MatVec(XT, y)
	if err != nil {
		return err
	}
	w, err := linalg.MatVec(XTXInv, XTy)
	if err != nil {
		return err
	}
	if err := errors.CheckNumericalStability("LinearRegression.Fit", w, 0); err != nil {
		return err
	}

	// 切片と重みを分離
	if lr.fitIntercept {
		lr.bias, lr.weights = w[0], w[1:]
	} else {
		lr.bias, lr.weights = 0, w
	}
	lr.state.SetFitted(d, n)

	lr.logger.Info("Training completed",
		log.OperationKey, log.OperationFit,
		log.PhaseKey, log.PhaseTraining,
		log.SamplesKey, n,
		log.FeaturesKey, d,
		log.FitInterceptKey, lr.fitIntercept,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return nil
}

// FitGradientDescent は全バッチの最急降下法でモデルを学習させる
//
// 重みと切片は0から始める。各イテレーションで全サンプルの予測と誤差を計算し、
// 勾配（誤差×特徴量の平均）で重みを更新する。切片は fitIntercept が true の
// ときだけ更新する。learningRate と iterations が0の場合は既定値を使用する。
//
// 損失が発散した場合はエラーではなく ConvergenceWarning を発行する。
func (lr *LinearRegression) FitGradientDescent(X tensor.Matrix, y tensor.Vector, learningRate float64, iterations int) (res *GDResult, err error) {
	defer errors.Recover(&err, "LinearRegression.FitGradientDescent")

	if err := tensor.ValidateSamples("LinearRegression.FitGradientDescent", X, y); err != nil {
		return nil, lr.reject(log.OperationFitGradientDescent, err)
	}
	if learningRate == 0 {
		learningRate = DefaultLearningRate
	}
	if iterations == 0 {
		iterations = DefaultIterations
	}
	if learningRate < 0 || math.IsNaN(learningRate) || math.IsInf(learningRate, 0) {
		return nil, lr.reject(log.OperationFitGradientDescent,
			errors.NewValidationError("learningRate", "must be a positive finite number", learningRate))
	}
	if iterations < 0 {
		return nil, lr.reject(log.OperationFitGradientDescent,
			errors.NewValidationError("iterations", "must be positive", iterations))
	}

	n, d := X.Dims()
	nf := float64(n)
	weights := make(tensor.Vector, d)
	bias := 0.0
	residuals := make([]float64, n)
	grad := make([]float64, d)
	losses := make([]float64, iterations)
	diverged := false
	start := time.Now()

	for it := 0; it < iterations; it++ {
		// 予測と誤差
		var loss, gradBias float64
		for i, row := range X {
			residuals[i] = floats.Dot(row, weights) + bias - y[i]
			loss += residuals[i] * residuals[i]
			gradBias += residuals[i]
		}
		losses[it] = loss / nf

		// 勾配
		for j := range grad {
			var g float64
			for i, row := range X {
				g += residuals[i] * row[j]
			}
			grad[j] = g / nf
		}

		floats.AddScaled(weights, -learningRate, grad)
		if lr.fitIntercept {
			bias -= learningRate * gradBias / nf
		}

		if !diverged {
			if instErr := errors.CheckScalar("LinearRegression.FitGradientDescent", losses[it], it); instErr != nil {
				diverged = true
				lr.logger.Warn("Loss is no longer finite",
					log.OperationKey, log.OperationFitGradientDescent,
					log.IterationKey, it,
					log.LearningRateKey, learningRate,
					log.ErrorCodeKey, log.ErrorConvergence,
				)
				errors.Warn(errors.NewConvergenceWarning("LinearRegression.FitGradientDescent", it+1,
					"loss became non-finite; consider lowering the learning rate"))
			}
		}
	}

	if !diverged && iterations > 1 && losses[iterations-1] > losses[iterations-2] {
		errors.Warn(errors.NewConvergenceWarning("LinearRegression.FitGradientDescent", iterations,
			"loss increased on the final iteration"))
	}

	lr.weights, lr.bias = weights, bias
	lr.state.SetFitted(d, n)

	lr.logger.Info("Training completed",
		log.OperationKey, log.OperationFitGradientDescent,
		log.PhaseKey, log.PhaseTraining,
		log.SamplesKey, n,
		log.FeaturesKey, d,
		log.LearningRateKey, learningRate,
		log.IterationKey, iterations,
		log.LossKey, losses[iterations-1],
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)

	return &GDResult{Losses: losses}, nil
}

// Predict は入力データに対する予測を行う
// 予測: y = X * weights + bias
func (lr *LinearRegression) Predict(X tensor.Matrix) (pred tensor.Vector, err error) {
	defer errors.Recover(&err, "LinearRegression.Predict")

	if err := lr.state.RequireFitted(modelName, "Predict"); err != nil {
		return nil, lr.reject(log.OperationPredict, err)
	}
	if err := tensor.ValidateMatrix("LinearRegression.Predict", X); err != nil {
		return nil, lr.reject(log.OperationPredict, err)
	}
	if _, c := X.Dims(); c != len(lr.weights) {
		return nil, lr.reject(log.OperationPredict,
			errors.NewDimensionError("LinearRegression.Predict", len(lr.weights), c, 1))
	}

	pred = make(tensor.Vector, len(X))
	parallel.ParallelizeWithThreshold(len(X), parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			pred[i] = floats.Dot(X[i], lr.weights) + lr.bias
		}
	})
	lr.logger.Debug("Prediction completed",
		log.OperationKey, log.OperationPredict,
		log.PhaseKey, log.PhaseInference,
		log.SamplesKey, len(X),
	)
	return pred, nil
}

// reject は入力エラーをエラーコード付きでログに残してそのまま返す
func (lr *LinearRegression) reject(op string, err error) error {
	lr.logger.Debug("Rejected input",
		log.OperationKey, op,
		log.ErrorCodeKey, errorCode(err),
	)
	return err
}

func errorCode(err error) string {
	var (
		notFitted *errors.NotFittedError
		dimErr    *errors.DimensionError
	)
	switch {
	case errors.Is(err, errors.ErrEmptyData):
		return log.ErrorEmptyData
	case errors.As(err, &notFitted):
		return log.ErrorNotFitted
	case errors.As(err, &dimErr):
		return log.ErrorDimensionMismatch
	default:
		return log.ErrorInvalidInput
	}
}

// Score はモデルの決定係数（R²）を計算する
func (lr *LinearRegression) Score(X tensor.Matrix, y tensor.Vector) (float64, error) {
	yPred, err := lr.Predict(X)
	if err != nil {
		return 0, err
	}
	score, err := metrics.R2Score(y, yPred)
	if err != nil {
		return 0, err
	}
	lr.logger.Debug("Scored",
		log.OperationKey, log.OperationScore,
		log.SamplesKey, len(y),
		log.R2ScoreKey, score,
	)
	return score, nil
}

// GetWeights は学習された重みと切片のコピーを返す
func (lr *LinearRegression) GetWeights() (*Weights, error) {
	if err := lr.state.RequireFitted(modelName, "GetWeights"); err != nil {
		return nil, err
	}
	return &Weights{Weights: lr.weights.Clone(), Bias: lr.bias}, nil
}

// IsFitted はモデルが学習済みかどうかを返す
func (lr *LinearRegression) IsFitted() bool {
	return lr.state.IsFitted()
}

// FitMatrix は gonum の行列で Fit を呼び出す
func (lr *LinearRegression) FitMatrix(X mat.Matrix, y mat.Vector) error {
	return lr.Fit(tensor.FromDense(X), vectorFrom(y))
}

// PredictMatrix は gonum の行列で Predict を呼び出す
func (lr *LinearRegression) PredictMatrix(X mat.Matrix) (*mat.VecDense, error) {
	pred, err := lr.Predict(tensor.FromDense(X))
	if err != nil {
		return nil, err
	}
	return mat.NewVecDense(len(pred), pred), nil
}

func vectorFrom(v mat.Vector) tensor.Vector {
	out := make(tensor.Vector, v.Len())
	for i := range out {
		out[i] = v.AtVec(i)
	}
	return out
}

// String はモデルの設定と状態を返す
func (lr *LinearRegression) String() string {
	if !lr.state.IsFitted() {
		return fmt.Sprintf("LinearRegression(fit_intercept=%t, fitted=false)", lr.fitIntercept)
	}
	return fmt.Sprintf("LinearRegression(fit_intercept=%t, n_features=%d, bias=%g)",
		lr.fitIntercept, len(lr.weights), lr.bias)
}
