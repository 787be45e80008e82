// Package core は mlprimer のモデルが満たすインターフェースを定義する
package core

import "github.com/YuminosukeSato/mlprimer/core/tensor"

// Fitter は学習可能なモデルのインターフェース
type Fitter interface {
	// Fit はモデルを訓練データで学習させる
	Fit(X tensor.Matrix, y tensor.Vector) error
}

// Predictor は予測可能なモデルのインターフェース
type Predictor interface {
	// Predict は入力データに対する予測を行う
	Predict(X tensor.Matrix) (tensor.Vector, error)
}

// Scorer は評価指標でモデルを採点するインターフェース
type Scorer interface {
	// Score は X に対する予測と y を比較したスコアを返す（大きいほど良い）
	Score(X tensor.Matrix, y tensor.Vector) (float64, error)
}

// Regressor は教師あり回帰モデルの基本インターフェース
type Regressor interface {
	Fitter
	Predictor
	Scorer
	IsFitted() bool
}
