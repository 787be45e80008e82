package metrics

import (
	"fmt"

	"github.com/YuminosukeSato/mlprimer/core/tensor"
	"github.com/YuminosukeSato/mlprimer/pkg/errors"
)

// Confusion は2値分類の混同行列
type Confusion struct {
	TP int
	FP int
	TN int
	FN int
}

// Total はカウントの合計
func (c Confusion) Total() int {
	return c.TP + c.FP + c.TN + c.FN
}

// ConfusionMatrix はラベル {0, 1} の混同行列を数える
//
// yTrue の長さだけ走査するため、yPred は少なくとも同じ長さでなければならない。
// 0 と 1 以外のラベルはどのセルにも数えない。
func ConfusionMatrix(yTrue, yPred tensor.Vector) Confusion {
	var c Confusion
	for i, t := range yTrue {
		p := yPred[i]
		switch {
		case t == 1 && p == 1:
			c.TP++
		case t == 0 && p == 1:
			c.FP++
		case t == 0 && p == 0:
			c.TN++
		case t == 1 && p == 0:
			c.FN++
		}
	}
	return c
}

// Accuracy は一致した位置の割合を返す
func Accuracy(yTrue, yPred tensor.Vector) (float64, error) {
	if len(yTrue) != len(yPred) || len(yTrue) == 0 {
		return 0, errors.NewValueError("Accuracy", "invalid input")
	}

	correct := 0
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(yTrue)), nil
}

// Precision は適合率 TP / (TP + FP) を返す
// 陽性の予測が一つもない場合は 0
func Precision(yTrue, yPred tensor.Vector) (float64, error) {
	if len(yTrue) != len(yPred) {
		return 0, errors.NewDimensionError("Precision", len(yTrue), len(yPred), 0)
	}
	return precision(ConfusionMatrix(yTrue, yPred)), nil
}

// Recall は再現率 TP / (TP + FN) を返す
// 陽性のサンプルが一つもない場合は 0
func Recall(yTrue, yPred tensor.Vector) (float64, error) {
	if len(yTrue) != len(yPred) {
		return 0, errors.NewDimensionError("Recall", len(yTrue), len(yPred), 0)
	}
	return recall(ConfusionMatrix(yTrue, yPred)), nil
}

// F1Score は適合率と再現率の調和平均を返す
func F1Score(yTrue, yPred tensor.Vector) (float64, error) {
	if len(yTrue) != len(yPred) {
		return 0, errors.NewDimensionError("F1Score", len(yTrue), len(yPred), 0)
	}
	c := ConfusionMatrix(yTrue, yPred)
	return f1(precision(c), recall(c)), nil
}

func precision(c Confusion) float64 {
	if c.TP+c.FP == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("Precision", "no predicted samples", 0))
		return 0
	}
	return float64(c.TP) / float64(c.TP+c.FP)
}

func recall(c Confusion) float64 {
	if c.TP+c.FN == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("Recall", "no true samples", 0))
		return 0
	}
	return float64(c.TP) / float64(c.TP+c.FN)
}

func f1(p, r float64) float64 {
	return errors.SafeDivide(2*p*r, p+r)
}

// ClassificationReport は2値分類の評価指標をまとめたもの
type ClassificationReport struct {
	Confusion Confusion
	Accuracy  float64
	Precision float64
	Recall    float64
	F1Score   float64
}

// NewClassificationReport は混同行列とすべての分類指標を一度に計算する
func NewClassificationReport(yTrue, yPred tensor.Vector) (*ClassificationReport, error) {
	acc, err := Accuracy(yTrue, yPred)
	if err != nil {
		return nil, err
	}

	c := ConfusionMatrix(yTrue, yPred)
	p, r := precision(c), recall(c)
	return &ClassificationReport{
		Confusion: c,
		Accuracy:  acc,
		Precision: p,
		Recall:    r,
		F1Score:   f1(p, r),
	}, nil
}

// String はレポートを表形式で返す
func (r *ClassificationReport) String() string {
	return fmt.Sprintf("accuracy=%.4f precision=%.4f recall=%.4f f1=%.4f (tp=%d fp=%d tn=%d fn=%d)",
		r.Accuracy, r.Precision, r.Recall, r.F1Score,
		r.Confusion.TP, r.Confusion.FP, r.Confusion.TN, r.Confusion.FN)
}
