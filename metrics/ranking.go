package metrics

import (
	"sort"

	"github.com/YuminosukeSato/mlprimer/core/tensor"
	"github.com/YuminosukeSato/mlprimer/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// DefaultROCThresholds は ROCCurve の既定の分割数
const DefaultROCThresholds = 100

// ROC は閾値ごとの偽陽性率と真陽性率
// 3つのスライスは同じ長さで、Thresholds は昇順
type ROC struct {
	FPR        tensor.Vector
	TPR        tensor.Vector
	Thresholds tensor.Vector
}

// ROCCurve は min(yScore) から max(yScore) までを numThresholds 等分した
// numThresholds+1 個の閾値で TPR と FPR を計算する
//
// スコアが閾値以上のサンプルを陽性と予測する。
// 陽性（陰性）のサンプルがない場合、TPR（FPR）は 0 になる。
func ROCCurve(yTrue, yScore tensor.Vector, numThresholds ...int) (*ROC, error) {
	if err := tensor.ValidatePair("ROCCurve", yTrue, yScore); err != nil {
		return nil, err
	}
	steps := DefaultROCThresholds
	if len(numThresholds) > 0 {
		steps = numThresholds[0]
	}
	if steps < 1 {
		return nil, errors.NewValidationError("numThresholds", "must be at least 1", steps)
	}

	totalPos, totalNeg := classCounts(yTrue)
	lo, hi := floats.Min(yScore), floats.Max(yScore)

	roc := &ROC{
		FPR:        make(tensor.Vector, steps+1),
		TPR:        make(tensor.Vector, steps+1),
		Thresholds: make(tensor.Vector, steps+1),
	}
	for i := 0; i <= steps; i++ {
		threshold := lo + (hi-lo)*float64(i)/float64(steps)
		if i == steps {
			threshold = hi
		}

		tp, fp := 0, 0
		for j, s := range yScore {
			if s < threshold {
				continue
			}
			if yTrue[j] == 1 {
				tp++
			} else {
				fp++
			}
		}

		roc.Thresholds[i] = threshold
		if totalPos > 0 {
			roc.TPR[i] = float64(tp) / float64(totalPos)
		}
		if totalNeg > 0 {
			roc.FPR[i] = float64(fp) / float64(totalNeg)
		}
	}
	return roc, nil
}

// AUCScore はROC曲線下面積を順位ベースで計算する（Mann-Whitney U と等価）
//
// スコアの降順に安定ソートし、陰性サンプルに出会うたびにそれより上位の
// 陽性の割合を加算する。同点の順序は入力順を保つ。
// どちらかのクラスが存在しない場合は 0 を返し、警告を発行する。
func AUCScore(yTrue, yScore tensor.Vector) (float64, error) {
	if err := tensor.ValidatePair("AUCScore", yTrue, yScore); err != nil {
		return 0, err
	}

	totalPos, totalNeg := classCounts(yTrue)
	if totalPos == 0 || totalNeg == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("AUCScore", "only one class present in yTrue", 0))
		return 0, nil
	}

	order := make([]int, len(yScore))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return yScore[order[a]] > yScore[order[b]]
	})

	var sum float64
	tp := 0
	for _, i := range order {
		if yTrue[i] == 1 {
			tp++
		} else {
			sum += float64(tp) / float64(totalPos)
		}
	}
	return sum / float64(totalNeg), nil
}

// classCounts は陽性（1）と陰性（それ以外）の数を返す
func classCounts(yTrue tensor.Vector) (pos, neg int) {
	for _, y := range yTrue {
		if y == 1 {
			pos++
		} else {
			neg++
		}
	}
	return pos, neg
}
