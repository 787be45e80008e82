package linear

import (
	"github.com/YuminosukeSato/mlprimer/core/model"
	"github.com/YuminosukeSato/mlprimer/core/tensor"
	"github.com/YuminosukeSato/mlprimer/pkg/errors"
)

// ExportWeights はモデルの重みを ModelWeights 形式でエクスポートする
//
// 使用例:
//
//	mw, err := lr.ExportWeights()
//	data, err := mw.ToJSON()
func (lr *LinearRegression) ExportWeights() (*model.ModelWeights, error) {
	if err := lr.state.RequireFitted(modelName, "ExportWeights"); err != nil {
		return nil, err
	}
	_, nSamples := lr.state.GetDimensions()

	return &model.ModelWeights{
		ModelType:    modelName,
		Version:      model.WeightsFormatVersion,
		Coefficients: lr.weights.Clone(),
		Intercept:    lr.bias,
		Hyperparameters: map[string]interface{}{
			"fit_intercept": lr.fitIntercept,
		},
		Metadata: map[string]interface{}{
			"n_samples": nSamples,
		},
		IsFitted: true,
	}, nil
}

// ImportWeights は ModelWeights からモデルを復元する
// 復元後のモデルは学習済みとして扱う
func (lr *LinearRegression) ImportWeights(mw *model.ModelWeights) error {
	if mw == nil {
		return errors.NewValidationError("weights", "must not be nil", nil)
	}
	if err := mw.Validate(); err != nil {
		return err
	}
	if mw.ModelType != modelName {
		return errors.NewValidationError("model_type", "expected "+modelName, mw.ModelType)
	}
	if !mw.IsFitted {
		return errors.NewValidationError("is_fitted", "cannot import an unfitted model", false)
	}

	if fi, ok := mw.Hyperparameters["fit_intercept"].(bool); ok {
		lr.fitIntercept = fi
	}
	nSamples := 0
	if v, ok := mw.Metadata["n_samples"].(float64); ok {
		nSamples = int(v)
	} else if v, ok := mw.Metadata["n_samples"].(int); ok {
		nSamples = v
	}

	lr.weights = tensor.Vector(mw.Coefficients).Clone()
	lr.bias = mw.Intercept
	lr.state.SetFitted(len(lr.weights), nSamples)
	return nil
}

// GobEncode は model.SaveModel で保存できるよう重みを JSON としてエンコードする
func (lr *LinearRegression) GobEncode() ([]byte, error) {
	mw, err := lr.ExportWeights()
	if err != nil {
		return nil, err
	}
	return mw.ToJSON()
}

// GobDecode は GobEncode の出力からモデルを復元する
func (lr *LinearRegression) GobDecode(data []byte) error {
	var mw model.ModelWeights
	if err := mw.FromJSON(data); err != nil {
		return err
	}
	if lr.state == nil {
		*lr = *NewLinearRegression()
	}
	return lr.ImportWeights(&mw)
}
