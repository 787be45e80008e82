package metrics

import (
	"testing"

	"github.com/YuminosukeSato/mlprimer/core/tensor"
	"github.com/YuminosukeSato/mlprimer/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfusionMatrix(t *testing.T) {
	yTrue := tensor.Vector{0, 1, 0, 1, 0, 1, 1}
	yPred := tensor.Vector{0, 1, 1, 0, 0, 1, 0}

	c := ConfusionMatrix(yTrue, yPred)

	assert.Equal(t, Confusion{TP: 2, FP: 1, TN: 2, FN: 2}, c)
	assert.Equal(t, len(yTrue), c.Total())
}

func TestAccuracy(t *testing.T) {
	tests := []struct {
		name  string
		yTrue tensor.Vector
		yPred tensor.Vector
		want  float64
	}{
		{"one mistake in five", tensor.Vector{0, 1, 0, 1, 0}, tensor.Vector{0, 1, 1, 1, 0}, 0.8},
		{"identical", tensor.Vector{1, 0, 1}, tensor.Vector{1, 0, 1}, 1},
		{"disjoint", tensor.Vector{1, 0, 1}, tensor.Vector{0, 1, 0}, 0},
		{"multiclass labels", tensor.Vector{2, 3, 4, 5}, tensor.Vector{2, 3, 0, 0}, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Accuracy(tt.yTrue, tt.yPred)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestAccuracyInvalidInput(t *testing.T) {
	for _, tc := range [][2]tensor.Vector{
		{{1, 0}, {1}},
		{{}, {}},
	} {
		_, err := Accuracy(tc[0], tc[1])
		require.Error(t, err)

		var valErr *errors.ValueError
		require.True(t, errors.As(err, &valErr))
		assert.Equal(t, "invalid input", valErr.Message)
	}
}

func TestPrecisionRecallF1(t *testing.T) {
	yTrue := tensor.Vector{0, 1, 0, 1, 0}
	yPred := tensor.Vector{0, 1, 1, 1, 0}

	p, err := Precision(yTrue, yPred)
	require.NoError(t, err)
	assert.InDelta(t, 2.0/3, p, 1e-12)

	r, err := Recall(yTrue, yPred)
	require.NoError(t, err)
	assert.Equal(t, 1.0, r)

	f, err := F1Score(yTrue, yPred)
	require.NoError(t, err)
	assert.InDelta(t, 0.8, f, 1e-12)
}

func TestClassificationMetricsZeroDenominators(t *testing.T) {
	tests := []struct {
		name         string
		yTrue        tensor.Vector
		yPred        tensor.Vector
		wantWarnings []string
	}{
		{
			name:         "no positive predictions",
			yTrue:        tensor.Vector{1, 0, 1},
			yPred:        tensor.Vector{0, 0, 0},
			wantWarnings: []string{"Precision"},
		},
		{
			name:         "no positive samples",
			yTrue:        tensor.Vector{0, 0, 0},
			yPred:        tensor.Vector{1, 0, 0},
			wantWarnings: []string{"Recall"},
		},
		{
			name:         "empty input",
			yTrue:        tensor.Vector{},
			yPred:        tensor.Vector{},
			wantWarnings: []string{"Precision", "Recall"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := captureWarnings(t)

			p, err := Precision(tt.yTrue, tt.yPred)
			require.NoError(t, err)
			r, err := Recall(tt.yTrue, tt.yPred)
			require.NoError(t, err)

			assert.Equal(t, 0.0, p)
			assert.Equal(t, 0.0, r)
			assert.Equal(t, tt.wantWarnings, rec.metrics())

			f, err := F1Score(tt.yTrue, tt.yPred)
			require.NoError(t, err)
			assert.Equal(t, 0.0, f)
		})
	}
}

func TestClassificationMetricsLengthMismatch(t *testing.T) {
	for _, fn := range []func(a, b tensor.Vector) (float64, error){Precision, Recall, F1Score} {
		_, err := fn(tensor.Vector{1, 0}, tensor.Vector{1})
		var dimErr *errors.DimensionError
		assert.True(t, errors.As(err, &dimErr))
	}
}

func TestClassificationReport(t *testing.T) {
	report, err := NewClassificationReport(tensor.Vector{0, 1, 0, 1, 0}, tensor.Vector{0, 1, 1, 1, 0})
	require.NoError(t, err)

	assert.Equal(t, Confusion{TP: 2, FP: 1, TN: 2, FN: 0}, report.Confusion)
	assert.InDelta(t, 0.8, report.Accuracy, 1e-12)
	assert.InDelta(t, 2.0/3, report.Precision, 1e-12)
	assert.Equal(t, 1.0, report.Recall)
	assert.InDelta(t, 0.8, report.F1Score, 1e-12)
	assert.Contains(t, report.String(), "accuracy=0.8000")
	assert.Contains(t, report.String(), "tp=2 fp=1 tn=2 fn=0")

	_, err = NewClassificationReport(tensor.Vector{1}, tensor.Vector{})
	assert.Error(t, err)
}
