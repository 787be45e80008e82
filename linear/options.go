package linear

import (
	"github.com/YuminosukeSato/mlprimer/pkg/log"
)

// Gradient descent defaults used when FitGradientDescent receives zero values.
const (
	DefaultLearningRate = 0.01
	DefaultIterations   = 1000
)

// Option is a function that configures LinearRegression
type Option func(*LinearRegression)

// WithFitIntercept sets whether to calculate the intercept
func WithFitIntercept(fit bool) Option {
	return func(lr *LinearRegression) {
		lr.fitIntercept = fit
	}
}

// WithLogger sets the logger used for training diagnostics.
// By default the package-level logger from log.GetLogger is used.
func WithLogger(logger log.Logger) Option {
	return func(lr *LinearRegression) {
		lr.logger = logger
	}
}
