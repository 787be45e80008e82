package errors

import (
	"fmt"
	"math"
	"strings"
	"testing"
)

func TestNewModelError(t *testing.T) {
	tests := []struct {
		name    string
		op      string
		kind    string
		err     error
		wantMsg string
	}{
		{
			name:    "with original error",
			op:      "Inverse",
			kind:    "singular matrix",
			err:     ErrSingularMatrix,
			wantMsg: "mlprimer: Inverse: singular matrix: singular matrix",
		},
		{
			name:    "without original error",
			op:      "Predict",
			kind:    "not fitted",
			err:     nil,
			wantMsg: "mlprimer: Predict: not fitted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewModelError(tt.op, tt.kind, tt.err)

			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			// スタックトレースの存在確認
			formatted := fmt.Sprintf("%+v", err)
			if !strings.Contains(formatted, "errors_test.go") {
				t.Error("Expected stack trace to contain test file name")
			}

			var modelErr *ModelError
			if !As(err, &modelErr) {
				t.Error("Error should be castable to *ModelError")
			}
		})
	}
}

func TestModelErrorUnwrapsSentinel(t *testing.T) {
	err := NewEmptyDataError("Standardize")
	if !Is(err, ErrEmptyData) {
		t.Errorf("Is(err, ErrEmptyData) = false for %v", err)
	}
	if Is(err, ErrSingularMatrix) {
		t.Error("empty data error must not match ErrSingularMatrix")
	}
}

func TestNewDimensionError(t *testing.T) {
	err := NewDimensionError("Dot", 3, 2, 0)

	want := "mlprimer: Dot: dimension mismatch on axis 0 (rows). Expected 3, got 2"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var dimErr *DimensionError
	if !As(err, &dimErr) {
		t.Fatal("Error should be castable to *DimensionError")
	}
	if dimErr.Expected != 3 || dimErr.Got != 2 {
		t.Errorf("unexpected fields: %+v", dimErr)
	}
}

func TestNewShapeError(t *testing.T) {
	err := NewShapeError("MatMul", 2, 3, 2, 2)

	want := "mlprimer: MatMul: incompatible dimensions: cannot multiply 2x3 by 2x2"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var shapeErr *ShapeError
	if !As(err, &shapeErr) {
		t.Error("Error should be castable to *ShapeError")
	}
}

func TestNewNotFittedError(t *testing.T) {
	err := NewNotFittedError("LinearRegression", "Predict")

	want := "mlprimer: LinearRegression: model has not been trained yet. Call Fit() before using Predict()"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var notFittedErr *NotFittedError
	if !As(err, &notFittedErr) {
		t.Error("Error should be castable to *NotFittedError")
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("k", "must not exceed the number of samples", 11)

	want := "mlprimer: validation failed for parameter 'k': must not exceed the number of samples (got: 11)"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}
}

func TestNewValueError(t *testing.T) {
	err := NewValueError("Accuracy", "invalid input")
	if err.Error() != "mlprimer: Accuracy: invalid input" {
		t.Errorf("Error() = %v", err.Error())
	}

	var valErr *ValueError
	if !As(err, &valErr) {
		t.Error("Error should be castable to *ValueError")
	}
}

func TestNewConvergenceWarning(t *testing.T) {
	warn := NewConvergenceWarning("GradientDescent", 1000, "loss did not decrease")

	want := "GradientDescent failed to converge after 1000 iterations: loss did not decrease"
	if warn.Error() != want {
		t.Errorf("Error() = %v, want %v", warn.Error(), want)
	}
}

func TestUndefinedMetricWarning(t *testing.T) {
	warn := NewUndefinedMetricWarning("precision", "no predicted samples", 0)

	want := "'precision' is ill-defined and being set to 0 due to no predicted samples."
	if warn.Error() != want {
		t.Errorf("Error() = %v, want %v", warn.Error(), want)
	}
}

func TestWarnRouting(t *testing.T) {
	var got []error
	SetWarningHandler(func(w error) { got = append(got, w) })
	defer SetWarningHandler(nil)

	Warn(NewUndefinedMetricWarning("recall", "no true samples", 0))
	if len(got) != 1 {
		t.Fatalf("handler received %d warnings, want 1", len(got))
	}

	var zerologGot []error
	SetZerologWarnFunc(func(w error) { zerologGot = append(zerologGot, w) })
	Warn(NewConvergenceWarning("GradientDescent", 10, ""))
	SetZerologWarnFunc(nil)

	if len(zerologGot) != 1 || len(got) != 1 {
		t.Errorf("zerolog func should take precedence: handler=%d zerolog=%d", len(got), len(zerologGot))
	}
}

func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrEmptyData, "in %s: expected %d, got %d", "Predict", 10, 5)

	if !Is(wrapped, ErrEmptyData) {
		t.Error("Expected Is(wrapped, ErrEmptyData) to be true")
	}

	expectedMsg := "in Predict: expected 10, got 5"
	if !strings.Contains(wrapped.Error(), expectedMsg) {
		t.Errorf("Expected wrapped error to contain %q", expectedMsg)
	}
}

func TestCheckScalar(t *testing.T) {
	if err := CheckScalar("loss", 0.5, 3); err != nil {
		t.Errorf("finite value reported unstable: %v", err)
	}

	err := CheckScalar("loss", math.Inf(1), 7)
	var numErr *NumericalInstabilityError
	if !As(err, &numErr) {
		t.Fatalf("expected NumericalInstabilityError, got %v", err)
	}
	if numErr.Iteration != 7 {
		t.Errorf("Iteration = %d, want 7", numErr.Iteration)
	}
}

func TestSafeDivide(t *testing.T) {
	if got := SafeDivide(3, 0); got != 0 {
		t.Errorf("SafeDivide(3, 0) = %v, want 0", got)
	}
	if got := SafeDivide(3, 4); got != 0.75 {
		t.Errorf("SafeDivide(3, 4) = %v, want 0.75", got)
	}
}
