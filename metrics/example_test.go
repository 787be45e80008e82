package metrics_test

import (
	"fmt"

	"github.com/YuminosukeSato/mlprimer/core/tensor"
	"github.com/YuminosukeSato/mlprimer/metrics"
)

func ExampleAccuracy() {
	acc, err := metrics.Accuracy(tensor.Vector{0, 1, 0, 1, 0}, tensor.Vector{0, 1, 1, 1, 0})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(acc)
	// Output: 0.8
}

func ExampleMSE() {
	mse, err := metrics.MSE(tensor.Vector{1, 2, 3}, tensor.Vector{1.5, 2.5, 3.5})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(mse)
	// Output: 0.25
}

func ExampleAUCScore() {
	auc, err := metrics.AUCScore(tensor.Vector{0, 0, 1, 1}, tensor.Vector{0.1, 0.4, 0.35, 0.8})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(auc)
	// Output: 0.75
}
