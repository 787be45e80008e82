package preprocessing_test

import (
	"fmt"

	"github.com/YuminosukeSato/mlprimer/core/tensor"
	"github.com/YuminosukeSato/mlprimer/preprocessing"
)

func ExampleNormalize() {
	res, err := preprocessing.Normalize(tensor.Matrix{{0, 3}, {5, 3}, {10, 3}})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.XScaled)
	// Output: [[0 0] [0.5 0] [1 0]]
}

func ExampleAddBias() {
	fmt.Println(preprocessing.AddBias(tensor.Matrix{{2, 3}, {4, 5}}))
	// Output: [[1 2 3] [1 4 5]]
}
