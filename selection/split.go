package selection

import (
	"sort"

	"github.com/YuminosukeSato/mlprimer/core/tensor"
	"github.com/YuminosukeSato/mlprimer/pkg/errors"
)

// SplitResult holds the four outputs of TrainTestSplit.
type SplitResult struct {
	XTrain tensor.Matrix
	XTest  tensor.Matrix
	YTrain tensor.Vector
	YTest  tensor.Vector
}

// SplitOption configures TrainTestSplit.
type SplitOption func(*splitConfig)

type splitConfig struct {
	shuffle bool
	source  Source
}

// WithShuffle enables or disables shuffling. Shuffling is on by default.
func WithShuffle(shuffle bool) SplitOption {
	return func(c *splitConfig) {
		c.shuffle = shuffle
	}
}

// WithSeed makes the shuffle reproducible by drawing from NewLCG(seed).
func WithSeed(seed int64) SplitOption {
	return func(c *splitConfig) {
		c.source = NewLCG(seed)
	}
}

// WithRandomSource shuffles with src.
func WithRandomSource(src Source) SplitOption {
	return func(c *splitConfig) {
		c.source = src
	}
}

// TrainTestSplit partitions the rows of X and y into a training set and a
// test set holding floor(n*testSize) rows.
//
// The rows are first permuted (identity order when shuffling is disabled) and
// the test set takes the last testCount permuted indices. Every input row
// appears exactly once across the outputs.
func TrainTestSplit(X tensor.Matrix, y tensor.Vector, testSize float64, opts ...SplitOption) (*SplitResult, error) {
	if err := tensor.ValidateSamples("TrainTestSplit", X, y); err != nil {
		return nil, err
	}
	if testSize < 0 || testSize > 1 {
		return nil, errors.NewValidationError("testSize", "must be in [0, 1]", testSize)
	}

	cfg := &splitConfig{shuffle: true}
	for _, opt := range opts {
		opt(cfg)
	}

	n := len(X)
	indices := identity(n)
	if cfg.shuffle {
		if cfg.source == nil {
			cfg.source = NewRandomSource()
		}
		shuffleBySource(indices, cfg.source)
	}

	testCount := int(float64(n) * testSize)
	trainCount := n - testCount
	trainIdx, testIdx := indices[:trainCount], indices[trainCount:]

	return &SplitResult{
		XTrain: GatherRows(X, trainIdx),
		XTest:  GatherRows(X, testIdx),
		YTrain: GatherVector(y, trainIdx),
		YTest:  GatherVector(y, testIdx),
	}, nil
}

// shuffleBySource draws one key per position and stable-sorts the indices
// by key.
func shuffleBySource(indices []int, src Source) {
	keys := make([]float64, len(indices))
	for i := range keys {
		keys[i] = src.Float64()
	}
	order := identity(len(indices))
	sort.SliceStable(order, func(a, b int) bool {
		return keys[order[a]] < keys[order[b]]
	})
	permuted := make([]int, len(indices))
	for i, o := range order {
		permuted[i] = indices[o]
	}
	copy(indices, permuted)
}

// GatherRows returns copies of the rows of X at idx, in order.
func GatherRows(X tensor.Matrix, idx []int) tensor.Matrix {
	out := make(tensor.Matrix, len(idx))
	for i, k := range idx {
		out[i] = append([]float64(nil), X[k]...)
	}
	return out
}

// GatherVector returns the elements of v at idx, in order.
func GatherVector(v tensor.Vector, idx []int) tensor.Vector {
	out := make(tensor.Vector, len(idx))
	for i, k := range idx {
		out[i] = v[k]
	}
	return out
}

func identity(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}
