package selection

import (
	"github.com/YuminosukeSato/mlprimer/core/tensor"
	"github.com/YuminosukeSato/mlprimer/pkg/errors"
)

// Batch is one contiguous slice of a dataset. X and Y share storage with
// the slices passed to BatchGenerator.
type Batch struct {
	X tensor.Matrix
	Y tensor.Vector
}

// BatchIterator walks a dataset once, front to back. It cannot be rewound;
// call BatchGenerator again for another pass.
type BatchIterator struct {
	X         tensor.Matrix
	Y         tensor.Vector
	BatchSize int

	pos int
}

// BatchGenerator returns an iterator over consecutive batches of batchSize
// rows. The final batch holds the remainder when n is not a multiple of
// batchSize.
//
//	it, err := selection.BatchGenerator(X, y, 32)
//	for b, ok := it.Next(); ok; b, ok = it.Next() {
//	    // train on b.X, b.Y
//	}
func BatchGenerator(X tensor.Matrix, y tensor.Vector, batchSize int) (*BatchIterator, error) {
	if len(X) != len(y) {
		return nil, errors.NewDimensionError("BatchGenerator", len(X), len(y), 0)
	}
	if batchSize < 1 {
		return nil, errors.NewValidationError("batchSize", "must be at least 1", batchSize)
	}
	return &BatchIterator{X: X, Y: y, BatchSize: batchSize}, nil
}

// Next returns the next batch, or false once every row has been yielded.
func (it *BatchIterator) Next() (Batch, bool) {
	if it.pos >= len(it.X) {
		return Batch{}, false
	}
	end := it.pos + it.BatchSize
	if end > len(it.X) {
		end = len(it.X)
	}
	b := Batch{X: it.X[it.pos:end], Y: it.Y[it.pos:end]}
	it.pos = end
	return b, true
}

// Remaining reports the number of rows not yet yielded.
func (it *BatchIterator) Remaining() int {
	return len(it.X) - it.pos
}

// Batches collects every batch eagerly.
func Batches(X tensor.Matrix, y tensor.Vector, batchSize int) ([]Batch, error) {
	it, err := BatchGenerator(X, y, batchSize)
	if err != nil {
		return nil, err
	}
	out := make([]Batch, 0, (len(X)+batchSize-1)/batchSize)
	for b, ok := it.Next(); ok; b, ok = it.Next() {
		out = append(out, b)
	}
	return out, nil
}
