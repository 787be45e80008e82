// Package selection splits datasets for training and evaluation.
//
// TrainTestSplit partitions rows into train and test sets, KFoldSplit
// produces cross-validation indices, and BatchGenerator walks a dataset in
// fixed-size mini-batches. Randomness always comes from an explicit Source so
// that a seeded split is reproducible.
package selection
