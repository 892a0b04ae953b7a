package model

import (
	"math/rand"
)

// Fold is one immutable train/validation split of row indices.
type Fold struct {
	Train      []int
	Validation []int
}

// Split shuffles the row indices with rng and partitions them into k
// disjoint validation folds that together cover every index exactly
// once. The first n%k folds get one extra index when n is not evenly
// divisible.
func Split(n, k int, rng *rand.Rand) ([]Fold, error) {
	if k < 2 {
		return nil, &InvalidConfigError{Reason: "fold count must be at least 2"}
	}
	if n < k {
		return nil, &DataInsufficiencyError{Rows: n, Needed: k}
	}

	indices := rng.Perm(n)

	folds := make([]Fold, 0, k)
	base := n / k
	extra := n % k
	start := 0
	for i := 0; i < k; i++ {
		size := base
		if i < extra {
			size++
		}
		val := indices[start : start+size]
		train := make([]int, 0, n-size)
		train = append(train, indices[:start]...)
		train = append(train, indices[start+size:]...)
		folds = append(folds, Fold{Train: train, Validation: val})
		start += size
	}
	return folds, nil
}

func subset(x [][]float64, y []float64, idx []int) ([][]float64, []float64) {
	xs := make([][]float64, len(idx))
	ys := make([]float64, len(idx))
	for i, j := range idx {
		xs[i] = x[j]
		ys[i] = y[j]
	}
	return xs, ys
}
