package model

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSplit_ExactPartition tests that validation folds cover every row
// index exactly once for a range of sizes and fold counts
func TestSplit_ExactPartition(t *testing.T) {
	cases := []struct{ n, k int }{
		{2, 2}, {5, 2}, {10, 3}, {30, 3}, {31, 5}, {100, 10},
	}
	for _, tc := range cases {
		folds, err := Split(tc.n, tc.k, rand.New(rand.NewSource(7)))
		require.NoError(t, err)
		require.Len(t, folds, tc.k)

		var covered []int
		for _, fold := range folds {
			assert.NotEmpty(t, fold.Validation)
			assert.Len(t, fold.Train, tc.n-len(fold.Validation))
			covered = append(covered, fold.Validation...)
		}
		sort.Ints(covered)
		require.Len(t, covered, tc.n, "n=%d k=%d", tc.n, tc.k)
		for i, idx := range covered {
			assert.Equal(t, i, idx, "n=%d k=%d", tc.n, tc.k)
		}
	}
}

// TestSplit_TrainExcludesValidation tests fold disjointness
func TestSplit_TrainExcludesValidation(t *testing.T) {
	folds, err := Split(20, 4, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	for _, fold := range folds {
		inVal := make(map[int]bool, len(fold.Validation))
		for _, idx := range fold.Validation {
			inVal[idx] = true
		}
		for _, idx := range fold.Train {
			assert.False(t, inVal[idx])
		}
	}
}

// TestSplit_Deterministic tests that the same seed reproduces the same
// folds
func TestSplit_Deterministic(t *testing.T) {
	a, err := Split(25, 5, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	b, err := Split(25, 5, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestSplit_InsufficientData tests the error when rows < folds
func TestSplit_InsufficientData(t *testing.T) {
	_, err := Split(1, 2, rand.New(rand.NewSource(1)))
	var dataErr *DataInsufficiencyError
	require.ErrorAs(t, err, &dataErr)
	assert.Equal(t, 1, dataErr.Rows)
	assert.Equal(t, 2, dataErr.Needed)
}

// TestSplit_InvalidFoldCount tests rejection of k < 2
func TestSplit_InvalidFoldCount(t *testing.T) {
	for _, k := range []int{-1, 0, 1} {
		_, err := Split(10, k, rand.New(rand.NewSource(1)))
		var cfgErr *InvalidConfigError
		assert.ErrorAs(t, err, &cfgErr)
	}
}
