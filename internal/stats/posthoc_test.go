package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPairwiseWelch_PairOrder tests lexical pair enumeration
func TestPairwiseWelch_PairOrder(t *testing.T) {
	groups := map[string][]float64{
		"C": {1, 2, 3},
		"A": {1, 2, 3},
		"B": {1, 2, 3},
	}

	pairs := PairwiseWelch(groups)
	require.Len(t, pairs, 3)
	assert.Equal(t, "A", pairs[0].A)
	assert.Equal(t, "B", pairs[0].B)
	assert.Equal(t, "A", pairs[1].A)
	assert.Equal(t, "C", pairs[1].B)
	assert.Equal(t, "B", pairs[2].A)
	assert.Equal(t, "C", pairs[2].B)
}

// TestPairwiseWelch_IdenticalGroups tests that equal groups never differ
func TestPairwiseWelch_IdenticalGroups(t *testing.T) {
	groups := map[string][]float64{
		"A": {1, 2, 3, 4},
		"B": {4, 3, 2, 1},
	}

	pairs := PairwiseWelch(groups)
	require.Len(t, pairs, 1)
	assert.Zero(t, pairs[0].Statistic)
	assert.Equal(t, 1.0, pairs[0].PValue)
	assert.False(t, pairs[0].Significant)
}

// TestPairwiseWelch_DetectsShift tests a clear mean separation
func TestPairwiseWelch_DetectsShift(t *testing.T) {
	groups := map[string][]float64{
		"low":  {0.9, 1.0, 1.1, 1.0, 0.95, 1.05},
		"high": {10.9, 11.0, 11.1, 11.0, 10.95, 11.05},
	}

	pairs := PairwiseWelch(groups)
	require.Len(t, pairs, 1)
	assert.True(t, pairs[0].Significant)
	assert.Less(t, pairs[0].AdjustedP, Alpha)
}

// TestHolmAdjust_Monotone tests the step-down adjustment properties
func TestHolmAdjust_Monotone(t *testing.T) {
	pairs := []PairResult{
		{A: "a", B: "b", PValue: 0.04},
		{A: "a", B: "c", PValue: 0.01},
		{A: "b", B: "c", PValue: 0.30},
	}

	holmAdjust(pairs)

	// Smallest raw p gets multiplied by m, largest is clamped at 1.
	assert.InDelta(t, 0.03, pairs[1].AdjustedP, 1e-9) // 0.01 * 3
	assert.InDelta(t, 0.08, pairs[0].AdjustedP, 1e-9) // 0.04 * 2
	assert.InDelta(t, 0.30, pairs[2].AdjustedP, 1e-9) // 0.30 * 1
	assert.True(t, pairs[1].Significant)
	assert.False(t, pairs[0].Significant)
	assert.False(t, pairs[2].Significant)

	// Adjusted p-values never decrease with increasing raw p.
	assert.LessOrEqual(t, pairs[1].AdjustedP, pairs[0].AdjustedP)
	assert.LessOrEqual(t, pairs[0].AdjustedP, pairs[2].AdjustedP)
}

// TestHolmAdjust_ClampsToOne tests the upper clamp
func TestHolmAdjust_ClampsToOne(t *testing.T) {
	pairs := []PairResult{
		{PValue: 0.6},
		{PValue: 0.9},
	}
	holmAdjust(pairs)
	assert.Equal(t, 1.0, pairs[0].AdjustedP)
	assert.Equal(t, 1.0, pairs[1].AdjustedP)
}
