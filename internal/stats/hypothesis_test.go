package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func alternating(center, spread float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		if i%2 == 0 {
			out[i] = center + spread
		} else {
			out[i] = center - spread
		}
	}
	return out
}

// TestTestMeanReturn_RejectsPositiveMean tests the directional sanity
// check: a clearly positive mean return rejects H0 at threshold 0
func TestTestMeanReturn_RejectsPositiveMean(t *testing.T) {
	returns := alternating(1.0, 0.1, 30)

	res, err := TestMeanReturn(returns, 0.0)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, res.Mean, 1e-9)
	assert.True(t, res.RejectNull)
	assert.Less(t, res.PValue, Alpha)
	assert.Greater(t, res.Statistic, 0.0)
}

// TestTestMeanReturn_KeepsNullOnNegativeMean tests that a strongly
// negative mean fails to reject
func TestTestMeanReturn_KeepsNullOnNegativeMean(t *testing.T) {
	returns := alternating(-1.0, 0.1, 30)

	res, err := TestMeanReturn(returns, 0.0)
	require.NoError(t, err)

	assert.False(t, res.RejectNull)
	assert.Greater(t, res.PValue, Alpha)
	assert.Less(t, res.Statistic, 0.0)
}

// TestTestMeanReturn_ThresholdShiftsDecision tests the threshold
// semantics
func TestTestMeanReturn_ThresholdShiftsDecision(t *testing.T) {
	returns := alternating(1.0, 0.1, 30)

	res, err := TestMeanReturn(returns, 2.0)
	require.NoError(t, err)
	assert.False(t, res.RejectNull)
	assert.Equal(t, 2.0, res.Threshold)
}

// TestTestMeanReturn_TooFewObservations tests the sample size guard
func TestTestMeanReturn_TooFewObservations(t *testing.T) {
	_, err := TestMeanReturn([]float64{0.5}, 0.0)
	var groupErr *InsufficientGroupsError
	assert.ErrorAs(t, err, &groupErr)
}

// TestTestMeanReturn_ZeroVariance tests the degenerate constant series
func TestTestMeanReturn_ZeroVariance(t *testing.T) {
	res, err := TestMeanReturn([]float64{1, 1, 1, 1}, 0.0)
	require.NoError(t, err)
	assert.True(t, res.RejectNull)

	res, err = TestMeanReturn([]float64{-1, -1, -1, -1}, 0.0)
	require.NoError(t, err)
	assert.False(t, res.RejectNull)
}
