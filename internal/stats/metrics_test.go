package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestEvaluatePredictions_PerfectForecast tests the ideal case
func TestEvaluatePredictions_PerfectForecast(t *testing.T) {
	actual := []float64{10, 12, 11, 14, 13}
	m := EvaluatePredictions(actual, actual)

	assert.InDelta(t, 1.0, m.Correlation, 1e-9)
	assert.InDelta(t, 0.0, m.StdError, 1e-9)
}

// TestEvaluatePredictions_ConstantBias tests that a constant offset
// keeps correlation perfect but not the residual spread
func TestEvaluatePredictions_ConstantBias(t *testing.T) {
	actual := []float64{10, 12, 11, 14, 13}
	predicted := make([]float64, len(actual))
	for i, v := range actual {
		predicted[i] = v + 5
	}

	m := EvaluatePredictions(actual, predicted)
	assert.InDelta(t, 1.0, m.Correlation, 1e-9)
	// Residuals are constant, so their deviation is still zero.
	assert.InDelta(t, 0.0, m.StdError, 1e-9)
}

// TestEvaluatePredictions_NoisyForecast tests a spread in residuals
func TestEvaluatePredictions_NoisyForecast(t *testing.T) {
	actual := []float64{10, 12, 11, 14, 13}
	predicted := []float64{11, 11, 12, 13, 14}

	m := EvaluatePredictions(actual, predicted)
	assert.Greater(t, m.StdError, 0.0)
	assert.Less(t, m.Correlation, 1.0)
}

// TestEvaluatePredictions_Misaligned tests the misaligned/empty guard
func TestEvaluatePredictions_Misaligned(t *testing.T) {
	m := EvaluatePredictions([]float64{1, 2}, []float64{1})
	assert.True(t, math.IsNaN(m.Correlation))
	assert.True(t, math.IsNaN(m.StdError))

	m = EvaluatePredictions(nil, nil)
	assert.True(t, math.IsNaN(m.StdError))
}
