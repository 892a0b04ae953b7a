package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// PredictionMetrics quantify how closely a model's forecasts track the
// realized closes.
type PredictionMetrics struct {
	Correlation float64
	StdError    float64 // standard deviation of the residuals
}

// EvaluatePredictions computes correlation and residual standard error
// between actual closes and model predictions. Series must be aligned
// and the same length.
func EvaluatePredictions(actual, predicted []float64) PredictionMetrics {
	if len(actual) == 0 || len(actual) != len(predicted) {
		return PredictionMetrics{Correlation: math.NaN(), StdError: math.NaN()}
	}

	residuals := make([]float64, len(actual))
	for i := range actual {
		residuals[i] = actual[i] - predicted[i]
	}

	mean := stat.Mean(residuals, nil)
	ss := 0.0
	for _, r := range residuals {
		d := r - mean
		ss += d * d
	}

	return PredictionMetrics{
		Correlation: stat.Correlation(actual, predicted, nil),
		StdError:    math.Sqrt(ss / float64(len(residuals))),
	}
}
