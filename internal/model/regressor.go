package model

// Regressor is the single contract shared by all model families.
// The three kinds share no internal state, only this interface.
type Regressor interface {
	Fit(x [][]float64, y []float64) error
	Predict(features []float64) float64
}

// convergeReporter is implemented by iterative models that can fail to
// converge within their iteration budget. Non-convergence is a warning
// attached to the result, never a training failure.
type convergeReporter interface {
	ConvergedOK() bool
}

// newRegressor builds a fresh, unfitted regressor. Each fold gets its
// own instance so no fitted parameters leak between folds. The degree
// argument is only meaningful for the polynomial kind.
func newRegressor(kind Kind, degree int, seed int64) Regressor {
	switch kind {
	case Polynomial:
		return NewPolynomialRegression(degree)
	case MLP:
		return NewMLPRegressor(seed)
	default:
		return NewLinearRegression()
	}
}

// meanSquaredError scores predictions on a held-out fold.
func meanSquaredError(reg Regressor, x [][]float64, y []float64) float64 {
	if len(y) == 0 {
		return 0
	}
	sum := 0.0
	for i, row := range x {
		d := reg.Predict(row) - y[i]
		sum += d * d
	}
	return sum / float64(len(y))
}
