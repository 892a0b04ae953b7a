package model

import (
	"fmt"
	"log"
	"math/rand"

	"gonum.org/v1/gonum/stat"
)

// DegreeScore records the cross-validated error for one candidate
// polynomial degree.
type DegreeScore struct {
	Degree    int
	Scores    []float64
	MeanError float64
	StdError  float64
}

// Result is the immutable outcome of one training invocation.
type Result struct {
	Kind        Kind
	Degree      int // polynomial only, zero otherwise
	CVScores    []float64
	MeanCVError float64
	StdCVError  float64

	// DegreeSearch holds the per-degree scores examined during the
	// polynomial degree search, in ascending degree order.
	DegreeSearch []DegreeScore

	// Converged is false when an iterative model hit its iteration
	// budget before reaching tolerance. The result is still usable.
	Converged bool

	// NumFeatures is the feature width the model was trained with.
	NumFeatures int

	model Regressor
}

// PredictNext forecasts the next-day close for the given feature row.
// Pure with respect to the result: no hidden state is updated. Rows
// whose width differs from the training schema are rejected.
func (r *Result) PredictNext(features []float64) (float64, error) {
	if len(features) != r.NumFeatures {
		return 0, &SchemaError{Want: r.NumFeatures, Got: len(features)}
	}
	return r.model.Predict(features), nil
}

// Model exposes the fitted regressor, mainly so reporting can render a
// linear model's equation.
func (r *Result) Model() Regressor { return r.model }

// Train fits the requested model family on x against y using k-fold
// cross-validation and returns its scored result. The target vector
// must already be shifted so row t is labeled with the close of day
// t+1. The same seed with the same inputs reproduces identical scores.
func Train(x [][]float64, y []float64, kind Kind, k int, seed int64) (*Result, error) {
	if _, err := ParseKind(string(kind)); err != nil {
		return nil, err
	}
	if len(x) != len(y) {
		return nil, &InvalidConfigError{Reason: fmt.Sprintf("feature matrix (%d rows) and target vector (%d) must align", len(x), len(y))}
	}

	rng := rand.New(rand.NewSource(seed))
	folds, err := Split(len(x), k, rng)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Kind:        kind,
		Converged:   true,
		NumFeatures: len(x[0]),
	}

	degree := 0
	if kind == Polynomial {
		search, err := searchDegree(x, y, folds, seed)
		if err != nil {
			return nil, err
		}
		res.DegreeSearch = search
		degree = bestDegree(search)
		res.Degree = degree
		for _, ds := range search {
			if ds.Degree == degree {
				res.CVScores = ds.Scores
				res.MeanCVError = ds.MeanError
				res.StdCVError = ds.StdError
			}
		}
	} else {
		scores, allConverged, err := crossValidate(x, y, folds, kind, degree, seed)
		if err != nil {
			return nil, err
		}
		res.CVScores = scores
		res.MeanCVError = stat.Mean(scores, nil)
		res.StdCVError = stat.StdDev(scores, nil)
		res.Converged = res.Converged && allConverged
	}

	// Final fit on all labeled rows for forecasting.
	final := newRegressor(kind, degree, seed)
	if err := final.Fit(x, y); err != nil {
		return nil, fmt.Errorf("final %s fit: %w", kind, err)
	}
	if cr, ok := final.(convergeReporter); ok && !cr.ConvergedOK() {
		log.Printf("⚠️ %s model did not converge within %d iterations, keeping result", kind, mlpMaxIter)
		res.Converged = false
	}
	res.model = final

	return res, nil
}

// crossValidate fits a fresh regressor per fold and scores it on the
// held-out validation rows with mean squared error.
func crossValidate(x [][]float64, y []float64, folds []Fold, kind Kind, degree int, seed int64) ([]float64, bool, error) {
	scores := make([]float64, 0, len(folds))
	allConverged := true
	for i, fold := range folds {
		reg := newRegressor(kind, degree, seed+int64(i)+1)
		trainX, trainY := subset(x, y, fold.Train)
		if err := reg.Fit(trainX, trainY); err != nil {
			return nil, false, fmt.Errorf("fold %d: %w", i, err)
		}
		if cr, ok := reg.(convergeReporter); ok && !cr.ConvergedOK() {
			allConverged = false
		}
		valX, valY := subset(x, y, fold.Validation)
		scores = append(scores, meanSquaredError(reg, valX, valY))
	}
	return scores, allConverged, nil
}

// searchDegree runs the full k-fold procedure for every candidate
// degree. All degrees share the same folds so the comparison is fair.
func searchDegree(x [][]float64, y []float64, folds []Fold, seed int64) ([]DegreeScore, error) {
	search := make([]DegreeScore, 0, MaxDegree-MinDegree+1)
	for degree := MinDegree; degree <= MaxDegree; degree++ {
		scores, _, err := crossValidate(x, y, folds, Polynomial, degree, seed)
		if err != nil {
			return nil, fmt.Errorf("degree %d: %w", degree, err)
		}
		search = append(search, DegreeScore{
			Degree:    degree,
			Scores:    scores,
			MeanError: stat.Mean(scores, nil),
			StdError:  stat.StdDev(scores, nil),
		})
	}
	return search, nil
}

// bestDegree picks the degree with the minimum mean cross-validated
// error; exact ties go to the lowest degree. Scanning in ascending
// order with a strict comparison gives the parsimony tie-break for free.
func bestDegree(search []DegreeScore) int {
	best := search[0]
	for _, ds := range search[1:] {
		if ds.MeanError < best.MeanError {
			best = ds
		}
	}
	return best.Degree
}
