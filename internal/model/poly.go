package model

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Degree search bounds for polynomial regression.
const (
	MinDegree = 2
	MaxDegree = 10
)

// PolynomialRegression expands every base feature into powers 1..Degree
// and fits a lightly regularized least squares model on the expansion.
// Base features are standardized before expansion so that high powers
// of raw prices do not overflow the normal equations.
type PolynomialRegression struct {
	Degree int

	means []float64
	stds  []float64

	intercept float64
	coefs     []float64
}

// NewPolynomialRegression creates an unfitted model of the given degree.
func NewPolynomialRegression(degree int) *PolynomialRegression {
	return &PolynomialRegression{Degree: degree}
}

// Fit standardizes the base features, expands them and solves the
// ridge-stabilized normal equations. The tiny ridge term keeps the
// system positive definite even when the expansion is wider than the
// row count, which happens for high degrees on short histories.
func (m *PolynomialRegression) Fit(x [][]float64, y []float64) error {
	rows := len(x)
	if rows == 0 || rows != len(y) {
		return &InvalidConfigError{Reason: "feature matrix and target vector must align"}
	}
	if m.Degree < 1 {
		return &InvalidConfigError{Reason: "polynomial degree must be at least 1"}
	}

	m.means, m.stds = columnMoments(x)

	nBase := len(x[0])
	cols := nBase*m.Degree + 1
	a := mat.NewDense(rows, cols, nil)
	for i, row := range x {
		a.SetRow(i, m.expand(row))
	}

	var ata mat.SymDense
	ata.SymOuterK(1, a.T())

	atb := mat.NewVecDense(cols, nil)
	atb.MulVec(a.T(), mat.NewVecDense(rows, y))

	// Scale the ridge term to the magnitude of the gram matrix.
	trace := 0.0
	for i := 0; i < cols; i++ {
		trace += ata.At(i, i)
	}
	lambda := 1e-8 * trace / float64(cols)
	if lambda <= 0 {
		lambda = 1e-8
	}

	beta := mat.NewVecDense(cols, nil)
	var chol mat.Cholesky
	for attempt := 0; ; attempt++ {
		reg := mat.NewSymDense(cols, nil)
		reg.CopySym(&ata)
		for i := 0; i < cols; i++ {
			reg.SetSym(i, i, reg.At(i, i)+lambda)
		}
		if chol.Factorize(reg) {
			break
		}
		if attempt >= 12 {
			return fmt.Errorf("polynomial fit: gram matrix not positive definite at degree %d", m.Degree)
		}
		lambda *= 10
	}
	if err := chol.SolveVecTo(beta, atb); err != nil {
		return fmt.Errorf("polynomial fit: %w", err)
	}

	m.intercept = beta.AtVec(0)
	m.coefs = make([]float64, cols-1)
	for j := 1; j < cols; j++ {
		m.coefs[j-1] = beta.AtVec(j)
	}
	return nil
}

// Predict evaluates the fitted polynomial at the given base features.
func (m *PolynomialRegression) Predict(features []float64) float64 {
	expanded := m.expand(features)
	pred := expanded[0] * m.intercept
	for i, c := range m.coefs {
		pred += c * expanded[i+1]
	}
	return pred
}

// expand maps base features to [1, z1, z1^2, ..., z1^d, z2, ...] where
// z is the standardized feature value.
func (m *PolynomialRegression) expand(features []float64) []float64 {
	out := make([]float64, 0, len(features)*m.Degree+1)
	out = append(out, 1)
	for j, v := range features {
		z := (v - m.means[j]) / m.stds[j]
		p := 1.0
		for d := 0; d < m.Degree; d++ {
			p *= z
			out = append(out, p)
		}
	}
	return out
}

// columnMoments computes per-column mean and standard deviation,
// substituting 1 for zero deviations so constant columns stay finite.
func columnMoments(x [][]float64) ([]float64, []float64) {
	cols := len(x[0])
	means := make([]float64, cols)
	stds := make([]float64, cols)
	n := float64(len(x))

	for _, row := range x {
		for j, v := range row {
			means[j] += v
		}
	}
	for j := range means {
		means[j] /= n
	}
	for _, row := range x {
		for j, v := range row {
			d := v - means[j]
			stds[j] += d * d
		}
	}
	for j := range stds {
		stds[j] = math.Sqrt(stds[j] / n)
		if stds[j] == 0 {
			stds[j] = 1
		}
	}
	return means, stds
}
