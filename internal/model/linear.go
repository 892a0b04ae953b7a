package model

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// LinearRegression is ordinary least squares with an intercept term,
// solved through a QR factorization.
type LinearRegression struct {
	intercept float64
	coefs     []float64
}

// NewLinearRegression creates an unfitted OLS model.
func NewLinearRegression() *LinearRegression {
	return &LinearRegression{}
}

// Fit solves the least squares problem for x against y.
func (m *LinearRegression) Fit(x [][]float64, y []float64) error {
	rows := len(x)
	if rows == 0 || rows != len(y) {
		return &InvalidConfigError{Reason: "feature matrix and target vector must align"}
	}
	cols := len(x[0]) + 1 // intercept column
	if rows < cols {
		return &DataInsufficiencyError{Rows: rows, Needed: cols}
	}

	a := mat.NewDense(rows, cols, nil)
	for i, row := range x {
		a.Set(i, 0, 1)
		for j, v := range row {
			a.Set(i, j+1, v)
		}
	}
	b := mat.NewVecDense(rows, y)

	var qr mat.QR
	qr.Factorize(a)
	beta := mat.NewVecDense(cols, nil)
	if err := qr.SolveVecTo(beta, false, b); err != nil {
		// An ill-conditioned system still yields a usable solution.
		if _, ok := err.(mat.Condition); !ok {
			return fmt.Errorf("solve least squares: %w", err)
		}
	}

	m.intercept = beta.AtVec(0)
	m.coefs = make([]float64, cols-1)
	for j := 1; j < cols; j++ {
		m.coefs[j-1] = beta.AtVec(j)
	}
	return nil
}

// Predict evaluates the fitted hyperplane at the given feature vector.
func (m *LinearRegression) Predict(features []float64) float64 {
	pred := m.intercept
	for i, c := range m.coefs {
		pred += c * features[i]
	}
	return pred
}

// Coefficients returns the intercept and slope terms of the fitted model.
func (m *LinearRegression) Coefficients() (float64, []float64) {
	return m.intercept, m.coefs
}

// Equation renders the fitted model as a human-readable formula,
// e.g. "y = 1.2000 + 0.5000*x1 - 0.3000*x2".
func (m *LinearRegression) Equation() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "y = %.4f", m.intercept)
	for i, c := range m.coefs {
		if c < 0 {
			fmt.Fprintf(&sb, " - %.4f*x%d", -c, i+1)
		} else {
			fmt.Fprintf(&sb, " + %.4f*x%d", c, i+1)
		}
	}
	return sb.String()
}
