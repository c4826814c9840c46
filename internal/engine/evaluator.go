package engine

import (
	"fmt"
	"math"
)

// varianceTolerance absorbs floating-point noise in the quadratic form.
// Anything more negative than this indicates a malformed covariance matrix.
const varianceTolerance = 1e-12

// Evaluate computes the risk/return profile of a single weight vector against
// precomputed return statistics:
//
//	ExpectedReturn = w . mu
//	Risk           = sqrt(w' Sigma w)
//	SharpeRatio    = (ExpectedReturn - riskFreeRate) / Risk
//
// A portfolio with exactly zero risk has no defined Sharpe ratio and fails
// with ErrZeroRisk (see errors.go for the policy). The record keeps its own
// copy of the weights, so the caller may reuse the input slice.
func Evaluate(weights, means []float64, cov [][]float64, riskFreeRate float64) (PortfolioRecord, error) {
	n := len(weights)
	if n == 0 {
		return PortfolioRecord{}, fmt.Errorf("%w: empty weight vector", ErrDimensionMismatch)
	}
	if len(means) != n {
		return PortfolioRecord{}, fmt.Errorf("%w: %d weights vs %d means",
			ErrDimensionMismatch, n, len(means))
	}
	if len(cov) != n {
		return PortfolioRecord{}, fmt.Errorf("%w: %d weights vs %dx%d covariance",
			ErrDimensionMismatch, n, len(cov), len(cov))
	}
	for i, row := range cov {
		if len(row) != n {
			return PortfolioRecord{}, fmt.Errorf("%w: covariance row %d has %d columns, want %d",
				ErrDimensionMismatch, i, len(row), n)
		}
	}

	expected := 0.0
	for i := range weights {
		expected += weights[i] * means[i]
	}

	// Quadratic form w' Sigma w, O(n^2).
	variance := 0.0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			variance += weights[i] * weights[j] * cov[i][j]
		}
	}
	if variance < -varianceTolerance {
		return PortfolioRecord{}, fmt.Errorf("%w: w'Sigma w = %v", ErrNumerical, variance)
	}
	if variance < 0 {
		variance = 0
	}
	risk := math.Sqrt(variance)
	if risk == 0 {
		return PortfolioRecord{}, fmt.Errorf("%w: expected return %v", ErrZeroRisk, expected)
	}

	w := make([]float64, n)
	copy(w, weights)
	return PortfolioRecord{
		Weights:        w,
		ExpectedReturn: expected,
		Risk:           risk,
		SharpeRatio:    (expected - riskFreeRate) / risk,
	}, nil
}
