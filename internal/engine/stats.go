package engine

import (
	"fmt"
	"math"
)

const (
	// meanPrecision / covPrecision stabilize downstream comparisons and keep
	// printed output readable. Means carry 5 decimals, covariances 8.
	meanPrecision = 1e5
	covPrecision  = 1e8
)

// Statistics derives the per-asset mean return vector and the unbiased sample
// covariance matrix from a return matrix shaped periods x assets. The asset
// ordering of the input columns is preserved in both outputs.
//
// At least 2 periods are required for the covariance (Bessel divisor T-1)
// to be defined.
func Statistics(returns [][]float64) (means []float64, cov [][]float64, err error) {
	periods := len(returns)
	if periods < 2 {
		return nil, nil, fmt.Errorf("%w: %d periods, need at least 2", ErrInsufficientData, periods)
	}
	assets := len(returns[0])
	if assets < 1 {
		return nil, nil, fmt.Errorf("%w: 0 assets", ErrInsufficientData)
	}
	for t, row := range returns {
		if len(row) != assets {
			return nil, nil, fmt.Errorf("%w: period %d has %d assets, want %d",
				ErrDimensionMismatch, t, len(row), assets)
		}
	}

	// Deviations use the unrounded column means so the covariance is the true
	// sample covariance; rounding happens on the way out.
	rawMeans := make([]float64, assets)
	means = make([]float64, assets)
	for i := 0; i < assets; i++ {
		sum := 0.0
		for t := 0; t < periods; t++ {
			sum += returns[t][i]
		}
		rawMeans[i] = sum / float64(periods)
		means[i] = roundTo(rawMeans[i], meanPrecision)
	}

	cov = make([][]float64, assets)
	for i := range cov {
		cov[i] = make([]float64, assets)
	}
	for i := 0; i < assets; i++ {
		for j := 0; j <= i; j++ {
			s := 0.0
			for t := 0; t < periods; t++ {
				s += (returns[t][i] - rawMeans[i]) * (returns[t][j] - rawMeans[j])
			}
			c := roundTo(s/float64(periods-1), covPrecision)
			cov[i][j] = c
			cov[j][i] = c
		}
	}

	return means, cov, nil
}

func roundTo(x, scale float64) float64 {
	return math.Round(x*scale) / scale
}
