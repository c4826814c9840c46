package engine

import "errors"

// Every failure aborts the run and surfaces to the caller; a corrupted mean
// or covariance would invalidate every downstream Sharpe ratio, so nothing
// is silently downgraded to a default. Callers match with errors.Is.
var (
	// ErrInsufficientData: fewer than 2 periods or fewer than 1 asset in
	// the return matrix, so the sample covariance is undefined.
	ErrInsufficientData = errors.New("insufficient return data")

	// ErrInvalidDimension: the sampler was asked for a non-positive asset
	// or portfolio count.
	ErrInvalidDimension = errors.New("invalid sampler dimension")

	// ErrDimensionMismatch: weights, means and covariance disagree on the
	// asset count.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrNumerical: the quadratic form w'Sigma w came out negative beyond
	// floating-point tolerance, which means the covariance matrix is
	// malformed (not positive semi-definite).
	ErrNumerical = errors.New("negative portfolio variance")

	// ErrZeroRisk: a portfolio with exactly zero risk has no defined
	// Sharpe ratio. Policy decision: this is an error, not a sentinel
	// value, so a degenerate covariance never leaks an Inf downstream.
	ErrZeroRisk = errors.New("zero-risk portfolio")

	// ErrEmptyResults: the optimal-portfolio scan was given zero records.
	ErrEmptyResults = errors.New("empty results table")
)
