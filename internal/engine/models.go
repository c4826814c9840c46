package engine

// PortfolioRecord is one simulated portfolio: its allocation across the
// assets (fixed ordering shared with the input return matrix) and the
// risk/return profile computed from it. Records are immutable once produced.
type PortfolioRecord struct {
	Weights        []float64 `json:"weights"`
	ExpectedReturn float64   `json:"expected_return"`
	Risk           float64   `json:"risk"`
	SharpeRatio    float64   `json:"sharpe_ratio"`
}

// CapitalAllocationLine is the tangent line through the risk-free point and
// the Sharpe-maximizing portfolio, in (risk, return) space:
// return = Intercept + Slope * risk.
type CapitalAllocationLine struct {
	Intercept float64 `json:"intercept"`
	Slope     float64 `json:"slope"`
}

// ValueAt returns the expected return of the line at the given risk level.
func (l CapitalAllocationLine) ValueAt(risk float64) float64 {
	return l.Intercept + l.Slope*risk
}
