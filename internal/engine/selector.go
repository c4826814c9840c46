package engine

// SelectOptimal scans a results table for the record with the maximum Sharpe
// ratio and derives the Capital Allocation Line through the risk-free point:
// intercept = riskFreeRate, slope = the winning Sharpe ratio.
//
// Ties break toward the first record in table order, which is deterministic
// because the table order matches the sampled weight sequence.
func SelectOptimal(records []PortfolioRecord, riskFreeRate float64) (PortfolioRecord, CapitalAllocationLine, error) {
	if len(records) == 0 {
		return PortfolioRecord{}, CapitalAllocationLine{}, ErrEmptyResults
	}

	best := records[0]
	for _, rec := range records[1:] {
		if rec.SharpeRatio > best.SharpeRatio {
			best = rec
		}
	}

	cal := CapitalAllocationLine{
		Intercept: riskFreeRate,
		Slope:     best.SharpeRatio,
	}
	return best, cal, nil
}
