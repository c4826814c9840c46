package engine

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DefaultMultiplier scales the simulation count with dimensionality:
// portfolioCount defaults to DefaultMultiplier * assetCount.
const DefaultMultiplier = 100

// Run executes the full simulation pipeline over a return matrix shaped
// periods x assets: compute return statistics once, sample portfolioCount
// weight vectors from the seed, and evaluate every portfolio against the
// shared statistics. portfolioCount <= 0 selects the default of
// DefaultMultiplier * assetCount.
//
// Evaluations run concurrently but each worker writes to its own pre-indexed
// slot, so the result order always matches the sampled sequence and a fixed
// seed reproduces an identical table regardless of scheduling. There is no
// partial-failure tolerance: the first failed evaluation aborts the run,
// tagged with the offending portfolio index.
func Run(returns [][]float64, riskFreeRate float64, seed int64, portfolioCount int) ([]PortfolioRecord, error) {
	means, cov, err := Statistics(returns)
	if err != nil {
		return nil, err
	}

	assets := len(means)
	if portfolioCount <= 0 {
		portfolioCount = DefaultMultiplier * assets
	}

	weights, err := SampleWeights(assets, portfolioCount, seed)
	if err != nil {
		return nil, err
	}

	records := make([]PortfolioRecord, portfolioCount)
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for p := range weights {
		p := p
		g.Go(func() error {
			rec, err := Evaluate(weights[p], means, cov, riskFreeRate)
			if err != nil {
				return fmt.Errorf("portfolio %d: %w", p, err)
			}
			records[p] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}
