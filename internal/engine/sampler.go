package engine

import (
	"fmt"
	"math/rand"
)

const (
	// Raw weight draws come from [drawLow, drawHigh). Drawing away from zero
	// before normalizing biases portfolios away from extreme corner
	// allocations while keeping every weight strictly positive.
	drawLow  = 1.0
	drawHigh = 10.0
)

// SampleWeights produces portfolioCount random feasible weight vectors over
// assetCount assets. Each vector is built by drawing one uniform value from
// [1, 10) per asset and dividing by the row sum, so components are strictly
// positive and sum to 1.
//
// The sequence is fully determined by the seed: the same seed, asset count
// and portfolio count always reproduce the same vectors. The seed is an
// explicit parameter rather than process-global RNG state so runs stay
// reproducible and auditable.
func SampleWeights(assetCount, portfolioCount int, seed int64) ([][]float64, error) {
	if assetCount < 1 {
		return nil, fmt.Errorf("%w: asset count %d", ErrInvalidDimension, assetCount)
	}
	if portfolioCount < 1 {
		return nil, fmt.Errorf("%w: portfolio count %d", ErrInvalidDimension, portfolioCount)
	}

	rng := rand.New(rand.NewSource(seed))
	weights := make([][]float64, portfolioCount)
	for p := range weights {
		row := make([]float64, assetCount)
		sum := 0.0
		for i := range row {
			row[i] = drawLow + (drawHigh-drawLow)*rng.Float64()
			sum += row[i]
		}
		for i := range row {
			row[i] /= sum
		}
		weights[p] = row
	}
	return weights, nil
}
