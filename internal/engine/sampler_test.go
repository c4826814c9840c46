package engine

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestSampleWeights_SumToOneAndPositive(t *testing.T) {
	weights, err := SampleWeights(5, 200, 42)
	if err != nil {
		t.Fatalf("SampleWeights: %v", err)
	}
	if len(weights) != 200 {
		t.Fatalf("portfolio count = %d, want 200", len(weights))
	}
	for p, row := range weights {
		if len(row) != 5 {
			t.Fatalf("portfolio %d has %d weights, want 5", p, len(row))
		}
		sum := 0.0
		for i, w := range row {
			if w <= 0 {
				t.Errorf("portfolio %d weight[%d] = %v, want > 0", p, i, w)
			}
			sum += w
		}
		if math.Abs(sum-1.0) > 1e-9 {
			t.Errorf("portfolio %d weights sum = %v, want 1", p, sum)
		}
	}
}

func TestSampleWeights_Deterministic(t *testing.T) {
	a, err := SampleWeights(4, 50, 12)
	if err != nil {
		t.Fatalf("SampleWeights: %v", err)
	}
	b, err := SampleWeights(4, 50, 12)
	if err != nil {
		t.Fatalf("SampleWeights: %v", err)
	}
	for p := range a {
		for i := range a[p] {
			if a[p][i] != b[p][i] {
				t.Fatalf("weights[%d][%d] differ across identical seeds: %v vs %v",
					p, i, a[p][i], b[p][i])
			}
		}
	}
}

func TestSampleWeights_DifferentSeedsDiffer(t *testing.T) {
	a, _ := SampleWeights(3, 10, 1)
	b, _ := SampleWeights(3, 10, 2)
	same := true
	for p := range a {
		for i := range a[p] {
			if a[p][i] != b[p][i] {
				same = false
			}
		}
	}
	if same {
		t.Error("different seeds produced identical weight sequences")
	}
}

func TestSampleWeights_MatchesDocumentedProcedure(t *testing.T) {
	// The sampling scheme is part of the contract: per portfolio, one
	// uniform [1,10) draw per asset from the seeded source, then row
	// normalization. Replay it against the same source.
	const (
		assets     = 2
		portfolios = 2
		seed       = 12
	)
	got, err := SampleWeights(assets, portfolios, seed)
	if err != nil {
		t.Fatalf("SampleWeights: %v", err)
	}

	rng := rand.New(rand.NewSource(seed))
	for p := 0; p < portfolios; p++ {
		raw := make([]float64, assets)
		sum := 0.0
		for i := range raw {
			raw[i] = 1 + 9*rng.Float64()
			sum += raw[i]
		}
		for i := range raw {
			want := raw[i] / sum
			if got[p][i] != want {
				t.Errorf("weights[%d][%d] = %v, want %v from documented procedure",
					p, i, got[p][i], want)
			}
		}
	}
}

func TestSampleWeights_SingleAsset(t *testing.T) {
	// N=1 degenerates to weight [1.0] for every portfolio.
	weights, err := SampleWeights(1, 20, 7)
	if err != nil {
		t.Fatalf("SampleWeights: %v", err)
	}
	for p, row := range weights {
		if len(row) != 1 || row[0] != 1.0 {
			t.Errorf("portfolio %d = %v, want [1.0]", p, row)
		}
	}
}

func TestSampleWeights_InvalidDimensions(t *testing.T) {
	if _, err := SampleWeights(0, 10, 1); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("asset count 0: err = %v, want ErrInvalidDimension", err)
	}
	if _, err := SampleWeights(3, 0, 1); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("portfolio count 0: err = %v, want ErrInvalidDimension", err)
	}
	if _, err := SampleWeights(-1, -5, 1); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("negative dims: err = %v, want ErrInvalidDimension", err)
	}
}
