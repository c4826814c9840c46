package marketdata

import (
	"errors"
	"fmt"
	"sort"
)

// AlignSeries intersects the timestamps of all series so that every remaining
// period has a close price for every asset. The returned closes matrix is
// shaped periods x assets, with asset columns in the order the series were
// given; that ordering is shared by everything downstream.
func AlignSeries(series []*PriceSeries) (timestamps []int64, closes [][]float64, err error) {
	if len(series) == 0 {
		return nil, nil, errors.New("no price series to align")
	}

	// Count how many series carry each timestamp; keep the ones all carry.
	// Each series contributes a timestamp at most once, so a duplicated bar
	// inside one series cannot stand in for a missing bar in another.
	seen := make(map[int64]int)
	for _, s := range series {
		inSeries := make(map[int64]bool, len(s.Timestamps))
		for _, ts := range s.Timestamps {
			if inSeries[ts] {
				continue
			}
			inSeries[ts] = true
			seen[ts]++
		}
	}
	for ts, n := range seen {
		if n == len(series) {
			timestamps = append(timestamps, ts)
		}
	}
	if len(timestamps) == 0 {
		return nil, nil, errors.New("no common timestamps across tickers")
	}
	sort.Slice(timestamps, func(i, j int) bool { return timestamps[i] < timestamps[j] })

	lookups := make([]map[int64]float64, len(series))
	for i, s := range series {
		m := make(map[int64]float64, len(s.Timestamps))
		for j, ts := range s.Timestamps {
			m[ts] = s.Closes[j]
		}
		lookups[i] = m
	}

	closes = make([][]float64, len(timestamps))
	for t, ts := range timestamps {
		row := make([]float64, len(series))
		for i := range series {
			row[i] = lookups[i][ts]
		}
		closes[t] = row
	}
	return timestamps, closes, nil
}

// PeriodicReturns converts an aligned close matrix (periods x assets) into
// close-to-close simple returns r_t = p_t/p_{t-1} - 1, shaped
// (periods-1) x assets. This is the clean return matrix the simulation
// engine consumes: no missing values, fixed asset ordering.
func PeriodicReturns(closes [][]float64) ([][]float64, error) {
	if len(closes) < 3 {
		// Need at least 3 closes for the 2 return periods the statistics
		// stage requires.
		return nil, fmt.Errorf("need at least 3 aligned closes, have %d", len(closes))
	}
	assets := len(closes[0])
	returns := make([][]float64, len(closes)-1)
	for t := 1; t < len(closes); t++ {
		row := make([]float64, assets)
		for i := 0; i < assets; i++ {
			prev := closes[t-1][i]
			if prev == 0 {
				return nil, fmt.Errorf("zero close for asset %d at period %d", i, t-1)
			}
			row[i] = closes[t][i]/prev - 1
		}
		returns[t-1] = row
	}
	return returns, nil
}
