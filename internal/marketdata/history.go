package marketdata

import (
	"errors"
	"fmt"
	"net/url"
)

// PriceSeries is one asset's close-price history, timestamps ascending.
type PriceSeries struct {
	Ticker     string
	Timestamps []int64
	Closes     []float64
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error any `json:"error"`
	} `json:"chart"`
}

// FetchHistory pulls close prices for one ticker from the Yahoo v8 chart
// endpoint. Bars with a missing or zero close (halts, pre-listing gaps) are
// dropped so downstream alignment only sees real observations.
func (c *Client) FetchHistory(ticker, rng, interval string) (*PriceSeries, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?range=%s&interval=%s",
		c.base, url.PathEscape(ticker), url.QueryEscape(rng), url.QueryEscape(interval))

	var cr chartResponse
	if err := c.GetJSON(u, &cr); err != nil {
		return nil, fmt.Errorf("fetch %s: %w", ticker, err)
	}
	if len(cr.Chart.Result) == 0 || len(cr.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("%s: no chart data", ticker)
	}

	ts := cr.Chart.Result[0].Timestamp
	closes := cr.Chart.Result[0].Indicators.Quote[0].Close
	if len(ts) == 0 || len(closes) == 0 {
		return nil, fmt.Errorf("%s: empty bars", ticker)
	}

	series := &PriceSeries{Ticker: ticker}
	for i := range ts {
		if i >= len(closes) || closes[i] == 0 {
			continue
		}
		series.Timestamps = append(series.Timestamps, ts[i])
		series.Closes = append(series.Closes, closes[i])
	}
	if len(series.Closes) == 0 {
		return nil, errors.New(ticker + ": no valid close prices")
	}
	return series, nil
}
