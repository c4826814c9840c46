package chart

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vicanso/go-charts/v2"

	"github.com/khizartahir/Portfolio-Optimization/internal/engine"
)

// RenderSimulation draws the simulated portfolio cloud in (risk, expected
// return) space with the Capital Allocation Line overlaid, and returns PNG
// bytes. The optimal portfolio is called out in the subtitle together with
// its allocation.
func RenderSimulation(records []engine.PortfolioRecord, optimal engine.PortfolioRecord, cal engine.CapitalAllocationLine, tickers []string) ([]byte, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("no records to render")
	}

	// Order the cloud by risk so it reads as a curve along the x axis.
	sorted := make([]engine.PortfolioRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Risk < sorted[j].Risk })

	xLabels := make([]string, len(sorted))
	cloud := make([]float64, len(sorted))
	line := make([]float64, len(sorted))
	for i, rec := range sorted {
		xLabels[i] = fmt.Sprintf("%.4f", rec.Risk)
		cloud[i] = rec.ExpectedReturn
		line[i] = cal.ValueAt(rec.Risk)
	}

	// Y-axis range with padding.
	minVal, maxVal := cloud[0], cloud[0]
	for _, vals := range [][]float64{cloud, line} {
		for _, v := range vals {
			if v < minVal {
				minVal = v
			}
			if v > maxVal {
				maxVal = v
			}
		}
	}
	padding := (maxVal - minVal) * 0.05
	if padding == 0 {
		padding = 0.0001
	}
	yMin := minVal - padding
	yMax := maxVal + padding

	splitNum := 6
	if len(xLabels) <= 30 {
		splitNum = len(xLabels) / 3
		if splitNum < 3 {
			splitNum = 3
		}
	}

	title := fmt.Sprintf("Portfolio Simulation (%s)", strings.Join(tickers, ", "))
	subtitle := fmt.Sprintf("Optimal: Sharpe %.3f | Return %.4f | Risk %.4f | %s",
		optimal.SharpeRatio, optimal.ExpectedReturn, optimal.Risk,
		composition(tickers, optimal.Weights))

	seriesList := charts.NewSeriesListDataFromValues([][]float64{cloud, line}, charts.ChartTypeLine)
	painter, err := charts.Render(charts.ChartOption{SeriesList: seriesList},
		charts.TitleTextOptionFunc(title, subtitle),
		charts.XAxisOptionFunc(charts.XAxisOption{
			Data:        xLabels,
			SplitNumber: splitNum,
			BoundaryGap: charts.FalseFlag(),
		}),
		charts.YAxisOptionFunc(charts.YAxisOption{Min: &yMin, Max: &yMax, DivideCount: 5}),
		charts.LegendOptionFunc(charts.LegendOption{Data: []string{"Simulated", "CAL"}}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}

	buf, err := painter.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to generate chart bytes: %w", err)
	}
	return buf, nil
}

// RenderWeights draws the optimal allocation as a horizontal bar chart and
// returns PNG bytes.
func RenderWeights(optimal engine.PortfolioRecord, tickers []string) ([]byte, error) {
	if len(tickers) != len(optimal.Weights) {
		return nil, fmt.Errorf("tickers and weights length mismatch: %d vs %d",
			len(tickers), len(optimal.Weights))
	}

	percents := make([]float64, len(optimal.Weights))
	for i, w := range optimal.Weights {
		percents[i] = w * 100
	}

	title := fmt.Sprintf("Optimal Allocation (Sharpe %.3f)", optimal.SharpeRatio)
	painter, err := charts.HorizontalBarRender([][]float64{percents},
		charts.TitleTextOptionFunc(title),
		charts.YAxisDataOptionFunc(tickers),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}

	buf, err := painter.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to generate chart bytes: %w", err)
	}
	return buf, nil
}

func composition(tickers []string, weights []float64) string {
	parts := make([]string, 0, len(weights))
	for i, w := range weights {
		name := fmt.Sprintf("w%d", i)
		if i < len(tickers) {
			name = tickers[i]
		}
		parts = append(parts, fmt.Sprintf("%s %.1f%%", name, w*100))
	}
	return strings.Join(parts, ", ")
}
