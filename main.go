package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/khizartahir/Portfolio-Optimization/internal/chart"
	"github.com/khizartahir/Portfolio-Optimization/internal/config"
	"github.com/khizartahir/Portfolio-Optimization/internal/db"
	"github.com/khizartahir/Portfolio-Optimization/internal/engine"
	"github.com/khizartahir/Portfolio-Optimization/internal/logger"
	"github.com/khizartahir/Portfolio-Optimization/internal/marketdata"
)

var version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to YAML config")
	tickersFlag := flag.String("tickers", "", "comma-separated tickers (overrides config)")
	rfFlag := flag.Float64("rf", 0, "per-period risk-free rate (overrides config)")
	seedFlag := flag.Int64("seed", 0, "simulation seed (overrides config)")
	portfoliosFlag := flag.Int("portfolios", 0, "portfolio count (overrides the 100x-assets default)")
	flag.Parse()

	logger.Banner(version)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("Config", fmt.Sprintf("Failed to load %s: %v", *configPath, err))
		os.Exit(1)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "tickers":
			cfg.Tickers = splitTickers(*tickersFlag)
		case "rf":
			cfg.RiskFreeRate = *rfFlag
		case "seed":
			cfg.Seed = *seedFlag
		}
	})
	if err := cfg.Validate(); err != nil {
		logger.Error("Config", fmt.Sprintf("Invalid configuration: %v", err))
		os.Exit(1)
	}

	// Fetch close histories concurrently; order in the slice stays fixed so
	// the asset ordering is stable regardless of which fetch finishes first.
	client := marketdata.NewClient()
	series := make([]*marketdata.PriceSeries, len(cfg.Tickers))
	var g errgroup.Group
	for i, ticker := range cfg.Tickers {
		i, ticker := i, ticker
		g.Go(func() error {
			s, err := client.FetchHistory(ticker, cfg.Range, cfg.Interval)
			if err != nil {
				return err
			}
			series[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("Data", fmt.Sprintf("Fetch failed: %v", err))
		os.Exit(1)
	}
	logger.Success("Data", fmt.Sprintf("Fetched %d tickers (%s, %s bars)", len(series), cfg.Range, cfg.Interval))

	timestamps, closes, err := marketdata.AlignSeries(series)
	if err != nil {
		logger.Error("Data", fmt.Sprintf("Alignment failed: %v", err))
		os.Exit(1)
	}
	returns, err := marketdata.PeriodicReturns(closes)
	if err != nil {
		logger.Error("Data", fmt.Sprintf("Return derivation failed: %v", err))
		os.Exit(1)
	}
	logger.Info("Data", fmt.Sprintf("%d aligned periods, %d return rows", len(timestamps), len(returns)))

	portfolioCount := *portfoliosFlag
	if portfolioCount <= 0 {
		portfolioCount = cfg.PortfolioMultiplier * len(cfg.Tickers)
	}

	records, err := engine.Run(returns, cfg.RiskFreeRate, cfg.Seed, portfolioCount)
	if err != nil {
		logger.Error("Engine", fmt.Sprintf("Simulation failed: %v", err))
		os.Exit(1)
	}
	optimal, cal, err := engine.SelectOptimal(records, cfg.RiskFreeRate)
	if err != nil {
		logger.Error("Engine", fmt.Sprintf("Selection failed: %v", err))
		os.Exit(1)
	}

	logger.Section("Simulation")
	logger.Stats("portfolios", len(records))
	logger.Stats("seed", cfg.Seed)
	logger.Stats("risk-free rate", cfg.RiskFreeRate)
	logger.Stats("optimal sharpe", fmt.Sprintf("%.4f", optimal.SharpeRatio))
	logger.Stats("optimal return", fmt.Sprintf("%.5f", optimal.ExpectedReturn))
	logger.Stats("optimal risk", fmt.Sprintf("%.5f", optimal.Risk))
	logger.Stats("CAL", fmt.Sprintf("y = %.5f + %.4f x", cal.Intercept, cal.Slope))
	for i, ticker := range cfg.Tickers {
		logger.Stats(ticker, fmt.Sprintf("%.2f%%", optimal.Weights[i]*100))
	}
	printTopPortfolios(records, cfg.Tickers, 5)

	database, err := db.Open(cfg.DatabasePath)
	if err != nil {
		logger.Error("DB", fmt.Sprintf("Failed to open database: %v", err))
		os.Exit(1)
	}
	defer database.Close()
	runID := database.InsertRun(cfg.Tickers, cfg.RiskFreeRate, cfg.Seed, portfolioCount, optimal)
	database.InsertRecords(runID, records)
	logger.Success("DB", fmt.Sprintf("Run %d saved to %s", runID, cfg.DatabasePath))

	if buf, err := chart.RenderSimulation(records, optimal, cal, cfg.Tickers); err != nil {
		logger.Warn("Chart", fmt.Sprintf("Simulation chart failed: %v", err))
	} else if err := os.WriteFile(cfg.ChartPath, buf, 0644); err != nil {
		logger.Warn("Chart", fmt.Sprintf("Write %s: %v", cfg.ChartPath, err))
	} else {
		logger.Success("Chart", cfg.ChartPath)
	}

	if buf, err := chart.RenderWeights(optimal, cfg.Tickers); err != nil {
		logger.Warn("Chart", fmt.Sprintf("Weights chart failed: %v", err))
	} else if err := os.WriteFile(cfg.WeightsChartPath, buf, 0644); err != nil {
		logger.Warn("Chart", fmt.Sprintf("Write %s: %v", cfg.WeightsChartPath, err))
	} else {
		logger.Success("Chart", cfg.WeightsChartPath)
	}
}

// printTopPortfolios lists the n best portfolios by Sharpe ratio.
func printTopPortfolios(records []engine.PortfolioRecord, tickers []string, n int) {
	sorted := make([]engine.PortfolioRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].SharpeRatio > sorted[j].SharpeRatio })
	if n > len(sorted) {
		n = len(sorted)
	}

	logger.Section(fmt.Sprintf("Top %d portfolios", n))
	for i := 0; i < n; i++ {
		rec := sorted[i]
		parts := make([]string, len(rec.Weights))
		for j, w := range rec.Weights {
			parts[j] = fmt.Sprintf("%s %.1f%%", tickers[j], w*100)
		}
		logger.Stats(fmt.Sprintf("#%d sharpe %.4f", i+1, rec.SharpeRatio),
			fmt.Sprintf("ret %.5f risk %.5f | %s", rec.ExpectedReturn, rec.Risk, strings.Join(parts, " ")))
	}
}

func splitTickers(s string) []string {
	var out []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, strings.ToUpper(t))
		}
	}
	return out
}
