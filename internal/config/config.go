package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config holds application settings loaded from a YAML file.
type Config struct {
	// Tickers is the ordered asset basket; the order fixes the column
	// ordering of every matrix and weight vector downstream.
	Tickers []string `yaml:"tickers"`

	RiskFreeRate float64 `yaml:"risk_free_rate"` // per period, default 0
	Seed         int64   `yaml:"seed"`
	// PortfolioMultiplier scales the simulation count: multiplier * assets
	// portfolios per run.
	PortfolioMultiplier int `yaml:"portfolio_multiplier"`

	// Yahoo chart query parameters.
	Range    string `yaml:"range"`
	Interval string `yaml:"interval"`

	ChartPath        string `yaml:"chart_path"`
	WeightsChartPath string `yaml:"weights_chart_path"`
	DatabasePath     string `yaml:"database_path"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Tickers:             []string{"AAPL", "MSFT", "GOOG", "AMZN"},
		RiskFreeRate:        0,
		Seed:                12,
		PortfolioMultiplier: 100,
		Range:               "1y",
		Interval:            "1d",
		ChartPath:           "simulation.png",
		WeightsChartPath:    "weights.png",
		DatabasePath:        "portfolio.db",
	}
}

// Load reads a YAML config file, falling back to Default when the file does
// not exist. Fields absent from the file keep their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks invariants the rest of the pipeline relies on.
func (c *Config) Validate() error {
	if len(c.Tickers) == 0 {
		return fmt.Errorf("no tickers configured")
	}
	seen := make(map[string]bool, len(c.Tickers))
	for _, tk := range c.Tickers {
		if tk == "" {
			return fmt.Errorf("empty ticker in list")
		}
		if seen[tk] {
			return fmt.Errorf("duplicate ticker %q", tk)
		}
		seen[tk] = true
	}
	if c.PortfolioMultiplier < 1 {
		return fmt.Errorf("portfolio_multiplier = %d, must be >= 1", c.PortfolioMultiplier)
	}
	if c.Range == "" || c.Interval == "" {
		return fmt.Errorf("range and interval must be set")
	}
	return nil
}
