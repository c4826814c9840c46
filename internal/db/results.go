package db

import (
	"encoding/json"
	"log"
	"strings"

	"github.com/khizartahir/Portfolio-Optimization/internal/engine"
)

// RunSummary is one row of the run history.
type RunSummary struct {
	ID             int64   `json:"id"`
	CreatedAt      string  `json:"created_at"`
	Tickers        string  `json:"tickers"`
	RiskFreeRate   float64 `json:"risk_free_rate"`
	Seed           int64   `json:"seed"`
	PortfolioCount int     `json:"portfolio_count"`
	BestSharpe     float64 `json:"best_sharpe"`
	BestReturn     float64 `json:"best_return"`
	BestRisk       float64 `json:"best_risk"`
}

// InsertRun records a completed simulation and returns its run ID.
func (d *DB) InsertRun(tickers []string, riskFreeRate float64, seed int64, portfolioCount int, best engine.PortfolioRecord) int64 {
	res, err := d.sql.Exec(`INSERT INTO runs (
		tickers, risk_free_rate, seed, portfolio_count,
		best_sharpe, best_return, best_risk
	) VALUES (?,?,?,?,?,?,?)`,
		strings.Join(tickers, ","), riskFreeRate, seed, portfolioCount,
		best.SharpeRatio, best.ExpectedReturn, best.Risk,
	)
	if err != nil {
		log.Printf("[DB] InsertRun: %v", err)
		return 0
	}
	id, _ := res.LastInsertId()
	return id
}

// InsertRecords bulk-inserts the results table for a run, preserving the
// record index so the sampled order can be reconstructed.
func (d *DB) InsertRecords(runID int64, records []engine.PortfolioRecord) {
	if runID == 0 || len(records) == 0 {
		return
	}

	tx, err := d.sql.Begin()
	if err != nil {
		log.Printf("[DB] InsertRecords begin tx: %v", err)
		return
	}

	stmt, err := tx.Prepare(`INSERT INTO run_records (
		run_id, record_index, weights, expected_return, risk, sharpe
	) VALUES (?,?,?,?,?,?)`)
	if err != nil {
		tx.Rollback()
		log.Printf("[DB] InsertRecords prepare: %v", err)
		return
	}
	defer stmt.Close()

	for i, r := range records {
		weights, _ := json.Marshal(r.Weights)
		stmt.Exec(runID, i, string(weights), r.ExpectedReturn, r.Risk, r.SharpeRatio)
	}

	if err := tx.Commit(); err != nil {
		log.Printf("[DB] InsertRecords commit: %v", err)
	}
}

// GetRecords retrieves a run's results table in record-index order.
func (d *DB) GetRecords(runID int64) []engine.PortfolioRecord {
	rows, err := d.sql.Query(`
		SELECT weights, expected_return, risk, sharpe
		FROM run_records WHERE run_id = ? ORDER BY record_index
	`, runID)
	if err != nil {
		return nil
	}
	defer rows.Close()

	var records []engine.PortfolioRecord
	for rows.Next() {
		var r engine.PortfolioRecord
		var weights string
		rows.Scan(&weights, &r.ExpectedReturn, &r.Risk, &r.SharpeRatio)
		json.Unmarshal([]byte(weights), &r.Weights)
		records = append(records, r)
	}
	return records
}

// RecentRuns returns the most recent run summaries, newest first.
func (d *DB) RecentRuns(limit int) []RunSummary {
	rows, err := d.sql.Query(`
		SELECT id, created_at, tickers, risk_free_rate, seed,
			portfolio_count, best_sharpe, best_return, best_risk
		FROM runs ORDER BY id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		var r RunSummary
		rows.Scan(&r.ID, &r.CreatedAt, &r.Tickers, &r.RiskFreeRate, &r.Seed,
			&r.PortfolioCount, &r.BestSharpe, &r.BestReturn, &r.BestRisk)
		runs = append(runs, r)
	}
	return runs
}
