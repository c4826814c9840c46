package db

import (
	"database/sql"
	"testing"

	"github.com/khizartahir/Portfolio-Optimization/internal/engine"

	_ "modernc.org/sqlite"
)

// openTestDB opens an in-memory SQLite DB and runs migrations (for testing only).
func openTestDB(t *testing.T) *DB {
	t.Helper()
	sqlDB, err := sql.Open("sqlite", ":memory:?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	d := &DB{sql: sqlDB}
	if err := d.migrate(); err != nil {
		sqlDB.Close()
		t.Fatalf("migrate: %v", err)
	}
	return d
}

func TestDB_RunRoundTrip(t *testing.T) {
	d := openTestDB(t)
	defer d.Close()

	best := engine.PortfolioRecord{
		Weights:        []float64{0.6, 0.4},
		ExpectedReturn: 0.012,
		Risk:           0.015,
		SharpeRatio:    0.8,
	}
	id := d.InsertRun([]string{"AAPL", "MSFT"}, 0.001, 12, 200, best)
	if id <= 0 {
		t.Fatal("InsertRun returned 0")
	}

	runs := d.RecentRuns(5)
	if len(runs) != 1 {
		t.Fatalf("RecentRuns len = %d, want 1", len(runs))
	}
	r := runs[0]
	if r.ID != id {
		t.Errorf("ID = %d, want %d", r.ID, id)
	}
	if r.Tickers != "AAPL,MSFT" {
		t.Errorf("Tickers = %q, want AAPL,MSFT", r.Tickers)
	}
	if r.Seed != 12 || r.PortfolioCount != 200 {
		t.Errorf("Seed/PortfolioCount = %d/%d, want 12/200", r.Seed, r.PortfolioCount)
	}
	if r.BestSharpe != 0.8 || r.BestReturn != 0.012 || r.BestRisk != 0.015 {
		t.Errorf("best = %v/%v/%v", r.BestSharpe, r.BestReturn, r.BestRisk)
	}
}

func TestDB_RecordsRoundTrip(t *testing.T) {
	d := openTestDB(t)
	defer d.Close()

	best := engine.PortfolioRecord{Weights: []float64{1}, ExpectedReturn: 0.01, Risk: 0.02, SharpeRatio: 0.5}
	id := d.InsertRun([]string{"SPY"}, 0, 1, 2, best)
	if id <= 0 {
		t.Fatal("InsertRun failed")
	}

	records := []engine.PortfolioRecord{
		{Weights: []float64{0.7, 0.3}, ExpectedReturn: 0.011, Risk: 0.02, SharpeRatio: 0.55},
		{Weights: []float64{0.2, 0.8}, ExpectedReturn: 0.009, Risk: 0.015, SharpeRatio: 0.6},
	}
	d.InsertRecords(id, records)

	got := d.GetRecords(id)
	if len(got) != 2 {
		t.Fatalf("GetRecords len = %d, want 2", len(got))
	}
	// Record-index order must survive the round trip.
	if got[0].SharpeRatio != 0.55 || got[1].SharpeRatio != 0.6 {
		t.Errorf("sharpe order = %v/%v, want 0.55/0.6", got[0].SharpeRatio, got[1].SharpeRatio)
	}
	if len(got[0].Weights) != 2 || got[0].Weights[0] != 0.7 {
		t.Errorf("weights[0] = %v, want [0.7 0.3]", got[0].Weights)
	}
}

func TestDB_RecentRunsOrder(t *testing.T) {
	d := openTestDB(t)
	defer d.Close()

	best := engine.PortfolioRecord{Weights: []float64{1}, SharpeRatio: 0.1, Risk: 0.01}
	first := d.InsertRun([]string{"A"}, 0, 1, 10, best)
	second := d.InsertRun([]string{"B"}, 0, 2, 10, best)

	runs := d.RecentRuns(10)
	if len(runs) != 2 {
		t.Fatalf("RecentRuns len = %d, want 2", len(runs))
	}
	if runs[0].ID != second || runs[1].ID != first {
		t.Errorf("order = [%d %d], want newest first [%d %d]", runs[0].ID, runs[1].ID, second, first)
	}
}

func TestDB_InsertRecordsNoopOnEmpty(t *testing.T) {
	d := openTestDB(t)
	defer d.Close()
	d.InsertRecords(0, nil) // must not panic
	if got := d.GetRecords(0); len(got) != 0 {
		t.Errorf("expected no records, got %d", len(got))
	}
}
