package db

import (
	"fmt"
	"time"

	"github.com/dtnitsch/rentledger/models"
)

// Run is one recorded analysis.
type Run struct {
	RunID        int64
	CreatedAt    time.Time
	Source       string
	Format       string
	TotalEvents  int
	TotalRevenue string
	ServerCount  int
	VehicleCount int
}

// InsertRun records a completed analysis and returns its run ID.
func (db *DB) InsertRun(source, format string, result *models.AnalysisResult) (int64, error) {
	res, err := db.Exec(`
		INSERT INTO runs (source, format, total_events, total_revenue, server_count, vehicle_count)
		VALUES (?, ?, ?, ?, ?, ?)
	`, source, format, result.TotalEvents, result.TotalRevenue.String(),
		len(result.Servers), len(result.Vehicles))
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}
	return runID, nil
}

// ListRuns returns the most recent runs, newest first.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.Query(`
		SELECT run_id, created_at, source, format, total_events, total_revenue, server_count, vehicle_count
		FROM runs
		ORDER BY run_id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.RunID, &r.CreatedAt, &r.Source, &r.Format,
			&r.TotalEvents, &r.TotalRevenue, &r.ServerCount, &r.VehicleCount); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
