package db

import (
	"database/sql"
	"fmt"
	"time"
)

// Run represents one recorded report
type Run struct {
	RunID        int64
	CreatedAt    time.Time
	DataDir      string
	StatCount    int
	SuccessCount int
	FailedCount  int
}

// RunResult is a single winner of a statistic, or the error that stopped it.
type RunResult struct {
	StatID       string
	Label        string
	Status       string
	Key          string
	Count        int
	ErrorMessage string
}

// CreateRun creates a new run record
func (db *DB) CreateRun(dataDir string, statCount int) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO runs (data_dir, stat_count)
		VALUES (?, ?)
	`, dataDir, statCount)
	if err != nil {
		return 0, fmt.Errorf("failed to create run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}
	return runID, nil
}

// InsertRunResult records a result row for a run
func (db *DB) InsertRunResult(runID int64, r RunResult) error {
	var key, errMsg interface{}
	if r.Key != "" {
		key = r.Key
	}
	if r.ErrorMessage != "" {
		errMsg = r.ErrorMessage
	}

	_, err := db.Exec(`
		INSERT INTO run_results (run_id, stat_id, label, status, key, count, error_message)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, runID, r.StatID, r.Label, r.Status, key, r.Count, errMsg)
	if err != nil {
		return fmt.Errorf("failed to insert run result: %w", err)
	}
	return nil
}

// UpdateRunStats updates the success and failed counts for a run
func (db *DB) UpdateRunStats(runID int64, successCount, failedCount int) error {
	_, err := db.Exec(`
		UPDATE runs
		SET success_count = ?, failed_count = ?
		WHERE run_id = ?
	`, successCount, failedCount, runID)
	if err != nil {
		return fmt.Errorf("failed to update run stats: %w", err)
	}
	return nil
}

// GetRunByID retrieves a run by its ID
func (db *DB) GetRunByID(runID int64) (*Run, error) {
	var run Run
	err := db.QueryRow(`
		SELECT run_id, created_at, data_dir, stat_count, success_count, failed_count
		FROM runs
		WHERE run_id = ?
	`, runID).Scan(
		&run.RunID,
		&run.CreatedAt,
		&run.DataDir,
		&run.StatCount,
		&run.SuccessCount,
		&run.FailedCount,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %d not found", runID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &run, nil
}

// GetRunResults retrieves all results for a run in insertion order
func (db *DB) GetRunResults(runID int64) ([]RunResult, error) {
	rows, err := db.Query(`
		SELECT stat_id, label, status, key, count, error_message
		FROM run_results
		WHERE run_id = ?
		ORDER BY result_id
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get run results: %w", err)
	}
	defer rows.Close()

	var results []RunResult
	for rows.Next() {
		var r RunResult
		var key, errorMessage sql.NullString
		var count sql.NullInt64
		if err := rows.Scan(&r.StatID, &r.Label, &r.Status, &key, &count, &errorMessage); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		r.Key = key.String
		r.Count = int(count.Int64)
		r.ErrorMessage = errorMessage.String
		results = append(results, r)
	}

	return results, rows.Err()
}

// ListRuns retrieves runs ordered by most recent first
func (db *DB) ListRuns(limit int) ([]Run, error) {
	query := `
		SELECT run_id, created_at, data_dir, stat_count, success_count, failed_count
		FROM runs
		ORDER BY created_at DESC, run_id DESC
	`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.RunID, &r.CreatedAt, &r.DataDir, &r.StatCount,
			&r.SuccessCount, &r.FailedCount); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}

	return runs, rows.Err()
}

// LatestRunID returns the most recent run, or an error if none were recorded
func (db *DB) LatestRunID() (int64, error) {
	runs, err := db.ListRuns(1)
	if err != nil {
		return 0, err
	}
	if len(runs) == 0 {
		return 0, fmt.Errorf("no runs found. Run 'brasileirao-stats report --record' first")
	}
	return runs[0].RunID, nil
}
