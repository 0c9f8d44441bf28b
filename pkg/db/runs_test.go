package db

import (
	"testing"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	database := &DB{path: ":memory:"}
	var err error
	database.DB, err = openDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	// Every pooled connection would get its own in-memory database.
	database.SetMaxOpenConns(1)

	if err := database.InitSchema(); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}

	return database
}

func TestCreateRun(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	runID, err := db.CreateRun("src/resources", 8)
	if err != nil {
		t.Fatalf("CreateRun() error = %v", err)
	}
	if runID == 0 {
		t.Fatal("CreateRun() returned 0 run ID")
	}

	run, err := db.GetRunByID(runID)
	if err != nil {
		t.Fatalf("GetRunByID() error = %v", err)
	}
	if run.DataDir != "src/resources" {
		t.Errorf("run.DataDir = %q, want %q", run.DataDir, "src/resources")
	}
	if run.StatCount != 8 {
		t.Errorf("run.StatCount = %d, want 8", run.StatCount)
	}
	if run.SuccessCount != 0 || run.FailedCount != 0 {
		t.Errorf("new run counts = %d/%d, want 0/0", run.SuccessCount, run.FailedCount)
	}
}

func TestGetRunByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if _, err := db.GetRunByID(42); err == nil {
		t.Error("GetRunByID() with unknown ID should return error")
	}
}

func TestUpdateRunStats(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	runID, _ := db.CreateRun("data", 3)
	if err := db.UpdateRunStats(runID, 2, 1); err != nil {
		t.Fatalf("UpdateRunStats() error = %v", err)
	}

	run, err := db.GetRunByID(runID)
	if err != nil {
		t.Fatalf("GetRunByID() error = %v", err)
	}
	if run.SuccessCount != 2 {
		t.Errorf("run.SuccessCount = %d, want 2", run.SuccessCount)
	}
	if run.FailedCount != 1 {
		t.Errorf("run.FailedCount = %d, want 1", run.FailedCount)
	}
}

func TestInsertRunResult(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	runID, _ := db.CreateRun("data", 2)

	tests := []struct {
		name   string
		result RunResult
	}{
		{
			name:   "winner",
			result: RunResult{StatID: "top-scorers", Label: "Player with most goals", Status: "success", Key: "Fred", Count: 158},
		},
		{
			name:   "tied winner",
			result: RunResult{StatID: "top-scorers", Label: "Player with most goals", Status: "success", Key: "Gabriel", Count: 158},
		},
		{
			name:   "failed statistic",
			result: RunResult{StatID: "highest-scoring-match", Label: "Match with most goals", Status: "error", ErrorMessage: "line 7: malformed row"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := db.InsertRunResult(runID, tt.result); err != nil {
				t.Fatalf("InsertRunResult() error = %v", err)
			}
		})
	}

	results, err := db.GetRunResults(runID)
	if err != nil {
		t.Fatalf("GetRunResults() error = %v", err)
	}
	if len(results) != len(tests) {
		t.Fatalf("GetRunResults() returned %d results, want %d", len(results), len(tests))
	}
	for i, tt := range tests {
		if results[i] != tt.result {
			t.Errorf("result %d = %+v, want %+v", i, results[i], tt.result)
		}
	}
}

func TestInsertRunResult_UnknownRun(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	err := db.InsertRunResult(999, RunResult{StatID: "red-cards", Label: "x", Status: "success"})
	if err == nil {
		t.Error("InsertRunResult() for missing run should violate the foreign key")
	}
}

func TestListRuns(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	runs, err := db.ListRuns(10)
	if err != nil {
		t.Fatalf("ListRuns() error = %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("ListRuns() on empty db = %d runs, want 0", len(runs))
	}

	var ids []int64
	for i := 0; i < 3; i++ {
		id, err := db.CreateRun("data", 8)
		if err != nil {
			t.Fatalf("CreateRun() error = %v", err)
		}
		ids = append(ids, id)
	}

	runs, err = db.ListRuns(2)
	if err != nil {
		t.Fatalf("ListRuns() error = %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("ListRuns(2) = %d runs, want 2", len(runs))
	}
	if runs[0].RunID != ids[2] {
		t.Errorf("most recent run = %d, want %d", runs[0].RunID, ids[2])
	}

	latest, err := db.LatestRunID()
	if err != nil {
		t.Fatalf("LatestRunID() error = %v", err)
	}
	if latest != ids[2] {
		t.Errorf("LatestRunID() = %d, want %d", latest, ids[2])
	}
}

func TestLatestRunID_Empty(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if _, err := db.LatestRunID(); err == nil {
		t.Error("LatestRunID() on empty db should return error")
	}
}
