package storage

import (
	"path/filepath"
	"testing"
)

func TestSaveFile_CreatesParents(t *testing.T) {
	s := &Storage{}
	path := filepath.Join(t.TempDir(), "reports", "2026", "report.txt")

	if s.HasFile(path) {
		t.Fatal("HasFile() = true before save")
	}
	if err := s.SaveFile(path, []byte("Fred: 158\n")); err != nil {
		t.Fatalf("SaveFile() error = %v", err)
	}
	if !s.HasFile(path) {
		t.Error("HasFile() = false after save")
	}

	stats, err := s.GetFileStats(path)
	if err != nil {
		t.Fatalf("GetFileStats() error = %v", err)
	}
	if stats.SizeBytes != 10 {
		t.Errorf("SizeBytes = %d, want 10", stats.SizeBytes)
	}
}

func TestGetFileStats_Missing(t *testing.T) {
	s := &Storage{}
	if _, err := s.GetFileStats(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("GetFileStats() on missing file should return error")
	}
}
