package models

import (
	"path/filepath"
	"testing"
)

func TestConfigDataset(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "gols-2022.csv")

	tests := []struct {
		name        string
		cfg         Config
		wantGoals   string
		wantMatches string
	}{
		{
			name:        "defaults",
			cfg:         Config{},
			wantGoals:   filepath.Join(DefaultDataDir, "campeonato-brasileiro-gols.csv"),
			wantMatches: filepath.Join(DefaultDataDir, "campeonato-brasileiro-full.csv"),
		},
		{
			name:        "custom dir",
			cfg:         Config{DataDir: "data"},
			wantGoals:   filepath.Join("data", "campeonato-brasileiro-gols.csv"),
			wantMatches: filepath.Join("data", "campeonato-brasileiro-full.csv"),
		},
		{
			name:        "relative override joins data dir",
			cfg:         Config{DataDir: "data", MatchesFile: "full-2023.csv"},
			wantGoals:   filepath.Join("data", "campeonato-brasileiro-gols.csv"),
			wantMatches: filepath.Join("data", "full-2023.csv"),
		},
		{
			name:        "absolute override kept",
			cfg:         Config{DataDir: "data", GoalsFile: abs},
			wantGoals:   abs,
			wantMatches: filepath.Join("data", "campeonato-brasileiro-full.csv"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := tt.cfg.Dataset()
			if ds.Goals != tt.wantGoals {
				t.Errorf("Goals = %q, want %q", ds.Goals, tt.wantGoals)
			}
			if ds.Matches != tt.wantMatches {
				t.Errorf("Matches = %q, want %q", ds.Matches, tt.wantMatches)
			}
			if len(ds.Options) == 0 {
				t.Error("Dataset() should always carry the encoding option")
			}
		})
	}
}
