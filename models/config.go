// Package models defines the runtime configuration shared by CLI actions.
package models

import (
	"path/filepath"

	"github.com/dtnitsch/brasileirao-stats/pkg/brasileirao"
	"github.com/dtnitsch/brasileirao-stats/pkg/lines"
)

// DefaultDataDir is where the datasets live when no flag or env var says otherwise.
const DefaultDataDir = "src/resources"

// Config holds runtime configuration resolved from CLI flags and env vars.
// Empty file fields fall back to the default file name inside DataDir.
type Config struct {
	DataDir     string
	GoalsFile   string
	CardsFile   string
	MatchesFile string
	Encoding    lines.Encoding
}

// Dataset resolves the configured files into a brasileirao.Dataset.
func (c Config) Dataset(opts ...lines.Option) brasileirao.Dataset {
	dir := c.DataDir
	if dir == "" {
		dir = DefaultDataDir
	}
	ds := brasileirao.NewDataset(dir, append([]lines.Option{lines.WithEncoding(c.Encoding)}, opts...)...)
	if c.GoalsFile != "" {
		ds.Goals = resolve(dir, c.GoalsFile)
	}
	if c.CardsFile != "" {
		ds.Cards = resolve(dir, c.CardsFile)
	}
	if c.MatchesFile != "" {
		ds.Matches = resolve(dir, c.MatchesFile)
	}
	return ds
}

// resolve keeps absolute paths and joins relative ones onto dir.
func resolve(dir, file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(dir, file)
}
