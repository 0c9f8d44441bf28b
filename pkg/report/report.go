package report

import (
	"log/slog"
	"time"

	"github.com/dtnitsch/brasileirao-stats/pkg/brasileirao"
	"github.com/dtnitsch/brasileirao-stats/pkg/mapreduce"
)

// Report is the outcome of running a set of statistics once.
type Report struct {
	GeneratedAt string       `json:"generated_at" yaml:"generated_at"`
	Successful  int          `json:"successful" yaml:"successful"`
	Failed      int          `json:"failed" yaml:"failed"`
	Results     []StatResult `json:"results" yaml:"results"`
}

// StatResult holds the winners of one statistic.
type StatResult struct {
	ID      string            `json:"id" yaml:"id"`
	Label   string            `json:"label" yaml:"label"`
	Status  string            `json:"status" yaml:"status"` // "success" or "error"
	Error   string            `json:"error,omitempty" yaml:"error,omitempty"`
	Winners []mapreduce.Entry `json:"winners,omitempty" yaml:"winners,omitempty"`
	Matches []string          `json:"matches,omitempty" yaml:"matches,omitempty"`
	Total   int               `json:"total,omitempty" yaml:"total,omitempty"`
}

// Build runs every stat against ds. A stat that fails is recorded with its
// error and does not stop the others.
func Build(ds brasileirao.Dataset, stats []brasileirao.Stat, logger *slog.Logger) *Report {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Report{
		GeneratedAt: time.Now().Format(time.RFC3339),
		Results:     make([]StatResult, 0, len(stats)),
	}

	for _, s := range stats {
		sr := StatResult{ID: s.ID, Label: s.Label}
		res, err := s.Run(ds)
		if err != nil {
			logger.Error("statistic failed", "stat", s.ID, "error", err)
			r.Failed++
			sr.Status = "error"
			sr.Error = err.Error()
			r.Results = append(r.Results, sr)
			continue
		}

		r.Successful++
		sr.Status = "success"
		sr.Winners = res.Entries
		sr.Matches = res.Labels
		sr.Total = res.Total
		logger.Info("statistic computed", "stat", s.ID, "winners", len(sr.Winners)+len(sr.Matches))
		r.Results = append(r.Results, sr)
	}

	return r
}
