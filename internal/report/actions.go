package report

import (
	"fmt"

	"github.com/dtnitsch/brasileirao-stats/internal/common"
	"github.com/dtnitsch/brasileirao-stats/pkg/brasileirao"
	dbpkg "github.com/dtnitsch/brasileirao-stats/pkg/db"
	"github.com/dtnitsch/brasileirao-stats/pkg/lines"
	"github.com/dtnitsch/brasileirao-stats/pkg/report"
	"github.com/dtnitsch/brasileirao-stats/pkg/storage"
	"github.com/urfave/cli/v2"
)

// ReportAction computes every statistic (or the ones named by --stat) and
// prints them.
func ReportAction(c *cli.Context) error {
	logger := common.NewLogger(c)
	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}

	stats := brasileirao.Catalogue()
	if ids := c.StringSlice("stat"); len(ids) > 0 {
		stats = stats[:0]
		for _, id := range ids {
			s, err := brasileirao.Lookup(id)
			if err != nil {
				return err
			}
			stats = append(stats, s)
		}
	}

	ds := cfg.Dataset(lines.WithLogger(logger))
	s := &storage.Storage{}
	for _, path := range []string{ds.Goals, ds.Cards, ds.Matches} {
		if !s.HasFile(path) {
			logger.Warn("dataset file missing, its statistics will be empty", "path", path)
		}
	}

	r := report.Build(ds, stats, logger)

	format := c.String("format")
	if out := c.String("out"); out != "" {
		if err := report.Save(r, out, format, s); err != nil {
			return err
		}
		if fs, err := s.GetFileStats(out); err == nil {
			logger.Info("report saved", "path", out, "size_bytes", fs.SizeBytes)
		}
	} else {
		data, err := report.Marshal(r, format)
		if err != nil {
			return err
		}
		if _, err := c.App.Writer.Write(data); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	if c.Bool("record") {
		runID, err := recordRun(c.String("db"), cfg.DataDir, r)
		if err != nil {
			return err
		}
		logger.Info("run recorded", "run_id", runID)
	}

	return nil
}

// MatchAction prints the match(es) with the most combined goals.
func MatchAction(c *cli.Context) error {
	logger := common.NewLogger(c)
	cfg, err := common.LoadConfig(c)
	if err != nil {
		return err
	}
	ds := cfg.Dataset(lines.WithLogger(logger))

	res, err := brasileirao.HighestScoringMatch(ds)
	if err != nil {
		return fmt.Errorf("highest scoring match: %w", err)
	}
	if len(res.Labels) == 0 {
		fmt.Fprintln(c.App.Writer, "(no data)")
		return nil
	}
	for _, l := range res.Labels {
		fmt.Fprintf(c.App.Writer, "%s (%d goals)\n", l, res.Total)
	}
	return nil
}

func recordRun(dbPath, dataDir string, r *report.Report) (int64, error) {
	database, err := dbpkg.Open(dbPath)
	if err != nil {
		return 0, fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	runID, err := database.CreateRun(dataDir, len(r.Results))
	if err != nil {
		return 0, err
	}

	for _, sr := range r.Results {
		for _, row := range runResults(sr) {
			if err := database.InsertRunResult(runID, row); err != nil {
				return 0, err
			}
		}
	}

	if err := database.UpdateRunStats(runID, r.Successful, r.Failed); err != nil {
		return 0, err
	}
	return runID, nil
}

// runResults flattens one statistic into history rows; a statistic without
// winners still gets one row so it shows up in 'history show'.
func runResults(sr report.StatResult) []dbpkg.RunResult {
	base := dbpkg.RunResult{StatID: sr.ID, Label: sr.Label, Status: sr.Status, ErrorMessage: sr.Error}

	var rows []dbpkg.RunResult
	for _, e := range sr.Winners {
		row := base
		row.Key, row.Count = e.Key, e.Count
		rows = append(rows, row)
	}
	for _, m := range sr.Matches {
		row := base
		row.Key, row.Count = m, sr.Total
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		rows = append(rows, base)
	}
	return rows
}
