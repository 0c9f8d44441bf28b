package history

import (
	"fmt"
	"strings"

	dbpkg "github.com/dtnitsch/brasileirao-stats/pkg/db"
	"github.com/urfave/cli/v2"
)

// ListAction prints the recorded runs, most recent first.
func ListAction(c *cli.Context) error {
	database, err := dbpkg.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	runs, err := database.ListRuns(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	w := c.App.Writer
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs found")
		return nil
	}

	fmt.Fprintf(w, "%-6s %-20s %-6s %-8s %-8s %-30s\n",
		"ID", "Created", "Stats", "Success", "Failed", "Data Dir")
	fmt.Fprintln(w, strings.Repeat("-", 84))

	for _, r := range runs {
		fmt.Fprintf(w, "%-6d %-20s %-6d %-8d %-8d %-30s\n",
			r.RunID,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.StatCount,
			r.SuccessCount,
			r.FailedCount,
			r.DataDir,
		)
	}

	fmt.Fprintf(w, "\nTotal: %d runs\n", len(runs))
	fmt.Fprintf(w, "\nTip: Use 'brasileirao-stats history show <id>' to see details\n")

	return nil
}

// ShowAction prints the winners recorded for one run (latest if no ID given).
func ShowAction(c *cli.Context) error {
	database, err := dbpkg.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	runID, err := GetRunIDOrLatest(c, database)
	if err != nil {
		return err
	}

	run, err := database.GetRunByID(runID)
	if err != nil {
		return fmt.Errorf("failed to get run: %w", err)
	}

	results, err := database.GetRunResults(runID)
	if err != nil {
		return fmt.Errorf("failed to get run results: %w", err)
	}

	w := c.App.Writer
	fmt.Fprintf(w, "Run %d\n", run.RunID)
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintf(w, "Created:     %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "Data Dir:    %s\n", run.DataDir)
	fmt.Fprintf(w, "Statistics:  %d total (%d success, %d failed)\n",
		run.StatCount, run.SuccessCount, run.FailedCount)

	lastStat := ""
	for _, r := range results {
		if r.StatID != lastStat {
			fmt.Fprintf(w, "\n%s:\n", r.Label)
			lastStat = r.StatID
		}
		switch {
		case r.Status == "error":
			fmt.Fprintf(w, "  error: %s\n", r.ErrorMessage)
		case r.Key == "":
			fmt.Fprintln(w, "  (no data)")
		case r.Count > 0:
			fmt.Fprintf(w, "  %s: %d\n", r.Key, r.Count)
		default:
			fmt.Fprintf(w, "  %s\n", r.Key)
		}
	}

	return nil
}
