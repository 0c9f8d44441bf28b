package query

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dtnitsch/brasileirao-stats/internal/common"
	"github.com/dtnitsch/brasileirao-stats/pkg/csvrow"
	"github.com/dtnitsch/brasileirao-stats/pkg/lines"
	"github.com/dtnitsch/brasileirao-stats/pkg/mapreduce"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// Result is the printable outcome of an ad hoc query.
type Result struct {
	File     string            `json:"file" yaml:"file"`
	Columns  []int             `json:"columns" yaml:"columns"`
	Contains []string          `json:"contains,omitempty" yaml:"contains,omitempty"`
	Mode     string            `json:"mode" yaml:"mode"`
	Limit    int               `json:"limit,omitempty" yaml:"limit,omitempty"`
	Entries  []mapreduce.Entry `json:"entries" yaml:"entries"`
}

// QueryAction groups any file by one or more columns and prints the keys at
// the max/min count, or a top-N leaderboard when --limit is set.
func QueryAction(c *cli.Context) error {
	logger := common.NewLogger(c)
	enc, err := lines.ParseEncoding(c.String("encoding"))
	if err != nil {
		return fmt.Errorf("invalid --encoding: %w", err)
	}
	mode, err := mapreduce.ParseMode(c.String("mode"))
	if err != nil {
		return err
	}

	file := c.String("file")
	columns := c.IntSlice("column")
	contains := c.StringSlice("contains")
	limit := c.Int("limit")

	filters := make([]csvrow.Filter, 0, len(contains))
	for _, s := range contains {
		filters = append(filters, csvrow.Contains(s))
	}
	filter := csvrow.And(filters...)

	keyFor := csvrow.Column
	if c.Bool("unquote") {
		keyFor = csvrow.UnquotedColumn
	}

	// Each column is its own pass over the file; tallies are merged afterwards.
	tallies := make([]map[string]int, 0, len(columns))
	for _, col := range columns {
		src := lines.Open(file, lines.WithLogger(logger), lines.WithEncoding(enc))
		tally, err := mapreduce.Map(src.Lines(), filter, keyFor(col))
		if err == nil {
			err = src.Err()
		}
		if err != nil {
			return fmt.Errorf("column %d: %w", col, err)
		}
		tallies = append(tallies, tally)
	}
	tally := mapreduce.Reduce(tallies)

	res := Result{
		File:     file,
		Columns:  columns,
		Contains: contains,
		Mode:     mode.String(),
		Limit:    limit,
	}
	if limit > 0 {
		res.Entries = mapreduce.Rank(tally, limit)
	} else {
		res.Entries = mapreduce.Extremum(tally, mode)
	}
	logger.Info("query finished", "file", file, "keys", len(tally), "entries", len(res.Entries))

	return write(c, res)
}

func write(c *cli.Context, res Result) error {
	w := c.App.Writer
	switch strings.ToLower(c.String("format")) {
	case "", "text":
		if len(res.Entries) == 0 {
			fmt.Fprintln(w, "(no data)")
			return nil
		}
		for i, e := range res.Entries {
			if res.Limit > 0 {
				fmt.Fprintf(w, "%d. %s: %d\n", i+1, e.Key, e.Count)
			} else {
				fmt.Fprintf(w, "%s: %d\n", e.Key, e.Count)
			}
		}
		return nil
	case "yaml":
		data, err := yaml.Marshal(res)
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		_, err = w.Write(data)
		return err
	case "json":
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	default:
		return fmt.Errorf("unknown format %q (want text, yaml or json)", c.String("format"))
	}
}
