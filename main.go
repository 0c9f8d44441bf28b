package main

import (
	"log/slog"
	"os"

	"github.com/dtnitsch/brasileirao-stats/internal/history"
	"github.com/dtnitsch/brasileirao-stats/internal/query"
	"github.com/dtnitsch/brasileirao-stats/internal/report"
	"github.com/dtnitsch/brasileirao-stats/models"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "brasileirao-stats",
		Usage: "descriptive statistics over the Brazilian championship CSV datasets",
		// Report flags are repeated here for the bare default action.
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "data-dir",
				Value:   models.DefaultDataDir,
				Usage:   "directory holding the dataset CSV files",
				EnvVars: []string{"BRASILEIRAO_DATA_DIR"},
			},
			&cli.StringFlag{
				Name:  "goals",
				Usage: "goals file, relative to --data-dir unless absolute",
			},
			&cli.StringFlag{
				Name:  "cards",
				Usage: "cards file, relative to --data-dir unless absolute",
			},
			&cli.StringFlag{
				Name:  "matches",
				Usage: "full match list, relative to --data-dir unless absolute",
			},
			&cli.StringFlag{
				Name:  "encoding",
				Value: "utf-8",
				Usage: "dataset encoding: utf-8 or latin1",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "only log errors",
			},
		}, reportFlags()...),
		Action: report.ReportAction,
		Commands: []*cli.Command{
			{
				Name:   "report",
				Usage:  "compute every statistic and print the winners",
				Flags:  reportFlags(),
				Action: report.ReportAction,
			},
			{
				Name:   "match",
				Usage:  "print the match(es) with the most combined goals",
				Action: report.MatchAction,
			},
			{
				Name:  "query",
				Usage: "group any CSV file by column and print the keys with the max/min count",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Usage:    "CSV file to read",
						Required: true,
					},
					&cli.IntSliceFlag{
						Name:     "column",
						Usage:    "0-based column to group by (repeatable; counts are summed across columns)",
						Required: true,
					},
					&cli.StringSliceFlag{
						Name:  "contains",
						Usage: "only count lines containing this text (repeatable, all must match)",
					},
					&cli.StringFlag{
						Name:  "mode",
						Value: "max",
						Usage: "max or min",
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "print a top-N leaderboard instead of the tied extremum",
					},
					&cli.BoolFlag{
						Name:  "unquote",
						Value: true,
						Usage: "strip double quotes from keys",
					},
					formatFlag(),
				},
				Action: query.QueryAction,
			},
			{
				Name:  "history",
				Usage: "inspect recorded report runs",
				Subcommands: []*cli.Command{
					{
						Name:  "list",
						Usage: "list recorded runs, most recent first",
						Flags: []cli.Flag{
							&cli.IntFlag{Name: "limit", Value: 20, Usage: "maximum runs to show"},
							dbFlag(),
						},
						Action: history.ListAction,
					},
					{
						Name:      "show",
						Usage:     "show the winners of a run (latest if no ID)",
						ArgsUsage: "[run-id]",
						Flags:     []cli.Flag{dbFlag()},
						Action:    history.ShowAction,
					},
				},
			},
		},
	}
}

func reportFlags() []cli.Flag {
	return []cli.Flag{
		formatFlag(),
		&cli.StringSliceFlag{
			Name:  "stat",
			Usage: "only compute these statistics (repeatable): top-scorers, penalty-scorers, own-goals, yellow-cards, red-cards, highest-scoring-match, wins-2008, least-visited-state",
		},
		&cli.StringFlag{
			Name:  "out",
			Usage: "write the report to this file instead of stdout",
		},
		&cli.BoolFlag{
			Name:  "record",
			Usage: "store the results in the run history database",
		},
		dbFlag(),
	}
}

func dbFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "db",
		Usage:   "run history database (default: next to the binary)",
		EnvVars: []string{"BRASILEIRAO_DB"},
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "format",
		Value: "text",
		Usage: "output format: text, yaml or json",
	}
}
