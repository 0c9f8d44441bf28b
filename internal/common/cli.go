package common

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dtnitsch/brasileirao-stats/models"
	"github.com/dtnitsch/brasileirao-stats/pkg/lines"
	"github.com/urfave/cli/v2"
)

// NewLogger builds the JSON stderr logger every action uses.
func NewLogger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// LoadConfig resolves the global dataset flags.
func LoadConfig(c *cli.Context) (models.Config, error) {
	enc, err := lines.ParseEncoding(c.String("encoding"))
	if err != nil {
		return models.Config{}, fmt.Errorf("invalid --encoding: %w", err)
	}
	return models.Config{
		DataDir:     c.String("data-dir"),
		GoalsFile:   c.String("goals"),
		CardsFile:   c.String("cards"),
		MatchesFile: c.String("matches"),
		Encoding:    enc,
	}, nil
}
