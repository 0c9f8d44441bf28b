// Package brasileirao binds the generic grouping queries to the Brazilian
// championship datasets: which file, which column, which filter.
package brasileirao

import (
	"fmt"
	"path/filepath"

	"github.com/dtnitsch/brasileirao-stats/pkg/csvrow"
	"github.com/dtnitsch/brasileirao-stats/pkg/lines"
	"github.com/dtnitsch/brasileirao-stats/pkg/mapreduce"
)

// Dataset locates the three CSV files and how to read them.
type Dataset struct {
	Goals   string
	Cards   string
	Matches string
	Options []lines.Option
}

// NewDataset points at the default file names inside dir.
func NewDataset(dir string, opts ...lines.Option) Dataset {
	return Dataset{
		Goals:   filepath.Join(dir, GoalsFile),
		Cards:   filepath.Join(dir, CardsFile),
		Matches: filepath.Join(dir, MatchesFile),
		Options: opts,
	}
}

func (d Dataset) open(path string) *lines.Source {
	return lines.Open(path, d.Options...)
}

// Result is what a statistic produced. Entries carry the tied keys and their
// count; Labels is set instead when the winners are formatted rows.
type Result struct {
	Entries []mapreduce.Entry
	Labels  []string
	Total   int
}

// Stat is one named statistic over a Dataset.
type Stat struct {
	ID    string
	Label string
	Run   func(Dataset) (Result, error)
}

// Catalogue lists every statistic in report order.
func Catalogue() []Stat {
	return []Stat{
		{ID: "top-scorers", Label: "Player with most goals", Run: TopScorers},
		{ID: "penalty-scorers", Label: "Player with most penalty goals", Run: TopPenaltyScorers},
		{ID: "own-goals", Label: "Player with most own goals", Run: TopOwnGoalScorers},
		{ID: "yellow-cards", Label: "Player with most yellow cards", Run: MostYellowCards},
		{ID: "red-cards", Label: "Player with most red cards", Run: MostRedCards},
		{ID: "highest-scoring-match", Label: "Match with most goals", Run: HighestScoringMatch},
		{ID: "wins-2008", Label: "Team with most wins in 2008", Run: MostWins2008},
		{ID: "least-visited-state", Label: "State with fewest matches (2003-2022)", Run: LeastVisitedState},
	}
}

// Lookup finds a statistic by ID.
func Lookup(id string) (Stat, error) {
	for _, s := range Catalogue() {
		if s.ID == id {
			return s, nil
		}
	}
	return Stat{}, fmt.Errorf("unknown statistic %q", id)
}

// topKeys runs one grouped query over path. A file that stops reading
// partway fails the query instead of returning a partial tally.
func topKeys(d Dataset, path string, filter csvrow.Filter, key csvrow.KeyFunc, mode mapreduce.Mode) (Result, error) {
	src := d.open(path)
	e, err := mapreduce.TopKeysByCount(src.Lines(), filter, key, mode)
	if err == nil {
		err = src.Err()
	}
	if err != nil {
		return Result{}, err
	}
	return Result{Entries: e}, nil
}

func goalScorers(d Dataset, filter csvrow.Filter) (Result, error) {
	return topKeys(d, d.Goals, filter, csvrow.UnquotedColumn(GoalsPlayerCol), mapreduce.Max)
}

func cardHolders(d Dataset, color string) (Result, error) {
	return topKeys(d, d.Cards, csvrow.Contains(color), csvrow.UnquotedColumn(CardsPlayerCol), mapreduce.Max)
}

// TopScorers returns the players with the most goals.
func TopScorers(d Dataset) (Result, error) {
	return goalScorers(d, csvrow.All())
}

// TopPenaltyScorers returns the players with the most penalty goals.
func TopPenaltyScorers(d Dataset) (Result, error) {
	return goalScorers(d, csvrow.Contains(PenaltyMarker))
}

// TopOwnGoalScorers returns the players with the most own goals.
func TopOwnGoalScorers(d Dataset) (Result, error) {
	return goalScorers(d, csvrow.Contains(OwnGoalMarker))
}

// MostYellowCards returns the players booked with the most yellow cards.
func MostYellowCards(d Dataset) (Result, error) {
	return cardHolders(d, YellowCard)
}

// MostRedCards returns the players sent off with the most red cards.
func MostRedCards(d Dataset) (Result, error) {
	return cardHolders(d, RedCard)
}

// MostWins2008 returns the teams that won the most matches played in 2008.
// Draws are recorded with "-" as the winner and are not counted.
func MostWins2008(d Dataset) (Result, error) {
	filter := csvrow.And(
		csvrow.YearBetween(MatchDateCol, 2008, 2008),
		csvrow.FieldNotEqual(MatchWinnerCol, NoWinner),
	)
	return topKeys(d, d.Matches, filter, csvrow.UnquotedColumn(MatchWinnerCol), mapreduce.Max)
}

// LeastVisitedState returns the home states that hosted the fewest matches
// between 2003 and 2022.
func LeastVisitedState(d Dataset) (Result, error) {
	filter := csvrow.YearBetween(MatchDateCol, 2003, 2022)
	return topKeys(d, d.Matches, filter, csvrow.UnquotedColumn(MatchHomeStateCol), mapreduce.Min)
}

// HighestScoringMatch returns every match sharing the highest combined score.
func HighestScoringMatch(d Dataset) (Result, error) {
	src := d.open(d.Matches)
	labels, total, err := HighestScoringMatches(src.Lines())
	if err == nil {
		err = src.Err()
	}
	if err != nil {
		return Result{}, err
	}
	return Result{Labels: labels, Total: total}, nil
}
