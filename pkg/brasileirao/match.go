package brasileirao

import (
	"fmt"
	"iter"

	"github.com/dtnitsch/brasileirao-stats/pkg/csvrow"
	"github.com/dtnitsch/brasileirao-stats/pkg/mapreduce"
)

// matchTotal is the combined score of a match row.
func matchTotal(fields []string) (int, error) {
	home, err := csvrow.Int(fields, MatchHomeScoreCol)
	if err != nil {
		return 0, err
	}
	away, err := csvrow.Int(fields, MatchAwayScoreCol)
	if err != nil {
		return 0, err
	}
	return home + away, nil
}

// FormatScore renders a match row as "<home><score> X <away><score>".
func FormatScore(fields []string) string {
	return fmt.Sprintf("%s%s X %s%s",
		csvrow.Unquote(fields[MatchHomeCol]), csvrow.Unquote(fields[MatchHomeScoreCol]),
		csvrow.Unquote(fields[MatchAwayCol]), csvrow.Unquote(fields[MatchAwayScoreCol]))
}

// HighestScoringMatches scans the full match list (first row is the header)
// and formats every match tied at the highest combined score. A score that
// is not an integer aborts the scan with csvrow.ErrMalformedRow.
func HighestScoringMatches(rows iter.Seq[string]) ([]string, int, error) {
	best, total, err := mapreduce.MaxByTotal(rows, true, matchTotal)
	if err != nil {
		return nil, 0, err
	}

	labels := make([]string, 0, len(best))
	for _, fields := range best {
		labels = append(labels, FormatScore(fields))
	}
	return labels, total, nil
}
