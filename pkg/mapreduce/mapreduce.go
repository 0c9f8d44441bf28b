package mapreduce

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/dtnitsch/brasileirao-stats/pkg/csvrow"
)

// Mode selects which end of the tally a query keeps.
type Mode int

const (
	Max Mode = iota
	Min
)

func (m Mode) String() string {
	if m == Min {
		return "min"
	}
	return "max"
}

// ParseMode resolves "max" or "min" (case-insensitive).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "max":
		return Max, nil
	case "min":
		return Min, nil
	default:
		return Max, fmt.Errorf("unknown mode %q (want max or min)", s)
	}
}

// Entry is one key of a tally together with its count.
type Entry struct {
	Key   string `json:"key" yaml:"key"`
	Count int    `json:"count" yaml:"count"`
}

// Map counts, per key, the lines that pass filter. rows is consumed once.
// A row the key extractor cannot handle aborts the whole count.
func Map(rows iter.Seq[string], filter csvrow.Filter, key csvrow.KeyFunc) (map[string]int, error) {
	tally := make(map[string]int)
	lineNo := 0
	for line := range rows {
		lineNo++
		if !filter(line) {
			continue
		}
		k, err := key(csvrow.Split(line))
		if err != nil {
			return nil, withLine(err, lineNo)
		}
		tally[k]++
	}
	return tally, nil
}

// Reduce aggregates a slice of tallies into a single map.
func Reduce(intermediate []map[string]int) map[string]int {
	finalResults := make(map[string]int)

	for _, counts := range intermediate {
		for key, count := range counts {
			finalResults[key] += count
		}
	}

	return finalResults
}

// Extremum returns every key whose count equals the max (or min) count.
// An empty tally yields an empty result.
func Extremum(tally map[string]int, mode Mode) []Entry {
	if len(tally) == 0 {
		return []Entry{}
	}

	first := true
	best := 0
	for _, c := range tally {
		if first || (mode == Max && c > best) || (mode == Min && c < best) {
			best = c
			first = false
		}
	}

	result := make([]Entry, 0, 1)
	for k, c := range tally {
		if c == best {
			result = append(result, Entry{Key: k, Count: c})
		}
	}
	sortEntries(result)
	return result
}

// TopKeysByCount filters rows, groups them by key and returns all keys tied
// at the extremum count.
func TopKeysByCount(rows iter.Seq[string], filter csvrow.Filter, key csvrow.KeyFunc, mode Mode) ([]Entry, error) {
	tally, err := Map(rows, filter, key)
	if err != nil {
		return nil, err
	}
	return Extremum(tally, mode), nil
}

// MaxByTotal scores every row with total and returns all split rows sharing
// the highest score, in input order, along with that score.
func MaxByTotal(rows iter.Seq[string], skipHeader bool, total func(fields []string) (int, error)) ([][]string, int, error) {
	var (
		best    [][]string
		bestSum int
		lineNo  int
	)
	for line := range rows {
		lineNo++
		if skipHeader && lineNo == 1 {
			continue
		}
		fields := csvrow.Split(line)
		sum, err := total(fields)
		if err != nil {
			return nil, 0, withLine(err, lineNo)
		}
		switch {
		case len(best) == 0 || sum > bestSum:
			best = [][]string{fields}
			bestSum = sum
		case sum == bestSum:
			best = append(best, fields)
		}
	}
	return best, bestSum, nil
}

func withLine(err error, lineNo int) error {
	var rowErr *csvrow.RowError
	if errors.As(err, &rowErr) && rowErr.Line == 0 {
		rowErr.Line = lineNo
	}
	return err
}
