package mapreduce

import (
	"cmp"
	"slices"
)

// sortEntries orders by count (descending), then key, so ties print stably.
func sortEntries(entries []Entry) {
	slices.SortFunc(entries, func(a, b Entry) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Key, b.Key)
	})
}

// Rank returns the top n keys of a tally by count.
// n <= 0 returns every key.
func Rank(tally map[string]int, n int) []Entry {
	ss := make([]Entry, 0, len(tally))
	for k, v := range tally {
		ss = append(ss, Entry{Key: k, Count: v})
	}

	sortEntries(ss)

	// Limit to top N
	if n > 0 && len(ss) > n {
		ss = ss[:n]
	}
	return ss
}
