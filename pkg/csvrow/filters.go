package csvrow

import (
	"strconv"
	"strings"
)

// Filter is a predicate over a raw, unsplit line.
type Filter func(line string) bool

// All accepts every line.
func All() Filter {
	return func(string) bool { return true }
}

// Contains accepts lines containing substr.
func Contains(substr string) Filter {
	return func(line string) bool {
		return strings.Contains(line, substr)
	}
}

// And accepts a line only if every filter accepts it. No filters means accept all.
func And(filters ...Filter) Filter {
	return func(line string) bool {
		for _, f := range filters {
			if !f(line) {
				return false
			}
		}
		return true
	}
}

// Not inverts a filter.
func Not(f Filter) Filter {
	return func(line string) bool {
		return !f(line)
	}
}

// FieldNotEqual accepts lines whose field idx, unquoted, differs from value.
// Rows too short to have the field are let through so the key extractor
// reports them as malformed instead of silently dropping them.
func FieldNotEqual(idx int, value string) Filter {
	return func(line string) bool {
		fields := Split(line)
		if idx >= len(fields) {
			return true
		}
		return Unquote(fields[idx]) != value
	}
}

// YearBetween accepts lines whose date at field idx (dd/mm/yyyy or yyyy-mm-dd)
// falls in [from, to]. A header row, or any date without a numeric year, is
// rejected. Short rows pass through, as in FieldNotEqual.
func YearBetween(idx, from, to int) Filter {
	return func(line string) bool {
		fields := Split(line)
		if idx >= len(fields) {
			return true
		}
		year, ok := yearOf(Unquote(fields[idx]))
		if !ok {
			return false
		}
		return year >= from && year <= to
	}
}

func yearOf(date string) (int, bool) {
	if i := strings.LastIndex(date, "/"); i >= 0 {
		date = date[i+1:]
	} else if i := strings.Index(date, "-"); i == 4 {
		date = date[:i]
	}
	year, err := strconv.Atoi(date)
	if err != nil {
		return 0, false
	}
	return year, true
}
