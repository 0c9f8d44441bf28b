// Package csvrow splits comma-delimited lines and reads fields by position.
// There is no support for quoted commas or escaping; a quoted field keeps its
// quote characters until a caller strips them with Unquote.
package csvrow

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Separator is the field delimiter used by every dataset.
const Separator = ","

// ErrMalformedRow is returned when a row does not have the field a query asks for,
// or when a numeric field cannot be parsed.
var ErrMalformedRow = errors.New("malformed row")

// RowError describes a malformed row. It wraps ErrMalformedRow.
type RowError struct {
	Line   int    // 1-based position of the row in the raw stream, 0 if unknown
	Index  int    // requested column
	Fields int    // number of fields the row actually has
	Reason string // optional detail (e.g. a strconv error)
}

func (e *RowError) Error() string {
	msg := fmt.Sprintf("malformed row: column %d requested but row has %d fields", e.Index, e.Fields)
	if e.Reason != "" {
		msg = fmt.Sprintf("malformed row: column %d: %s", e.Index, e.Reason)
	}
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	return msg
}

func (e *RowError) Unwrap() error {
	return ErrMalformedRow
}

// Split splits a raw line into its fields.
func Split(line string) []string {
	return strings.Split(line, Separator)
}

// Field returns the field at idx, or a *RowError if the row is too short.
func Field(fields []string, idx int) (string, error) {
	if idx < 0 || idx >= len(fields) {
		return "", &RowError{Index: idx, Fields: len(fields)}
	}
	return fields[idx], nil
}

// Unquote trims whitespace and strips every literal double quote.
func Unquote(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), `"`, "")
}

// Int parses the field at idx as an integer after stripping quotes.
func Int(fields []string, idx int) (int, error) {
	raw, err := Field(fields, idx)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(Unquote(raw))
	if err != nil {
		return 0, &RowError{Index: idx, Fields: len(fields), Reason: err.Error()}
	}
	return n, nil
}

// KeyFunc maps a split row to its grouping key.
type KeyFunc func(fields []string) (string, error)

// Column extracts the field at idx with surrounding whitespace trimmed.
func Column(idx int) KeyFunc {
	return func(fields []string) (string, error) {
		v, err := Field(fields, idx)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(v), nil
	}
}

// UnquotedColumn is like Column but also strips double quotes, for datasets
// that quote every field.
func UnquotedColumn(idx int) KeyFunc {
	return func(fields []string) (string, error) {
		v, err := Field(fields, idx)
		if err != nil {
			return "", err
		}
		return Unquote(v), nil
	}
}
