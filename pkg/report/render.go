package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dtnitsch/brasileirao-stats/pkg/storage"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// WriteText prints the report as a human-readable list.
func WriteText(w io.Writer, r *Report) error {
	for _, sr := range r.Results {
		if _, err := fmt.Fprintf(w, "%s:\n", sr.Label); err != nil {
			return err
		}
		if err := writeWinners(w, sr); err != nil {
			return err
		}
	}
	return nil
}

func writeWinners(w io.Writer, sr StatResult) error {
	var lines []string
	switch {
	case sr.Status == "error":
		lines = append(lines, "error: "+sr.Error)
	case len(sr.Matches) > 0:
		for _, m := range sr.Matches {
			lines = append(lines, fmt.Sprintf("%s (%d goals)", m, sr.Total))
		}
	case len(sr.Winners) > 0:
		for _, e := range sr.Winners {
			lines = append(lines, fmt.Sprintf("%s: %d", e.Key, e.Count))
		}
	default:
		lines = append(lines, "(no data)")
	}

	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "  %s\n", l); err != nil {
			return err
		}
	}
	return nil
}

// Marshal encodes the report in the given format.
func Marshal(r *Report, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "", FormatText:
		var sb strings.Builder
		if err := WriteText(&sb, r); err != nil {
			return nil, err
		}
		return []byte(sb.String()), nil
	case FormatYAML:
		data, err := yaml.Marshal(r)
		if err != nil {
			return nil, fmt.Errorf("error marshalling report: %w", err)
		}
		return data, nil
	case FormatJSON:
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("error marshalling report: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unknown format %q (want text, yaml or json)", format)
	}
}

// Save writes the report to path in the given format.
func Save(r *Report, path, format string, s *storage.Storage) error {
	data, err := Marshal(r, format)
	if err != nil {
		return err
	}
	if err := s.SaveFile(path, data); err != nil {
		return fmt.Errorf("error saving report: %w", err)
	}
	return nil
}
