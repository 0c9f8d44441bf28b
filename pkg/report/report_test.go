package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/dtnitsch/brasileirao-stats/pkg/brasileirao"
	"github.com/dtnitsch/brasileirao-stats/pkg/mapreduce"
	"github.com/dtnitsch/brasileirao-stats/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func fixedStats() []brasileirao.Stat {
	return []brasileirao.Stat{
		{
			ID:    "top-scorers",
			Label: "Player with most goals",
			Run: func(brasileirao.Dataset) (brasileirao.Result, error) {
				return brasileirao.Result{Entries: []mapreduce.Entry{{Key: "Fred", Count: 158}, {Key: "Gabriel", Count: 158}}}, nil
			},
		},
		{
			ID:    "highest-scoring-match",
			Label: "Match with most goals",
			Run: func(brasileirao.Dataset) (brasileirao.Result, error) {
				return brasileirao.Result{}, errors.New("line 7: malformed row")
			},
		},
		{
			ID:    "red-cards",
			Label: "Player with most red cards",
			Run: func(brasileirao.Dataset) (brasileirao.Result, error) {
				return brasileirao.Result{Entries: []mapreduce.Entry{}}, nil
			},
		},
		{
			ID:    "match",
			Label: "Match",
			Run: func(brasileirao.Dataset) (brasileirao.Result, error) {
				return brasileirao.Result{Labels: []string{"A2 X B3"}, Total: 5}, nil
			},
		},
	}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestBuild(t *testing.T) {
	r := Build(brasileirao.Dataset{}, fixedStats(), quietLogger())

	assert.Equal(t, 3, r.Successful)
	assert.Equal(t, 1, r.Failed)
	require.Len(t, r.Results, 4)

	assert.Equal(t, "success", r.Results[0].Status)
	assert.Len(t, r.Results[0].Winners, 2)

	assert.Equal(t, "error", r.Results[1].Status)
	assert.Equal(t, "line 7: malformed row", r.Results[1].Error)

	assert.Equal(t, "success", r.Results[2].Status)
	assert.Empty(t, r.Results[2].Winners)

	assert.Equal(t, []string{"A2 X B3"}, r.Results[3].Matches)
	assert.Equal(t, 5, r.Results[3].Total)
}

func TestWriteText(t *testing.T) {
	r := Build(brasileirao.Dataset{}, fixedStats(), quietLogger())

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, r))

	want := `Player with most goals:
  Fred: 158
  Gabriel: 158
Match with most goals:
  error: line 7: malformed row
Player with most red cards:
  (no data)
Match:
  A2 X B3 (5 goals)
`
	assert.Equal(t, want, buf.String())
}

func TestMarshal(t *testing.T) {
	r := Build(brasileirao.Dataset{}, fixedStats(), quietLogger())

	t.Run("yaml", func(t *testing.T) {
		data, err := Marshal(r, FormatYAML)
		require.NoError(t, err)
		var back Report
		require.NoError(t, yaml.Unmarshal(data, &back))
		assert.Equal(t, r.Failed, back.Failed)
		assert.Equal(t, "Fred", back.Results[0].Winners[0].Key)
	})

	t.Run("json", func(t *testing.T) {
		data, err := Marshal(r, FormatJSON)
		require.NoError(t, err)
		var back Report
		require.NoError(t, json.Unmarshal(data, &back))
		assert.Equal(t, r.Successful, back.Successful)
		assert.Equal(t, "A2 X B3", back.Results[3].Matches[0])
	})

	t.Run("text is the default", func(t *testing.T) {
		data, err := Marshal(r, "")
		require.NoError(t, err)
		assert.Contains(t, string(data), "Fred: 158")
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := Marshal(r, "xml")
		assert.Error(t, err)
	})
}

func TestSave(t *testing.T) {
	r := Build(brasileirao.Dataset{}, fixedStats(), quietLogger())
	path := filepath.Join(t.TempDir(), "out", "report.yaml")

	require.NoError(t, Save(r, path, FormatYAML, &storage.Storage{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "generated_at:")
	assert.Contains(t, string(data), "key: Fred")
}
