package seeder

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestTableSummaryRecord(t *testing.T) {
	ts := newTableSummary(Step{Table: "Stop"})
	assert.Equal(t, "generate", ts.Action)

	ts.record(RowResult{Row: 0, Outcome: RowSucceeded})
	ts.record(RowResult{Row: 1, Outcome: RowSkipped})
	for i := 0; i < maxRecordedErrors+5; i++ {
		ts.record(RowResult{Row: i, Outcome: RowFailed, Err: errors.New("duplicate")})
		ts.record(RowResult{Row: i, Outcome: RowFailed, Err: errors.New("error " + string(rune('a'+i)))})
	}
	ts.record(RowResult{Row: 99, Outcome: RowFailed})

	assert.Equal(t, 1, ts.Succeeded)
	assert.Equal(t, 1, ts.Skipped)
	assert.Equal(t, 2*(maxRecordedErrors+5)+1, ts.Failed)
	assert.Len(t, ts.Errors, maxRecordedErrors)
	assert.Equal(t, "duplicate", ts.Errors[0])
	assert.Equal(t, "error a", ts.Errors[1])
}

func TestRowOutcomeString(t *testing.T) {
	assert.Equal(t, "succeeded", RowSucceeded.String())
	assert.Equal(t, "failed", RowFailed.String())
	assert.Equal(t, "skipped", RowSkipped.String())
	assert.Equal(t, "RowOutcome(7)", RowOutcome(7).String())
}

func TestSummaryYAML(t *testing.T) {
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s := &Summary{Plan: "populate", StartedAt: start, FinishedAt: start.Add(time.Minute)}
	s.add(&TableSummary{Table: "customer", Action: "preload", Fetched: 4})
	s.add(&TableSummary{Table: "Booking", Action: "generate", Generated: 3, Succeeded: 2, Failed: 1,
		Errors: []string{"Duplicate entry"}, Duration: 1500 * time.Millisecond})

	assert.Equal(t, Totals{Generated: 3, Succeeded: 2, Failed: 1}, s.Totals)
	assert.Nil(t, s.Table("Passenger"))

	var buf bytes.Buffer
	require.NoError(t, s.WriteYAML(&buf))

	var decoded struct {
		Plan   string `yaml:"plan"`
		Tables []struct {
			Table   string   `yaml:"table"`
			Fetched int      `yaml:"fetched"`
			Failed  int      `yaml:"failed"`
			Errors  []string `yaml:"errors"`
		} `yaml:"tables"`
		Totals Totals `yaml:"totals"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "populate", decoded.Plan)
	require.Len(t, decoded.Tables, 2)
	assert.Equal(t, 4, decoded.Tables[0].Fetched)
	assert.Equal(t, []string{"Duplicate entry"}, decoded.Tables[1].Errors)
	assert.Equal(t, s.Totals, decoded.Totals)
	assert.Contains(t, buf.String(), "duration: 1.5s")

	path := filepath.Join(t.TempDir(), "report.yaml")
	require.NoError(t, s.WriteFile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, buf.String(), string(data))
}
