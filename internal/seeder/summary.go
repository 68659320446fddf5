package seeder

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// maxRecordedErrors caps the distinct error messages kept per table.
const maxRecordedErrors = 10

type RowOutcome int

const (
	RowSucceeded RowOutcome = iota
	RowFailed
	RowSkipped
)

func (o RowOutcome) String() string {
	switch o {
	case RowSucceeded:
		return "succeeded"
	case RowFailed:
		return "failed"
	case RowSkipped:
		return "skipped"
	default:
		return fmt.Sprintf("RowOutcome(%d)", int(o))
	}
}

// RowResult is the outcome of inserting one generated row.
type RowResult struct {
	Row     int
	Outcome RowOutcome
	Err     error
}

type TableSummary struct {
	Table     string        `yaml:"table"`
	Action    string        `yaml:"action"`
	Generated int           `yaml:"generated"`
	Fetched   int           `yaml:"fetched,omitempty"`
	Succeeded int           `yaml:"succeeded"`
	Failed    int           `yaml:"failed"`
	Skipped   int           `yaml:"skipped"`
	Errors    []string      `yaml:"errors,omitempty"`
	Duration  time.Duration `yaml:"duration"`

	started time.Time
	seen    map[string]bool
}

func newTableSummary(step Step) *TableSummary {
	return &TableSummary{
		Table:   step.Table,
		Action:  step.kind(),
		started: time.Now(),
	}
}

func (t *TableSummary) record(res RowResult) {
	switch res.Outcome {
	case RowSucceeded:
		t.Succeeded++
	case RowSkipped:
		t.Skipped++
	case RowFailed:
		t.Failed++
		if res.Err == nil || len(t.Errors) >= maxRecordedErrors {
			return
		}
		msg := res.Err.Error()
		if t.seen == nil {
			t.seen = make(map[string]bool)
		}
		if !t.seen[msg] {
			t.seen[msg] = true
			t.Errors = append(t.Errors, msg)
		}
	}
}

func (t *TableSummary) finish() *TableSummary {
	t.Duration = time.Since(t.started).Round(time.Millisecond)
	return t
}

type Totals struct {
	Generated int `yaml:"generated"`
	Succeeded int `yaml:"succeeded"`
	Failed    int `yaml:"failed"`
	Skipped   int `yaml:"skipped"`
}

// Summary reports what a run did, table by table.
type Summary struct {
	Plan       string          `yaml:"plan"`
	DryRun     bool            `yaml:"dry_run"`
	StartedAt  time.Time       `yaml:"started_at"`
	FinishedAt time.Time       `yaml:"finished_at"`
	Tables     []*TableSummary `yaml:"tables"`
	Totals     Totals          `yaml:"totals"`
}

func (s *Summary) add(t *TableSummary) {
	s.Tables = append(s.Tables, t)
	s.Totals.Generated += t.Generated
	s.Totals.Succeeded += t.Succeeded
	s.Totals.Failed += t.Failed
	s.Totals.Skipped += t.Skipped
}

// Table returns the summary of the named table, or nil.
func (s *Summary) Table(name string) *TableSummary {
	for _, t := range s.Tables {
		if t.Table == name {
			return t
		}
	}
	return nil
}

func (s *Summary) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}
	return enc.Close()
}

func (s *Summary) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report %s: %w", path, err)
	}
	if err := s.WriteYAML(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
