package seeder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
)

// Store is the database surface the seeder needs.
type Store interface {
	Insert(ctx context.Context, table string, columns []string, values []any) error
	FetchIDs(ctx context.Context, table, column string) ([]int, error)
}

// DedupeMode selects what two generated rows must share to count as the same
// row.
type DedupeMode string

const (
	DedupeTuple DedupeMode = "tuple" // every column
	DedupeKey   DedupeMode = "key"   // the primary key only
)

type Options struct {
	Dedupe   DedupeMode
	DryRun   bool      // generate rows but insert nothing
	Progress io.Writer // per-table progress bars, nil disables them
	Logger   *zap.Logger
}

type Seeder struct {
	store Store
	gen   *DataGenerator
	log   *zap.Logger
	opts  Options
	ids   IDLists
}

func New(store Store, gen *DataGenerator, opts Options) *Seeder {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Dedupe == "" {
		opts.Dedupe = DedupeTuple
	}
	return &Seeder{
		store: store,
		gen:   gen,
		log:   opts.Logger,
		opts:  opts,
		ids:   make(IDLists),
	}
}

// IDs returns the identifiers currently held in the named list.
func (s *Seeder) IDs(list string) []int {
	return s.ids[list]
}

func (s *Seeder) publish(list string, ids []int) {
	s.ids[list] = ids
}

// Run executes the plan's steps in order. Insert failures are counted in the
// summary and do not stop the run; generation failures, preload failures and
// cancellation do. The summary is returned in every case except an invalid
// plan.
func (s *Seeder) Run(ctx context.Context, plan Plan) (*Summary, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	summary := &Summary{Plan: plan.Name, DryRun: s.opts.DryRun, StartedAt: time.Now()}
	defer func() { summary.FinishedAt = time.Now() }()

	s.log.Info("seeding started",
		zap.String("plan", plan.Name),
		zap.Int("steps", len(plan.Steps)),
		zap.String("dedupe", string(s.opts.Dedupe)),
		zap.Bool("dry_run", s.opts.DryRun))

	for _, step := range plan.Steps {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		var ts *TableSummary
		var err error
		if step.Preload {
			ts, err = s.preload(ctx, step)
		} else {
			ts, err = step.gen.generate(ctx, s, step)
		}
		if ts != nil {
			summary.add(ts)
		}
		if err != nil {
			s.log.Error("step failed", zap.String("table", step.Table), zap.Error(err))
			return summary, fmt.Errorf("%s: %w", step.Table, err)
		}

		s.log.Info("step finished",
			zap.String("table", ts.Table),
			zap.String("action", ts.Action),
			zap.Int("generated", ts.Generated),
			zap.Int("fetched", ts.Fetched),
			zap.Int("succeeded", ts.Succeeded),
			zap.Int("failed", ts.Failed),
			zap.Int("skipped", ts.Skipped),
			zap.Duration("duration", ts.Duration))
	}
	return summary, nil
}

func (s *Seeder) preload(ctx context.Context, step Step) (*TableSummary, error) {
	ts := newTableSummary(step)
	if s.store == nil {
		return ts.finish(), errors.New("preload needs a database connection")
	}

	ids, err := s.store.FetchIDs(ctx, step.Table, step.Column)
	if err != nil {
		return ts.finish(), fmt.Errorf("preload %s.%s: %w", step.Table, step.Column, err)
	}
	if len(ids) == 0 {
		s.log.Warn("preloaded id list is empty", zap.String("table", step.Table), zap.String("column", step.Column))
	}
	ts.Fetched = len(ids)
	s.publish(step.Produces, ids)
	return ts.finish(), nil
}

// emit inserts n rows one statement at a time.
func (s *Seeder) emit(ctx context.Context, ts *TableSummary, columns []string, n int, valuesAt func(int) []any) error {
	bar := s.progress(ts.Table, n)

	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			ts.Skipped += n - i
			return err
		}
		ts.record(s.insertRow(ctx, ts.Table, columns, i, valuesAt(i)))
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	if bar != nil {
		_ = bar.Finish()
	}
	return nil
}

func (s *Seeder) insertRow(ctx context.Context, table string, columns []string, i int, values []any) RowResult {
	if s.opts.DryRun || s.store == nil {
		return RowResult{Row: i, Outcome: RowSkipped}
	}
	if err := s.store.Insert(ctx, table, columns, values); err != nil {
		s.log.Debug("insert failed", zap.String("table", table), zap.Int("row", i), zap.Error(err))
		return RowResult{Row: i, Outcome: RowFailed, Err: err}
	}
	return RowResult{Row: i, Outcome: RowSucceeded}
}

func (s *Seeder) progress(table string, n int) *progressbar.ProgressBar {
	if s.opts.Progress == nil || n == 0 {
		return nil
	}
	return progressbar.NewOptions(n,
		progressbar.OptionSetWriter(s.opts.Progress),
		progressbar.OptionSetDescription(fmt.Sprintf("%-22s", table)),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}
