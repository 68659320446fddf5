package seeder

import (
	"context"
	"fmt"
)

// IDLists holds the identifiers produced so far, keyed by list name.
type IDLists map[string][]int

type row interface {
	comparable
	values() []any
}

// tableDef describes how one table's rows are generated. It becomes a Step
// through step().
type tableDef[T row] struct {
	table    string
	columns  []string
	requires []string
	produces string
	count    int

	id  func(T) int // value published to the produced list
	key func(T) any // primary key, used when deduplicating by key
	row func(g *DataGenerator, ids IDLists) (T, error)

	// keyFromParent marks tables whose primary key is drawn from a parent
	// list. Their rows are always deduplicated by key.
	keyFromParent bool
}

func (d tableDef[T]) step() Step {
	return Step{
		Table:    d.table,
		Requires: d.requires,
		Produces: d.produces,
		Count:    d.count,
		gen:      d,
	}
}

func (d tableDef[T]) generate(ctx context.Context, s *Seeder, step Step) (*TableSummary, error) {
	ts := newTableSummary(step)

	produce := func() (T, error) {
		if err := ctx.Err(); err != nil {
			var zero T
			return zero, err
		}
		return d.row(s.gen, s.ids)
	}

	var rows []T
	var err error
	if d.key != nil && (s.opts.Dedupe == DedupeKey || d.keyFromParent) {
		rows, err = GenerateUniqueBy(step.Count, nil, d.key, produce)
	} else {
		rows, err = GenerateUnique(step.Count, nil, produce)
	}
	if err != nil {
		return ts.finish(), fmt.Errorf("generate %s rows: %w", d.table, err)
	}
	ts.Generated = len(rows)

	if d.produces != "" {
		ids := make([]int, len(rows))
		for i, r := range rows {
			ids[i] = d.id(r)
		}
		s.publish(d.produces, ids)
	}

	err = s.emit(ctx, ts, d.columns, len(rows), func(i int) []any { return rows[i].values() })
	return ts.finish(), err
}

// preload returns a step that reads column of table into the list named
// produces.
func preload(table, column, produces string) Step {
	return Step{
		Table:    table,
		Produces: produces,
		Preload:  true,
		Column:   column,
	}
}

// pick draws one identifier from each named list, in order.
func pick(g *DataGenerator, ids IDLists, lists ...string) ([]int, error) {
	out := make([]int, len(lists))
	for i, list := range lists {
		id, err := g.Pick(ids[list])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", list, err)
		}
		out[i] = id
	}
	return out, nil
}

// uniqueInts draws n values from the shared unique pool of [min, max].
func uniqueInts(g *DataGenerator, n, min, max int) ([]int, error) {
	out := make([]int, n)
	for i := range out {
		v, err := g.UniqueInt(min, max)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
