package seeder

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPlan is returned when a plan's declared order cannot be run.
var ErrInvalidPlan = errors.New("invalid generation plan")

// generator produces and inserts the rows of one table step.
type generator interface {
	generate(ctx context.Context, s *Seeder, step Step) (*TableSummary, error)
}

// Step is one entry of a generation plan: either a table whose rows are
// generated and inserted, or a preload that reads an existing ID column.
type Step struct {
	Table    string
	Requires []string // ID lists read while generating rows
	Produces string   // ID list written by this step, empty for join tables
	Count    int

	Preload bool
	Column  string // ID column read by a preload step

	gen generator
}

func (s Step) kind() string {
	if s.Preload {
		return "preload"
	}
	return "generate"
}

// Plan is an ordered list of steps. Steps run in the declared order.
type Plan struct {
	Name  string
	Steps []Step
}

// Validate checks that every ID list is populated by an earlier step before
// any step reads it.
func (p Plan) Validate() error {
	if len(p.Steps) == 0 {
		return fmt.Errorf("%w: plan %q has no steps", ErrInvalidPlan, p.Name)
	}

	producer := make(map[string]int, len(p.Steps))
	tables := make(map[string]bool, len(p.Steps))
	for i, step := range p.Steps {
		if step.Table == "" {
			return fmt.Errorf("%w: step %d has no table", ErrInvalidPlan, i)
		}
		key := strings.ToLower(step.Table)
		if tables[key] {
			return fmt.Errorf("%w: table %s appears twice", ErrInvalidPlan, step.Table)
		}
		tables[key] = true

		if step.Count < 0 {
			return fmt.Errorf("%w: table %s has negative count %d", ErrInvalidPlan, step.Table, step.Count)
		}
		if step.Preload && (step.Column == "" || step.Produces == "") {
			return fmt.Errorf("%w: preload of %s needs a column and a list name", ErrInvalidPlan, step.Table)
		}
		if !step.Preload && step.gen == nil {
			return fmt.Errorf("%w: table %s has no row generator", ErrInvalidPlan, step.Table)
		}
		if step.Produces == "" {
			continue
		}
		if prev, dup := producer[step.Produces]; dup {
			return fmt.Errorf("%w: id list %q produced by both %s and %s",
				ErrInvalidPlan, step.Produces, p.Steps[prev].Table, step.Table)
		}
		producer[step.Produces] = i
	}

	for i, step := range p.Steps {
		for _, list := range step.Requires {
			at, ok := producer[list]
			switch {
			case !ok:
				return fmt.Errorf("%w: %s reads id list %q that no step produces", ErrInvalidPlan, step.Table, list)
			case at >= i:
				return fmt.Errorf("%w: %s reads id list %q before %s populates it",
					ErrInvalidPlan, step.Table, list, p.Steps[at].Table)
			}
		}
	}

	if _, err := p.Graph().BuildInsertionOrder(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPlan, err)
	}
	return nil
}

// Graph returns the table dependency graph implied by Requires/Produces.
func (p Plan) Graph() *DependencyGraph {
	producer := make(map[string]string, len(p.Steps))
	for _, step := range p.Steps {
		if step.Produces != "" {
			producer[step.Produces] = step.Table
		}
	}

	g := NewDependencyGraph()
	for _, step := range p.Steps {
		var deps []string
		for _, list := range step.Requires {
			if table, ok := producer[list]; ok {
				deps = append(deps, table)
			}
		}
		g.AddTable(step.Table, deps...)
	}
	return g
}

// Lookup finds a step by table name, ignoring case.
func (p Plan) Lookup(table string) (Step, bool) {
	for _, step := range p.Steps {
		if strings.EqualFold(step.Table, table) {
			return step, true
		}
	}
	return Step{}, false
}

// Select keeps only the named tables, in declared order. With withParents the
// steps they depend on are kept too. The result is validated.
func (p Plan) Select(tables []string, withParents bool) (Plan, error) {
	if len(tables) == 0 {
		return p, nil
	}

	keep := make(map[string]bool)
	g := p.Graph()
	for _, name := range tables {
		step, ok := p.Lookup(name)
		if !ok {
			return Plan{}, fmt.Errorf("%w: unknown table %q in plan %s", ErrInvalidPlan, name, p.Name)
		}
		keep[step.Table] = true
		if withParents {
			for _, parent := range g.Ancestors(step.Table) {
				keep[parent] = true
			}
		}
	}

	subset := Plan{Name: p.Name}
	for _, step := range p.Steps {
		if keep[step.Table] {
			subset.Steps = append(subset.Steps, step)
		}
	}
	if err := subset.Validate(); err != nil {
		return Plan{}, err
	}
	return subset, nil
}

// WithCounts overrides row counts by table name, ignoring case.
func (p Plan) WithCounts(counts map[string]int) (Plan, error) {
	out := Plan{Name: p.Name, Steps: append([]Step(nil), p.Steps...)}
	for name, n := range counts {
		found := false
		for i := range out.Steps {
			if !strings.EqualFold(out.Steps[i].Table, name) {
				continue
			}
			if out.Steps[i].Preload {
				return Plan{}, fmt.Errorf("%w: %s is preloaded, its count cannot be set", ErrInvalidPlan, out.Steps[i].Table)
			}
			if n < 0 {
				return Plan{}, fmt.Errorf("%w: negative count %d for %s", ErrInvalidPlan, n, name)
			}
			out.Steps[i].Count = n
			found = true
		}
		if !found {
			return Plan{}, fmt.Errorf("%w: unknown table %q in plan %s", ErrInvalidPlan, name, p.Name)
		}
	}
	return out, nil
}
