package seeder

import (
	"fmt"
	"sort"
)

// DependencyGraph links each step to the steps whose ID lists it reads.
type DependencyGraph struct {
	deps map[string][]string
}

func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		deps: make(map[string][]string),
	}
}

func (g *DependencyGraph) AddTable(name string, dependsOn ...string) {
	g.deps[name] = append(g.deps[name], dependsOn...)
}

// BuildInsertionOrder returns every table after the tables it depends on.
// Ties are broken by name so the order is stable.
func (g *DependencyGraph) BuildInsertionOrder() ([]string, error) {
	visited := make(map[string]bool)
	temp := make(map[string]bool)
	var order []string

	var visit func(string) error
	visit = func(name string) error {
		if temp[name] {
			return fmt.Errorf("circular dependency detected involving table: %s", name)
		}
		if visited[name] {
			return nil
		}

		temp[name] = true
		deps := append([]string(nil), g.deps[name]...)
		sort.Strings(deps)
		for _, dep := range deps {
			if err := visit(dep); err != nil {
				return err
			}
		}

		temp[name] = false
		visited[name] = true
		order = append(order, name)
		return nil
	}

	names := make([]string, 0, len(g.deps))
	for name := range g.deps {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if !visited[name] {
			if err := visit(name); err != nil {
				return nil, err
			}
		}
	}

	return order, nil
}

// Ancestors returns every table name reachable from name, nearest last.
func (g *DependencyGraph) Ancestors(name string) []string {
	seen := make(map[string]bool)
	var out []string

	var walk func(string)
	walk = func(n string) {
		for _, dep := range g.deps[n] {
			if seen[dep] {
				continue
			}
			seen[dep] = true
			walk(dep)
			out = append(out, dep)
		}
	}
	walk(name)
	return out
}
