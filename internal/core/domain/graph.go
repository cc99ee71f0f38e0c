// Package domain contains the project model, the source node model and the rules
// that decide whether a module is up to date.
package domain

import (
	"iter"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Graph is the explicit dependency graph between modules.
type Graph struct {
	deps  map[InternedString][]InternedString
	order []InternedString
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		deps: make(map[InternedString][]InternedString),
	}
}

// AddModule adds a module and the names of the modules it depends on.
// It returns an error if a module with the same name already exists.
func (g *Graph) AddModule(name string, dependsOn []string) error {
	key := NewInternedString(name)
	if _, exists := g.deps[key]; exists {
		return zerr.With(zerr.Wrap(ErrModuleAlreadyExists, "failed to add module"), "module", name)
	}
	deps := make([]InternedString, len(dependsOn))
	for i, d := range dependsOn {
		deps[i] = NewInternedString(d)
	}
	g.deps[key] = deps
	return nil
}

// Len returns the number of modules in the graph.
func (g *Graph) Len() int {
	return len(g.deps)
}

// DependsOn returns the explicit dependencies of a module.
func (g *Graph) DependsOn(name string) []string {
	deps := g.deps[NewInternedString(name)]
	out := make([]string, len(deps))
	for i, d := range deps {
		out[i] = d.String()
	}
	return out
}

// Validate checks for missing dependencies and cycles using a depth-first topological sort.
// Modules are visited in name order so the resulting order is stable.
func (g *Graph) Validate() error {
	g.order = make([]InternedString, 0, len(g.deps))
	visited := make(map[InternedString]int) // 0: unvisited, 1: visiting, 2: visited
	var path []InternedString

	var visit func(u InternedString) error
	visit = func(u InternedString) error {
		visited[u] = 1
		path = append(path, u)

		for _, dep := range g.deps[u] {
			if _, exists := g.deps[dep]; !exists {
				return zerr.With(zerr.With(zerr.Wrap(ErrMissingDependency, "invalid module graph"), "dependency", dep.String()), "module", u.String())
			}
			if visited[dep] == 1 {
				return buildCycleError(path, dep)
			}
			if visited[dep] == 0 {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		visited[u] = 2
		path = path[:len(path)-1]
		g.order = append(g.order, u)
		return nil
	}

	names := make([]InternedString, 0, len(g.deps))
	for name := range g.deps {
		names = append(names, name)
	}
	slices.SortFunc(names, func(a, b InternedString) int {
		return strings.Compare(a.String(), b.String())
	})

	for _, name := range names {
		if visited[name] == 0 {
			if err := visit(name); err != nil {
				return err
			}
		}
	}
	return nil
}

func buildCycleError(path []InternedString, dep InternedString) error {
	start := slices.Index(path, dep)
	parts := make([]string, 0, len(path)-start+1)
	for _, node := range path[start:] {
		parts = append(parts, node.String())
	}
	parts = append(parts, dep.String())
	return zerr.With(zerr.Wrap(ErrCycleDetected, "invalid module graph"), "cycle", strings.Join(parts, " -> "))
}

// Walk yields module names with dependencies before their dependents.
// It assumes Validate has been called and returned nil.
func (g *Graph) Walk() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, name := range g.order {
			if !yield(name.String()) {
				return
			}
		}
	}
}
