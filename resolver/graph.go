/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"fmt"
	"maps"
	"slices"

	"bennypowers.dev/mond/schema"
	"bennypowers.dev/mond/token"
)

// DependencyGraph represents a directed graph of alias references between
// token paths for a single theme.
type DependencyGraph struct {
	dependencies map[string][]string
	dependents   map[string][]string
	nodes        map[string]bool
}

// BuildDependencyGraph builds the alias graph of every leaf in store as seen
// from theme. Brand colors and scale entries are nodes too, so references to
// them are edges like any other.
func BuildDependencyGraph(store *token.Store, theme token.Theme) *DependencyGraph {
	graph := &DependencyGraph{
		dependencies: make(map[string][]string),
		dependents:   make(map[string][]string),
		nodes:        make(map[string]bool),
	}

	for path, raw := range rawValues(store, theme) {
		graph.nodes[path] = true
		deps := token.ExtractRefs(raw)
		if len(deps) == 0 {
			continue
		}
		graph.dependencies[path] = deps
		for _, dep := range deps {
			graph.dependents[dep] = append(graph.dependents[dep], path)
		}
	}
	for _, deps := range graph.dependents {
		slices.Sort(deps)
	}

	return graph
}

// rawValues collects the unresolved value of every leaf for theme, keyed by path.
func rawValues(store *token.Store, theme token.Theme) map[string]string {
	values := make(map[string]string)
	if store == nil {
		return values
	}

	for family, shades := range store.BrandColors {
		for shade, value := range shades {
			values[token.JoinPath(token.BrandColorNamespace, family, shade)] = value
		}
	}
	for _, scale := range store.Scales {
		for key, value := range scale.Values {
			values[token.JoinPath(scale.Name, key)] = value
		}
	}
	if store.Semantic != nil {
		store.Semantic.Walk(nil, func(path []string, node token.Node) {
			switch n := node.(type) {
			case *token.Variant:
				if value, ok := n.Value(theme); ok {
					values[token.JoinPath(path...)] = value
				}
			case *token.Literal:
				values[token.JoinPath(path...)] = n.Value
			}
		})
	}
	return values
}

// Nodes returns every path in the graph in lexicographic order.
func (g *DependencyGraph) Nodes() []string {
	return slices.Sorted(maps.Keys(g.nodes))
}

// Dependencies returns the paths that the given path references.
func (g *DependencyGraph) Dependencies(path string) []string {
	if deps, ok := g.dependencies[path]; ok {
		return deps
	}
	return []string{}
}

// Dependents returns the paths that reference the given path.
func (g *DependencyGraph) Dependents(path string) []string {
	if deps, ok := g.dependents[path]; ok {
		return deps
	}
	return []string{}
}

// Missing returns referenced paths that are not nodes of the graph, sorted.
func (g *DependencyGraph) Missing() []string {
	var missing []string
	for dep := range g.dependents {
		if !g.nodes[dep] {
			missing = append(missing, dep)
		}
	}
	slices.Sort(missing)
	return missing
}

// HasCycle returns true if the graph contains a circular reference.
func (g *DependencyGraph) HasCycle() bool {
	return g.FindCycle() != nil
}

// FindCycle returns the cycle path if one exists, or nil if no cycle.
// Nodes are visited in sorted order so the reported cycle is stable.
func (g *DependencyGraph) FindCycle() []string {
	visited := make(map[string]bool)
	recStack := make(map[string]bool)

	for _, node := range g.Nodes() {
		if cycle := g.findCycleDFS(node, visited, recStack, nil); cycle != nil {
			return cycle
		}
	}
	return nil
}

func (g *DependencyGraph) findCycleDFS(node string, visited, recStack map[string]bool, path []string) []string {
	if recStack[node] {
		cycleStart := slices.Index(path, node)
		if cycleStart == -1 {
			panic(fmt.Sprintf("cycle detection invariant violated: node %q in recStack but not in path %v", node, path))
		}
		return append(slices.Clone(path[cycleStart:]), node)
	}
	if visited[node] {
		return nil
	}

	visited[node] = true
	recStack[node] = true
	path = append(path, node)

	for _, dep := range g.dependencies[node] {
		if cycle := g.findCycleDFS(dep, visited, recStack, path); cycle != nil {
			return cycle
		}
	}

	recStack[node] = false
	return nil
}

// TopologicalSort returns paths in dependency order (dependencies first).
// Returns error if graph contains a cycle.
func (g *DependencyGraph) TopologicalSort() ([]string, error) {
	if cycle := g.FindCycle(); cycle != nil {
		return nil, fmt.Errorf("%w: %v", schema.ErrCircularReference, cycle)
	}

	visited := make(map[string]bool)
	result := []string{}

	for _, node := range g.Nodes() {
		if !visited[node] {
			g.topologicalSortDFS(node, visited, &result)
		}
	}

	return result, nil
}

func (g *DependencyGraph) topologicalSortDFS(node string, visited map[string]bool, stack *[]string) {
	visited[node] = true

	for _, dep := range g.dependencies[node] {
		if !visited[dep] && g.nodes[dep] {
			g.topologicalSortDFS(dep, visited, stack)
		}
	}

	*stack = append(*stack, node)
}
