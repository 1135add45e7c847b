// Copyright 2025 Binaek Sarkar
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package depgraph is a small generic directed-graph used by the loader to
// detect cyclic community imports: a Model's communities form an import
// graph that must be acyclic.
package depgraph

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// G is a directed graph over nodes identified by their String() form.
type G[T fmt.Stringer] interface {
	AddNode(T)
	AddEdge(from, to T) error
	TopoSort() ([]T, error)
	DetectFirstCycle() []T
}

type gImpl[T fmt.Stringer] struct {
	lock  sync.RWMutex
	nodes map[string]T
	edges map[string]map[string]struct{}
}

// New creates an empty graph.
func New[T fmt.Stringer]() G[T] {
	return &gImpl[T]{
		nodes: make(map[string]T),
		edges: make(map[string]map[string]struct{}),
	}
}

func (g *gImpl[T]) AddNode(node T) {
	g.lock.Lock()
	defer g.lock.Unlock()
	g.nodes[node.String()] = node
	if _, ok := g.edges[node.String()]; !ok {
		g.edges[node.String()] = make(map[string]struct{})
	}
}

var ErrSelfImport = fmt.Errorf("a community cannot import itself")

// ErrCycle reports the node sequence that forms a cycle.
type ErrCycle struct{ Path []string }

func (e ErrCycle) Error() string {
	return fmt.Sprintf("import cycle detected: %s", strings.Join(e.Path, " -> "))
}

// AddEdge adds a directed "from imports to" edge. It does not itself detect
// cycles — use TopoSort or DetectFirstCycle for that.
func (g *gImpl[T]) AddEdge(from, to T) error {
	g.lock.Lock()
	defer g.lock.Unlock()

	if from.String() == to.String() {
		return ErrSelfImport
	}

	if _, ok := g.edges[from.String()]; !ok {
		g.edges[from.String()] = make(map[string]struct{})
	}
	g.edges[from.String()][to.String()] = struct{}{}
	return nil
}

// TopoSort returns nodes in dependency order (imported-before-importer), or
// an ErrCycle if the import graph is not a DAG.
func (g *gImpl[T]) TopoSort() ([]T, error) {
	g.lock.RLock()
	defer g.lock.RUnlock()

	visited := make(map[string]struct{})
	var order []string
	var visiting []string

	var dfs func(node string) error
	dfs = func(node string) error {
		if slices.Contains(visiting, node) {
			idx := slices.Index(visiting, node)
			path := append(append([]string{}, visiting[idx:]...), node)
			return ErrCycle{Path: path}
		}
		if _, ok := visited[node]; ok {
			return nil
		}
		visiting = append(visiting, node)
		defer func() { visiting = visiting[:len(visiting)-1] }()

		visited[node] = struct{}{}
		for neighbor := range g.edges[node] {
			if err := dfs(neighbor); err != nil {
				return err
			}
		}
		order = append(order, node)
		return nil
	}

	for node := range g.nodes {
		if err := dfs(node); err != nil {
			return nil, err
		}
	}

	result := make([]T, 0, len(order))
	for _, n := range order {
		result = append(result, g.nodes[n])
	}
	return result, nil
}

// DetectFirstCycle returns the first cycle found, or an empty slice if the
// graph is acyclic.
func (g *gImpl[T]) DetectFirstCycle() []T {
	g.lock.RLock()
	defer g.lock.RUnlock()

	visited := make(map[string]struct{})
	var visiting []string

	var dfs func(node string) []string
	dfs = func(node string) []string {
		if slices.Contains(visiting, node) {
			idx := slices.Index(visiting, node)
			return append(append([]string{}, visiting[idx:]...), node)
		}
		if _, ok := visited[node]; ok {
			return nil
		}
		visiting = append(visiting, node)
		defer func() { visiting = visiting[:len(visiting)-1] }()

		visited[node] = struct{}{}
		for neighbor := range g.edges[node] {
			if cycle := dfs(neighbor); cycle != nil {
				return cycle
			}
		}
		return nil
	}

	for node := range g.nodes {
		if cycle := dfs(node); len(cycle) > 0 {
			result := make([]T, 0, len(cycle))
			for _, n := range cycle {
				result = append(result, g.nodes[n])
			}
			return result
		}
	}
	return []T{}
}
