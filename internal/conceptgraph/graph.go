// Package conceptgraph provides a read-only adjacency view over the
// microconcept catalog and its prerequisite edges. The prerequisite
// relation is not guaranteed acyclic, so the graph exposes direct-edge
// lookups only — no transitive walks.
package conceptgraph

import (
	"sort"

	"github.com/diversifica/decies-platform-sub000/internal/store"
)

// Graph is an immutable snapshot of the catalog for one scope. It is
// rebuilt on every engine invocation; the catalog boundary may change
// between calls, so nothing is cached across invocations.
type Graph struct {
	concepts []store.ConceptRecord
	byCode   map[string]*store.ConceptRecord
	prereqs  map[string][]string
}

// New builds a graph from catalog records. Edges referencing concepts
// outside the given set are kept: a prerequisite may live in an earlier
// term and still matters to the reinforcement rule.
func New(concepts []store.ConceptRecord, edges []store.EdgeRecord) *Graph {
	g := &Graph{
		concepts: concepts,
		byCode:   make(map[string]*store.ConceptRecord, len(concepts)),
		prereqs:  make(map[string][]string),
	}
	for i := range g.concepts {
		g.byCode[g.concepts[i].Code] = &g.concepts[i]
	}
	for _, e := range edges {
		// A self-edge is malformed catalog data; following it would make a
		// concept its own prerequisite.
		if e.ConceptCode == e.PrerequisiteCode {
			continue
		}
		g.prereqs[e.ConceptCode] = append(g.prereqs[e.ConceptCode], e.PrerequisiteCode)
	}
	for code := range g.prereqs {
		sort.Strings(g.prereqs[code])
	}
	return g
}

// Concepts returns all concepts in the graph, in catalog order.
func (g *Graph) Concepts() []store.ConceptRecord {
	return g.concepts
}

// Name returns the display name for a concept code, falling back to the
// code itself when the concept is not in this scope.
func (g *Graph) Name(code string) string {
	if c, ok := g.byCode[code]; ok {
		return c.Name
	}
	return code
}

// Has reports whether the concept is part of this scope.
func (g *Graph) Has(code string) bool {
	_, ok := g.byCode[code]
	return ok
}

// Prerequisites returns the direct prerequisite codes for a concept,
// sorted for determinism. Direct edges only.
func (g *Graph) Prerequisites(code string) []string {
	return g.prereqs[code]
}
