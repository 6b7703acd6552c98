// Package core defines the central Graph and Builder types for
// vertex-indexed undirected graphs.
//
// This file declares the Graph type, its read-only accessors,
// and the sentinel errors shared by core operations.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrVertexCount indicates a Builder was requested for fewer than one vertex.
	ErrVertexCount = errors.New("core: vertex count must be positive")

	// ErrVertexRange indicates an edge endpoint outside [0, NumVertices).
	ErrVertexRange = errors.New("core: vertex id out of range")

	// ErrSelfLoop indicates an edge from a vertex to itself.
	ErrSelfLoop = errors.New("core: self-loop not allowed")
)

// Graph is an immutable, undirected, vertex-indexed adjacency structure.
//
// Vertices are 0..NumVertices()-1. Neighbor slices are sorted ascending,
// deduplicated, and loop-free (see Builder.Freeze). A Graph is safe for
// unlimited concurrent readers; it exposes no mutators.
type Graph struct {
	adj   [][]int
	edges int // undirected edge count (each pair counted once)
}

// NumVertices returns the number of vertices N.
// Complexity: O(1)
func (g *Graph) NumVertices() int { return len(g.adj) }

// NumEdges returns the number of undirected edges (each pair counted once).
// Complexity: O(1)
func (g *Graph) NumEdges() int { return g.edges }

// HasVertex reports whether v is a valid vertex id.
// Complexity: O(1)
func (g *Graph) HasVertex(v int) bool { return v >= 0 && v < len(g.adj) }

// Degree returns the number of neighbors of v, or 0 if v is out of range.
// Complexity: O(1)
func (g *Graph) Degree(v int) int {
	if !g.HasVertex(v) {
		return 0
	}

	return len(g.adj[v])
}

// Neighbors returns the ordered neighbor slice of v, or nil if v is out of
// range. The slice is shared, not copied: callers must treat it as read-only.
// Complexity: O(1)
func (g *Graph) Neighbors(v int) []int {
	if !g.HasVertex(v) {
		return nil
	}

	return g.adj[v]
}
