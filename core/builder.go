package core

import (
	"fmt"
	"sort"
)

// Builder accumulates undirected edges for a fixed vertex set 0..n-1
// and produces an immutable Graph via Freeze.
//
// Builder is not safe for concurrent use; assemble the graph from a single
// goroutine, then share the frozen Graph freely.
type Builder struct {
	adj [][]int
}

// NewBuilder creates a Builder for a graph on n vertices (n ≥ 1).
// Returns ErrVertexCount if n < 1.
// Complexity: O(n)
func NewBuilder(n int) (*Builder, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrVertexCount, n)
	}

	return &Builder{adj: make([][]int, n)}, nil
}

// NumVertices returns the fixed vertex count of the graph under construction.
// Complexity: O(1)
func (b *Builder) NumVertices() int { return len(b.adj) }

// AddEdge records the undirected edge (u, v). Parallel additions of the same
// pair are tolerated and collapse to a single edge at Freeze time.
// Returns ErrVertexRange if either endpoint is outside [0, n),
// ErrSelfLoop if u == v.
// Complexity: O(1) amortized
func (b *Builder) AddEdge(u, v int) error {
	n := len(b.adj)
	if u < 0 || u >= n {
		return fmt.Errorf("%w: u=%d, n=%d", ErrVertexRange, u, n)
	}
	if v < 0 || v >= n {
		return fmt.Errorf("%w: v=%d, n=%d", ErrVertexRange, v, n)
	}
	if u == v {
		return fmt.Errorf("%w: vertex %d", ErrSelfLoop, u)
	}

	b.adj[u] = append(b.adj[u], v)
	b.adj[v] = append(b.adj[v], u)

	return nil
}

// Freeze sorts and deduplicates every neighbor slice and returns the
// immutable Graph. The Builder must not be used after Freeze: the adjacency
// storage is handed over to the Graph, not copied.
// Complexity: O(V + E·log E)
func (b *Builder) Freeze() *Graph {
	var half int // sum of neighbor-list lengths; edges = half/2
	for u, nbrs := range b.adj {
		sort.Ints(nbrs)
		b.adj[u] = dedupSorted(nbrs)
		half += len(b.adj[u])
	}
	g := &Graph{adj: b.adj, edges: half / 2}
	b.adj = nil

	return g
}

// dedupSorted compacts consecutive duplicates in-place; s must be sorted.
func dedupSorted(s []int) []int {
	if len(s) < 2 {
		return s
	}
	w := 1
	for i := 1; i < len(s); i++ {
		if s[i] != s[w-1] {
			s[w] = s[i]
			w++
		}
	}

	return s[:w]
}
