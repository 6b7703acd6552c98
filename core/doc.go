// Package core defines the dense, vertex-indexed Graph used by every
// frontier traversal, and the mutable Builder that assembles it.
//
// What
//
//   - Vertices are the integers 0..N-1; there are no labels and no metadata.
//   - Graph is an undirected adjacency structure: for each vertex an ordered,
//     deduplicated slice of neighbor ids with no self-loops.
//   - Builder accumulates edges in any order; Freeze() sorts, deduplicates,
//     and produces an immutable Graph.
//
// Why
//
//   - BFS over millions of vertices wants integer indices and contiguous
//     neighbor slices, not map lookups: O(1) access, cache-friendly scans.
//   - Immutability after Freeze lets any number of concurrent traversals
//     share one Graph without locks (read-only borrow).
//
// Invariants (established by Freeze, relied on by bfs/)
//
//   - adj[u] is strictly increasing: deterministic enumeration order.
//   - u ∉ adj[u]: no self-loops.
//   - v ∈ adj[u] ⇔ u ∈ adj[v]: undirected symmetry.
//
// Usage
//
//	b, err := core.NewBuilder(4)
//	_ = b.AddEdge(0, 1)
//	_ = b.AddEdge(0, 2)
//	_ = b.AddEdge(1, 3)
//	g, err := b.Freeze()
//	g.Neighbors(0) // → [1 2]
//
// Errors
//
//   - ErrVertexCount  if a Builder is requested for n < 1 vertices.
//   - ErrVertexRange  if an edge endpoint lies outside [0, n).
//   - ErrSelfLoop     if an edge connects a vertex to itself.
//
// Complexity: Freeze is O(V + E·log E); all Graph getters are O(1).
package core
