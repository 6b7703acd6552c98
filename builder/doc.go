// Package builder provides deterministic graph constructors and edge-list
// I/O for assembling core.Graph fixtures and benchmark inputs.
//
// What
//
//   - Build(n, bopts, cons...): one orchestrator — creates a core.Builder
//     for n vertices, resolves functional options into an immutable config,
//     applies every Constructor in order, freezes, returns the Graph.
//   - Constructors: RandomAverageDegree (seeded sparse generator with ~deg
//     neighbors per vertex), Cycle, Path, Grid.
//   - ReadEdgeList / WriteEdgeList: plain-text "u v" pairs, 0-based ids.
//
// Why
//
//   - Traversal benchmarks and correctness sweeps need reproducible inputs:
//     the same n, options, seed, and constructor order always yield an
//     identical Graph.
//   - Composition: overlay RandomAverageDegree on Path to get a connected
//     random graph, or combine topologies for worst-case frontiers.
//
// Determinism
//
//	All randomness flows through the resolved config's RNG (WithSeed /
//	WithRand; default seed 42). No global state is consulted.
//
// Errors
//
//   - ErrTooFewVertices     constructor minimum violated (Cycle n≥3, Path n≥2).
//   - ErrBadDegree          negative target degree for RandomAverageDegree.
//   - ErrDimensionMismatch  Grid(rows, cols) with rows*cols ≠ n.
//   - ErrConstructFailed    nil Constructor passed to Build.
//   - ErrEdgeListSyntax     malformed edge-list input.
//
// Usage
//
//	g, err := builder.Build(100000,
//	    []builder.BuilderOption{builder.WithSeed(42)},
//	    builder.RandomAverageDegree(8),
//	)
package builder
