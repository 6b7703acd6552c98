// Package frontier is a level-synchronous parallel breadth-first search
// engine with a sequential reference baseline and a built-in correctness
// oracle.
//
// 🚀 What is frontier?
//
//	A compact toolkit for computing BFS visitation order and per-vertex
//	levels over large undirected graphs:
//		• core/    — dense, immutable, vertex-indexed adjacency storage
//		• bfs/     — Sequential (ground truth) and Parallel (level-synchronous)
//		            traversals plus a level-equality verifier
//		• builder/ — deterministic synthetic graph generators & edge-list I/O
//
// ✨ Why choose frontier?
//
//   - Verified parallelism – every parallel run can be checked against the
//     sequential baseline with ConsistentLevels
//   - Lock-free discovery – a single atomic claim per vertex, no shared queues
//   - Deterministic fixtures – seeded generators reproduce graphs bit-for-bit
//   - Pure Go engine – goroutines only, no hidden machinery
//
// The cmd/frontier CLI drives both traversals over synthetic or file-loaded
// graphs, reports wall-clock timings and speedup, and renders level
// structure via Graphviz.
//
// Quick ASCII example (start = 0):
//
//	    0───1          level 0: {0}
//	    │   │          level 1: {1, 2}
//	    2   3          level 2: {3}
//
// See bfs/doc.go for the traversal contracts and builder/doc.go for the
// generator catalogue.
package frontier
