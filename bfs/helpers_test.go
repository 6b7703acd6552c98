package bfs_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/frontier/core"
)

// buildGraph constructs an n-vertex undirected graph from edge pairs,
// failing the test on any construction error.
func buildGraph(t testing.TB, n int, edges ...[2]int) *core.Graph {
	t.Helper()
	b, err := core.NewBuilder(n)
	if err != nil {
		t.Fatalf("NewBuilder(%d): %v", n, err)
	}
	for _, e := range edges {
		if err = b.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge(%d,%d): %v", e[0], e[1], err)
		}
	}

	return b.Freeze()
}

// randomGraph builds a seeded sparse random graph with ~avgDeg neighbors
// per vertex, mirroring the synthetic generator used by the benchmark
// harness but kept local so these tests stay self-contained.
func randomGraph(t testing.TB, n, avgDeg int, seed int64) *core.Graph {
	t.Helper()
	b, err := core.NewBuilder(n)
	if err != nil {
		t.Fatalf("NewBuilder(%d): %v", n, err)
	}
	rnd := rand.New(rand.NewSource(seed))
	for u := 0; u < n; u++ {
		for d := 0; d < avgDeg; d++ {
			v := rnd.Intn(n)
			if v == u {
				continue
			}
			if err = b.AddEdge(u, v); err != nil {
				t.Fatalf("AddEdge(%d,%d): %v", u, v, err)
			}
		}
	}

	return b.Freeze()
}
