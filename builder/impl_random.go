package builder

import (
	"fmt"

	"github.com/katalvlaran/frontier/core"
)

// RandomAverageDegree returns a Constructor that gives every vertex
// approximately deg undirected neighbors: for each vertex it draws
// distinct non-self targets until deg are collected, adding each edge in
// both directions. Because edges arriving from other vertices also raise
// a vertex's degree, the realized average lands slightly above deg;
// duplicates collapse at Freeze.
//
// deg is clamped to n-1 (a simple vertex cannot have more neighbors).
// Returns ErrBadDegree for deg < 0.
// Complexity: expected O(n·deg) draws for deg ≪ n.
func RandomAverageDegree(deg int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if deg < 0 {
			return fmt.Errorf("%w: %d", ErrBadDegree, deg)
		}
		n := b.NumVertices()
		target := deg
		if target > n-1 {
			target = n - 1
		}

		for u := 0; u < n; u++ {
			seen := make(map[int]struct{}, target)
			for len(seen) < target {
				v := cfg.rng.Intn(n)
				if v == u {
					continue
				}
				if _, dup := seen[v]; dup {
					continue
				}
				seen[v] = struct{}{}
				if err := b.AddEdge(u, v); err != nil {
					return fmt.Errorf("RandomAverageDegree: %w", err)
				}
			}
		}

		return nil
	}
}
