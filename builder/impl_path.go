package builder

import (
	"fmt"

	"github.com/katalvlaran/frontier/core"
)

// Path returns a Constructor that chains all n vertices into the simple
// path 0-1-…-(n-1). Requires n ≥ 2 (ErrTooFewVertices otherwise).
// A path maximizes BFS rounds for a given n: the worst case for
// level-synchronous parallelism (every frontier has size 1).
// Complexity: O(n) edges.
func Path() Constructor {
	return func(b *core.Builder, _ builderConfig) error {
		n := b.NumVertices()
		if n < 2 {
			return fmt.Errorf("%w: Path needs n ≥ 2, got %d", ErrTooFewVertices, n)
		}
		for u := 0; u+1 < n; u++ {
			if err := b.AddEdge(u, u+1); err != nil {
				return fmt.Errorf("Path: %w", err)
			}
		}

		return nil
	}
}
