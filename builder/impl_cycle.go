package builder

import (
	"fmt"

	"github.com/katalvlaran/frontier/core"
)

// Cycle returns a Constructor that connects all n vertices into the simple
// cycle 0-1-…-(n-1)-0. Requires n ≥ 3 (ErrTooFewVertices otherwise).
// Complexity: O(n) edges.
func Cycle() Constructor {
	return func(b *core.Builder, _ builderConfig) error {
		n := b.NumVertices()
		if n < 3 {
			return fmt.Errorf("%w: Cycle needs n ≥ 3, got %d", ErrTooFewVertices, n)
		}
		for u := 0; u < n; u++ {
			if err := b.AddEdge(u, (u+1)%n); err != nil {
				return fmt.Errorf("Cycle: %w", err)
			}
		}

		return nil
	}
}
