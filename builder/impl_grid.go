package builder

import (
	"fmt"

	"github.com/katalvlaran/frontier/core"
)

// Grid returns a Constructor building a rows×cols 4-neighborhood lattice
// in row-major order: vertex r*cols+c connects right and down. The product
// rows*cols must equal the vertex count passed to Build
// (ErrDimensionMismatch otherwise, ErrTooFewVertices for non-positive
// dimensions). Grids produce wide mid-traversal frontiers — a friendly
// case for parallel expansion.
// Complexity: O(rows·cols) edges.
func Grid(rows, cols int) Constructor {
	return func(b *core.Builder, _ builderConfig) error {
		if rows < 1 || cols < 1 {
			return fmt.Errorf("%w: Grid needs positive dimensions, got %d×%d", ErrTooFewVertices, rows, cols)
		}
		if rows*cols != b.NumVertices() {
			return fmt.Errorf("%w: %d×%d ≠ %d", ErrDimensionMismatch, rows, cols, b.NumVertices())
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					if err := b.AddEdge(u, u+1); err != nil {
						return fmt.Errorf("Grid: %w", err)
					}
				}
				if r+1 < rows {
					if err := b.AddEdge(u, u+cols); err != nil {
						return fmt.Errorf("Grid: %w", err)
					}
				}
			}
		}

		return nil
	}
}
