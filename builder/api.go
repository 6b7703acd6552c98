// api.go — the single public entry-point for graph construction.
//
// Design contract:
//   - One orchestrator: Build(n, bopts, cons...). Creates the core.Builder,
//     resolves the config, applies constructors in order, freezes.
//   - Constructors validate early, return sentinel errors, never panic.
//   - Determinism: same n, options, and constructor order ⇒ identical graph.
package builder

import (
	"fmt"

	"github.com/katalvlaran/frontier/core"
)

// Constructor applies one deterministic topology mutation to the graph
// under construction, using the resolved builderConfig for any randomness.
type Constructor func(b *core.Builder, cfg builderConfig) error

// Build creates a graph on n vertices by applying every Constructor in
// order and freezing the result.
//
// Constructor errors are wrapped with "Build: %w" and returned
// immediately; no partial cleanup is attempted. A nil Constructor yields
// ErrConstructFailed.
// Complexity: O(resolve) + Σ constructor costs + O(V + E·log E) for Freeze.
func Build(n int, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	b, err := core.NewBuilder(n)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(b, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return b.Freeze(), nil
}
