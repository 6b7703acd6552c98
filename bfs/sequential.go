package bfs

import (
	"fmt"

	"github.com/katalvlaran/frontier/core"
)

// Sequential runs the single-threaded reference BFS on g from start.
//
// It returns a Result whose Order lists vertices in exact discovery
// sequence and whose Levels give the edge distance from start (Unreached
// for vertices outside the start's component). For a fixed graph and start
// the output is identical across runs: neighbor slices are sorted, so
// enumeration order is fixed.
//
// Returns ErrGraphNil, ErrStartOutOfRange, ErrOptionViolation, or the
// context error if cancelled.
// Complexity: O(V + E) time, O(V) memory.
func Sequential(g *core.Graph, start int, opts ...Option) (*Result, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.NumVertices()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: start=%d, n=%d", ErrStartOutOfRange, start, n)
	}

	marks := newClaimSet(n)
	var levels []int
	if !o.SkipLevels {
		levels = newLevelArray(n)
		levels[start] = 0
	}

	// Growable slice with a moving head index acts as the FIFO queue; the
	// fully consumed queue doubles as the visitation order.
	queue := make([]int, 0, n)
	marks.claim(start)
	queue = append(queue, start)

	for head := 0; head < len(queue); head++ {
		// cancellation check (once per dequeue)
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		u := queue[head]
		for _, v := range g.Neighbors(u) {
			if !marks.claim(v) {
				continue
			}
			if levels != nil {
				levels[v] = levels[u] + 1
			}
			queue = append(queue, v)
		}
	}

	return &Result{Order: queue, Levels: levels}, nil
}

// newLevelArray allocates a level array of n entries, all Unreached.
func newLevelArray(n int) []int {
	levels := make([]int, n)
	for i := range levels {
		levels[i] = Unreached
	}

	return levels
}
