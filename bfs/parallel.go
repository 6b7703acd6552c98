package bfs

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/frontier/core"
)

// Parallel runs a level-synchronous concurrent BFS on g from start.
//
// The traversal proceeds in rounds, one per BFS level. Each round the
// current frontier is appended to Order, then expanded by W workers that
// pull fixed-size chunks off a shared atomic cursor. A worker discovering
// neighbor v performs an atomic claim; the single winner writes
// levels[v] = round+1 and appends v to its private buffer. After all
// workers finish (barrier), buffers are concatenated in worker-index order
// to form the next frontier. The traversal terminates when a round merges
// an empty frontier.
//
// Levels are value-identical to Sequential for every reachable vertex.
// Order guarantees level membership only: all vertices of level k precede
// level k+1, but intra-level order depends on scheduling.
//
// Returns ErrGraphNil, ErrStartOutOfRange, ErrOptionViolation, or the
// context error if cancelled between rounds.
// Complexity: O(V + E) work, O(V) memory, O(diameter) barriers.
func Parallel(g *core.Graph, start int, opts ...Option) (*Result, error) {
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

	workers := o.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	chunk := o.ChunkSize
	if chunk == 0 {
		chunk = defaultChunkSize
	}

	marks := newClaimSet(n)
	var levels []int
	if !o.SkipLevels {
		levels = newLevelArray(n)
		levels[start] = 0
	}

	order := make([]int, 0, n)
	frontier := []int{start}
	marks.claim(start)

	for round := 0; len(frontier) > 0; round++ {
		// cancellation check (once per round, between barriers)
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		order = append(order, frontier...)

		next := expandFrontier(g, frontier, marks, levels, round, workers, chunk)
		frontier = next
	}

	return &Result{Order: order, Levels: levels}, nil
}

// expandFrontier runs one round of concurrent expansion and returns the
// next frontier, merged from the per-worker buffers in worker-index order.
//
// The level value written for a claimed vertex is round+1 — a pure function
// of the round index. Every worker that could claim a given vertex in this
// round would write the same value, so the claim-then-write discipline
// leaves no write-write races on levels.
func expandFrontier(g *core.Graph, frontier []int, marks claimSet, levels []int, round, workers, chunk int) []int {
	buffers := make([][]int, workers)
	depth := round + 1

	// Dynamic chunking: workers repeatedly grab the next chunk of the
	// frontier via an atomic cursor, so uneven degrees self-balance.
	var cursor atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			var local []int
			for {
				hi := int(cursor.Add(int64(chunk)))
				lo := hi - chunk
				if lo >= len(frontier) {
					break
				}
				if hi > len(frontier) {
					hi = len(frontier)
				}
				for _, u := range frontier[lo:hi] {
					for _, v := range g.Neighbors(u) {
						if !marks.claim(v) {
							continue
						}
						if levels != nil {
							levels[v] = depth
						}
						local = append(local, v)
					}
				}
			}
			buffers[w] = local
		}(w)
	}
	wg.Wait() // barrier: no merge until every worker finished the round

	var total int
	for _, buf := range buffers {
		total += len(buf)
	}
	next := make([]int, 0, total)
	for _, buf := range buffers {
		next = append(next, buf...)
	}

	return next
}
