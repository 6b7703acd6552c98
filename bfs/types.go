// Package bfs provides tunable options and error definitions for the
// sequential and parallel breadth-first traversals over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Unreached is the level value assigned to vertices the traversal never
// discovered.
const Unreached = -1

// defaultChunkSize is the number of frontier vertices a worker pulls per
// grab from the shared cursor during parallel expansion. Coarse enough to
// amortize the atomic fetch, fine enough for dynamic load balance.
const defaultChunkSize = 512

// Sentinel errors for traversal execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartOutOfRange is returned when the start vertex is outside [0, N).
	ErrStartOutOfRange = errors.New("bfs: start vertex out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures traversal behavior via functional arguments.
// If an Option is invalid (e.g. negative worker count), it is recorded
// internally and surfaced as ErrOptionViolation when the traversal runs.
type Option func(*Options)

// Options holds parameters customizing Sequential and Parallel execution.
type Options struct {
	// Ctx allows cancellation and deadlines. Sequential checks it once per
	// dequeue; Parallel checks it once per round (between barriers).
	Ctx context.Context

	// Workers is the number of goroutines expanding the frontier in
	// Parallel. 0 means runtime.GOMAXPROCS(0). Ignored by Sequential.
	Workers int

	// ChunkSize is how many frontier vertices a worker claims per grab from
	// the shared cursor. 0 means the package default (512).
	ChunkSize int

	// SkipLevels disables the level array; Result.Levels will be nil.
	// Useful when only visitation order or reachability is needed.
	SkipLevels bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - Workers = 0 (GOMAXPROCS)
//   - ChunkSize = 0 (package default)
//   - levels computed.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers sets the parallel worker count.
//
//	w > 0:  use exactly w workers
//	w == 0: explicit "use GOMAXPROCS"
//	w < 0:  invalid option → ErrOptionViolation
func WithWorkers(w int) Option {
	return func(o *Options) {
		if w < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, w)
			return
		}
		o.Workers = w
	}
}

// WithChunkSize sets the frontier chunk granularity for Parallel.
//
//	c > 0:  use chunks of exactly c vertices
//	c == 0: explicit "use package default"
//	c < 0:  invalid option → ErrOptionViolation
func WithChunkSize(c int) Option {
	return func(o *Options) {
		if c < 0 {
			o.err = fmt.Errorf("%w: ChunkSize cannot be negative (%d)", ErrOptionViolation, c)
			return
		}
		o.ChunkSize = c
	}
}

// WithoutLevels disables level computation; Result.Levels will be nil.
func WithoutLevels() Option {
	return func(o *Options) { o.SkipLevels = true }
}

// Result holds the outcome of a traversal:
//   - Order: vertices in discovery sequence. Sequential order is fully
//     deterministic; Parallel guarantees level membership only (vertices of
//     level k precede vertices of level k+1, intra-level order unspecified).
//   - Levels: per-vertex BFS distance from the start, Unreached (-1) for
//     vertices outside the start's component; nil under WithoutLevels.
type Result struct {
	Order  []int
	Levels []int
}

// Reached reports whether v was discovered by the traversal that produced r.
// Always false when the Result was built with WithoutLevels.
func (r *Result) Reached(v int) bool {
	return v >= 0 && v < len(r.Levels) && r.Levels[v] != Unreached
}

// resolve applies opts over defaults and validates the result.
func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}
