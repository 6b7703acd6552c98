package bfs

import "sync/atomic"

// claimSet is the per-vertex visited store shared by both traversals.
//
// Its single operation, claim, atomically transitions a vertex from
// unvisited to visited and reports whether this call performed the
// transition. Under concurrent attempts from multiple workers exactly one
// claim(v) returns true; this is the only synchronization point during
// parallel expansion.
type claimSet []uint32

// newClaimSet returns a claimSet for n vertices, all unvisited.
func newClaimSet(n int) claimSet { return make(claimSet, n) }

// claim attempts the unvisited→visited transition for v.
// Returns true iff this call won the transition.
func (s claimSet) claim(v int) bool {
	return atomic.CompareAndSwapUint32(&s[v], 0, 1)
}
