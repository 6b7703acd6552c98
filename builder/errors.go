// Sentinel errors for the builder package.
//
// Error policy: only package-level sentinels are exposed; implementations
// attach context with %w wrapping, callers branch with errors.Is.
package builder

import "errors"

// ErrTooFewVertices indicates the vertex count is below the minimum for
// the requested constructor (Cycle needs n ≥ 3, Path needs n ≥ 2).
var ErrTooFewVertices = errors.New("builder: too few vertices")

// ErrBadDegree indicates a negative target degree for RandomAverageDegree.
var ErrBadDegree = errors.New("builder: negative degree")

// ErrDimensionMismatch indicates Grid dimensions whose product differs
// from the vertex count passed to Build.
var ErrDimensionMismatch = errors.New("builder: grid dimensions do not match vertex count")

// ErrConstructFailed indicates Build received a nil Constructor or a
// constructor could not complete without breaking graph invariants.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrEdgeListSyntax indicates a malformed edge-list stream: a non-integer
// token or a dangling endpoint without its pair.
var ErrEdgeListSyntax = errors.New("builder: malformed edge list")
