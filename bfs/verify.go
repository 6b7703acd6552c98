package bfs

// ConsistentLevels reports whether two level arrays agree everywhere both
// report a reached vertex. Indices unreached (Unreached) in either array
// are excluded from comparison; asymmetric reachability is therefore not a
// failure of this check. Arrays of different lengths are never consistent.
//
// This is the correctness oracle for Parallel against Sequential: the
// "inconsistent" outcome is data for the caller, not an error.
// Complexity: O(V)
func ConsistentLevels(a, b []int) bool {
	return FirstLevelMismatch(a, b) == -1
}

// FirstLevelMismatch returns the smallest index where a and b both report
// a reached vertex but disagree on its level, or -1 if no such index
// exists. A length mismatch is reported as index 0.
// Complexity: O(V)
func FirstLevelMismatch(a, b []int) int {
	if len(a) != len(b) {
		return 0
	}
	for i := range a {
		if a[i] != Unreached && b[i] != Unreached && a[i] != b[i] {
			return i
		}
	}

	return -1
}
