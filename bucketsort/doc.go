// Package bucketsort computes stable permutations for small integer keys.
//
// FixedKeys is a counting sort over keys in [0, len(keys)]. It returns the
// permutation rather than moving data, so callers can reorder several
// parallel arrays with one pass:
//
//	perm := bucketsort.FixedKeys[int32, int32](degree)
//	for i, v := range perm {
//	    sorted[i] = vertices[v]
//	}
//
// Complexity: O(n) time, O(n) extra space.
package bucketsort
