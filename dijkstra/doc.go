// Package dijkstra implements Dijkstra's single-source shortest paths on a
// csr.Graph with non-negative integer weights.
//
// Overview:
//
//   - Vertices are the dense integers [0, g.Order()), so every per-vertex
//     table is a slice and the frontier is a fixedpq.Queue addressed by
//     vertex number.
//   - Relaxation uses eager decrease-key: a vertex is in the frontier at
//     most once, and a shorter tentative distance updates its entry in
//     place. The frontier never holds more than V entries.
//   - The queue is a max-queue, so keys are stored negated.
//   - Settled vertices are marked in a bitset.
//
// Options:
//
//   - Source(int):                the starting vertex (required).
//   - WithReturnPath():           also return the predecessor slice.
//   - WithMaxDistance(int64):     do not settle vertices farther than this.
//   - WithInfEdgeThreshold(int64): edges with weight >= threshold are walls.
//
// Results:
//
//	dist[v] = shortest distance from Source, or math.MaxInt64 if unreachable
//	prev[v] = predecessor of v on one shortest path, or -1 (Source, unreachable)
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
//
// Errors:
//
//   - ErrEmptySource:     no Source option given.
//   - ErrNilGraph:        g is nil.
//   - ErrVertexNotFound:  Source outside [0, g.Order()).
//   - ErrBadMaxDistance:  panic from WithMaxDistance with a negative value.
//   - ErrBadInfThreshold: panic from WithInfEdgeThreshold with a value <= 0.
//
// Negative weights cannot occur: csr rejects them at build time.
package dijkstra
