// Package bfs provides breadth-first search over a csr.Graph, returning
// unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (arc count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: per-vertex distance from start, Unreached if not discovered
//   - Parent: per-vertex predecessor in the BFS tree
//   - Hooks at three stages: OnEnqueue, OnDequeue, OnVisit (may abort).
//   - WithFilterNeighbor prunes individual arcs; MaxDepth limits layers.
//
// Implementation
//
//	The discovered set is a fixedset.Set sized to the graph order. Because
//	BFS never forgets a vertex, the set's packed member array is already
//	the queue in discovery order, and a head index walks it. Depth and
//	Parent are dense buffers handed to the result without copying.
//
// Determinism
//
//	Neighbors are scanned in CSR row order, which is edge insertion order,
//	so the visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex is outside the graph.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - ctx.Err()               on cancellation.
//   - Wrapped user-supplied hook errors from OnVisit.
//   - ErrNoPath               from BFSResult.PathTo for unreached vertices.
package bfs
