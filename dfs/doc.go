// Package dfs implements depth-first search traversal, cycle detection,
// and topological sort on a csr.Graph.
//
// What:
//
//   - DFS: explores as far as possible along each branch before
//     backtracking. Supports pre-order and post-order hooks, cancellation
//     via context.Context, depth limiting, neighbor filtering and full
//     traversal of every component.
//   - DetectCycles: lists the distinct simple cycles closed by back edges,
//     using vertex coloring (White, Gray, Black).
//   - TopologicalSort: orders the vertices of a directed acyclic graph,
//     returning ErrCycleDetected if a cycle exists.
//
// Implementation notes:
//
//   - Visited vertices live in a fixedset.Set, whose packed member order
//     is the discovery (pre-order) sequence; DFSResult.Discovery exposes it.
//   - Colors, depths and parents are dense buffers indexed by vertex.
//   - DetectCycles keeps each gray vertex's index on the current path in a
//     dense buffer (-1 when off the path), so closing a cycle needs no scan.
//   - Cycles are reported in canonical form: rotated to start at their
//     smallest vertex and, for undirected graphs, read in the direction
//     with the smaller second vertex; the first vertex is repeated at the end.
//
// Complexity:
//
//   - DFS:             Time O(V+E), Memory O(V)
//   - DetectCycles:    Time O(V+E + C·L), Memory O(V + C·L)
//   - TopologicalSort: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex not in graph
//   - ErrUndirectedGraph      TopologicalSort on an undirected graph
//   - ErrCycleDetected        cycle discovered by TopologicalSort
//   - context.Canceled        traversal canceled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs
