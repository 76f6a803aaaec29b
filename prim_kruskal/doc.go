// Package prim_kruskal computes minimum spanning trees of undirected
// csr.Graphs with Prim's and Kruskal's algorithms.
//
// What & Why
//
//   - An MST of a connected weighted graph G = (V, E) is a subset T of E
//     that spans V with minimum total weight.
//   - Uses: network design, single-linkage clustering, and as a subroutine
//     of approximation algorithms.
//
// Algorithms Provided
//
//   - Kruskal(g) ([]csr.Edge, int64, error)
//
//   - Strategy: stable-sort all edges by weight and add each edge whose
//     endpoints are in different components of a union-find forest.
//
//   - Complexity: O(E log E) time, O(V + E) space.
//
//   - Determinism: g.Edges() is in insertion order and the sort is
//     stable, so ties resolve to the edge added first.
//
//   - Prim(g, root) ([]csr.Edge, int64, error)
//
//   - Strategy: grow one tree from root. Every vertex outside the tree
//     that touches it sits once in a fixedpq.Queue keyed by its cheapest
//     connecting edge (negated, since the queue is a max-queue); a cheaper
//     edge lowers the key in place.
//
//   - Complexity: O(E log V) time, O(V) space.
//
//   - Returned edges are oriented parent->child in the order vertices
//     join the tree.
//
// Errors
//
//   - ErrInvalidGraph:   g is nil or directed, or Compute got an unknown method.
//   - ErrEmptyRoot:      Prim without a root.
//   - ErrVertexNotFound: root outside [0, g.Order()).
//   - ErrDisconnected:   no spanning tree exists.
package prim_kruskal
