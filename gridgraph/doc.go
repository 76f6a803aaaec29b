// Package gridgraph treats a 2D grid of integer cells as a graph, enabling
// component analysis, minimal-cost "island" expansions and conversion to a
// csr.Graph for the partitioning and traversal packages.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a tunable LandThreshold.
//   - Identifies connected components ("islands") of cells with value ≥ LandThreshold.
//   - Computes minimal conversions to connect two islands.
//   - Converts to an undirected, unit-weight *csr.Graph.
//
// Cells are addressed by row-major index y*Width + x.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = 4 or 8).
//   - ExpandIsland:        O(W×H×d × log(W×H)), Memory: O(W×H).
//   - ToCSR:               O(W×H×d), Memory: O(W×H×d).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrComponentIndex: requested component index out of range.
package gridgraph
