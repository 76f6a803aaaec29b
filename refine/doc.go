// Package refine improves two-way graph partitions with the
// Fiduccia–Mattheyses (FM) heuristic.
//
// A partition assigns every vertex of an undirected csr.Graph to side 0 or
// side 1. The edge cut is the total weight of edges whose endpoints lie on
// different sides. Refine lowers the cut while keeping each side's vertex
// weight within (1+eps)·total/2.
//
// One pass:
//
//  1. Compute the external weight of every vertex (weight of its edges to
//     the other side). Vertices with external weight > 0 form the boundary,
//     kept in a fixedmap.Map from vertex to external weight.
//  2. Each side has a fixedpq.Queue of its unlocked boundary vertices keyed
//     by gain = external - internal weight, the cut reduction of moving it.
//  3. Repeatedly move the best feasible queue top, lock it (fixedset.Set),
//     append it to the move log (dense.Buffer) and update the gains of its
//     neighbors in place. Moves may have negative gain, which lets a pass
//     climb out of local minima.
//  4. When no move is feasible, undo the log back to the best prefix seen.
//
// A move is feasible when the receiving side stays within the bound or the
// move strictly reduces the heavier side. Only the top of each queue is
// considered, so a heavy top vertex blocks its side for the rest of the pass.
// Prefixes are ranked by overload beyond the bound, then cut, then weight
// difference; passes repeat until one fails to improve or MaxPasses is hit.
//
// Bisect builds an initial partition and refines it. The default initial
// partition grows side 0 breadth-first from a random vertex (InitGrow);
// InitRandom assigns vertices in random order instead.
//
// Refine, Bisect and Result are not safe for concurrent use, but distinct
// calls share nothing and may run in parallel on the same graph.
package refine
