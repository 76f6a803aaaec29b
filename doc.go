// Package lvfixed is a toolkit of fixed-capacity, integer-indexed
// containers and the graph algorithms built on them.
//
// What is lvfixed?
//
//	Containers whose capacity is fixed at construction and whose elements
//	are integers in [0, capacity), so every lookup is an array index:
//		• dense/:      fixed-length Buffer and read-only View
//		• fixedset/:   BoundedSet: O(1) add, remove, membership, packed iteration
//		• fixedmap/:   BoundedMap: BoundedSet plus a value per key
//		• fixedpq/:    addressable max-heap with update and decrease-key
//
//	Plumbing shared by the containers and their clients:
//		• assert/:     debug assertions, compiled in with -tags lvdebug
//		• random/:     PCG sources, fast integer draws, pseudo-shuffle
//		• bucketsort/: stable counting-sort permutations
//		• vecmath/:    sums, increments, exclusive prefix sums
//		• timer/:      accumulating wall-clock timer
//
//	Graph algorithms on compressed sparse row graphs:
//		• csr/:          Builder and immutable Graph
//		• bfs/, dfs/:    traversals, cycle detection, topological sort
//		• dijkstra/:     single-source shortest paths
//		• prim_kruskal/: minimum spanning trees
//		• gridgraph/:    2D grids as graphs, islands, island expansion
//		• refine/:       two-way Fiduccia–Mattheyses partition refinement
//
// Precondition violations (an element outside the domain, adding a present
// element, popping an empty queue) are programmer errors. Release builds
// do not check them; build with -tags lvdebug to turn them into panics
// that name the failed condition.
//
// None of the containers are safe for concurrent use.
//
//	go get github.com/katalvlaran/lvfixed
package lvfixed
