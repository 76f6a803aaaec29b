// Package csr provides an immutable graph in compressed sparse row form
// over the integer vertex domain [0, n).
//
// The containers of this module (fixedset, fixedmap, fixedpq) index their
// storage by small integers, so the graph algorithms built on them work on
// dense vertex numbers instead of string IDs. A Builder collects edges,
// Build validates them and lays them out as one offsets array plus one
// adjacency array:
//
//	neighbors(u) = adj[offsets[u]:offsets[u+1]]
//
// Undirected graphs store every edge in both rows; Size still counts it
// once. Vertex weights default to 1 and are only stored when the builder
// is created WithVertexWeights.
//
// Errors:
//
//	ErrEmptyGraph       - builder created with n <= 0.
//	ErrVertexOutOfRange - edge endpoint or vertex outside [0, n).
//	ErrSelfLoop         - edge u->u.
//	ErrNegativeWeight   - negative edge or vertex weight.
//	ErrDuplicateEdge    - the same (u,v) pair added twice.
//
// A built Graph is read-only and safe for concurrent readers.
package csr
