package csr

import (
	"iter"

	"github.com/katalvlaran/lvfixed/dense"
)

// Graph is an immutable CSR graph on vertices [0, Order()).
type Graph struct {
	n           int
	directed    bool
	offsets     dense.Buffer[int] // n+1 row starts
	adj         dense.Buffer[int]
	weights     dense.Buffer[int64]
	vweight     dense.Buffer[int64] // empty when unit weights
	totalWeight int64
	edges       []Edge
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return g.n }

// Size returns the number of edges as added (undirected edges count once).
func (g *Graph) Size() int { return len(g.edges) }

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// HasVertex reports whether u is in [0, Order()).
func (g *Graph) HasVertex(u int) bool { return u >= 0 && u < g.n }

// Degree returns the number of arcs leaving u.
func (g *Graph) Degree(u int) int {
	return g.offsets.At(u+1) - g.offsets.At(u)
}

// Neighbors returns the heads of the arcs leaving u.
func (g *Graph) Neighbors(u int) dense.View[int] {
	return dense.ViewOf(g.adj.Data()[g.offsets.At(u):g.offsets.At(u+1)])
}

// Weights returns the arc weights of u, aligned with Neighbors(u).
func (g *Graph) Weights(u int) dense.View[int64] {
	return dense.ViewOf(g.weights.Data()[g.offsets.At(u):g.offsets.At(u+1)])
}

// Arcs yields (neighbor, weight) for every arc leaving u.
func (g *Graph) Arcs(u int) iter.Seq2[int, int64] {
	return func(yield func(int, int64) bool) {
		for i := g.offsets.At(u); i < g.offsets.At(u+1); i++ {
			if !yield(g.adj.At(i), g.weights.At(i)) {
				return
			}
		}
	}
}

// VertexWeight returns the weight of u (1 unless set on the builder).
func (g *Graph) VertexWeight(u int) int64 {
	if g.vweight.Len() == 0 {
		return 1
	}

	return g.vweight.At(u)
}

// TotalVertexWeight returns the sum of all vertex weights.
func (g *Graph) TotalVertexWeight() int64 { return g.totalWeight }

// Edges returns a copy of the input edge list in insertion order.
func (g *Graph) Edges() []Edge {
	return append([]Edge(nil), g.edges...)
}
