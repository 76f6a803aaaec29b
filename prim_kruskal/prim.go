package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/lvfixed/csr"
	"github.com/katalvlaran/lvfixed/dense"
	"github.com/katalvlaran/lvfixed/fixedpq"
	"github.com/katalvlaran/lvfixed/fixedset"
)

// Prim grows a minimum spanning tree from root.
func Prim(g *csr.Graph, root int) ([]csr.Edge, int64, error) {
	if g == nil || g.Directed() {
		return nil, 0, ErrInvalidGraph
	}
	if root == NoRoot {
		return nil, 0, ErrEmptyRoot
	}
	if !g.HasVertex(root) {
		return nil, 0, fmt.Errorf("%w: %d (order %d)", ErrVertexNotFound, root, g.Order())
	}

	n := g.Order()
	var (
		inTree   = fixedset.New[int](n)
		frontier = fixedpq.New[int64, int](n) // key = -cheapest connecting weight
		parent   = dense.Filled(n, NoRoot)
		mst      = make([]csr.Edge, 0, n-1)
		total    int64
	)

	frontier.Add(0, root)
	for frontier.Len() > 0 {
		// 1) Cheapest vertex joins the tree.
		w := -frontier.Max()
		u := frontier.Pop()
		inTree.Add(u)
		if p := parent.At(u); p != NoRoot {
			mst = append(mst, csr.Edge{From: p, To: u, Weight: w})
			total += w
		}

		// 2) Offer its edges to the vertices outside.
		for v, wv := range g.Arcs(u) {
			switch {
			case inTree.Has(v):
			case !frontier.Contains(v):
				frontier.Add(-wv, v)
				parent.Set(v, u)
			case -wv > frontier.Get(v):
				frontier.Update(-wv, v)
				parent.Set(v, u)
			}
		}
	}

	if inTree.Len() < n {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}
