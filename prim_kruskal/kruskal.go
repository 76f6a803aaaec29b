package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/lvfixed/csr"
	"github.com/katalvlaran/lvfixed/dense"
	"github.com/katalvlaran/lvfixed/vecmath"
)

// Kruskal builds a minimum spanning tree by adding edges in weight order.
func Kruskal(g *csr.Graph) ([]csr.Edge, int64, error) {
	if g == nil || g.Directed() {
		return nil, 0, ErrInvalidGraph
	}

	n := g.Order()
	if n == 1 {
		return []csr.Edge{}, 0, nil
	}

	// 1) Edges by weight, ties in insertion order.
	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 2) Union-find with path halving and union by rank.
	d := newDisjointSet(n)

	var (
		mst   = make([]csr.Edge, 0, n-1)
		total int64
	)
	for _, e := range edges {
		if d.union(e.From, e.To) {
			mst = append(mst, e)
			total += e.Weight
			if len(mst) == n-1 {
				break
			}
		}
	}

	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}

type disjointSet struct {
	parent dense.Buffer[int]
	rank   dense.Buffer[uint8]
}

func newDisjointSet(n int) *disjointSet {
	d := &disjointSet{
		parent: dense.New[int](n),
		rank:   dense.New[uint8](n),
	}
	vecmath.IncrementBuffer(&d.parent, 0, 1)

	return d
}

func (d *disjointSet) find(u int) int {
	for p := d.parent.At(u); p != u; p = d.parent.At(u) {
		d.parent.Set(u, d.parent.At(p))
		u = d.parent.At(u)
	}

	return u
}

// union merges the components of u and v and reports whether they differed.
func (d *disjointSet) union(u, v int) bool {
	ru, rv := d.find(u), d.find(v)
	if ru == rv {
		return false
	}
	switch {
	case d.rank.At(ru) < d.rank.At(rv):
		d.parent.Set(ru, rv)
	case d.rank.At(ru) > d.rank.At(rv):
		d.parent.Set(rv, ru)
	default:
		d.parent.Set(rv, ru)
		*d.rank.Ptr(ru)++
	}

	return true
}
