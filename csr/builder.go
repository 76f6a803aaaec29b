package csr

import (
	"fmt"

	"github.com/katalvlaran/lvfixed/dense"
	"github.com/katalvlaran/lvfixed/fixedset"
	"github.com/katalvlaran/lvfixed/vecmath"
)

// Builder accumulates edges for a Graph of fixed order.
type Builder struct {
	n       int
	opts    Options
	edges   []Edge
	vweight dense.Buffer[int64]
}

// NewBuilder returns a builder for a graph on vertices [0, n).
func NewBuilder(n int, opts ...Option) *Builder {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	b := &Builder{n: n, opts: cfg}
	if cfg.VertexWeights && n > 0 {
		b.vweight = dense.Filled[int64](n, 1)
	}

	return b
}

// AddEdge records the edge u->v (or u-v when undirected) with weight w.
func (b *Builder) AddEdge(u, v int, w int64) error {
	if err := b.checkEdge(Edge{From: u, To: v, Weight: w}); err != nil {
		return err
	}
	b.edges = append(b.edges, Edge{From: u, To: v, Weight: w})

	return nil
}

// SetVertexWeight sets the weight of u. It requires WithVertexWeights.
func (b *Builder) SetVertexWeight(u int, w int64) error {
	if u < 0 || u >= b.n {
		return fmt.Errorf("%w: vertex %d, order %d", ErrVertexOutOfRange, u, b.n)
	}
	if w < 0 {
		return fmt.Errorf("%w: vertex %d weight=%d", ErrNegativeWeight, u, w)
	}
	if !b.opts.VertexWeights {
		return ErrNoVertexWeights
	}
	b.vweight.Set(u, w)

	return nil
}

// Build lays the recorded edges out in CSR form.
func (b *Builder) Build() (*Graph, error) {
	if b.n <= 0 {
		return nil, ErrEmptyGraph
	}
	for _, e := range b.edges {
		if err := b.checkEdge(e); err != nil {
			return nil, err
		}
	}

	// 1) Row lengths; the exclusive prefix sum turns them into row starts
	//    and leaves the arc count in the extra last slot.
	offsets := dense.New[int](b.n + 1)
	for _, e := range b.edges {
		*offsets.Ptr(e.From)++
		if !b.opts.Directed {
			*offsets.Ptr(e.To)++
		}
	}
	arcs := vecmath.PrefixSumBuffer(&offsets)

	// 2) Scatter arcs into their rows.
	adj := dense.New[int](arcs)
	weights := dense.New[int64](arcs)
	cursor := dense.New[int](b.n)
	copy(cursor.Data(), offsets.Data()[:b.n])
	place := func(u, v int, w int64) {
		at := cursor.At(u)
		adj.Set(at, v)
		weights.Set(at, w)
		cursor.Set(u, at+1)
	}
	for _, e := range b.edges {
		place(e.From, e.To, e.Weight)
		if !b.opts.Directed {
			place(e.To, e.From, e.Weight)
		}
	}

	// 3) Reject parallel edges, one row at a time.
	seen := fixedset.New[int](b.n)
	for u := 0; u < b.n; u++ {
		for i := offsets.At(u); i < offsets.At(u+1); i++ {
			v := adj.At(i)
			if seen.Has(v) {
				return nil, fmt.Errorf("%w: %d->%d", ErrDuplicateEdge, u, v)
			}
			seen.Add(v)
		}
		seen.Clear()
	}

	g := &Graph{
		n:        b.n,
		directed: b.opts.Directed,
		offsets:  offsets,
		adj:      adj,
		weights:  weights,
		edges:    append([]Edge(nil), b.edges...),
	}
	if b.opts.VertexWeights {
		g.vweight = dense.Wrap(append([]int64(nil), b.vweight.Data()...))
		g.totalWeight = vecmath.Sum(g.vweight.Data())
	} else {
		g.totalWeight = int64(b.n)
	}

	return g, nil
}

func (b *Builder) checkEdge(e Edge) error {
	switch {
	case e.From < 0 || e.From >= b.n || e.To < 0 || e.To >= b.n:
		return fmt.Errorf("%w: edge %d->%d, order %d", ErrVertexOutOfRange, e.From, e.To, b.n)
	case e.From == e.To:
		return fmt.Errorf("%w: vertex %d", ErrSelfLoop, e.From)
	case e.Weight < 0:
		return fmt.Errorf("%w: edge %d->%d weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
	}

	return nil
}

// FromEdges builds a graph of order n from an edge list.
func FromEdges(n int, edges []Edge, opts ...Option) (*Graph, error) {
	b := NewBuilder(n, opts...)
	for _, e := range edges {
		if err := b.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, err
		}
	}

	return b.Build()
}
