package dfs

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvfixed/csr"
	"github.com/katalvlaran/lvfixed/dense"
)

// TopoOption configures TopologicalSort.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx context.Context
}

func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext allows cancellation of TopologicalSort.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

type topoSorter struct {
	graph *csr.Graph
	opts  topoOptions
	state dense.Buffer[uint8]
	order []int // post-order
}

// TopologicalSort returns the vertices of the directed graph g so that
// every arc points forward, or ErrCycleDetected.
func TopologicalSort(g *csr.Graph, options ...TopoOption) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirectedGraph
	}
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}

	n := g.Order()
	t := &topoSorter{
		graph: g,
		opts:  opts,
		state: dense.New[uint8](n),
		order: make([]int, 0, n),
	}
	for v := 0; v < n; v++ {
		if t.state.At(v) == White {
			if err := t.visit(v); err != nil {
				return nil, err
			}
		}
	}
	slices.Reverse(t.order)

	return t.order, nil
}

func (t *topoSorter) visit(v int) error {
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}

	switch t.state.At(v) {
	case Gray:
		return fmt.Errorf("%w: back edge into %d", ErrCycleDetected, v)
	case Black:
		return nil
	}

	t.state.Set(v, Gray)
	for _, u := range t.graph.Neighbors(v).All() {
		if err := t.visit(u); err != nil {
			return err
		}
	}
	t.state.Set(v, Black)
	t.order = append(t.order, v)

	return nil
}
