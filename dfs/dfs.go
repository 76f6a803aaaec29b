package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvfixed/csr"
	"github.com/katalvlaran/lvfixed/fixedset"
)

type dfsWalker struct {
	graph *csr.Graph
	opts  DFSOptions
	res   *DFSResult
}

// DFS performs a depth-first traversal from start (or of the whole graph
// with WithFullTraversal). On a hook error Order is cleared and the wrapped
// error returned; on cancellation the partial result is returned with the
// context error.
func DFS(g *csr.Graph, start int, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	if !dopts.FullTraversal && !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	n := g.Order()
	res := &DFSResult{
		Order:   make([]int, 0, n),
		Depth:   make([]int, n),
		Parent:  make([]int, n),
		visited: fixedset.New[int](n),
	}
	for v := 0; v < n; v++ {
		res.Depth[v] = NoVertex
		res.Parent[v] = NoVertex
	}

	w := &dfsWalker{graph: g, opts: dopts, res: res}
	if dopts.FullTraversal {
		for v := 0; v < n; v++ {
			if !res.visited.Has(v) {
				if err := w.traverse(v, 0); err != nil {
					return res, err
				}
			}
		}
	} else if err := w.traverse(start, 0); err != nil {
		return res, err
	}

	return res, nil
}

func (w *dfsWalker) traverse(v, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	w.res.visited.Add(v)
	w.res.Depth[v] = depth
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", v, err)
		}
	}

	for _, u := range w.graph.Neighbors(v).All() {
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(u) {
			w.res.SkippedNeighbors++
			continue
		}
		if w.res.visited.Has(u) {
			continue
		}
		if w.opts.MaxDepth < 0 || depth+1 <= w.opts.MaxDepth {
			w.res.Parent[u] = v
		}
		if err := w.traverse(u, depth+1); err != nil {
			return err
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(v); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnExit hook for %d: %w", v, err)
		}
	}
	w.res.Order = append(w.res.Order, v)

	return nil
}
