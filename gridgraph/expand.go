package gridgraph

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvfixed/dense"
	"github.com/katalvlaran/lvfixed/fixedpq"
	"github.com/katalvlaran/lvfixed/fixedset"
)

// ExpandIsland finds a minimum-conversion path of water cells connecting
// component srcComp to component dstComp, as numbered by
// ConnectedComponents. Entering a water cell costs 1, entering land is free.
// Returns the cell indices of the path (from a srcComp cell to the first
// dstComp cell reached) and the number of water cells on it.
//
// Behavior:
//  1. Validate component indices.
//  2. Multi-source Dijkstra from all srcComp cells on a fixedpq.Queue keyed
//     by negated cost.
//  3. Stop when a dstComp cell is settled.
//  4. Reconstruct the path via predecessors.
func (gg *GridGraph) ExpandIsland(srcComp, dstComp int) (path []int, cost int, err error) {
	comps := gg.ConnectedComponents()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, fmt.Errorf("%w: (%d, %d) of %d", ErrComponentIndex, srcComp, dstComp, len(comps))
	}

	n := gg.Len()
	dst := fixedset.New[int](n)
	for _, i := range comps[dstComp] {
		dst.Add(i)
	}
	done := fixedset.New[int](n)
	prev := dense.Filled(n, -1)
	frontier := fixedpq.New[int, int](n)
	for _, i := range comps[srcComp] {
		frontier.Add(0, i)
	}

	target := -1
	for frontier.Len() > 0 {
		d := -frontier.Max()
		u := frontier.Pop()
		done.Add(u)
		if dst.Has(u) {
			target, cost = u, d
			break
		}
		gg.neighbors(u, func(v int) {
			if done.Has(v) {
				return
			}
			nd := d
			if !gg.IsLand(v) {
				nd++
			}
			switch {
			case !frontier.Contains(v):
				frontier.Add(-nd, v)
			case -nd > frontier.Get(v):
				frontier.Update(-nd, v)
			default:
				return
			}
			prev.Set(v, u)
		})
	}

	// every cell is passable, so the destination is always reached
	for at := target; at >= 0; at = prev.At(at) {
		path = append(path, at)
	}
	slices.Reverse(path)

	return path, cost, nil
}
