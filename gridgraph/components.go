package gridgraph

import (
	"slices"

	"github.com/katalvlaran/lvfixed/fixedset"
)

// ConnectedComponents finds all contiguous regions ("islands") of land
// cells according to gg.Conn. Components are ordered by their first cell
// in row-major order; each lists cell indices in breadth-first order.
//
// The seen set doubles as the BFS queue: its packed member array holds the
// cells in discovery order, so each component is a contiguous run of it.
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := fixedset.New[int](gg.Len())
	var comps [][]int

	for i0 := 0; i0 < gg.Len(); i0++ {
		if !gg.IsLand(i0) || seen.Has(i0) {
			continue
		}
		start := seen.Len()
		seen.Add(i0)
		for head := start; head < seen.Len(); head++ {
			gg.neighbors(seen.Data()[head], func(v int) {
				if gg.IsLand(v) && !seen.Has(v) {
					seen.Add(v)
				}
			})
		}
		comps = append(comps, slices.Clone(seen.Data()[start:]))
	}

	return comps
}
