package dfs

import (
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvfixed/csr"
	"github.com/katalvlaran/lvfixed/dense"
)

type cycleFinder struct {
	graph   *csr.Graph
	state   dense.Buffer[uint8]
	pathPos dense.Buffer[int] // index on path, -1 when off it
	path    []int
	seen    map[string]struct{}
	cycles  [][]int
}

// DetectCycles reports whether g has a cycle and lists the distinct
// cycles closed by DFS back edges, each in canonical closed form
// (see package doc), sorted lexicographically.
func DetectCycles(g *csr.Graph) (bool, [][]int, error) {
	if g == nil {
		return false, nil, ErrGraphNil
	}

	n := g.Order()
	f := &cycleFinder{
		graph:   g,
		state:   dense.New[uint8](n),
		pathPos: dense.Filled(n, -1),
		path:    make([]int, 0, n),
		seen:    make(map[string]struct{}),
	}
	for v := 0; v < n; v++ {
		if f.state.At(v) == White {
			f.visit(v, NoVertex)
		}
	}

	if len(f.cycles) == 0 {
		return false, nil, nil
	}
	slices.SortFunc(f.cycles, func(a, b []int) int { return slices.Compare(a, b) })

	return true, f.cycles, nil
}

func (f *cycleFinder) visit(v, parent int) {
	f.state.Set(v, Gray)
	f.pathPos.Set(v, len(f.path))
	f.path = append(f.path, v)

	for _, u := range f.graph.Neighbors(v).All() {
		// the tree edge back to the parent is not a cycle
		if !f.graph.Directed() && u == parent {
			continue
		}
		switch f.state.At(u) {
		case White:
			f.visit(u, v)
		case Gray:
			f.record(f.path[f.pathPos.At(u):])
		}
	}

	f.path = f.path[:len(f.path)-1]
	f.pathPos.Set(v, -1)
	f.state.Set(v, Black)
}

func (f *cycleFinder) record(cycle []int) {
	canon := canonical(cycle, !f.graph.Directed())
	var sb strings.Builder
	for _, v := range canon {
		sb.WriteString(strconv.Itoa(v))
		sb.WriteByte(',')
	}
	sig := sb.String()
	if _, ok := f.seen[sig]; ok {
		return
	}
	f.seen[sig] = struct{}{}
	f.cycles = append(f.cycles, canon)
}

// canonical rotates cycle to start at its smallest vertex, picks the
// direction with the smaller second vertex when undirected, and closes it.
func canonical(cycle []int, undirected bool) []int {
	n := len(cycle)
	start := 0
	for i, v := range cycle {
		if v < cycle[start] {
			start = i
		}
	}

	out := make([]int, 0, n+1)
	step := 1
	if undirected && n > 2 && cycle[(start-1+n)%n] < cycle[(start+1)%n] {
		step = -1
	}
	for i, k := 0, start; i < n; i, k = i+1, (k+step+n)%n {
		out = append(out, cycle[k])
	}

	return append(out, out[0])
}
