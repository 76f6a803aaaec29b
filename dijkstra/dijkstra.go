package dijkstra

import (
	"fmt"
	"math"
	"slices"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/lvfixed/csr"
	"github.com/katalvlaran/lvfixed/fixedpq"
)

// Dijkstra computes shortest distances from Options.Source to every vertex
// of g. prev is nil unless WithReturnPath is given.
//
// Preconditions and validation (in order):
//  1. A Source must be configured (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. Source must lie in [0, g.Order()) (ErrVertexNotFound).
func Dijkstra(g *csr.Graph, opts ...Option) ([]int64, []int, error) {
	// 1) Build options.
	cfg := DefaultOptions(NoVertex)
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate.
	if cfg.Source == NoVertex {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %d (order %d)", ErrVertexNotFound, cfg.Source, g.Order())
	}

	// 3) Run.
	r := newRunner(g, cfg)
	r.process()

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g        *csr.Graph
	options  Options
	dist     []int64
	prev     []int // nil unless ReturnPath
	settled  *bitset.BitSet
	frontier *fixedpq.Queue[int64, int] // key = -tentative distance
}

func newRunner(g *csr.Graph, cfg Options) *runner {
	n := g.Order()
	r := &runner{
		g:        g,
		options:  cfg,
		dist:     make([]int64, n),
		settled:  bitset.New(uint(n)),
		frontier: fixedpq.New[int64, int](n),
	}
	for v := range r.dist {
		r.dist[v] = math.MaxInt64
	}
	if cfg.ReturnPath {
		r.prev = make([]int, n)
		for v := range r.prev {
			r.prev[v] = NoVertex
		}
	}

	r.dist[cfg.Source] = 0
	r.frontier.Add(0, cfg.Source)

	return r
}

// process settles vertices in order of distance until the frontier is
// empty or the nearest tentative distance exceeds MaxDistance.
func (r *runner) process() {
	for r.frontier.Len() > 0 {
		// 1) Nearest vertex; its distance is final.
		d := -r.frontier.Max()
		if d > r.options.MaxDistance {
			break
		}
		u := r.frontier.Pop()
		r.settled.Set(uint(u))

		// 2) Relax its arcs.
		r.relax(u, d)
	}
}

// relax improves tentative distances of u's unsettled neighbors.
func (r *runner) relax(u int, du int64) {
	for v, w := range r.g.Arcs(u) {
		if w >= r.options.InfEdgeThreshold || r.settled.Test(uint(v)) {
			continue
		}
		// du + w > MaxDistance, written so it cannot overflow.
		if w > r.options.MaxDistance-du {
			continue
		}
		nd := du + w
		if nd >= r.dist[v] {
			continue
		}

		r.dist[v] = nd
		if r.prev != nil {
			r.prev[v] = u
		}
		if r.frontier.Contains(v) {
			r.frontier.Update(-nd, v)
		} else {
			r.frontier.Add(-nd, v)
		}
	}
}

// PathTo rebuilds the vertex sequence from the source to target using a
// predecessor slice returned by Dijkstra. It returns nil when target was
// not reached.
func PathTo(prev []int, source, target int) []int {
	if target < 0 || target >= len(prev) {
		return nil
	}
	var path []int
	for v := target; v != NoVertex; v = prev[v] {
		path = append(path, v)
		if v == source {
			break
		}
	}
	if path[len(path)-1] != source {
		return nil
	}
	slices.Reverse(path)

	return path
}
