package refine

import (
	"github.com/katalvlaran/lvfixed/csr"
	"github.com/katalvlaran/lvfixed/dense"
	"github.com/katalvlaran/lvfixed/fixedmap"
	"github.com/katalvlaran/lvfixed/fixedpq"
	"github.com/katalvlaran/lvfixed/fixedset"
)

// fm holds the state of one refinement run. All buffers are sized once to
// the graph order and reused by every pass.
type fm struct {
	g       *csr.Graph
	where   []int
	weight  [2]int64
	maxPart int64
	cut     int64

	degree   dense.Buffer[int64]          // total incident edge weight
	boundary *fixedmap.Map[int, int64]    // vertex -> external weight, present iff > 0
	queues   [2]*fixedpq.Queue[int64, int] // unlocked boundary vertices by gain
	locked   *fixedset.Set[int]
	log      dense.Buffer[int]
	moves    int // entries of log in use
}

// score ranks a partition; smaller is better.
type score struct {
	overload int64
	cut      int64
	diff     int64
}

func (a score) less(b score) bool {
	switch {
	case a.overload != b.overload:
		return a.overload < b.overload
	case a.cut != b.cut:
		return a.cut < b.cut
	default:
		return a.diff < b.diff
	}
}

func newFM(g *csr.Graph, where []int, maxPart int64) *fm {
	n := g.Order()
	f := &fm{
		g:        g,
		where:    where,
		maxPart:  maxPart,
		degree:   dense.New[int64](n),
		boundary: fixedmap.New[int, int64](n),
		queues:   [2]*fixedpq.Queue[int64, int]{fixedpq.New[int64, int](n), fixedpq.New[int64, int](n)},
		locked:   fixedset.New[int](n),
		log:      dense.New[int](n),
	}
	for v := 0; v < n; v++ {
		f.weight[where[v]] += g.VertexWeight(v)
		var d int64
		for _, w := range g.Weights(v).All() {
			d += w
		}
		f.degree.Set(v, d)
	}

	return f
}

func (f *fm) score() score {
	heavy, light := f.weight[0], f.weight[1]
	if heavy < light {
		heavy, light = light, heavy
	}

	return score{overload: max(0, heavy-f.maxPart), cut: f.cut, diff: heavy - light}
}

func (f *fm) external(v int) int64 {
	if f.boundary.Has(v) {
		return f.boundary.Get(v)
	}

	return 0
}

func (f *fm) setExternal(v int, e int64) {
	switch {
	case e == 0 && f.boundary.Has(v):
		f.boundary.Remove(v)
	case e == 0:
	case f.boundary.Has(v):
		f.boundary.Set(v, e)
	default:
		f.boundary.Add(v, e)
	}
}

func (f *fm) gain(v int, ext int64) int64 {
	return 2*ext - f.degree.At(v)
}

// reset recomputes boundary, gains and cut from where.
func (f *fm) reset() {
	f.boundary.Clear()
	f.queues[0].Clear()
	f.queues[1].Clear()
	f.locked.Clear()
	f.moves = 0

	var cut int64
	for v := 0; v < f.g.Order(); v++ {
		var ext int64
		for u, w := range f.g.Arcs(v) {
			if f.where[u] != f.where[v] {
				ext += w
			}
		}
		if ext > 0 {
			f.boundary.Add(v, ext)
			f.queues[f.where[v]].Add(f.gain(v, ext), v)
			cut += ext
		}
	}
	f.cut = cut / 2
}

func (f *fm) feasible(v int) bool {
	from := f.where[v]
	to := 1 - from
	after := f.weight[to] + f.g.VertexWeight(v)

	return after <= f.maxPart || after < f.weight[from]
}

// next picks the vertex to move: the higher-gain feasible queue top, the
// heavier side on equal gain.
func (f *fm) next() (int, bool) {
	best, found := 0, false
	var bestGain int64
	for side, q := range f.queues {
		if q.Len() == 0 {
			continue
		}
		v := q.Peek()
		if !f.feasible(v) {
			continue
		}
		g := q.Max()
		if !found || g > bestGain || (g == bestGain && f.weight[side] > f.weight[f.where[best]]) {
			best, bestGain, found = v, g, true
		}
	}

	return best, found
}

// move flips v to the other side, locks it and updates neighbor gains.
func (f *fm) move(v int) {
	from := f.where[v]
	to := 1 - from
	ext := f.external(v)

	f.queues[from].Remove(v)
	f.locked.Add(v)
	f.cut -= f.gain(v, ext)
	f.flip(v)
	f.log.Set(f.moves, v)
	f.moves++
	f.setExternal(v, f.degree.At(v)-ext)

	for u, w := range f.g.Arcs(v) {
		e := f.external(u)
		if f.where[u] == to {
			e -= w
		} else {
			e += w
		}
		f.setExternal(u, e)
		if f.locked.Has(u) {
			continue
		}

		q := f.queues[f.where[u]]
		switch {
		case e == 0 && q.Contains(u):
			q.Remove(u)
		case e == 0:
		case q.Contains(u):
			q.Update(f.gain(u, e), u)
		default:
			q.Add(f.gain(u, e), u)
		}
	}
}

func (f *fm) flip(v int) {
	w := f.g.VertexWeight(v)
	f.weight[f.where[v]] -= w
	f.where[v] = 1 - f.where[v]
	f.weight[f.where[v]] += w
}

// pass runs one FM pass and returns the number of moves kept.
func (f *fm) pass() int {
	f.reset()

	bestMoves := 0
	bestScore := f.score()
	bestCut := f.cut
	for {
		v, ok := f.next()
		if !ok {
			break
		}
		f.move(v)
		if s := f.score(); s.less(bestScore) {
			bestMoves, bestScore, bestCut = f.moves, s, f.cut
		}
	}

	// roll back to the best prefix
	for i := f.moves - 1; i >= bestMoves; i-- {
		f.flip(f.log.At(i))
	}
	f.moves = bestMoves
	f.cut = bestCut

	return bestMoves
}
