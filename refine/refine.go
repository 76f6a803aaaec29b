package refine

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvfixed/bfs"
	"github.com/katalvlaran/lvfixed/bucketsort"
	"github.com/katalvlaran/lvfixed/csr"
	"github.com/katalvlaran/lvfixed/random"
	"github.com/katalvlaran/lvfixed/timer"
)

// EdgeCut returns the total weight of edges of g whose endpoints lie on
// different sides of where.
func EdgeCut(g *csr.Graph, where []int) (int64, error) {
	if err := validate(g, where); err != nil {
		return 0, err
	}

	var cut int64
	for _, e := range g.Edges() {
		if where[e.From] != where[e.To] {
			cut += e.Weight
		}
	}

	return cut, nil
}

// Refine improves the bisection where of g. where is not modified; the
// refined partition is returned in Result.Where. If the context is
// cancelled between passes, the partition reached so far is returned
// together with the context error.
func Refine(g *csr.Graph, where []int, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if err := validate(g, where); err != nil {
		return nil, err
	}

	return run(g, append([]int(nil), where...), cfg)
}

// Bisect builds an initial bisection of g (see Initial) and refines it.
func Bisect(g *csr.Graph, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if err := validateGraph(g); err != nil {
		return nil, err
	}

	where, err := initial(g, cfg)
	if err != nil {
		return nil, err
	}

	return run(g, where, cfg)
}

func run(g *csr.Graph, where []int, cfg Options) (*Result, error) {
	tm := timer.New()
	if err := tm.Start(); err != nil {
		return nil, err
	}

	total := g.TotalVertexWeight()
	maxPart := int64(math.Ceil((1 + cfg.Imbalance) * float64(total) / 2))
	f := newFM(g, where, maxPart)
	f.reset()

	res := &Result{}
	var runErr error
	for res.Passes < cfg.MaxPasses {
		if runErr = cfg.Ctx.Err(); runErr != nil {
			break
		}
		kept := f.pass()
		res.Passes++
		res.Moves += kept
		cfg.Logger.Debug().
			Int("pass", res.Passes).
			Int("kept", kept).
			Int64("cut", f.cut).
			Int64("part0", f.weight[0]).
			Int64("part1", f.weight[1]).
			Msg("fm pass")
		if kept == 0 {
			break
		}
	}
	if err := tm.Stop(); err != nil {
		return nil, err
	}

	res.Where = f.where
	res.Cut = f.cut
	res.PartWeights = f.weight
	res.Elapsed = tm.Elapsed()

	return res, runErr
}

// initial returns a starting partition with side 0 filled to about half
// the total vertex weight.
func initial(g *csr.Graph, cfg Options) ([]int, error) {
	n := g.Order()
	src := random.NewSource(cfg.Seed)

	var order []int
	switch cfg.Initial {
	case InitRandom:
		order = make([]int, n)
		random.FillWithPerm(order, 0, src)
	default:
		// Breadth-first layers from a random vertex, ties shuffled;
		// other components come last.
		res, err := bfs.BFS(g, random.InRange(0, n, src))
		if err != nil {
			return nil, err
		}
		depth := res.Depth
		for v, d := range depth {
			if d == bfs.Unreached {
				depth[v] = n
			}
		}
		order = bucketsort.FixedKeysRandom[int, int](depth, src)
	}

	half := g.TotalVertexWeight() / 2
	where := make([]int, n)
	var w0 int64
	for _, v := range order {
		if w0 < half {
			w0 += g.VertexWeight(v)
		} else {
			where[v] = 1
		}
	}

	return where, nil
}

func validateGraph(g *csr.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	if g.Directed() {
		return ErrDirectedGraph
	}

	return nil
}

func validate(g *csr.Graph, where []int) error {
	if err := validateGraph(g); err != nil {
		return err
	}
	if len(where) != g.Order() {
		return fmt.Errorf("%w: %d entries for %d vertices", ErrBadPartition, len(where), g.Order())
	}
	for v, side := range where {
		if side != 0 && side != 1 {
			return fmt.Errorf("%w: vertex %d on side %d", ErrBadPartition, v, side)
		}
	}

	return nil
}
