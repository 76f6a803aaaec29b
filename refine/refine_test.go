package refine_test

import (
	"bytes"
	"context"
	"math"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfixed/csr"
	"github.com/katalvlaran/lvfixed/gridgraph"
	"github.com/katalvlaran/lvfixed/refine"
)

// twoCliques returns K4 on 0..3 and K4 on 4..7 joined by the edge 3-4.
func twoCliques(t testing.TB) *csr.Graph {
	t.Helper()
	b := csr.NewBuilder(8)
	for _, base := range []int{0, 4} {
		for a := 0; a < 4; a++ {
			for c := a + 1; c < 4; c++ {
				require.NoError(t, b.AddEdge(base+a, base+c, 1))
			}
		}
	}
	require.NoError(t, b.AddEdge(3, 4, 1))
	g, err := b.Build()
	require.NoError(t, err)

	return g
}

// grid returns the side x side grid graph with unit weights.
func grid(t testing.TB, side int) *csr.Graph {
	t.Helper()
	cells := make([][]int, side)
	for y := range cells {
		cells[y] = make([]int, side)
	}
	gg, err := gridgraph.NewGridGraph(cells, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	g, err := gg.ToCSR()
	require.NoError(t, err)

	return g
}

func randomGraph(t testing.TB, rng *rand.Rand, n, m int, weighted bool) *csr.Graph {
	t.Helper()
	b := csr.NewBuilder(n, csr.WithVertexWeights())
	type pair struct{ u, v int }
	seen := make(map[pair]bool)
	for i := 0; i < m; i++ {
		u, v := rng.IntN(n), rng.IntN(n)
		if u > v {
			u, v = v, u
		}
		if u == v || seen[pair{u, v}] {
			continue
		}
		seen[pair{u, v}] = true
		require.NoError(t, b.AddEdge(u, v, 1+rng.Int64N(5)))
	}
	if weighted {
		for v := 0; v < n; v++ {
			require.NoError(t, b.SetVertexWeight(v, rng.Int64N(5)))
		}
	}
	g, err := b.Build()
	require.NoError(t, err)

	return g
}

// checkResult verifies the bookkeeping of r against g.
func checkResult(t *testing.T, g *csr.Graph, r *refine.Result) {
	t.Helper()
	cut, err := refine.EdgeCut(g, r.Where)
	require.NoError(t, err)
	require.Equal(t, cut, r.Cut, "reported cut")

	var weights [2]int64
	for v, side := range r.Where {
		weights[side] += g.VertexWeight(v)
	}
	require.Equal(t, weights, r.PartWeights)

	parts := r.Parts()
	require.Equal(t, uint64(g.Order()), parts[0].GetCardinality()+parts[1].GetCardinality())
	for v, side := range r.Where {
		require.True(t, parts[side].Contains(uint32(v)))
	}
}

func overload(g *csr.Graph, eps float64, w [2]int64) int64 {
	bound := int64(math.Ceil((1 + eps) * float64(g.TotalVertexWeight()) / 2))

	return max(0, max(w[0], w[1])-bound)
}

func TestValidation(t *testing.T) {
	g := twoCliques(t)

	_, err := refine.Refine(nil, nil)
	assert.ErrorIs(t, err, refine.ErrNilGraph)

	directed, err := csr.FromEdges(2, []csr.Edge{{From: 0, To: 1, Weight: 1}}, csr.WithDirected())
	require.NoError(t, err)
	_, err = refine.Refine(directed, []int{0, 1})
	assert.ErrorIs(t, err, refine.ErrDirectedGraph)
	_, err = refine.Bisect(directed)
	assert.ErrorIs(t, err, refine.ErrDirectedGraph)

	_, err = refine.Refine(g, []int{0, 1})
	assert.ErrorIs(t, err, refine.ErrBadPartition)
	_, err = refine.Refine(g, []int{0, 1, 2, 0, 1, 0, 1, 0})
	assert.ErrorIs(t, err, refine.ErrBadPartition)
	_, err = refine.EdgeCut(g, []int{0})
	assert.ErrorIs(t, err, refine.ErrBadPartition)

	where := make([]int, 8)
	_, err = refine.Refine(g, where, refine.WithImbalance(-0.1))
	assert.ErrorIs(t, err, refine.ErrBadImbalance)
	_, err = refine.Refine(g, where, refine.WithImbalance(math.NaN()))
	assert.ErrorIs(t, err, refine.ErrBadImbalance)
	_, err = refine.Refine(g, where, refine.WithMaxPasses(0))
	assert.ErrorIs(t, err, refine.ErrBadPasses)
	_, err = refine.Bisect(g, refine.WithMaxPasses(-1))
	assert.ErrorIs(t, err, refine.ErrBadPasses)
}

func TestEdgeCut(t *testing.T) {
	g := twoCliques(t)
	cut, err := refine.EdgeCut(g, []int{0, 0, 0, 0, 1, 1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, int64(1), cut)

	cut, err = refine.EdgeCut(g, []int{0, 1, 0, 1, 0, 1, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, int64(9), cut)
}

func TestRefine_TwoCliques(t *testing.T) {
	g := twoCliques(t)
	where := []int{0, 1, 0, 1, 0, 1, 0, 1}

	res, err := refine.Refine(g, where)
	require.NoError(t, err)
	checkResult(t, g, res)

	assert.Equal(t, int64(1), res.Cut)
	assert.Equal(t, [2]int64{4, 4}, res.PartWeights)
	assert.Equal(t, []int{0, 0, 0, 0, 1, 1, 1, 1}, res.Where)
	assert.Equal(t, 2, res.Passes)
	assert.Equal(t, 4, res.Moves)
	assert.Equal(t, []int{0, 1, 0, 1, 0, 1, 0, 1}, where, "input is not modified")
}

func TestRefine_OptimalIsStable(t *testing.T) {
	g := twoCliques(t)
	res, err := refine.Refine(g, []int{0, 0, 0, 0, 1, 1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Cut)
	assert.Equal(t, 1, res.Passes)
	assert.Zero(t, res.Moves)
}

func TestRefine_GridCheckerboard(t *testing.T) {
	g := grid(t, 4)
	where := make([]int, 16)
	for v := range where {
		where[v] = (v%4 + v/4) % 2
	}
	before, err := refine.EdgeCut(g, where)
	require.NoError(t, err)
	require.Equal(t, int64(24), before)

	res, err := refine.Refine(g, where)
	require.NoError(t, err)
	checkResult(t, g, res)
	assert.Equal(t, int64(4), res.Cut)
	assert.Equal(t, [2]int64{8, 8}, res.PartWeights)
}

func TestRefine_NeverWorse(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	for trial := 0; trial < 100; trial++ {
		n := 2 + rng.IntN(40)
		g := randomGraph(t, rng, n, rng.IntN(3*n+1), trial%2 == 0)
		where := make([]int, n)
		for v := range where {
			where[v] = rng.IntN(2)
		}
		eps := []float64{0, 0.03, 0.1, 0.5}[trial%4]

		var w0 [2]int64
		for v, side := range where {
			w0[side] += g.VertexWeight(v)
		}
		cut0, err := refine.EdgeCut(g, where)
		require.NoError(t, err)

		res, err := refine.Refine(g, where, refine.WithImbalance(eps))
		require.NoError(t, err)
		checkResult(t, g, res)

		before, after := overload(g, eps, w0), overload(g, eps, res.PartWeights)
		require.LessOrEqual(t, after, before, "trial %d overload", trial)
		if after == before {
			require.LessOrEqual(t, res.Cut, cut0, "trial %d cut", trial)
		}
	}
}

func TestBisect(t *testing.T) {
	for _, init := range []refine.Initial{refine.InitGrow, refine.InitRandom} {
		g := grid(t, 8)
		res, err := refine.Bisect(g, refine.WithInitial(init), refine.WithSeed(3))
		require.NoError(t, err)
		checkResult(t, g, res)
		assert.Zero(t, overload(g, 0.03, res.PartWeights))
		assert.LessOrEqual(t, res.Cut, int64(20), "init %d", init)
		assert.Greater(t, int64(res.Elapsed), int64(0), "timer stopped after the passes")
	}
}

func TestBisect_Deterministic(t *testing.T) {
	g := randomGraph(t, rand.New(rand.NewPCG(5, 5)), 60, 200, true)
	a, err := refine.Bisect(g, refine.WithSeed(9))
	require.NoError(t, err)
	b, err := refine.Bisect(g, refine.WithSeed(9))
	require.NoError(t, err)
	assert.Equal(t, a.Where, b.Where)
	assert.Equal(t, a.Cut, b.Cut)
}

func TestBisect_Disconnected(t *testing.T) {
	// two components of 3 vertices each
	g, err := csr.FromEdges(6, []csr.Edge{
		{From: 0, To: 1, Weight: 1}, {From: 1, To: 2, Weight: 1},
		{From: 3, To: 4, Weight: 1}, {From: 4, To: 5, Weight: 1},
	})
	require.NoError(t, err)

	res, err := refine.Bisect(g, refine.WithImbalance(0))
	require.NoError(t, err)
	checkResult(t, g, res)
	assert.Equal(t, int64(0), res.Cut)
	assert.Equal(t, [2]int64{3, 3}, res.PartWeights)
}

func TestRefine_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	res, err := refine.Refine(twoCliques(t), []int{0, 1, 0, 1, 0, 1, 0, 1}, refine.WithLogger(logger))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, res.Passes)
	assert.Contains(t, lines[len(lines)-1], `"message":"fm pass"`)
	assert.Contains(t, lines[len(lines)-1], `"cut":1`)
}

func TestRefine_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	where := []int{0, 1, 0, 1, 0, 1, 0, 1}
	res, err := refine.Refine(twoCliques(t), where, refine.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	assert.Zero(t, res.Passes)
	assert.Equal(t, where, res.Where)
	assert.Equal(t, int64(9), res.Cut)
}
