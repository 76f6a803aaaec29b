package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvfixed/csr"
	"github.com/katalvlaran/lvfixed/dense"
	"github.com/katalvlaran/lvfixed/fixedset"
)

// walker encapsulates mutable BFS state.
//
// The discovered set doubles as the queue: members are packed in discovery
// order and a vertex is never removed, so Members()[head:] is exactly the
// FIFO of discovered but unvisited vertices.
type walker struct {
	graph  *csr.Graph
	opts   BFSOptions
	ctx    context.Context
	seen   *fixedset.Set[int]
	head   int
	depth  dense.Buffer[int]
	parent dense.Buffer[int]
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options. Arc weights are ignored.
// Returns ErrGraphNil, ErrOptionViolation or ErrStartVertexNotFound for
// invalid input, the context error on cancellation, or a wrapped OnVisit
// error. On error the partial result is returned alongside it.
func BFS(g *csr.Graph, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	n := g.Order()
	w := &walker{
		graph:  g,
		opts:   o,
		ctx:    o.Ctx,
		seen:   fixedset.New[int](n),
		depth:  dense.Filled(n, Unreached),
		parent: dense.Filled(n, Unreached),
	}

	w.enqueue(start, 0, Unreached)
	err := w.loop()

	return w.result(), err
}

func (w *walker) enqueue(v, d, parent int) {
	w.seen.Add(v)
	w.depth.Set(v, d)
	w.parent.Set(v, parent)
	w.opts.OnEnqueue(v, d)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for w.head < w.seen.Len() {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		v := w.seen.Members().At(w.head)
		d := w.depth.At(v)
		w.opts.OnDequeue(v, d)
		w.head++

		if err := w.opts.OnVisit(v, d); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", v, err)
		}

		w.enqueueNeighbors(v, d)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen
// neighbor of v.
func (w *walker) enqueueNeighbors(v, d int) {
	next := d + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph.Neighbors(v).All() {
		if w.seen.Has(nbr) || !w.opts.FilterNeighbor(v, nbr) {
			continue
		}
		w.enqueue(nbr, next, v)
	}
}

// result copies out the visited prefix and the per-vertex tables.
func (w *walker) result() *BFSResult {
	return &BFSResult{
		Order:  w.seen.Members().Clone()[:w.head],
		Depth:  w.depth.Steal(),
		Parent: w.parent.Steal(),
	}
}
