package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/lvfixed/fixedset"
)

// Vertex colors.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // fully explored
)

// NoVertex marks an unset Depth or Parent entry.
const NoVertex = -1

var (
	// ErrGraphNil indicates a nil graph.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates a start vertex outside the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrUndirectedGraph indicates TopologicalSort on an undirected graph.
	ErrUndirectedGraph = errors.New("dfs: topological sort requires a directed graph")

	// ErrCycleDetected indicates a cycle in a graph that must be acyclic.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Option configures DFS.
type Option func(*DFSOptions)

// DFSOptions holds DFS parameters and hooks.
type DFSOptions struct {
	// Ctx allows cancellation; checked on every vertex.
	Ctx context.Context

	// OnVisit runs when a vertex is first entered (pre-order).
	OnVisit func(v int) error

	// OnExit runs after all descendants are explored (post-order).
	OnExit func(v int) error

	// MaxDepth limits recursion depth; negative means unlimited.
	MaxDepth int

	// FilterNeighbor skips neighbors for which it returns false.
	FilterNeighbor func(v int) bool

	// FullTraversal restarts DFS from every unvisited vertex in ascending
	// order instead of from the start vertex only.
	FullTraversal bool
}

// DefaultOptions returns no hooks, no depth limit and a background context.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit sets the pre-order hook.
func WithOnVisit(fn func(v int) error) Option {
	return func(o *DFSOptions) { o.OnVisit = fn }
}

// WithOnExit sets the post-order hook.
func WithOnExit(fn func(v int) error) Option {
	return func(o *DFSOptions) { o.OnExit = fn }
}

// WithMaxDepth limits traversal depth; vertices deeper than limit are not
// visited.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) { o.MaxDepth = limit }
}

// WithFilterNeighbor skips neighbors rejected by fn.
func WithFilterNeighbor(fn func(v int) bool) Option {
	return func(o *DFSOptions) { o.FilterNeighbor = fn }
}

// WithFullTraversal visits every component.
func WithFullTraversal() Option {
	return func(o *DFSOptions) { o.FullTraversal = true }
}

// DFSResult collects the outcome of a traversal.
type DFSResult struct {
	// Order is the post-order sequence (a vertex after its descendants).
	Order []int

	// Depth is the tree depth of each visited vertex, NoVertex otherwise.
	Depth []int

	// Parent is the DFS tree parent, NoVertex for roots and unvisited vertices.
	Parent []int

	// SkippedNeighbors counts neighbors rejected by FilterNeighbor.
	SkippedNeighbors int

	visited *fixedset.Set[int]
}

// Visited reports whether v was entered.
func (r *DFSResult) Visited(v int) bool {
	return v >= 0 && v < r.visited.Cap() && r.visited.Has(v)
}

// Discovery returns the pre-order sequence.
func (r *DFSResult) Discovery() []int {
	return r.visited.Members().Clone()
}
