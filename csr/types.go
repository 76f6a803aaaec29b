package csr

import "errors"

// Sentinel errors for graph construction.
var (
	// ErrEmptyGraph indicates a builder with no vertices.
	ErrEmptyGraph = errors.New("csr: graph has no vertices")

	// ErrVertexOutOfRange indicates a vertex outside [0, n).
	ErrVertexOutOfRange = errors.New("csr: vertex out of range")

	// ErrSelfLoop indicates an edge from a vertex to itself.
	ErrSelfLoop = errors.New("csr: self-loop not allowed")

	// ErrNegativeWeight indicates a negative edge or vertex weight.
	ErrNegativeWeight = errors.New("csr: negative weight")

	// ErrNoVertexWeights indicates SetVertexWeight on a builder created
	// without WithVertexWeights.
	ErrNoVertexWeights = errors.New("csr: vertex weights not enabled")

	// ErrDuplicateEdge indicates a parallel edge.
	ErrDuplicateEdge = errors.New("csr: duplicate edge")
)

// Edge is one input edge.
type Edge struct {
	From   int
	To     int
	Weight int64
}

// Options configures a Builder.
type Options struct {
	Directed      bool // store each edge in its From row only
	VertexWeights bool // allocate per-vertex weights (default weight 1)
}

// Option mutates Options.
type Option func(*Options)

// WithDirected builds a directed graph.
func WithDirected() Option {
	return func(o *Options) { o.Directed = true }
}

// WithVertexWeights enables SetVertexWeight.
func WithVertexWeights() Option {
	return func(o *Options) { o.VertexWeights = true }
}

// DefaultOptions returns an undirected graph with unit vertex weights.
func DefaultOptions() Options {
	return Options{}
}
