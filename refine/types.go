package refine

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/rs/zerolog"
)

// Sentinel errors.
var (
	// ErrNilGraph is returned for a nil graph.
	ErrNilGraph = errors.New("refine: graph is nil")

	// ErrDirectedGraph is returned for a directed graph; cuts are defined
	// on undirected edges only.
	ErrDirectedGraph = errors.New("refine: graph must be undirected")

	// ErrBadPartition is returned when where has the wrong length or a side
	// other than 0 or 1.
	ErrBadPartition = errors.New("refine: invalid partition")

	// ErrBadImbalance is returned for a negative or NaN imbalance.
	ErrBadImbalance = errors.New("refine: imbalance must be a non-negative number")

	// ErrBadPasses is returned for MaxPasses <= 0.
	ErrBadPasses = errors.New("refine: MaxPasses must be positive")
)

// Initial selects how Bisect builds its starting partition.
type Initial int

const (
	// InitGrow fills side 0 in breadth-first order from a random vertex.
	InitGrow Initial = iota
	// InitRandom fills side 0 in random vertex order.
	InitRandom
)

// Options configures Refine and Bisect.
type Options struct {
	Imbalance float64         // allowed excess of a side over total/2, as a fraction
	MaxPasses int             // upper bound on FM passes
	Seed      uint64          // seed for Bisect's random choices
	Initial   Initial         // Bisect starting partition
	Logger    zerolog.Logger  // per-pass debug events; Nop by default
	Ctx       context.Context // checked between passes

	err error
}

// Option mutates Options. Invalid values are recorded and reported by
// Refine or Bisect.
type Option func(*Options)

// DefaultOptions returns 3% imbalance, 10 passes, seed 1, graph growing and
// a silent logger.
func DefaultOptions() Options {
	return Options{
		Imbalance: 0.03,
		MaxPasses: 10,
		Seed:      1,
		Initial:   InitGrow,
		Logger:    zerolog.Nop(),
		Ctx:       context.Background(),
	}
}

// WithImbalance sets the balance tolerance eps.
func WithImbalance(eps float64) Option {
	return func(o *Options) {
		if eps < 0 || math.IsNaN(eps) {
			o.err = fmt.Errorf("%w: %v", ErrBadImbalance, eps)

			return
		}
		o.Imbalance = eps
	}
}

// WithMaxPasses caps the number of passes.
func WithMaxPasses(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: %d", ErrBadPasses, n)

			return
		}
		o.MaxPasses = n
	}
}

// WithSeed seeds Bisect's random source.
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithInitial selects Bisect's starting partition.
func WithInitial(m Initial) Option {
	return func(o *Options) { o.Initial = m }
}

// WithLogger receives one debug event per pass.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithContext allows cancellation between passes.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// Result is a refined partition.
type Result struct {
	Where       []int    // side of every vertex
	Cut         int64    // edge cut of Where
	PartWeights [2]int64 // vertex weight per side
	Passes      int      // passes run
	Moves       int      // moves kept after rollback, over all passes
	Elapsed     time.Duration
}

// Parts returns the vertex set of each side.
func (r *Result) Parts() [2]*roaring.Bitmap {
	parts := [2]*roaring.Bitmap{roaring.New(), roaring.New()}
	for v, side := range r.Where {
		parts[side].Add(uint32(v))
	}

	return parts
}
