package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/lvfixed/csr"
	"github.com/katalvlaran/lvfixed/dense"
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice
// indexed values[y][x]. The input is copied.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	cells := dense.New[int](w * h)
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		copy(cells.Data()[y*w:], row)
	}

	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}

	return &GridGraph{
		Width:         w,
		Height:        h,
		Conn:          opts.Conn,
		LandThreshold: opts.LandThreshold,
		cells:         cells,
		offsets:       offsets,
	}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// NeighborOffsets returns the (dx,dy) steps for the configured connectivity.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.offsets
}

// Len returns the number of cells.
func (gg *GridGraph) Len() int { return gg.cells.Len() }

// Index maps (x,y) to its row-major index y*Width + x.
func (gg *GridGraph) Index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// Value returns the stored value of cell idx.
func (gg *GridGraph) Value(idx int) int { return gg.cells.At(idx) }

// IsLand reports whether cell idx meets LandThreshold.
func (gg *GridGraph) IsLand(idx int) bool {
	return gg.cells.At(idx) >= gg.LandThreshold
}

// neighbors calls fn with the index of every in-bounds neighbor of idx.
func (gg *GridGraph) neighbors(idx int, fn func(int)) {
	x, y := gg.Coordinate(idx)
	for _, d := range gg.offsets {
		nx, ny := x+d[0], y+d[1]
		if gg.InBounds(nx, ny) {
			fn(gg.Index(nx, ny))
		}
	}
}

// ToCSR converts the grid into an undirected *csr.Graph with one vertex per
// cell (row-major ids) and a unit-weight edge between neighboring cells.
func (gg *GridGraph) ToCSR() (*csr.Graph, error) {
	b := csr.NewBuilder(gg.Len())
	var err error
	for u := 0; u < gg.Len(); u++ {
		gg.neighbors(u, func(v int) {
			// each pair is seen from both ends; keep the forward one
			if err == nil && v > u {
				err = b.AddEdge(u, v, 1)
			}
		})
		if err != nil {
			return nil, err
		}
	}

	return b.Build()
}
