package random

import (
	"math/rand/v2"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvfixed/assert"
)

const (
	// swapWidth is the window size of one network swap.
	swapWidth = 8
	// minPseudoShuffle is the length below which PseudoShuffle falls back
	// to a full shuffle.
	minPseudoShuffle = 64
)

// NewSource returns a PCG source seeded with seed.
func NewSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}

// IntDist draws integers uniformly (up to modulo bias) from [min, max].
type IntDist[T constraints.Integer] struct {
	min  T
	span uint64 // max-min+1 in two's complement; 0 means the whole 64-bit range
}

// NewIntDist returns a distribution over the closed range [min, max].
func NewIntDist[T constraints.Integer](min, max T) IntDist[T] {
	if assert.Enabled {
		assert.LessEqual(min, max, "min <= max")
	}

	return IntDist[T]{min: min, span: width(min, max) + 1}
}

// Draw returns the next sample.
func (d IntDist[T]) Draw(src rand.Source) T {
	x := src.Uint64()
	if d.span != 0 {
		x %= d.span
	}

	return d.min + T(x)
}

// InRange returns a sample from the half-open range [min, max).
func InRange[T constraints.Integer](min, max T, src rand.Source) T {
	if assert.Enabled {
		assert.Less(min, max, "min < max")
	}

	return min + T(src.Uint64()%width(min, max))
}

// width returns max-min without overflowing T: sign extension makes the
// uint64 difference exact for every signed range.
func width[T constraints.Integer](min, max T) uint64 {
	return uint64(max) - uint64(min)
}

// FillWithRange fills data with samples from [min, max). When min == max
// every slot is set to min.
func FillWithRange[T constraints.Integer](data []T, min, max T, src rand.Source) {
	if min == max {
		for i := range data {
			data[i] = min
		}

		return
	}
	for i := range data {
		data[i] = InRange(min, max, src)
	}
}

// FillWithPerm fills data with offset, offset+1, ... and pseudo-shuffles it.
func FillWithPerm[T constraints.Integer](data []T, offset T, src rand.Source) {
	for i := range data {
		data[i] = T(i) + offset
	}
	PseudoShuffle(data, src)
}

// Shuffle performs a full Fisher–Yates shuffle of data.
func Shuffle[T any](data []T, src rand.Source) {
	rand.New(src).Shuffle(len(data), func(i, j int) {
		data[i], data[j] = data[j], data[i]
	})
}

// PseudoShuffle reorders data quickly. Slices shorter than 64 get a full
// shuffle; longer slices get len/8 rounds of an 8-wide swap network
// between two random windows, chosen from four fixed patterns.
func PseudoShuffle[T any](data []T, src rand.Source) {
	n := len(data)
	if n < minPseudoShuffle {
		Shuffle(data, src)

		return
	}

	window := NewIntDist(0, n-swapWidth)
	pattern := NewIntDist(0, len(swapNetworks))
	for round := 0; round < n/swapWidth; round++ {
		start := window.Draw(src)
		end := window.Draw(src)
		p := pattern.Draw(src)
		if p == len(swapNetworks) {
			// one draw in five leaves the windows untouched
			continue
		}
		for k, off := range swapNetworks[p] {
			data[start+k], data[end+off] = data[end+off], data[start+k]
		}
	}
}

// swapNetworks[p][k] is the offset in the second window that slot k of the
// first window swaps with.
var swapNetworks = [4][swapWidth]int{
	{1, 4, 7, 3, 2, 6, 0, 5},
	{5, 3, 1, 6, 0, 7, 2, 4},
	{3, 5, 6, 1, 2, 0, 4, 7},
	{7, 0, 2, 3, 4, 1, 6, 5},
}
