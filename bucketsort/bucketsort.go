package bucketsort

import (
	"fmt"
	"math/rand/v2"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvfixed/assert"
	"github.com/katalvlaran/lvfixed/random"
	"github.com/katalvlaran/lvfixed/vecmath"
)

// FixedKeys returns perm such that keys[perm[0]] <= keys[perm[1]] <= ...
// with ties kept in input order. Every key must lie in [0, len(keys)].
func FixedKeys[K, I constraints.Integer](keys []K) []I {
	perm, _ := fixedKeys[K, I](keys)

	return perm
}

// StableBucketPermutation is FixedKeys under a descriptive name.
func StableBucketPermutation[K, I constraints.Integer](keys []K) []I {
	return FixedKeys[K, I](keys)
}

// FixedKeysChecked validates the key range before sorting.
func FixedKeysChecked[K, I constraints.Integer](keys []K) ([]I, error) {
	n := len(keys)
	for i, k := range keys {
		if k < 0 || uint64(k) > uint64(n) {
			return nil, fmt.Errorf("%w: keys[%d]=%d, want [0,%d]", ErrKeyOutOfRange, i, k, n)
		}
	}
	perm, _ := fixedKeys[K, I](keys)

	return perm, nil
}

// FixedKeysRandom is FixedKeys with the members of each bucket pseudo-shuffled,
// which randomizes tie order.
func FixedKeysRandom[K, I constraints.Integer](keys []K, src rand.Source) []I {
	perm, starts := fixedKeys[K, I](keys)
	for b := 0; b+1 < len(starts); b++ {
		if lo, hi := starts[b], starts[b+1]; hi-lo > 1 {
			random.PseudoShuffle(perm[lo:hi], src)
		}
	}

	return perm
}

// fixedKeys returns the permutation and the bucket start offsets
// (len(keys)+2 entries, the last one equal to len(keys)).
func fixedKeys[K, I constraints.Integer](keys []K) ([]I, []int) {
	n := len(keys)

	// 1) Histogram, one bucket per key value plus a terminator.
	starts := make([]int, n+2)
	for _, k := range keys {
		if assert.Enabled {
			assert.GreaterEqual(k, K(0), "key >= 0")
			assert.LessEqual(uint64(k), uint64(n), "key <= len(keys)")
		}
		starts[k]++
	}

	// 2) Exclusive prefix sum turns counts into start offsets.
	vecmath.PrefixSumExclusive(starts)

	// 3) Stable placement; cursor walks each bucket forward.
	cursor := make([]int, n+1)
	copy(cursor, starts[:n+1])
	perm := make([]I, n)
	for i, k := range keys {
		perm[cursor[k]] = I(i)
		cursor[k]++
	}

	return perm, starts
}
