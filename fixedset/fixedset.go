package fixedset

import (
	"iter"

	"github.com/bits-and-blooms/bitset"
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvfixed/assert"
	"github.com/katalvlaran/lvfixed/dense"
)

// absent marks a domain value with no position in members.
const absent = -1

// Set is a bounded set over [0, Cap()).
type Set[T constraints.Integer] struct {
	members dense.Buffer[T]
	slot    dense.Buffer[int]
	size    int
}

// New creates an empty set over the domain [0, capacity).
func New[T constraints.Integer](capacity int) *Set[T] {
	return &Set[T]{
		members: dense.New[T](capacity),
		slot:    dense.Filled(capacity, absent),
	}
}

// Has reports whether e is present.
func (s *Set[T]) Has(e T) bool {
	if assert.Enabled {
		s.checkDomain(e)
	}

	return s.slot.At(int(e)) != absent
}

// Add inserts e. e must be absent.
func (s *Set[T]) Add(e T) {
	if assert.Enabled {
		s.checkDomain(e)
		assert.Equal(s.slot.At(int(e)), absent, "element not present")
	}

	s.members.Set(s.size, e)
	s.slot.Set(int(e), s.size)
	s.size++
}

// Remove deletes e by moving the last packed element into its slot.
// e must be present.
func (s *Set[T]) Remove(e T) {
	if assert.Enabled {
		s.checkDomain(e)
		assert.NotEqual(s.slot.At(int(e)), absent, "element present")
	}

	s.size--
	last := s.members.At(s.size)
	place := s.slot.At(int(e))
	s.members.Set(place, last)
	s.slot.Set(int(last), place)
	s.slot.Set(int(e), absent)
}

// Len returns the number of present elements.
func (s *Set[T]) Len() int { return s.size }

// Cap returns the domain size.
func (s *Set[T]) Cap() int { return s.slot.Len() }

// Slot returns the packed position of e and whether e is present.
func (s *Set[T]) Slot(e T) (int, bool) {
	if assert.Enabled {
		s.checkDomain(e)
	}
	p := s.slot.At(int(e))

	return p, p != absent
}

// Members returns a read-only view of the packed elements.
func (s *Set[T]) Members() dense.View[T] {
	return s.members.View(s.size)
}

// Data returns the packed elements as a mutable slice of length Len().
// Reordering it in place leaves the inverse index stale, so the set must
// not be queried or mutated afterwards.
func (s *Set[T]) Data() []T {
	return s.members.Data()[:s.size]
}

// All yields the present elements in packing order.
func (s *Set[T]) All() iter.Seq[T] {
	return s.Members().Values()
}

// Clear removes every element in O(Len()).
func (s *Set[T]) Clear() {
	for _, e := range s.members.Data()[:s.size] {
		s.slot.Set(int(e), absent)
	}
	s.size = 0
}

// Bits returns a snapshot of the present elements as a bitset of length
// Cap().
func (s *Set[T]) Bits() *bitset.BitSet {
	b := bitset.New(uint(s.Cap()))
	for _, e := range s.members.Data()[:s.size] {
		b.Set(uint(e))
	}

	return b
}

func (s *Set[T]) checkDomain(e T) {
	assert.GreaterEqual(e, 0, "element >= 0")
	assert.Less(uint64(e), uint64(s.slot.Len()), "element < capacity")
}
