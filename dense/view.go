package dense

import (
	"iter"
	"slices"

	"github.com/katalvlaran/lvfixed/assert"
)

// View is a read-only window over contiguous storage. A View taken from a
// container reflects later in-place writes to the covered slots, but its
// length is fixed when it is taken.
type View[T any] struct {
	data []T
}

// ViewOf wraps s as a read-only view.
func ViewOf[T any](s []T) View[T] {
	return View[T]{data: s[:len(s):len(s)]}
}

// Len returns the number of visible slots.
func (v View[T]) Len() int { return len(v.data) }

// At returns slot i.
func (v View[T]) At(i int) T {
	if assert.Enabled {
		assert.GreaterEqual(i, 0, "index >= 0")
		assert.Less(i, len(v.data), "index < Len()")
	}

	return v.data[i]
}

// Front returns slot 0.
func (v View[T]) Front() T { return v.At(0) }

// Back returns the last slot.
func (v View[T]) Back() T { return v.At(len(v.data) - 1) }

// All yields (index, value) pairs in order.
func (v View[T]) All() iter.Seq2[int, T] {
	return slices.All(v.data)
}

// Values yields the visible slots in order.
func (v View[T]) Values() iter.Seq[T] {
	return slices.Values(v.data)
}

// Clone copies the visible slots into a new slice owned by the caller.
func (v View[T]) Clone() []T {
	return slices.Clone(v.data)
}
