package dense

import (
	"iter"

	"github.com/katalvlaran/lvfixed/assert"
)

// Buffer is a fixed-length block of T.
type Buffer[T any] struct {
	data []T
}

// New allocates a buffer of n zero-valued slots.
func New[T any](n int) Buffer[T] {
	if assert.Enabled {
		assert.GreaterEqual(n, 0, "n >= 0")
	}

	return Buffer[T]{data: make([]T, n)}
}

// Filled allocates a buffer of n slots, each set to v.
func Filled[T any](n int, v T) Buffer[T] {
	b := New[T](n)
	b.Fill(v)

	return b
}

// Wrap borrows s as the buffer storage. Writes through the buffer are
// visible in s and vice versa.
func Wrap[T any](s []T) Buffer[T] {
	return Buffer[T]{data: s}
}

// Len returns the number of slots.
func (b *Buffer[T]) Len() int { return len(b.data) }

// At returns slot i.
func (b *Buffer[T]) At(i int) T {
	if assert.Enabled {
		b.check(i)
	}

	return b.data[i]
}

// Set stores v in slot i.
func (b *Buffer[T]) Set(i int, v T) {
	if assert.Enabled {
		b.check(i)
	}
	b.data[i] = v
}

// Ptr returns a pointer to slot i, valid until the buffer is resized or
// stolen.
func (b *Buffer[T]) Ptr(i int) *T {
	if assert.Enabled {
		b.check(i)
	}

	return &b.data[i]
}

// Swap exchanges slots i and j.
func (b *Buffer[T]) Swap(i, j int) {
	if assert.Enabled {
		b.check(i)
		b.check(j)
	}
	b.data[i], b.data[j] = b.data[j], b.data[i]
}

// Front returns slot 0.
func (b *Buffer[T]) Front() T { return b.At(0) }

// Back returns the last slot.
func (b *Buffer[T]) Back() T { return b.At(len(b.data) - 1) }

// Fill sets every slot to v.
func (b *Buffer[T]) Fill(v T) {
	for i := range b.data {
		b.data[i] = v
	}
}

// Data returns the backing slice.
func (b *Buffer[T]) Data() []T { return b.data }

// All yields (index, value) for every slot in order.
func (b *Buffer[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range b.data {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values yields every slot in order.
func (b *Buffer[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range b.data {
			if !yield(v) {
				return
			}
		}
	}
}

// View returns a read-only window over the first n slots.
func (b *Buffer[T]) View(n int) View[T] {
	if assert.Enabled {
		assert.LessEqual(n, len(b.data), "n <= Len()")
	}

	return View[T]{data: b.data[:n:n]}
}

// Shrink lowers the length to n. It is a no-op when n >= Len().
func (b *Buffer[T]) Shrink(n int) {
	if n < len(b.data) {
		b.data = b.data[:n]
	}
}

// Resize reallocates the buffer to n slots, keeping the common prefix.
// New slots are zero. It is meant for construction time; the bounded
// containers never call it.
func (b *Buffer[T]) Resize(n int) {
	if assert.Enabled {
		assert.GreaterEqual(n, 0, "n >= 0")
	}
	next := make([]T, n)
	copy(next, b.data)
	b.data = next
}

// Steal hands the storage to the caller and leaves the buffer empty.
func (b *Buffer[T]) Steal() []T {
	s := b.data
	b.data = nil

	return s
}

func (b *Buffer[T]) check(i int) {
	assert.GreaterEqual(i, 0, "index >= 0")
	assert.Less(i, len(b.data), "index < Len()")
}
