package fixedpq

import (
	"iter"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvfixed/assert"
	"github.com/katalvlaran/lvfixed/dense"
)

// Queue is an addressable max-heap of (key, value) pairs.
type Queue[K Number, V constraints.Integer] struct {
	heap     dense.Buffer[entry[K, V]]
	position dense.Buffer[int]
	size     int
}

// New creates an empty queue able to hold values 0 through capacity-1.
func New[K Number, V constraints.Integer](capacity int) *Queue[K, V] {
	return &Queue[K, V]{
		heap:     dense.New[entry[K, V]](capacity),
		position: dense.Filled(capacity, absent),
	}
}

// Add inserts value with the given key. value must be absent.
func (q *Queue[K, V]) Add(key K, value V) {
	if assert.Enabled {
		q.checkDomain(value)
		assert.Equal(q.position.At(int(value)), absent, "value not present")
	}

	i := q.size
	q.size++
	q.position.Set(int(value), i)
	q.heap.Set(i, entry[K, V]{key: key, value: value})
	q.siftUp(i)
}

// Remove deletes value from the queue. value must be present.
func (q *Queue[K, V]) Remove(value V) {
	if assert.Enabled {
		q.checkPresent(value)
	}

	q.fill(q.position.At(int(value)))
}

// Update sets the key of a present value and restores heap order.
func (q *Queue[K, V]) Update(key K, value V) {
	if assert.Enabled {
		q.checkPresent(value)
	}

	i := q.position.At(int(value))
	q.heap.Ptr(i).key = key
	q.reposition(i)
}

// UpdateByDelta adds delta to the key of a present value.
func (q *Queue[K, V]) UpdateByDelta(delta K, value V) {
	if assert.Enabled {
		q.checkPresent(value)
	}

	i := q.position.At(int(value))
	q.Update(q.heap.At(i).key+delta, value)
}

// Contains reports whether value is in the queue.
func (q *Queue[K, V]) Contains(value V) bool {
	if assert.Enabled {
		q.checkDomain(value)
	}

	return q.position.At(int(value)) != absent
}

// Get returns the key of a present value.
func (q *Queue[K, V]) Get(value V) K {
	if assert.Enabled {
		q.checkPresent(value)
	}

	return q.heap.At(q.position.At(int(value))).key
}

// Pop removes and returns the value with the largest key. The queue must
// not be empty.
func (q *Queue[K, V]) Pop() V {
	if assert.Enabled {
		assert.Greater(q.size, 0, "queue not empty")
	}

	value := q.heap.At(0).value
	q.fill(0)

	return value
}

// Peek returns the value with the largest key without removing it.
func (q *Queue[K, V]) Peek() V {
	if assert.Enabled {
		assert.Greater(q.size, 0, "queue not empty")
	}

	return q.heap.At(0).value
}

// Max returns the largest key.
func (q *Queue[K, V]) Max() K {
	if assert.Enabled {
		assert.Greater(q.size, 0, "queue not empty")
	}

	return q.heap.At(0).key
}

// Len returns the number of values in the queue.
func (q *Queue[K, V]) Len() int { return q.size }

// Cap returns the size of the value domain.
func (q *Queue[K, V]) Cap() int { return q.position.Len() }

// Clear empties the queue in O(Len()).
func (q *Queue[K, V]) Clear() {
	for i := 0; i < q.size; i++ {
		q.position.Set(int(q.heap.At(i).value), absent)
	}
	q.size = 0
}

// Remaining yields every value currently in the queue in ascending value
// order (not heap order). The sequence can be ranged over repeatedly; the
// queue must not be modified during a range.
func (q *Queue[K, V]) Remaining() iter.Seq[V] {
	return func(yield func(V) bool) {
		for v, pos := range q.position.All() {
			if pos == absent {
				continue
			}
			if !yield(V(v)) {
				return
			}
		}
	}
}

// swap exchanges heap slots a and b and their position entries.
func (q *Queue[K, V]) swap(a, b int) {
	va := q.heap.At(a).value
	vb := q.heap.At(b).value
	q.position.Swap(int(va), int(vb))
	q.heap.Swap(a, b)
}

// fill closes the hole at slot i left by a removed entry.
func (q *Queue[K, V]) fill(i int) {
	if assert.Enabled {
		assert.Less(i, q.size, "slot < size")
	}

	q.size--
	deleted := q.heap.At(i).value
	if i < q.size {
		// move the last entry into the hole; it may belong above or below it
		moved := q.heap.At(q.size)
		q.heap.Set(i, moved)
		q.position.Set(int(moved.value), i)
		q.reposition(i)
	}
	q.position.Set(int(deleted), absent)
}

// reposition restores heap order for a slot whose key changed.
func (q *Queue[K, V]) reposition(i int) {
	if i > 0 && q.heap.At(i).key > q.heap.At(parent(i)).key {
		q.siftUp(i)
	} else {
		q.siftDown(i)
	}
}

func (q *Queue[K, V]) siftUp(i int) {
	for i > 0 {
		p := parent(i)
		if q.heap.At(p).key >= q.heap.At(i).key {
			return
		}
		q.swap(i, p)
		i = p
	}
}

func (q *Queue[K, V]) siftDown(i int) {
	key := q.heap.At(i).key
	for {
		l, r := left(i), right(i)
		switch {
		case r < q.size && key < q.heap.At(r).key:
			if q.heap.At(r).key >= q.heap.At(l).key {
				q.swap(i, r)
				i = r
			} else {
				q.swap(i, l)
				i = l
			}
		case l < q.size && key < q.heap.At(l).key:
			q.swap(i, l)
			i = l
		default:
			return
		}
	}
}

func (q *Queue[K, V]) checkDomain(value V) {
	assert.GreaterEqual(value, 0, "value >= 0")
	assert.Less(uint64(value), uint64(q.position.Len()), "value < capacity")
}

func (q *Queue[K, V]) checkPresent(value V) {
	q.checkDomain(value)
	assert.NotEqual(q.position.At(int(value)), absent, "value present")
}
