package fixedmap

import (
	"iter"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvfixed/assert"
	"github.com/katalvlaran/lvfixed/dense"
)

const absent = -1

// Map is a bounded map from [0, Cap()) to V.
type Map[K constraints.Integer, V any] struct {
	keys   dense.Buffer[K]
	values dense.Buffer[V]
	slot   dense.Buffer[int]
	size   int
}

// New creates an empty map over the key domain [0, capacity).
func New[K constraints.Integer, V any](capacity int) *Map[K, V] {
	return &Map[K, V]{
		keys:   dense.New[K](capacity),
		values: dense.New[V](capacity),
		slot:   dense.Filled(capacity, absent),
	}
}

// Has reports whether key is present.
func (m *Map[K, V]) Has(key K) bool {
	if assert.Enabled {
		m.checkDomain(key)
	}

	return m.slot.At(int(key)) != absent
}

// Get returns the value stored for key. key must be present.
func (m *Map[K, V]) Get(key K) V {
	if assert.Enabled {
		m.checkPresent(key)
	}

	return m.values.At(m.slot.At(int(key)))
}

// Add stores key with value. key must be absent.
func (m *Map[K, V]) Add(key K, value V) {
	if assert.Enabled {
		m.checkDomain(key)
		assert.Equal(m.slot.At(int(key)), absent, "key not present")
	}

	m.keys.Set(m.size, key)
	m.values.Set(m.size, value)
	m.slot.Set(int(key), m.size)
	m.size++
}

// Set overwrites the value of a present key in place.
func (m *Map[K, V]) Set(key K, value V) {
	if assert.Enabled {
		m.checkPresent(key)
	}

	m.values.Set(m.slot.At(int(key)), value)
}

// Remove deletes key by moving the last key/value pair into its slot.
// key must be present.
func (m *Map[K, V]) Remove(key K) {
	if assert.Enabled {
		m.checkPresent(key)
	}

	m.size--
	lastKey := m.keys.At(m.size)
	place := m.slot.At(int(key))
	m.keys.Set(place, lastKey)
	m.values.Set(place, m.values.At(m.size))
	m.slot.Set(int(lastKey), place)
	m.slot.Set(int(key), absent)
}

// Len returns the number of present keys.
func (m *Map[K, V]) Len() int { return m.size }

// Cap returns the key domain size.
func (m *Map[K, V]) Cap() int { return m.slot.Len() }

// Slot returns the packed position of key and whether it is present.
func (m *Map[K, V]) Slot(key K) (int, bool) {
	if assert.Enabled {
		m.checkDomain(key)
	}
	p := m.slot.At(int(key))

	return p, p != absent
}

// Keys returns a read-only view of the present keys in packing order.
func (m *Map[K, V]) Keys() dense.View[K] { return m.keys.View(m.size) }

// Values returns a read-only view of the values, aligned with Keys().
func (m *Map[K, V]) Values() dense.View[V] { return m.values.View(m.size) }

// All yields key/value pairs in packing order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := 0; i < m.size; i++ {
			if !yield(m.keys.At(i), m.values.At(i)) {
				return
			}
		}
	}
}

// Clear removes every key in O(Len()). Stale values are left in place.
func (m *Map[K, V]) Clear() {
	for _, k := range m.keys.Data()[:m.size] {
		m.slot.Set(int(k), absent)
	}
	m.size = 0
}

func (m *Map[K, V]) checkDomain(key K) {
	assert.GreaterEqual(key, 0, "key >= 0")
	assert.Less(uint64(key), uint64(m.slot.Len()), "key < capacity")
}

func (m *Map[K, V]) checkPresent(key K) {
	m.checkDomain(key)
	assert.NotEqual(m.slot.At(int(key)), absent, "key present")
}
