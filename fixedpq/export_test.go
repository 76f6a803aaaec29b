package fixedpq

// Test bridge: white-box checks of the heap and position table for
// fixedpq_test. Compiled only with the package tests.

// HeapOrdered reports whether every slot's key is <= its parent's key.
func (q *Queue[K, V]) HeapOrdered() bool {
	for i := 1; i < q.size; i++ {
		if q.heap.At(parent(i)).key < q.heap.At(i).key {
			return false
		}
	}

	return true
}

// PositionsConsistent reports whether the position table is the exact
// inverse of the heap values.
func (q *Queue[K, V]) PositionsConsistent() bool {
	present := 0
	for v, pos := range q.position.All() {
		if pos == absent {
			continue
		}
		present++
		if pos >= q.size || int(q.heap.At(pos).value) != v {
			return false
		}
	}

	return present == q.size
}

// HeapValues returns the values in heap slot order.
func (q *Queue[K, V]) HeapValues() []V {
	out := make([]V, q.size)
	for i := range out {
		out[i] = q.heap.At(i).value
	}

	return out
}
