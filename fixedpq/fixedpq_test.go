package fixedpq_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfixed/fixedpq"
)

func requireValid[K fixedpq.Number](t *testing.T, q *fixedpq.Queue[K, int]) {
	t.Helper()
	require.True(t, q.HeapOrdered(), "heap order violated: %v", q.HeapValues())
	require.True(t, q.PositionsConsistent(), "position table out of sync")
}

func TestAddPopInOrder(t *testing.T) {
	q := fixedpq.New[float32, int](10)
	for i := 0; i < 10; i++ {
		q.Add(float32(1.0/float64(i+1)), i)
	}
	for i := 0; i < 10; i++ {
		assert.Equal(t, i, q.Pop())
	}
	assert.Equal(t, 0, q.Len())
}

func TestAddPeek(t *testing.T) {
	q := fixedpq.New[float32, int](10)
	for i := 0; i < 10; i++ {
		q.Add(float32(1.0/float64(i+1)), i)
	}
	assert.Equal(t, 0, q.Peek())
	assert.Equal(t, 10, q.Len())
}

func TestAddMax(t *testing.T) {
	q := fixedpq.New[float32, int](10)
	for i := 0; i < 10; i++ {
		q.Add(float32(1.0/float64(i+1)), i)
	}
	assert.Equal(t, float32(1.0), q.Max())
}

func TestAddContains(t *testing.T) {
	q := fixedpq.New[float32, int](10)
	for i := 0; i < 10; i++ {
		if i%3 == 0 {
			q.Add(float32(1.0/float64(i+1)), i)
		}
	}
	for i := 0; i < 10; i++ {
		assert.Equal(t, i%3 == 0, q.Contains(i), "value %d", i)
	}
}

func TestRoundTrip_AddThenGet(t *testing.T) {
	q := fixedpq.New[int64, int](5)
	q.Add(-42, 3)
	assert.True(t, q.Contains(3))
	assert.Equal(t, int64(-42), q.Get(3))
}

func TestAddUpdate(t *testing.T) {
	q := fixedpq.New[float32, int](10)
	for i := 0; i < 10; i++ {
		q.Add(float32(1.0/float64(i+1)), i)
	}
	for i := 0; i < 10; i += 3 {
		q.Update(float32(i), i)
	}
	requireValid(t, q)

	assert.Equal(t, float32(9), q.Max())
	assert.Equal(t, 9, q.Peek())

	last := q.Max()
	for i := 0; i < 10; i++ {
		key := q.Max()
		x := q.Pop()
		assert.LessOrEqual(t, key, last)
		if x%3 == 0 {
			assert.Equal(t, float32(x), key)
		} else {
			assert.Equal(t, float32(1.0/float64(x+1)), key)
		}
		last = key
	}
}

func TestUpdateByDelta(t *testing.T) {
	q := fixedpq.New[float32, int](10)
	for i := 0; i < 10; i++ {
		q.Add(float32(-i), i)
	}
	for i := 0; i < 10; i += 3 {
		q.UpdateByDelta(float32(2*i), i)
	}
	requireValid(t, q)

	// boosted values 0,3,6,9 now carry keys 0,3,6,9
	assert.Equal(t, float32(9), q.Max())
	assert.Equal(t, 9, q.Peek())

	last := q.Max()
	for i := 0; i < 10; i++ {
		key := q.Max()
		x := q.Pop()
		assert.LessOrEqual(t, key, last)
		if x%3 == 0 {
			assert.Equal(t, float32(x), key)
		} else {
			assert.Equal(t, float32(-x), key)
		}
		last = key
	}
}

func TestAddPopReverseOrder(t *testing.T) {
	q := fixedpq.New[float64, int](10)
	for i := 0; i < 10; i++ {
		q.Add(float64(i)/10.0, i)
	}
	for i := 9; i >= 0; i-- {
		assert.Equal(t, i, q.Pop())
	}
}

func TestAddRemoveContains(t *testing.T) {
	q := fixedpq.New[float32, int](10)
	for i := 0; i < 10; i++ {
		q.Add(float32(1.0/float64(i+1)), i)
	}
	for i := 0; i < 10; i += 3 {
		q.Remove(i)
		requireValid(t, q)
	}
	for i := 0; i < 10; i++ {
		assert.Equal(t, i%3 != 0, q.Contains(i), "value %d", i)
	}
}

func TestRemove_MovedEntrySiftsUp(t *testing.T) {
	// Heap shape after the adds:
	//
	//	       100
	//	    50      90
	//	  10  20  80  70
	//
	// Removing 10 (slot 3) pulls 70 from the last slot into a hole whose
	// parent is 50, so the moved entry has to rise.
	q := fixedpq.New[int, int](8)
	keys := []int{100, 50, 90, 10, 20, 80, 70}
	for v, k := range keys {
		q.Add(k, v)
	}
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, q.HeapValues())

	q.Remove(3)
	requireValid(t, q)
	assert.Equal(t, []int{0, 6, 2, 1, 4, 5}, q.HeapValues())
}

func TestSiftDown_RightWinsTies(t *testing.T) {
	q := fixedpq.New[int, int](4)
	q.Add(9, 0)
	q.Add(5, 1)
	q.Add(5, 2)
	q.Update(1, 0) // root sinks; children tie at 5
	assert.Equal(t, []int{2, 1, 0}, q.HeapValues())

	q = fixedpq.New[int, int](4)
	q.Add(9, 0)
	q.Add(6, 1)
	q.Add(5, 2)
	q.Update(1, 0) // left is strictly larger
	assert.Equal(t, []int{1, 0, 2}, q.HeapValues())

	q = fixedpq.New[int, int](4)
	q.Add(9, 0)
	q.Add(6, 1)
	q.Update(1, 0) // only a left child
	assert.Equal(t, []int{1, 0}, q.HeapValues())
}

func TestClear(t *testing.T) {
	q := fixedpq.New[float32, int](10)
	for i := 0; i < 10; i++ {
		q.Add(float32(1.0/float64(i+1)), i)
	}
	q.Pop()
	q.Pop()

	q.Clear()
	assert.Equal(t, 0, q.Len())
	for i := 0; i < 10; i++ {
		assert.False(t, q.Contains(i))
	}

	// behaves like a fresh queue
	for i := 0; i < 10; i++ {
		q.Add(float32(i)/10.0, i)
	}
	for i := 9; i >= 0; i-- {
		assert.Equal(t, i, q.Pop())
	}
}

func TestRemainingAll(t *testing.T) {
	q := fixedpq.New[float32, int](10)
	for i := 0; i < 10; i++ {
		q.Add(float32(1.0/float64(i+1)), i)
	}

	count := 0
	for v := range q.Remaining() {
		count++
		assert.True(t, q.Contains(v))
	}
	assert.Equal(t, q.Len(), count)
}

func TestRemainingHalf(t *testing.T) {
	q := fixedpq.New[float32, int](10)
	for i := 0; i < 7; i++ {
		q.Add(float32(1.0/float64(i+1)), i)
	}
	q.Pop()
	q.Pop()

	got := slices.Collect(q.Remaining())
	assert.Equal(t, []int{2, 3, 4, 5, 6}, got)
	// restartable
	assert.Equal(t, got, slices.Collect(q.Remaining()))

	// early break
	for v := range q.Remaining() {
		assert.Equal(t, 2, v)
		break
	}
}

func TestRandomOperations_PreserveInvariants(t *testing.T) {
	const capacity = 50
	for seed := uint64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewPCG(seed, 99))
		q := fixedpq.New[int, int](capacity)
		ref := map[int]int{}

		for step := 0; step < 2000; step++ {
			v := rng.IntN(capacity)
			_, present := ref[v]
			switch op := rng.IntN(10); {
			case !present:
				k := rng.IntN(41) - 20
				q.Add(k, v)
				ref[v] = k
			case op < 3:
				q.Remove(v)
				delete(ref, v)
			case op < 6:
				k := rng.IntN(41) - 20
				q.Update(k, v)
				ref[v] = k
			case op < 8:
				d := rng.IntN(11) - 5
				q.UpdateByDelta(d, v)
				ref[v] += d
			default:
				top := q.Max()
				for _, k := range ref {
					require.LessOrEqual(t, k, top)
				}
				delete(ref, q.Pop())
			}
			requireValid(t, q)
			require.Equal(t, len(ref), q.Len())
		}
		for v, k := range ref {
			require.Equal(t, k, q.Get(v))
		}
	}
}

func TestSortedExtraction(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 5))
	q := fixedpq.New[float64, int](500)
	for v := 0; v < 500; v++ {
		q.Add(rng.NormFloat64(), v)
	}

	last := q.Max()
	for q.Len() > 0 {
		k := q.Max()
		q.Pop()
		require.LessOrEqual(t, k, last)
		last = k
	}
}

func TestUnsignedValueTypes(t *testing.T) {
	q := fixedpq.New[uint32, uint8](256)
	q.Add(7, 255)
	q.Add(9, 0)
	assert.Equal(t, uint8(0), q.Pop())
	assert.Equal(t, uint8(255), q.Pop())
	assert.Equal(t, 256, q.Cap())
}
