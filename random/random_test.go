package random_test

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvfixed/random"
)

func isPerm(t *testing.T, data []int, offset int) {
	t.Helper()
	sorted := slices.Clone(data)
	slices.Sort(sorted)
	for i, v := range sorted {
		require.Equal(t, i+offset, v)
	}
}

func TestIntDist_StaysInClosedRange(t *testing.T) {
	src := random.NewSource(1)
	d := random.NewIntDist(-3, 4)
	seen := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		x := d.Draw(src)
		require.GreaterOrEqual(t, x, -3)
		require.LessOrEqual(t, x, 4)
		seen[x] = true
	}
	assert.Len(t, seen, 8, "every value of the range is drawn")
}

func TestIntDist_SingleValue(t *testing.T) {
	src := random.NewSource(2)
	d := random.NewIntDist[uint8](7, 7)
	for i := 0; i < 10; i++ {
		assert.Equal(t, uint8(7), d.Draw(src))
	}
}

func TestIntDist_FullRange(t *testing.T) {
	src := random.NewSource(3)
	d := random.NewIntDist[uint64](0, ^uint64(0))
	a, b := d.Draw(src), d.Draw(src)
	assert.NotEqual(t, a, b)
}

func TestIntDist_Uniform(t *testing.T) {
	const (
		buckets = 10
		draws   = 100000
	)
	src := random.NewSource(4)
	d := random.NewIntDist(0, buckets-1)
	obs := make([]float64, buckets)
	for i := 0; i < draws; i++ {
		obs[d.Draw(src)]++
	}
	exp := make([]float64, buckets)
	for i := range exp {
		exp[i] = draws / buckets
	}

	chi := stat.ChiSquare(obs, exp)
	// 99.9th percentile of chi-square with 9 degrees of freedom.
	assert.Less(t, chi, 27.877, "chi-square %.2f", chi)
}

func TestInRange_HalfOpen(t *testing.T) {
	src := random.NewSource(5)
	for i := 0; i < 1000; i++ {
		x := random.InRange(10, 13, src)
		require.GreaterOrEqual(t, x, 10)
		require.Less(t, x, 13)
	}
}

func TestInRange_WideSignedRange(t *testing.T) {
	src := random.NewSource(11)
	seen := make(map[int8]bool)
	for i := 0; i < 5000; i++ {
		x := random.InRange[int8](-100, 100, src)
		require.GreaterOrEqual(t, x, int8(-100))
		require.Less(t, x, int8(100))
		seen[x] = true
	}
	assert.Len(t, seen, 200, "every value of the range is drawn")

	for i := 0; i < 1000; i++ {
		require.LessOrEqual(t, random.InRange[int64](math.MinInt64, 0, src), int64(-1))
	}
}

func TestIntDist_WideSignedRange(t *testing.T) {
	src := random.NewSource(12)
	d := random.NewIntDist[int8](-128, 127)
	neg, pos := 0, 0
	for i := 0; i < 2000; i++ {
		if d.Draw(src) < 0 {
			neg++
		} else {
			pos++
		}
	}
	assert.Greater(t, neg, 800)
	assert.Greater(t, pos, 800)

	wide := random.NewIntDist[int64](math.MinInt64, 0)
	for i := 0; i < 1000; i++ {
		require.LessOrEqual(t, wide.Draw(src), int64(0))
	}

	data := make([]int16, 1000)
	random.FillWithRange[int16](data, -30000, 30000, src)
	for _, v := range data {
		require.GreaterOrEqual(t, v, int16(-30000))
		require.Less(t, v, int16(30000))
	}
}

func TestFillWithRange(t *testing.T) {
	src := random.NewSource(6)
	data := make([]int, 500)
	random.FillWithRange(data, 5, 9, src)
	for _, v := range data {
		require.GreaterOrEqual(t, v, 5)
		require.Less(t, v, 9)
	}

	random.FillWithRange(data, 3, 3, src)
	for _, v := range data {
		require.Equal(t, 3, v)
	}
}

func TestFillWithPerm(t *testing.T) {
	for _, n := range []int{0, 1, 5, 63, 64, 65, 1000} {
		data := make([]int, n)
		random.FillWithPerm(data, 4, random.NewSource(uint64(n)))
		isPerm(t, data, 4)
	}
}

func TestShuffle_KeepsElements(t *testing.T) {
	data := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	random.Shuffle(data, random.NewSource(7))
	isPerm(t, data, 0)
}

func TestPseudoShuffle_Large(t *testing.T) {
	const n = 4096
	data := make([]int, n)
	for i := range data {
		data[i] = i
	}
	random.PseudoShuffle(data, random.NewSource(8))
	isPerm(t, data, 0)

	moved := 0
	for i, v := range data {
		if i != v {
			moved++
		}
	}
	assert.Greater(t, moved, n/4, "a shuffle moves a sizeable share of elements")
}

func TestSameSeed_SameSequence(t *testing.T) {
	a := make([]int, 256)
	b := make([]int, 256)
	random.FillWithPerm(a, 0, random.NewSource(99))
	random.FillWithPerm(b, 0, random.NewSource(99))
	assert.Equal(t, a, b)
}
