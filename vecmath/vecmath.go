package vecmath

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvfixed/dense"
)

// Number is any integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum returns the sum of data.
func Sum[T Number](data []T) T {
	var s T
	for _, v := range data {
		s += v
	}

	return s
}

// Increment sets data[i] = start + i*inc.
func Increment[T Number](data []T, start, inc T) {
	v := start
	for i := range data {
		data[i] = v
		v += inc
	}
}

// PrefixSumExclusive replaces data[i] with the sum of data[:i] and returns
// the total.
func PrefixSumExclusive[T Number](data []T) T {
	var sum T
	for i, v := range data {
		data[i] = sum
		sum += v
	}

	return sum
}

// IncrementBuffer is Increment over a dense buffer.
func IncrementBuffer[T Number](b *dense.Buffer[T], start, inc T) {
	Increment(b.Data(), start, inc)
}

// PrefixSumBuffer is PrefixSumExclusive over a dense buffer.
func PrefixSumBuffer[T Number](b *dense.Buffer[T]) T {
	return PrefixSumExclusive(b.Data())
}
