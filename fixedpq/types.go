package fixedpq

import "golang.org/x/exp/constraints"

// Number is the set of key types: any integer or floating-point type.
// Keys need ordering and addition only.
type Number interface {
	constraints.Integer | constraints.Float
}

// entry is one heap slot.
type entry[K Number, V constraints.Integer] struct {
	key   K
	value V
}

// absent marks a value that is not in the heap.
const absent = -1

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return 2*i + 1 }
func right(i int) int  { return 2*i + 2 }
