// Package fixedset provides a set over the integer domain [0, capacity) with
// O(1) Has, Add and Remove and no hashing.
//
// Layout:
//
//	members  packed present elements, valid in [0, Len())
//	slot     one entry per domain value: position in members, or absent
//
// Invariant: for every present e, members[slot[e]] == e, and Len() equals
// the number of present entries. Remove moves the last packed element into
// the hole (swap-to-last), so iteration order is the packing order and is
// not preserved across removals.
//
// Example layout for the set {2, 5, 1} over capacity 6:
//
//	slot    [ - 2 0 - - 1 ]      members [ 2 5 1 . . . ]
//	          0 1 2 3 4 5                  0 1 2
//	                                            ^ Len()=3
//
// Preconditions (value inside the domain, no duplicate add, no remove of an
// absent value) are checked only in builds tagged lvdebug. A Set is not
// safe for concurrent use.
package fixedset
