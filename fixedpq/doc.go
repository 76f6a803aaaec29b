// Package fixedpq provides an addressable max-priority queue over the value
// domain [0, capacity).
//
// Overview:
//
//   - Values are small integers; each present value carries a key
//     (priority). The entry with the largest key is at the root.
//   - A position table maps every value to its heap slot, so Contains, Get,
//     Peek and Max are O(1), and Add, Remove, Update, UpdateByDelta and Pop
//     are O(log n) for any value, not only the root.
//   - All storage is allocated by New. No operation allocates afterwards.
//
// Heap layout:
//
//	parent(i) = (i-1)/2    left(i) = 2i+1    right(i) = 2i+2
//
// Sift-down compares both children. When the right child exists and beats
// the sinking key, the larger child is taken and the right child wins ties;
// otherwise the left child is taken if it beats the key. The rule is fixed
// so that equal keys always produce the same heap shape.
//
// Typical use is a gain bucket in partition refinement or a decrease-key
// frontier in Dijkstra and Prim; for a min-queue store negated keys.
//
// Preconditions (value in the domain, no duplicate Add, no Remove, Update
// or Get of an absent value, no Pop/Peek/Max on an empty queue) are checked
// only in builds tagged lvdebug. A Queue is not safe for concurrent use.
package fixedpq
