// Package fixedmap provides a map from the integer domain [0, capacity) to
// arbitrary values with O(1) Has, Get, Add and Remove and no hashing.
//
// It uses the same layout as fixedset plus a values buffer kept aligned
// with the packed keys: values[slot[k]] is the value of key k. Remove moves
// the last key/value pair into the hole together, so Keys() and Values()
// stay aligned index by index.
//
// Preconditions are checked only in builds tagged lvdebug. A Map is not
// safe for concurrent use.
package fixedmap
