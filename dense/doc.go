// Package dense provides fixed-length contiguous buffers.
//
// A Buffer owns (or borrows) exactly Len() slots of T. It never grows on its
// own: the length is declared at construction, and only the explicit
// construction-time Resize, Shrink and Steal change it. The bounded
// containers in this module (fixedset, fixedmap, fixedpq) keep all of their
// state in Buffers, so no operation on them allocates after construction.
//
// View is the read-only counterpart, used to expose the packed prefix of a
// container without copying it.
//
// Index access is checked with a descriptive assertion in builds tagged
// lvdebug; release builds rely on Go's own slice bounds checks.
package dense
