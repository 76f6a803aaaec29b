// Package random provides fast, low-quality integer sampling and shuffles
// for randomized heuristics (initial partitions, tie shuffling).
//
// Everything draws from a math/rand/v2 Source, so callers choose the
// generator and the seed; NewSource returns a seeded PCG. None of the
// functions here is suitable for cryptographic use, and the modulo
// reduction in IntDist is slightly biased for spans that do not divide
// 2^64. That bias is accepted in exchange for one multiply-free draw.
//
// PseudoShuffle trades shuffle quality for speed on large slices: instead
// of a full Fisher–Yates pass it performs len/8 random 8-wide swap
// networks between two random windows.
package random
