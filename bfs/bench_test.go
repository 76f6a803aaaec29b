package bfs_test

import (
	"testing"

	"github.com/katalvlaran/lvfixed/bfs"
)

// BenchmarkBFS_Chain measures BFS on a linear chain of N+1 vertices.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	pairs := make([][2]int, N)
	for i := range pairs {
		pairs[i] = [2]int{i, i + 1}
	}
	g := build(b, N+1, pairs)

	b.ReportAllocs()
	b.SetBytes(int64(2*N + 1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}

// BenchmarkBFS_BinaryTree runs BFS on a complete binary tree of depth 10.
func BenchmarkBFS_BinaryTree(b *testing.B) {
	const depth = 10
	nodeCount := (1 << depth) - 1
	pairs := make([][2]int, 0, nodeCount-1)
	for v := 1; v < nodeCount; v++ {
		pairs = append(pairs, [2]int{(v - 1) / 2, v})
	}
	g := build(b, nodeCount, pairs)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}
