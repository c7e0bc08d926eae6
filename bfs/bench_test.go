package bfs_test

import (
	"testing"

	"github.com/katalvlaran/gridnav/bfs"
	"github.com/katalvlaran/gridnav/gridgraph"
)

// BenchmarkBFS_Open measures BFS corner to corner on an open 50×100 board.
func BenchmarkBFS_Open(b *testing.B) {
	g, err := gridgraph.New(50, 100, gridgraph.Cell{}, gridgraph.Cell{Row: 49, Col: 99}, nil)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g)
	}
}
