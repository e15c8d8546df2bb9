package grid_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/grid"
)

// BenchmarkNeighborIndices measures adjacency lookups on a 1000×1000 board.
// Complexity: O(1) per call.
func BenchmarkNeighborIndices(b *testing.B) {
	g, err := grid.New(1000, 1000, 1)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	buf := make([]int, 0, 4)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = g.NeighborIndices(i%g.Len(), buf[:0])
	}
}

// BenchmarkRegions measures Regions on a 500×500 board with a wall every
// seventh column.
func BenchmarkRegions(b *testing.B) {
	const n = 500
	g, err := grid.New(n, n, 1)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	for row := 0; row < n; row++ {
		for col := 6; col < n; col += 7 {
			_ = g.Block(grid.Position{Col: col, Row: row})
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Regions()
	}
}
