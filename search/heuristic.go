package search

import "github.com/katalvlaran/gridpath/grid"

// Heuristic estimates the remaining cost from a to b.
type Heuristic func(a, b grid.Position) int

// Zero is the constant-0 heuristic; best-first search with Zero is Dijkstra.
func Zero(_, _ grid.Position) int { return 0 }

// Manhattan returns the Manhattan distance between the pixel origins of two
// cells of g, divided by the cell size. The result is the number of unit
// steps between them, a lower bound on the weighted cost because every
// weight is at least 1. It is not a tight bound once weights exceed 1.
func Manhattan(g *grid.Grid) Heuristic {
	size := g.CellSize()
	return func(a, b grid.Position) int {
		ax, ay := g.Origin(a)
		bx, by := g.Origin(b)
		return (abs(ax-bx) + abs(ay-by)) / size
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
