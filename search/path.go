package search

import "github.com/katalvlaran/gridpath/grid"

// Reconstruct follows cameFrom back from goal to start and returns the dense
// indices from start to goal inclusive. A goal without a predecessor chain
// yields a single-element path.
func Reconstruct(cameFrom map[int]int, start, goal int) []int {
	path := []int{goal}
	for cur := goal; cur != start; {
		prev, ok := cameFrom[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// EmitPath reports each path cell to OnVisit as MarkPath, polling Continue
// before every step, and sums the weights after the start. ok is false if
// Continue stopped the emission.
func EmitPath(g *grid.Grid, path []int, o Options) (positions []grid.Position, cost int, ok bool) {
	positions = make([]grid.Position, 0, len(path))
	for k, i := range path {
		if !o.Continue() {
			return nil, 0, false
		}
		p := g.PositionOf(i)
		o.OnVisit(p, grid.MarkPath)
		positions = append(positions, p)
		if k > 0 {
			cost += g.Weight(i)
		}
	}
	return positions, cost, true
}
