package grid

// Regions finds all 4-connected areas of open (non-blocked) cells.
// Returns a slice of regions; each region lists dense cell indices in BFS
// discovery order, and regions appear in row-major order of their first cell.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for seen flags and output.
func (g *Grid) Regions() [][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	seen := make([]bool, len(g.cells))
	var regions [][]int
	var buf [4]int

	for i0 := range g.cells {
		if g.cells[i0].blocked || seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range g.NeighborIndices(queue[qi], buf[:0]) {
				if !seen[v] && !g.cells[v].blocked {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		regions = append(regions, queue)
	}

	return regions
}

// Connected reports whether a and b are both open and joined by a 4-connected
// run of open cells. A position is connected to itself when open.
func (g *Grid) Connected(a, b Position) bool {
	if !g.InBounds(a) || !g.InBounds(b) {
		return false
	}
	ia, ib := g.index(a), g.index(b)
	for _, region := range g.Regions() {
		hasA, hasB := false, false
		for _, i := range region {
			hasA = hasA || i == ia
			hasB = hasB || i == ib
		}
		if hasA || hasB {
			return hasA && hasB
		}
	}
	return false
}
