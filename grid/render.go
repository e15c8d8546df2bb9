package grid

import "strings"

// Render draws the board as ASCII, one line per row. Blocked cells print
// '#', the objective 'G', path cells '*', closed cells 'o', frontier cells
// '+', weighted open cells their weight digit and plain open cells '.'.
// If agent is non-nil, its cell prints '@'.
func (g *Grid) Render(agent *Position) string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			c := g.cells[row*g.cols+col]
			b.WriteByte(symbolFor(c, agent != nil && *agent == c.pos))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// String renders the board without an agent.
func (g *Grid) String() string {
	return g.Render(nil)
}

func symbolFor(c Cell, agent bool) byte {
	switch {
	case agent:
		return '@'
	case c.blocked:
		return SymbolBlocked
	case c.objective:
		return SymbolObjective
	case c.mark == MarkPath:
		return '*'
	case c.mark == MarkClosed:
		return 'o'
	case c.mark == MarkFrontier:
		return '+'
	case c.weight > 1 && c.weight <= 9:
		return byte('0' + c.weight)
	}
	return SymbolOpen
}
