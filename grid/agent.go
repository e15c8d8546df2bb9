package grid

import "sync"

// Agent is the movable marker that walks the board. It only knows its
// position; all board state lives in Grid.
type Agent struct {
	mu  sync.RWMutex
	pos Position
}

// NewAgent returns an agent at the origin (0,0).
func NewAgent() *Agent {
	return &Agent{}
}

// Position returns the current agent position.
func (a *Agent) Position() Position {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.pos
}

// MoveTo places the agent at p.
func (a *Agent) MoveTo(p Position) {
	a.mu.Lock()
	a.pos = p
	a.mu.Unlock()
}

// Reset returns the agent to the origin.
func (a *Agent) Reset() {
	a.MoveTo(Position{})
}

// Step moves the agent one cell in direction d on g. The move is refused
// (false) when the target is off the board or blocked.
func (a *Agent) Step(g *Grid, d Direction) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	next := a.pos.Add(d)
	c, ok := g.CellAt(next)
	if !ok || c.Blocked() {
		return false
	}
	a.pos = next

	return true
}
