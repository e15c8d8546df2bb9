package grid

import (
	"fmt"
	"sync"
)

// Grid is a fixed-size board of cells. Membership and dimensions never change
// after New; only flags and marks mutate.
type Grid struct {
	mu sync.RWMutex

	rows, cols int
	cellSize   int
	policy     ObjectivePolicy

	cells     []Cell
	objective int // index of the objective cell, -1 when unset
}

// New builds a rows×cols grid whose cells are cellSize pixels wide.
// Returns ErrBadDimensions if any argument is not positive and
// ErrBadWeight if the weight option yields a value below 1.
// Complexity: O(rows×cols) time and memory.
func New(rows, cols, cellSize int, opts ...Option) (*Grid, error) {
	if rows <= 0 || cols <= 0 || cellSize <= 0 {
		return nil, fmt.Errorf("%w: rows=%d cols=%d cellSize=%d", ErrBadDimensions, rows, cols, cellSize)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g := &Grid{
		rows:      rows,
		cols:      cols,
		cellSize:  cellSize,
		policy:    o.Policy,
		cells:     make([]Cell, rows*cols),
		objective: -1,
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			p := Position{Col: col, Row: row}
			w := o.Weight(p)
			if w < 1 {
				return nil, fmt.Errorf("%w: %d at %s", ErrBadWeight, w, p)
			}
			i := g.index(p)
			g.cells[i] = Cell{pos: p, index: i, weight: w}
		}
	}

	return g, nil
}

// FromPixels builds a grid covering a width×height pixel surface with
// square cells of cellSize pixels. Partial cells at the right and bottom
// edges are dropped.
func FromPixels(width, height, cellSize int, opts ...Option) (*Grid, error) {
	if cellSize <= 0 {
		return nil, fmt.Errorf("%w: cellSize=%d", ErrBadDimensions, cellSize)
	}
	return New(height/cellSize, width/cellSize, cellSize, opts...)
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// CellSize returns the cell edge length in pixels.
func (g *Grid) CellSize() int { return g.cellSize }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether p lies on the board.
func (g *Grid) InBounds(p Position) bool {
	return p.Col >= 0 && p.Col < g.cols && p.Row >= 0 && p.Row < g.rows
}

// index maps p to its row-major index. Caller checks bounds.
func (g *Grid) index(p Position) int {
	return p.Row*g.cols + p.Col
}

// Index returns the dense index of p, or ok=false when out of bounds.
func (g *Grid) Index(p Position) (int, bool) {
	if !g.InBounds(p) {
		return -1, false
	}
	return g.index(p), true
}

// PositionOf converts a dense index back to a Position.
func (g *Grid) PositionOf(i int) Position {
	return Position{Col: i % g.cols, Row: i / g.cols}
}

// Origin returns the pixel coordinate of the top-left corner of p.
func (g *Grid) Origin(p Position) (x, y int) {
	return p.Col * g.cellSize, p.Row * g.cellSize
}

// CellAt returns a snapshot of the cell at p, or ok=false when out of bounds.
func (g *Grid) CellAt(p Position) (Cell, bool) {
	if !g.InBounds(p) {
		return Cell{}, false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.cells[g.index(p)], true
}

// CellByIndex returns a snapshot of the cell with dense index i.
// It panics if i is out of range, like a slice access.
func (g *Grid) CellByIndex(i int) Cell {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.cells[i]
}

// Neighbors returns the cells one step away from p in the four cardinal
// directions, in the order up, right, down, left. Off-board directions are
// omitted, so corner cells have two neighbours and a 1×1 board has none.
// Complexity: O(1).
func (g *Grid) Neighbors(p Position) []Cell {
	if !g.InBounds(p) {
		return nil
	}
	var buf [4]int
	idx := g.NeighborIndices(g.index(p), buf[:0])

	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Cell, 0, len(idx))
	for _, i := range idx {
		out = append(out, g.cells[i])
	}

	return out
}

// NeighborIndices appends the dense indices of the orthogonal neighbours of
// cell i to buf and returns it. Order matches Neighbors. No locking is needed
// because adjacency depends only on the fixed dimensions.
func (g *Grid) NeighborIndices(i int, buf []int) []int {
	p := g.PositionOf(i)
	for _, off := range directionOffsets {
		q := Position{Col: p.Col + off[0], Row: p.Row + off[1]}
		if g.InBounds(q) {
			buf = append(buf, g.index(q))
		}
	}
	return buf
}

// Block marks p as an obstacle and clears its objective flag.
func (g *Grid) Block(p Position) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, p)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	i := g.index(p)
	if g.objective == i {
		g.objective = -1
	}
	g.cells[i].objective = false
	g.cells[i].blocked = true

	return nil
}

// Unblock clears both the blocked and the objective flag of p.
func (g *Grid) Unblock(p Position) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, p)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	i := g.index(p)
	if g.objective == i {
		g.objective = -1
	}
	g.cells[i].objective = false
	g.cells[i].blocked = false

	return nil
}

// SetObjective makes p the goal cell and clears its blocked flag.
// Painting the current objective again is a no-op. When another cell holds
// the objective, ObjectiveKeep returns ErrObjectiveExists and
// ObjectiveReplace moves the objective to p.
func (g *Grid) SetObjective(p Position) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, p)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	i := g.index(p)
	if g.objective == i {
		return nil
	}
	if g.objective >= 0 {
		if g.policy == ObjectiveKeep {
			return fmt.Errorf("%w: at %s", ErrObjectiveExists, g.cells[g.objective].pos)
		}
		g.cells[g.objective].objective = false
	}
	g.cells[i].blocked = false
	g.cells[i].objective = true
	g.objective = i

	return nil
}

// ClearObjective removes the objective flag from whichever cell holds it.
func (g *Grid) ClearObjective() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.objective >= 0 {
		g.cells[g.objective].objective = false
		g.objective = -1
	}
}

// Objective returns the goal cell, or ok=false when none is set.
func (g *Grid) Objective() (Cell, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.objective < 0 {
		return Cell{}, false
	}
	return g.cells[g.objective], true
}

// ResetBlocks clears every blocked flag. The objective is left untouched.
func (g *Grid) ResetBlocks() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i := range g.cells {
		g.cells[i].blocked = false
	}
}

// ClearVisualization resets every cell Mark to MarkNone without touching
// blocked or objective flags.
func (g *Grid) ClearVisualization() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i := range g.cells {
		g.cells[i].mark = MarkNone
	}
}

// SetMark writes the transient visualization tag of p. Out-of-bounds
// positions are ignored.
func (g *Grid) SetMark(p Position, m Mark) {
	if !g.InBounds(p) {
		return
	}
	g.mu.Lock()
	g.cells[g.index(p)].mark = m
	g.mu.Unlock()
}

// Blocked reports whether cell i is an obstacle.
func (g *Grid) Blocked(i int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.cells[i].blocked
}

// Weight returns the traversal weight of cell i.
func (g *Grid) Weight(i int) int {
	// weights are fixed at construction
	return g.cells[i].weight
}
