package grid

import "fmt"

// Position is an integer (column, row) coordinate on the board.
type Position struct {
	Col, Row int
}

// Add returns p moved one cell in direction d.
func (p Position) Add(d Direction) Position {
	off := directionOffsets[d]
	return Position{Col: p.Col + off[0], Row: p.Row + off[1]}
}

// String formats p as "(col,row)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Col, p.Row)
}

// Direction is one of the four cardinal moves.
type Direction int

const (
	// Up decreases the row.
	Up Direction = iota
	// Right increases the column.
	Right
	// Down increases the row.
	Down
	// Left decreases the column.
	Left
)

// directionOffsets holds {dCol, dRow} per Direction, in neighbour order.
var directionOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Mark is the transient visualization tag of a cell. It doubles as the role
// reported to visit hooks while a search runs.
type Mark uint8

const (
	// MarkNone means the cell was not touched by the current run.
	MarkNone Mark = iota
	// MarkFrontier means the cell was discovered and waits in the frontier.
	MarkFrontier
	// MarkClosed means the cell was expanded.
	MarkClosed
	// MarkPath means the cell lies on the reconstructed path.
	MarkPath
)

// String returns the role name of m.
func (m Mark) String() string {
	switch m {
	case MarkNone:
		return "none"
	case MarkFrontier:
		return "frontier"
	case MarkClosed:
		return "closed"
	case MarkPath:
		return "path"
	}
	return fmt.Sprintf("Mark(%d)", uint8(m))
}

// Cell is a snapshot of a single board node. Grid accessors return copies,
// so a Cell never changes after it is handed out.
type Cell struct {
	pos       Position
	index     int
	weight    int
	blocked   bool
	objective bool
	mark      Mark
}

// Position returns the cell coordinate.
func (c Cell) Position() Position { return c.pos }

// Index returns the dense row-major index assigned at construction.
func (c Cell) Index() int { return c.index }

// Weight returns the cost of entering the cell (≥ 1).
func (c Cell) Weight() int { return c.weight }

// Blocked reports whether the cell is an obstacle.
func (c Cell) Blocked() bool { return c.blocked }

// IsObjective reports whether the cell is the goal.
func (c Cell) IsObjective() bool { return c.objective }

// Mark returns the transient visualization tag.
func (c Cell) Mark() Mark { return c.mark }

// ObjectivePolicy decides what SetObjective does when another cell already
// holds the objective.
type ObjectivePolicy int

const (
	// ObjectiveKeep rejects a new objective with ErrObjectiveExists.
	ObjectiveKeep ObjectivePolicy = iota
	// ObjectiveReplace moves the objective to the newly painted cell.
	ObjectiveReplace
)

// Options holds construction parameters for a Grid.
type Options struct {
	// Weight returns the traversal weight for each position. Nil means 1.
	Weight func(p Position) int
	// Policy controls repeated SetObjective calls.
	Policy ObjectivePolicy
}

// Option configures a Grid at construction.
type Option func(*Options)

// DefaultOptions returns unit weights and ObjectiveKeep.
func DefaultOptions() Options {
	return Options{
		Weight: func(Position) int { return 1 },
		Policy: ObjectiveKeep,
	}
}

// WithWeights sets the per-cell weight function. A nil fn is ignored.
func WithWeights(fn func(p Position) int) Option {
	return func(o *Options) {
		if fn != nil {
			o.Weight = fn
		}
	}
}

// WithObjectivePolicy selects how SetObjective treats an existing objective.
func WithObjectivePolicy(p ObjectivePolicy) Option {
	return func(o *Options) { o.Policy = p }
}
