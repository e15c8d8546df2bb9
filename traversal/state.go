package traversal

import (
	"fmt"
	"time"

	"github.com/katalvlaran/gridpath/search"
)

// State is the controller lifecycle phase.
type State int32

const (
	// Idle means no run is active.
	Idle State = iota
	// Searching means an algorithm is exploring the grid.
	Searching
	// Walking means the agent is moving along a found path.
	Walking
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Searching:
		return "searching"
	case Walking:
		return "walking"
	}
	return fmt.Sprintf("State(%d)", int32(s))
}

// PaintKind selects the flag transition applied by Controller.Paint.
type PaintKind int

const (
	// PaintBlock makes the cell an obstacle.
	PaintBlock PaintKind = iota
	// PaintUnblock clears the blocked and objective flags.
	PaintUnblock
	// PaintObjective makes the cell the goal.
	PaintObjective
)

func (k PaintKind) String() string {
	switch k {
	case PaintBlock:
		return "block"
	case PaintUnblock:
		return "unblock"
	case PaintObjective:
		return "objective"
	}
	return fmt.Sprintf("PaintKind(%d)", int(k))
}

// Report summarizes one finished run.
type Report struct {
	// Algorithm is the Name of the algorithm that ran.
	Algorithm string
	// Result is what the search returned. A canceled search reports
	// Found=false; a run canceled during the walk keeps the found path.
	Result search.Result
	// Canceled is true when Cancel or Reset ended the run early.
	Canceled bool
	// Err is a precondition error from the algorithm, normally nil.
	Err error
	// Elapsed covers search and walk.
	Elapsed time.Duration
}

// outcome is the metrics label for r.
func (r Report) outcome() string {
	switch {
	case r.Err != nil:
		return "error"
	case r.Canceled:
		return "canceled"
	case r.Result.Found:
		return "found"
	}
	return "not_found"
}
