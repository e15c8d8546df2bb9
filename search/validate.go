package search

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Endpoints validates the run input and returns the dense indices of start
// and objective.
func Endpoints(g *grid.Grid, start grid.Position) (from, to int, err error) {
	if g == nil {
		return -1, -1, ErrNilGrid
	}
	from, ok := g.Index(start)
	if !ok {
		return -1, -1, fmt.Errorf("%w: %s", ErrStartOutOfBounds, start)
	}
	obj, ok := g.Objective()
	if !ok {
		return -1, -1, ErrNoObjective
	}
	return from, obj.Index(), nil
}
