package dijkstra

import (
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/bestfirst"
	"github.com/katalvlaran/gridpath/search"
)

// Name is the registry key of this algorithm.
const Name = "dijkstra"

// Algorithm adapts Run to search.Algorithm.
var Algorithm search.Algorithm = algorithm{}

type algorithm struct{}

func (algorithm) Name() string { return Name }

func (algorithm) Run(g *grid.Grid, start grid.Position, opts ...search.Option) (search.Result, error) {
	return Run(g, start, opts...)
}

// Run computes a minimum-weight path from start to the objective of g.
//
// Returns search.ErrNilGrid, search.ErrStartOutOfBounds or
// search.ErrNoObjective for invalid input. Exhaustion and cancellation
// return Found=false with a nil error.
func Run(g *grid.Grid, start grid.Position, opts ...search.Option) (search.Result, error) {
	return bestfirst.Run(g, start, search.Zero, opts...)
}
