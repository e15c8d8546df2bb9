package astar

import (
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/bestfirst"
	"github.com/katalvlaran/gridpath/search"
)

// Name is the registry key of this algorithm.
const Name = "astar"

// Algorithm adapts Run to search.Algorithm.
var Algorithm search.Algorithm = algorithm{}

type algorithm struct{}

func (algorithm) Name() string { return Name }

func (algorithm) Run(g *grid.Grid, start grid.Position, opts ...search.Option) (search.Result, error) {
	return Run(g, start, opts...)
}

// Run searches from start to the objective of g guided by the Manhattan
// heuristic.
func Run(g *grid.Grid, start grid.Position, opts ...search.Option) (search.Result, error) {
	if g == nil {
		return search.Result{}, search.ErrNilGrid
	}
	return bestfirst.Run(g, start, search.Manhattan(g), opts...)
}

// RunWith searches with a caller-supplied heuristic, for experiments with
// inadmissible or weighted estimates. A nil h behaves like Dijkstra.
func RunWith(g *grid.Grid, start grid.Position, h search.Heuristic, opts ...search.Option) (search.Result, error) {
	return bestfirst.Run(g, start, h, opts...)
}
