// Package search defines the contract shared by the grid search algorithms
// (bfs, dfs, dijkstra, astar): options and hooks, the Result type, the
// Manhattan heuristic, the lazy-deletion frontier heap and path
// reconstruction.
//
// Every algorithm implements
//
//	Run(g *grid.Grid, start grid.Position, opts ...Option) (Result, error)
//
// Hooks:
//
//   - Continue is polled before each node expansion and before each emitted
//     path step. Returning false ends the run with Found=false and the
//     statistics gathered so far. Cancellation is not an error.
//   - OnVisit receives every node transition in processing order:
//     MarkFrontier on first discovery, MarkClosed on expansion and MarkPath
//     for each cell of the final path. It must be cheap and non-blocking.
//
// Path conventions:
//
//   - Path lists cells from start to objective inclusive.
//   - Cost is the sum of the weights of every path cell after the start, so
//     on a unit-weight board Cost == PathLength()-1.
//
// Errors:
//
//   - ErrNilGrid, ErrStartOutOfBounds, ErrNoObjective for invalid input.
//
// Algorithms only read the grid; marks are written by whoever consumes
// OnVisit.
package search
