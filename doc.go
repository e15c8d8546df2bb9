// Package gridpath is a grid pathfinding engine: a weighted board of cells,
// four interruptible searches over it and a controller that turns a search
// into an animated walk.
//
// A user paints obstacles and a single goal on a rectangular board, then runs
// one of the searches. Every search reports what it touches through a visit
// hook, so a front end can animate the frontier, the closed set and the final
// path, and every search polls a continue callback so it can be stopped at
// any point.
//
// Packages:
//
//	grid/         Cell, Position, Mark, Grid, Agent and the ASCII map format
//	search/       the shared contract: options, Result, Heuristic, frontier heap
//	bfs/          breadth-first search (fewest cells)
//	dfs/          depth-first search (any path)
//	dijkstra/     minimum-weight path
//	astar/        minimum-weight path guided by the Manhattan distance
//	algorithms/   name registry and concurrent side-by-side comparison
//	traversal/    Controller: search, reconstruct, walk, cancel
//	trace/        recording, msgpack encoding and replay of visit events
//	cmd/pathfind  command-line driver over ASCII maps
//
// Quick ASCII example:
//
//	S . . # .        S  agent start
//	. # . # .        #  blocked
//	. # . . G        G  objective
//
// BFS, Dijkstra and A* all return a 7-cell path of cost 6 here; DFS returns
// whichever path its up-right-down-left order reaches first.
//
// Conventions shared by every search:
//
//   - A path lists cells from start to objective inclusive.
//   - Cost is the sum of the weights of the path cells after the start.
//   - Cancellation is not an error: Found=false with the counts so far.
//   - Searches only read the grid. Marks are written by the visit sink the
//     traversal controller installs.
package gridpath
