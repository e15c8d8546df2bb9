// Package bfs provides breadth-first search over a grid.Grid toward its
// objective cell.
//
// What
//
//   - Explore cells in non-decreasing step count (edge count) from the start.
//   - Uses a FIFO frontier; a cell is discovered at most once and its first
//     discoverer becomes its predecessor.
//   - A cell is marked visited when dequeued; dequeuing the objective ends
//     the run.
//   - Returned paths have the fewest cells. Weights do not influence the
//     order, but Result.Cost still sums the actual weights.
//
// Determinism
//
//	grid.Grid.NeighborIndices lists neighbours up, right, down, left, and BFS
//	enqueues them in that order, so the visit sequence is reproducible.
//
// Complexity (N = cells)
//
//   - Time:   O(N)   (each cell enqueued and expanded at most once)
//   - Memory: O(N)   (queue, visited set, predecessor map)
//
// Usage
//
//	res, err := bfs.Run(g, start,
//	    search.WithContext(ctx),
//	    search.WithOnVisit(func(p grid.Position, role grid.Mark) { /* ... */ }),
//	)
//
// Errors
//
//   - search.ErrNilGrid, search.ErrStartOutOfBounds, search.ErrNoObjective.
package bfs
