// Package dfs implements depth-first search over a grid.Grid toward its
// objective cell.
//
// DFS keeps a LIFO frontier of (cell, parent) entries. A cell may sit on the
// stack several times; only its first pop counts, later copies are skipped as
// stale. The parent recorded for a cell is the one carried by the entry that
// was popped first, so the returned path is the root-to-objective branch of
// the depth-first tree.
//
// There is no shortest-path guarantee of any kind: DFS exists to contrast
// with BFS, Dijkstra and A*.
//
// Neighbours are pushed in reverse grid order (left, down, right, up), so
// the first listed neighbour (up) is explored first.
//
// Complexity:
//
//   - Time:   O(N) expansions, O(4N) pushes in the worst case.
//   - Memory: O(N) for the stack, visited set and predecessor map.
//
// Errors:
//
//   - search.ErrNilGrid, search.ErrStartOutOfBounds, search.ErrNoObjective.
package dfs
