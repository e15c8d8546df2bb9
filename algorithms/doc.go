// Package algorithms is the name registry of the grid search variants and a
// helper that runs several of them side by side on one board.
//
// Registered names, in presentation order:
//
//   - astar    (alias "a*")
//   - dijkstra
//   - bfs
//   - dfs
//
// Lookup is case-insensitive. Every entry satisfies search.Algorithm, so the
// traversal controller and the CLI treat them uniformly.
//
// Compare runs variants concurrently with golang.org/x/sync/errgroup. This is
// safe because the algorithms only read the grid; no visit sink is attached,
// so marks are left as they were.
package algorithms
