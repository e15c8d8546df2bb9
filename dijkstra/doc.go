// Package dijkstra implements Dijkstra's shortest-path search on a weighted
// grid.Grid toward its objective cell.
//
// Entering a cell costs that cell's weight (≥ 1). Cells are processed in
// order of increasing accumulated weight using a min-heap; a cell is
// finalized when popped with its best-known cost and the run stops as soon
// as the objective is finalized. The returned path has minimum total weight.
//
// Complexity:
//
//   - Time:  O(N log N)
//   - Each cell is finalized at most once: N extractions.
//   - Each relaxation may push a new entry: at most 4N pushes.
//   - Space: O(N)
//   - O(N) for distance and predecessor maps.
//   - O(4N) worst-case entries in the heap under "lazy decrease-key".
//
// Notes on implementation choices:
//
//   - Blocked cells are never relaxed.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries when popped.
//   - Equal priorities pop in insertion order.
package dijkstra
