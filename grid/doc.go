// Package grid models a rectangular board of cells as a weighted,
// 4-connected graph for interactive pathfinding.
//
// What:
//
//   - Grid owns one Cell per lattice point of a rows×cols board.
//   - Cells carry blocked/objective flags, a positive traversal weight and a
//     transient Mark used by visualizers.
//   - Each Cell gets a dense row-major index at construction, so position ↔
//     index lookups are O(1) arithmetic.
//   - Agent is a separate position-only value that walks the board.
//
// Why:
//
//   - Searches read flags and weights by index without allocating.
//   - Painting (block / unblock / objective) is a small set of idempotent
//     flag transitions that keep blocked and objective mutually exclusive.
//
// Complexity:
//
//   - New, ResetBlocks, ClearVisualization: O(W×H).
//   - CellAt, Neighbors, Block, Unblock, SetObjective, Objective: O(1).
//   - Regions: O(W×H×4), Memory: O(W×H).
//
// Options:
//
//   - WithWeights(fn): per-cell traversal weight, fn(p) must be ≥ 1.
//   - WithObjectivePolicy(p): ObjectiveKeep (default) or ObjectiveReplace.
//
// Errors:
//
//   - ErrBadDimensions: rows, cols or cellSize is not positive.
//   - ErrBadWeight: a weight function returned a value below 1.
//   - ErrOutOfBounds: a position lies outside the board.
//   - ErrObjectiveExists: a second objective was painted under ObjectiveKeep.
//   - ErrEmptyMap, ErrNonRectangular, ErrBadSymbol: ASCII map parsing.
//
// Concurrency:
//
//   - All Grid methods are safe for concurrent use; a single sync.RWMutex
//     guards flags and marks.
package grid
