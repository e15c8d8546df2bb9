// Package traversal sequences a search run over a grid: search, path
// reconstruction and the agent's walk along the path, with cooperative
// cancellation.
//
// A Controller owns one grid and one agent. At most one run is active at a
// time; Start takes a single permit and rejects further calls until the run
// returns to Idle.
//
//	Idle ──Start──▶ Searching ──found──▶ Walking ──▶ Idle
//	                    │
//	                    └──not found / canceled──▶ Idle
//
// The searches themselves never write to the grid. The controller attaches a
// visit sink that writes each transition as the cell Mark, forwards it to the
// caller's sink (WithOnVisit) and applies optional step pacing
// (WithStepDelay). The walk moves the agent one cell per WithWalkDelay.
//
// Cancel closes the run's stop channel: the search sees it at its next
// Continue poll and any pacing sleep wakes at once, so a canceled run
// reaches Idle within one pacing interval.
//
// Grid edits (Paint), manual moves (Move) and Reset go through the same
// permit, so flags are never changed under a running search.
//
// Logging uses log/slog through SetLogger (silent by default) or a
// per-controller WithLogger. Prometheus metrics are opt-in via WithMetrics.
package traversal
