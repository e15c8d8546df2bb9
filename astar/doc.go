// Package astar implements A* search on a weighted grid.Grid toward its
// objective cell.
//
// A* uses the same lazy-deletion machinery as package dijkstra, but orders
// the frontier by g(n) + h(n), where h is search.Manhattan: the unit-step
// distance from n to the objective. Ties between equal priorities break by
// discovery order, so results are deterministic.
//
// Optimality holds only while h never overestimates the remaining cost.
// search.Manhattan counts unit steps, which stays below the weighted cost as
// long as every weight is at least 1, but it is a loose guide on heavy
// boards. RunWith accepts other estimates; an inadmissible one may return a
// costlier path than Dijkstra.
package astar
