// Package bestfirst holds the priority-queue search shared by the dijkstra
// and astar packages. Priority is g(n) + h(n, objective); with the Zero
// heuristic the runner is plain Dijkstra.
//
// Notes on implementation choices:
//
//   - "Lazy" decrease-key: an improved cost pushes a new frontier entry and
//     the outdated one is discarded when popped, via the visited check.
//   - Each entry keeps the priority it was pushed with; ties break by
//     insertion order (see search.Frontier).
//   - Relaxation requires a strictly smaller cost, so equal-cost
//     alternatives never replace the first predecessor found.
package bestfirst

import (
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// runner holds the mutable state for a single best-first execution.
type runner struct {
	g        *grid.Grid       // read-only within the run
	opts     search.Options   // hooks
	h        search.Heuristic // estimate toward the objective
	goal     grid.Position    // objective position, heuristic target
	dist     []int            // best-known cost per cell, MaxInt when unseen
	cameFrom map[int]int      // predecessor on the best-known path
	visited  mapset.Set[int]  // finalized cells
	pq       *search.Frontier // lazy priority queue
	buf      []int            // neighbour scratch
}

// Run searches g from start to its objective, ordering the frontier by
// accumulated weight plus h. A nil h means search.Zero.
func Run(g *grid.Grid, start grid.Position, h search.Heuristic, opts ...search.Option) (search.Result, error) {
	from, to, err := search.Endpoints(g, start)
	if err != nil {
		return search.Result{}, err
	}
	if h == nil {
		h = search.Zero
	}

	r := &runner{
		g:        g,
		opts:     search.Apply(opts...),
		h:        h,
		goal:     g.PositionOf(to),
		dist:     make([]int, g.Len()),
		cameFrom: make(map[int]int),
		visited:  mapset.New[int](),
		pq:       search.NewFrontier(g.Len()),
		buf:      make([]int, 0, 4),
	}
	r.init(from)

	return r.process(from, to), nil
}

// init sets every distance to +∞ and seeds the frontier with the start.
func (r *runner) init(from int) {
	for i := range r.dist {
		r.dist[i] = math.MaxInt
	}
	r.dist[from] = 0
	p := r.g.PositionOf(from)
	r.pq.Push(from, 0, r.h(p, r.goal))
	r.opts.OnVisit(p, grid.MarkFrontier)
}

// process pops the most promising cell until the objective is finalized,
// the frontier drains or Continue reports false.
func (r *runner) process(from, to int) search.Result {
	for {
		u, d, ok := r.pq.Pop()
		if !ok {
			return search.Result{Visited: r.visited.Size()}
		}
		// stale entry: u was finalized with a smaller cost
		if r.visited.Has(u) || d > r.dist[u] {
			continue
		}
		if !r.opts.Continue() {
			return search.Result{Visited: r.visited.Size()}
		}

		r.visited.Put(u)
		r.opts.OnVisit(r.g.PositionOf(u), grid.MarkClosed)

		if u == to {
			path, cost, ok := search.EmitPath(r.g, search.Reconstruct(r.cameFrom, from, to), r.opts)
			if !ok {
				return search.Result{Visited: r.visited.Size()}
			}
			return search.Result{Found: true, Visited: r.visited.Size(), Path: path, Cost: cost}
		}

		r.relax(u)
	}
}

// relax tries to improve the cost of every open neighbour of u.
func (r *runner) relax(u int) {
	r.buf = r.g.NeighborIndices(u, r.buf[:0])
	for _, v := range r.buf {
		if r.visited.Has(v) || r.g.Blocked(v) {
			continue
		}
		newDist := r.dist[u] + r.g.Weight(v)
		if newDist >= r.dist[v] {
			continue
		}
		first := r.dist[v] == math.MaxInt
		r.dist[v] = newDist
		r.cameFrom[v] = u

		p := r.g.PositionOf(v)
		r.pq.Push(v, newDist, newDist+r.h(p, r.goal))
		if first {
			r.opts.OnVisit(p, grid.MarkFrontier)
		}
	}
}
