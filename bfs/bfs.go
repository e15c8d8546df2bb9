package bfs

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Name is the registry key of this algorithm.
const Name = "bfs"

// Algorithm adapts Run to search.Algorithm.
var Algorithm search.Algorithm = algorithm{}

type algorithm struct{}

func (algorithm) Name() string { return Name }

func (algorithm) Run(g *grid.Grid, start grid.Position, opts ...search.Option) (search.Result, error) {
	return Run(g, start, opts...)
}

// walker encapsulates mutable BFS state for one run.
type walker struct {
	g          *grid.Grid
	opts       search.Options
	queue      []int
	discovered mapset.Set[int]
	visited    mapset.Set[int]
	cameFrom   map[int]int
	buf        []int
}

// Run performs breadth-first search on g from start to the objective.
// Cancellation through search.WithContinue or search.WithContext yields
// Found=false with the counts so far and a nil error.
func Run(g *grid.Grid, start grid.Position, opts ...search.Option) (search.Result, error) {
	from, to, err := search.Endpoints(g, start)
	if err != nil {
		return search.Result{}, err
	}

	w := &walker{
		g:          g,
		opts:       search.Apply(opts...),
		queue:      make([]int, 0, g.Len()),
		discovered: mapset.New[int](),
		visited:    mapset.New[int](),
		cameFrom:   make(map[int]int),
		buf:        make([]int, 0, 4),
	}
	w.enqueue(from, -1)

	return w.loop(from, to), nil
}

// enqueue records the discovery of i from parent and appends it to the queue.
func (w *walker) enqueue(i, parent int) {
	w.discovered.Put(i)
	if parent >= 0 {
		w.cameFrom[i] = parent
	}
	w.opts.OnVisit(w.g.PositionOf(i), grid.MarkFrontier)
	w.queue = append(w.queue, i)
}

// loop processes the queue until the objective is dequeued, the queue drains
// or Continue reports false.
func (w *walker) loop(from, to int) search.Result {
	for len(w.queue) > 0 {
		if !w.opts.Continue() {
			return search.Result{Visited: w.visited.Size()}
		}

		cur := w.queue[0]
		w.queue = w.queue[1:]
		if w.visited.Has(cur) {
			continue
		}
		w.visited.Put(cur)
		w.opts.OnVisit(w.g.PositionOf(cur), grid.MarkClosed)

		if cur == to {
			path, cost, ok := search.EmitPath(w.g, search.Reconstruct(w.cameFrom, from, to), w.opts)
			if !ok {
				return search.Result{Visited: w.visited.Size()}
			}
			return search.Result{Found: true, Visited: w.visited.Size(), Path: path, Cost: cost}
		}

		w.buf = w.g.NeighborIndices(cur, w.buf[:0])
		for _, nb := range w.buf {
			if w.discovered.Has(nb) || w.g.Blocked(nb) {
				continue
			}
			w.enqueue(nb, cur)
		}
	}

	return search.Result{Visited: w.visited.Size()}
}
