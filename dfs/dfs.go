package dfs

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Name is the registry key of this algorithm.
const Name = "dfs"

// Algorithm adapts Run to search.Algorithm.
var Algorithm search.Algorithm = algorithm{}

type algorithm struct{}

func (algorithm) Name() string { return Name }

func (algorithm) Run(g *grid.Grid, start grid.Position, opts ...search.Option) (search.Result, error) {
	return Run(g, start, opts...)
}

// stackItem pairs a cell with the cell that pushed it (-1 for the root).
type stackItem struct {
	node   int
	parent int
}

// dfsWalker encapsulates state during one DFS run.
type dfsWalker struct {
	g          *grid.Grid
	opts       search.Options
	stack      []stackItem
	discovered mapset.Set[int]
	visited    mapset.Set[int]
	cameFrom   map[int]int
	buf        []int
}

// Run performs depth-first search on g from start to the objective.
func Run(g *grid.Grid, start grid.Position, opts ...search.Option) (search.Result, error) {
	from, to, err := search.Endpoints(g, start)
	if err != nil {
		return search.Result{}, err
	}

	w := &dfsWalker{
		g:          g,
		opts:       search.Apply(opts...),
		discovered: mapset.New[int](),
		visited:    mapset.New[int](),
		cameFrom:   make(map[int]int),
		buf:        make([]int, 0, 4),
	}
	w.push(from, -1)

	return w.traverse(from, to), nil
}

// push places node on the stack, reporting it as frontier on first discovery.
func (w *dfsWalker) push(node, parent int) {
	if !w.discovered.Has(node) {
		w.discovered.Put(node)
		w.opts.OnVisit(w.g.PositionOf(node), grid.MarkFrontier)
	}
	w.stack = append(w.stack, stackItem{node: node, parent: parent})
}

// traverse pops until the objective is reached, the stack drains or
// Continue reports false.
func (w *dfsWalker) traverse(from, to int) search.Result {
	for len(w.stack) > 0 {
		if !w.opts.Continue() {
			return search.Result{Visited: w.visited.Size()}
		}

		top := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		if w.visited.Has(top.node) {
			continue // stale copy
		}
		w.visited.Put(top.node)
		if top.parent >= 0 {
			w.cameFrom[top.node] = top.parent
		}
		w.opts.OnVisit(w.g.PositionOf(top.node), grid.MarkClosed)

		if top.node == to {
			path, cost, ok := search.EmitPath(w.g, search.Reconstruct(w.cameFrom, from, to), w.opts)
			if !ok {
				return search.Result{Visited: w.visited.Size()}
			}
			return search.Result{Found: true, Visited: w.visited.Size(), Path: path, Cost: cost}
		}

		w.buf = w.g.NeighborIndices(top.node, w.buf[:0])
		for k := len(w.buf) - 1; k >= 0; k-- {
			nb := w.buf[k]
			if w.visited.Has(nb) || w.g.Blocked(nb) {
				continue
			}
			w.push(nb, top.node)
		}
	}

	return search.Result{Visited: w.visited.Size()}
}
