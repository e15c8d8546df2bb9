package search

import (
	"context"
	"errors"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for invalid search input.
var (
	// ErrNilGrid is returned when a nil *grid.Grid is passed.
	ErrNilGrid = errors.New("search: grid is nil")
	// ErrStartOutOfBounds is returned when the start lies off the board.
	ErrStartOutOfBounds = errors.New("search: start position out of bounds")
	// ErrNoObjective is returned when the grid has no objective cell.
	ErrNoObjective = errors.New("search: grid has no objective")
)

// Continue reports whether the run may keep going.
type Continue func() bool

// Visit observes one node transition.
type Visit func(p grid.Position, role grid.Mark)

// Result is the outcome of a single run.
type Result struct {
	// Found is true when the objective was reached and the full path emitted.
	Found bool
	// Visited counts expanded (closed) nodes.
	Visited int
	// Path runs from start to objective inclusive; nil unless Found.
	Path []grid.Position
	// Cost sums the weights of the path cells after the start.
	Cost int
}

// PathLength returns the number of cells on the path, 0 when not found.
func (r Result) PathLength() int { return len(r.Path) }

// Algorithm is one interruptible search strategy.
type Algorithm interface {
	// Name returns the registry key, e.g. "bfs".
	Name() string
	// Run searches g from start toward its objective.
	Run(g *grid.Grid, start grid.Position, opts ...Option) (Result, error)
}

// Options holds the hooks of a run.
type Options struct {
	// Continue is polled at every checkpoint; never nil after DefaultOptions.
	Continue Continue
	// OnVisit receives node transitions; never nil after DefaultOptions.
	OnVisit Visit
}

// Option configures a run.
type Option func(*Options)

// DefaultOptions returns hooks that always continue and ignore visits.
func DefaultOptions() Options {
	return Options{
		Continue: func() bool { return true },
		OnVisit:  func(grid.Position, grid.Mark) {},
	}
}

// Apply folds opts over DefaultOptions.
func Apply(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithContinue installs the cancellation poll. Nil is ignored.
func WithContinue(fn Continue) Option {
	return func(o *Options) {
		if fn != nil {
			o.Continue = fn
		}
	}
}

// WithContext continues while ctx is not done. Nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Continue = func() bool { return ctx.Err() == nil }
		}
	}
}

// WithOnVisit installs the visualization hook. Nil is ignored.
func WithOnVisit(fn Visit) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
