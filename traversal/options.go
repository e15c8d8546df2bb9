package traversal

import (
	"log/slog"
	"time"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// DefaultWalkDelay is the pause between two agent steps along a found path.
const DefaultWalkDelay = 100 * time.Millisecond

// Options configures a Controller.
type Options struct {
	// WalkDelay is the pause before each agent step. Zero walks instantly.
	WalkDelay time.Duration
	// StepDelay is the pause after each closed or path event of the search.
	// Zero runs the search unpaced.
	StepDelay time.Duration
	// OnVisit receives every visit event after the grid mark is written.
	// It runs on the worker goroutine and must not call back into the
	// Controller.
	OnVisit search.Visit
	// OnDone receives the report of every finished run, on the worker
	// goroutine, before the controller returns to Idle. Start called from
	// OnDone is rejected.
	OnDone func(Report)
	// Logger overrides the package logger when non-nil.
	Logger *slog.Logger
	// Metrics, when non-nil, records run statistics.
	Metrics *Metrics
}

// Option configures a Controller.
type Option func(*Options)

// DefaultOptions returns a 100ms walk, an unpaced search and no hooks.
func DefaultOptions() Options {
	return Options{
		WalkDelay: DefaultWalkDelay,
		OnVisit:   func(grid.Position, grid.Mark) {},
		OnDone:    func(Report) {},
	}
}

// WithWalkDelay sets the pause between agent steps. Negative values are
// treated as zero.
func WithWalkDelay(d time.Duration) Option {
	return func(o *Options) { o.WalkDelay = max(d, 0) }
}

// WithStepDelay sets the pause after each search step. Negative values are
// treated as zero.
func WithStepDelay(d time.Duration) Option {
	return func(o *Options) { o.StepDelay = max(d, 0) }
}

// WithOnVisit installs the visualization sink. A nil fn is ignored.
func WithOnVisit(fn search.Visit) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnDone installs the completion callback. A nil fn is ignored.
func WithOnDone(fn func(Report)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDone = fn
		}
	}
}

// WithLogger sets a per-controller logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithMetrics attaches run metrics.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}
