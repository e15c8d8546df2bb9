package traversal

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/katalvlaran/gridpath/algorithms"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Controller drives search runs and the agent walk over one grid.
// All methods are safe for concurrent use.
type Controller struct {
	g     *grid.Grid
	agent *grid.Agent
	opts  Options

	active atomic.Bool  // the single permit; held by a run, Paint, Move or Reset
	state  atomic.Int32 // State

	mu      sync.Mutex // guards cur, last, hasLast
	cur     *run
	last    Report
	hasLast bool
}

// run carries the signalling channels of one Start.
type run struct {
	stop chan struct{} // closed by Cancel
	done chan struct{} // closed when the worker has released the permit
	once sync.Once
}

func newRun() *run {
	return &run{stop: make(chan struct{}), done: make(chan struct{})}
}

func (r *run) cancel() { r.once.Do(func() { close(r.stop) }) }

func (r *run) stopped() bool {
	select {
	case <-r.stop:
		return true
	default:
		return false
	}
}

// pause sleeps for d or until the run is canceled. It reports whether the
// run may continue.
func (r *run) pause(d time.Duration) bool {
	if d <= 0 {
		return !r.stopped()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-r.stop:
		return false
	case <-t.C:
		return true
	}
}

// New returns an Idle controller over g and agent. A nil agent is replaced
// by one at the origin.
func New(g *grid.Grid, agent *grid.Agent, opts ...Option) *Controller {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if agent == nil {
		agent = grid.NewAgent()
	}
	return &Controller{g: g, agent: agent, opts: o}
}

// Grid returns the controlled grid.
func (c *Controller) Grid() *grid.Grid { return c.g }

// Agent returns the controlled agent.
func (c *Controller) Agent() *grid.Agent { return c.agent }

// State returns the current lifecycle phase.
func (c *Controller) State() State { return State(c.state.Load()) }

func (c *Controller) log() *slog.Logger {
	if c.opts.Logger != nil {
		return c.opts.Logger
	}
	return Logger()
}

// Start launches alg from the agent position toward the grid objective on a
// new goroutine. It returns false, and changes nothing, when another run is
// active, the grid has no objective or alg is nil.
func (c *Controller) Start(alg search.Algorithm) bool {
	if alg == nil || c.g == nil {
		return false
	}
	if !c.active.CompareAndSwap(false, true) {
		c.log().Debug("start rejected", "algorithm", alg.Name(), "reason", "busy", "state", c.State())
		return false
	}
	if _, ok := c.g.Objective(); !ok {
		c.active.Store(false)
		c.log().Debug("start rejected", "algorithm", alg.Name(), "reason", "no objective")
		return false
	}

	r := newRun()
	c.mu.Lock()
	c.cur = r
	c.mu.Unlock()

	c.g.ClearVisualization()
	c.state.Store(int32(Searching))
	c.opts.Metrics.begin()

	start := c.agent.Position()
	c.log().Info("search started", "algorithm", alg.Name(), "start", start.String())
	go c.work(r, alg, start)

	return true
}

// StartByName resolves name with algorithms.ByName and calls Start.
func (c *Controller) StartByName(name string) (bool, error) {
	alg, err := algorithms.ByName(name)
	if err != nil {
		return false, err
	}
	return c.Start(alg), nil
}

// work runs on the worker goroutine: search, then walk when a path was found.
func (c *Controller) work(r *run, alg search.Algorithm, start grid.Position) {
	began := time.Now()
	rep := Report{Algorithm: alg.Name()}

	visit := func(p grid.Position, role grid.Mark) {
		c.g.SetMark(p, role)
		c.opts.OnVisit(p, role)
		if role != grid.MarkFrontier {
			r.pause(c.opts.StepDelay)
		}
	}
	res, err := alg.Run(c.g, start,
		search.WithContinue(func() bool { return !r.stopped() }),
		search.WithOnVisit(visit),
	)
	rep.Result, rep.Err = res, err

	switch {
	case err != nil:
		c.log().Warn("search failed", "algorithm", alg.Name(), "error", err)
	case res.Found && !r.stopped():
		c.log().Info("search finished", "algorithm", alg.Name(), "found", true,
			"visited", res.Visited, "length", res.PathLength(), "cost", res.Cost)
		c.state.Store(int32(Walking))
		c.walk(r, res.Path)
	default:
		c.log().Info("search finished", "algorithm", alg.Name(), "found", false,
			"visited", res.Visited, "canceled", r.stopped())
	}

	rep.Canceled = r.stopped()
	rep.Elapsed = time.Since(began)
	c.finish(r, rep)
}

// walk moves the agent along path, one cell per WalkDelay. path[0] is the
// start cell, where the agent already stands.
func (c *Controller) walk(r *run, path []grid.Position) {
	for k := 1; k < len(path); k++ {
		if !r.pause(c.opts.WalkDelay) {
			c.log().Info("walk canceled", "at", c.agent.Position().String(), "remaining", len(path)-k)
			return
		}
		c.agent.MoveTo(path[k])
	}
	c.log().Debug("walk finished", "at", c.agent.Position().String())
}

// finish publishes the report and releases the permit.
func (c *Controller) finish(r *run, rep Report) {
	c.mu.Lock()
	c.last, c.hasLast = rep, true
	c.mu.Unlock()

	c.opts.Metrics.finish(rep)
	c.opts.OnDone(rep)

	c.state.Store(int32(Idle))
	c.active.Store(false)
	close(r.done)
}

// Cancel asks the active run, if any, to stop. It does not wait; use Wait.
// The search stops at its next Continue poll and a pacing sleep ends at once.
func (c *Controller) Cancel() {
	c.mu.Lock()
	r := c.cur
	c.mu.Unlock()

	if r != nil {
		r.cancel()
	}
}

// Wait blocks until the most recently started run has returned to Idle.
// It returns at once when no run was started.
func (c *Controller) Wait() {
	c.mu.Lock()
	r := c.cur
	c.mu.Unlock()

	if r != nil {
		<-r.done
	}
}

// acquire takes the permit, canceling and waiting out any active run first.
func (c *Controller) acquire() {
	for !c.active.CompareAndSwap(false, true) {
		c.Cancel()
		c.Wait()
	}
}

// Reset cancels any active run, waits for it, then clears every blocked flag
// and mark and returns the agent to the origin. The objective is kept.
// Calling Reset twice leaves the same state as calling it once.
func (c *Controller) Reset() {
	c.acquire()
	defer c.active.Store(false)

	c.g.ResetBlocks()
	c.g.ClearVisualization()
	c.agent.Reset()
	c.log().Debug("controller reset")
}

// Paint applies a flag transition to p. It returns ErrBusy unless the
// controller is Idle, and the grid error for out-of-bounds cells or a second
// objective under grid.ObjectiveKeep.
func (c *Controller) Paint(p grid.Position, kind PaintKind) error {
	if !c.active.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer c.active.Store(false)

	switch kind {
	case PaintBlock:
		return c.g.Block(p)
	case PaintUnblock:
		return c.g.Unblock(p)
	case PaintObjective:
		return c.g.SetObjective(p)
	}
	return fmt.Errorf("%w: %s", ErrUnknownPaint, kind)
}

// Move steps the agent one cell in dir. It returns false while a run is
// active or when the target is off the board or blocked.
func (c *Controller) Move(dir grid.Direction) bool {
	if !c.active.CompareAndSwap(false, true) {
		return false
	}
	defer c.active.Store(false)

	return c.agent.Step(c.g, dir)
}

// LastReport returns the report of the most recent finished run.
func (c *Controller) LastReport() (Report, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.last, c.hasLast
}
