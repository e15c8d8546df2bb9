package traversal_test

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/algorithms"
	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/traversal"
)

func mustParse(t *testing.T, m string) (*grid.Grid, *grid.Agent) {
	t.Helper()
	g, start, err := grid.ParseString(m, 40)
	require.NoError(t, err)
	a := grid.NewAgent()
	a.MoveTo(start)
	return g, a
}

// openBoard returns an n×n board with the objective in the far corner.
func openBoard(t *testing.T, n int) *grid.Grid {
	t.Helper()
	g, err := grid.New(n, n, 40)
	require.NoError(t, err)
	require.NoError(t, g.SetObjective(grid.Position{Col: n - 1, Row: n - 1}))
	return g
}

func TestStart_NoObjectiveIsNoop(t *testing.T) {
	g, err := grid.New(3, 3, 40)
	require.NoError(t, err)
	c := traversal.New(g, nil)

	assert.False(t, c.Start(bfs.Algorithm))
	assert.Equal(t, traversal.Idle, c.State())
	_, ok := c.LastReport()
	assert.False(t, ok)

	c.Wait() // no run: returns at once
	assert.False(t, c.Start(nil))
}

func TestStart_FindsAndWalks(t *testing.T) {
	g, a := mustParse(t, "S..\n...\n..G\n")
	c := traversal.New(g, a, traversal.WithWalkDelay(0))

	require.True(t, c.Start(astar.Algorithm))
	c.Wait()

	assert.Equal(t, traversal.Idle, c.State())
	assert.Equal(t, grid.Position{Col: 2, Row: 2}, a.Position())

	rep, ok := c.LastReport()
	require.True(t, ok)
	assert.Equal(t, "astar", rep.Algorithm)
	assert.True(t, rep.Result.Found)
	assert.False(t, rep.Canceled)
	assert.NoError(t, rep.Err)
	assert.Equal(t, 4, rep.Result.Cost)

	for _, p := range rep.Result.Path {
		cell, _ := g.CellAt(p)
		assert.Equal(t, grid.MarkPath, cell.Mark(), "path cell %s", p)
	}
}

func TestStart_NotFoundDoesNotWalk(t *testing.T) {
	g, a := mustParse(t, "S..\n..#\n.#G\n")
	c := traversal.New(g, a, traversal.WithWalkDelay(0))

	require.True(t, c.Start(bfs.Algorithm))
	c.Wait()

	rep, ok := c.LastReport()
	require.True(t, ok)
	assert.False(t, rep.Result.Found)
	assert.Equal(t, 6, rep.Result.Visited)
	assert.False(t, rep.Canceled)
	assert.Equal(t, grid.Position{}, a.Position())
}

func TestStart_ClearsPreviousMarks(t *testing.T) {
	g, a := mustParse(t, "S.G\n###\n...\n")
	c := traversal.New(g, a, traversal.WithWalkDelay(0))

	stale := grid.Position{Col: 1, Row: 2} // unreachable, never visited
	g.SetMark(stale, grid.MarkPath)
	require.True(t, c.Start(bfs.Algorithm))
	c.Wait()

	cell, _ := g.CellAt(stale)
	assert.Equal(t, grid.MarkNone, cell.Mark())
}

func TestStart_SecondStartRejectedWhileBusy(t *testing.T) {
	g := openBoard(t, 10)
	c := traversal.New(g, nil, traversal.WithStepDelay(20*time.Millisecond))

	require.True(t, c.Start(bfs.Algorithm))
	assert.Equal(t, traversal.Searching, c.State())
	assert.False(t, c.Start(astar.Algorithm))
	assert.ErrorIs(t, c.Paint(grid.Position{Col: 1}, traversal.PaintBlock), traversal.ErrBusy)
	assert.False(t, c.Move(grid.Right))

	c.Cancel()
	c.Wait()
	assert.Equal(t, traversal.Idle, c.State())

	rep, ok := c.LastReport()
	require.True(t, ok)
	assert.True(t, rep.Canceled)
	assert.False(t, rep.Result.Found)
	assert.Equal(t, "bfs", rep.Algorithm)

	// the permit is free again
	assert.NoError(t, c.Paint(grid.Position{Col: 1}, traversal.PaintBlock))
}

func TestCancel_Liveness(t *testing.T) {
	for _, n := range []int{5, 30, 120} {
		for _, alg := range algorithms.All() {
			g := openBoard(t, n)
			c := traversal.New(g, nil, traversal.WithStepDelay(5*time.Millisecond))

			require.True(t, c.Start(alg))
			time.Sleep(2 * time.Millisecond)
			c.Cancel()
			assert.Eventually(t, func() bool { return c.State() == traversal.Idle },
				time.Second, time.Millisecond, "%s on %d×%d", alg.Name(), n, n)
			c.Wait()
		}
	}
}

func TestCancel_DuringWalk(t *testing.T) {
	g, a := mustParse(t, "S...\n....\n...G\n")
	c := traversal.New(g, a, traversal.WithWalkDelay(time.Hour))

	require.True(t, c.Start(bfs.Algorithm))
	require.Eventually(t, func() bool { return c.State() == traversal.Walking },
		time.Second, time.Millisecond)

	c.Cancel()
	c.Wait()
	assert.Equal(t, grid.Position{}, a.Position(), "agent did not move")

	rep, ok := c.LastReport()
	require.True(t, ok)
	assert.True(t, rep.Canceled)
	assert.True(t, rep.Result.Found, "the found path is kept")
}

func TestCancel_Idle(t *testing.T) {
	g := openBoard(t, 3)
	c := traversal.New(g, nil)
	c.Cancel() // nothing to cancel
	assert.Equal(t, traversal.Idle, c.State())
}

func TestReset_Idempotent(t *testing.T) {
	g, a := mustParse(t, "S.#\n.#.\n..G\n")
	c := traversal.New(g, a, traversal.WithWalkDelay(0))
	require.True(t, c.Move(grid.Down))
	require.True(t, c.Start(bfs.Algorithm))
	c.Wait()

	c.Reset()
	once := g.Render(ptr(a.Position()))
	c.Reset()
	twice := g.Render(ptr(a.Position()))

	assert.Equal(t, once, twice)
	assert.Equal(t, "@..\n...\n..G\n", once)
	_, ok := g.Objective()
	assert.True(t, ok, "objective survives reset")
}

func TestReset_CancelsActiveRun(t *testing.T) {
	g := openBoard(t, 20)
	c := traversal.New(g, nil, traversal.WithStepDelay(10*time.Millisecond))
	require.True(t, c.Start(bfs.Algorithm))

	c.Reset()
	assert.Equal(t, traversal.Idle, c.State())
	rep, ok := c.LastReport()
	require.True(t, ok)
	assert.True(t, rep.Canceled)
	for i := 0; i < g.Len(); i++ {
		assert.Equal(t, grid.MarkNone, g.CellByIndex(i).Mark(), "marks cleared")
	}
}

func TestPaint(t *testing.T) {
	g, err := grid.New(2, 3, 40)
	require.NoError(t, err)
	c := traversal.New(g, nil)

	require.NoError(t, c.Paint(grid.Position{Col: 1}, traversal.PaintBlock))
	require.NoError(t, c.Paint(grid.Position{Col: 2, Row: 1}, traversal.PaintObjective))
	assert.ErrorIs(t, c.Paint(grid.Position{Col: 0, Row: 1}, traversal.PaintObjective), grid.ErrObjectiveExists)
	assert.ErrorIs(t, c.Paint(grid.Position{Col: 9}, traversal.PaintBlock), grid.ErrOutOfBounds)
	assert.ErrorIs(t, c.Paint(grid.Position{}, traversal.PaintKind(42)), traversal.ErrUnknownPaint)
	assert.Equal(t, ".#.\n..G\n", g.String())

	require.NoError(t, c.Paint(grid.Position{Col: 1}, traversal.PaintUnblock))
	require.NoError(t, c.Paint(grid.Position{Col: 2, Row: 1}, traversal.PaintUnblock))
	assert.Equal(t, "...\n...\n", g.String())
}

func TestMove(t *testing.T) {
	g, a := mustParse(t, "S#\n..\n")
	c := traversal.New(g, a)

	assert.False(t, c.Move(grid.Up), "off the board")
	assert.False(t, c.Move(grid.Right), "blocked")
	assert.True(t, c.Move(grid.Down))
	assert.True(t, c.Move(grid.Right))
	assert.Equal(t, grid.Position{Col: 1, Row: 1}, a.Position())
}

func TestStartByName(t *testing.T) {
	g, a := mustParse(t, "S.G\n")
	c := traversal.New(g, a, traversal.WithWalkDelay(0))

	ok, err := c.StartByName("nope")
	assert.ErrorIs(t, err, algorithms.ErrUnknownAlgorithm)
	assert.False(t, ok)

	ok, err = c.StartByName("A*")
	require.NoError(t, err)
	require.True(t, ok)
	c.Wait()
	rep, _ := c.LastReport()
	assert.Equal(t, "astar", rep.Algorithm)
}

func TestHooks(t *testing.T) {
	g, a := mustParse(t, "S..\n.#.\n..G\n")

	var (
		mu     sync.Mutex
		events = map[grid.Mark]int{}
		dones  []traversal.Report
	)
	c := traversal.New(g, a,
		traversal.WithWalkDelay(0),
		traversal.WithOnVisit(func(_ grid.Position, role grid.Mark) {
			mu.Lock()
			events[role]++
			mu.Unlock()
		}),
		traversal.WithOnDone(func(r traversal.Report) {
			mu.Lock()
			dones = append(dones, r)
			mu.Unlock()
		}),
	)
	require.True(t, c.Start(bfs.Algorithm))
	c.Wait()

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, dones, 1)
	assert.Equal(t, dones[0].Result.Visited, events[grid.MarkClosed])
	assert.Equal(t, dones[0].Result.PathLength(), events[grid.MarkPath])
	assert.Equal(t, 8, events[grid.MarkFrontier], "every open cell discovered once")
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := traversal.NewMetrics(reg)

	g, a := mustParse(t, "S..\n...\n..G\n")
	c := traversal.New(g, a, traversal.WithWalkDelay(0), traversal.WithMetrics(m))
	require.True(t, c.Start(bfs.Algorithm))
	c.Wait()

	a.Reset()
	require.NoError(t, c.Paint(grid.Position{Col: 2, Row: 1}, traversal.PaintBlock))
	require.NoError(t, c.Paint(grid.Position{Col: 1, Row: 2}, traversal.PaintBlock))
	require.True(t, c.Start(bfs.Algorithm))
	c.Wait()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Runs.WithLabelValues("bfs", "found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Runs.WithLabelValues("bfs", "not_found")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Active))
	assert.Equal(t, 1, testutil.CollectAndCount(m.PathCost))
	assert.Equal(t, 1, testutil.CollectAndCount(m.Visited))

	n, err := testutil.GatherAndCount(reg, "gridpath_runs_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	g, a := mustParse(t, "S.G\n")
	c := traversal.New(g, a, traversal.WithWalkDelay(0), traversal.WithLogger(l))
	require.True(t, c.Start(bfs.Algorithm))
	c.Wait()

	out := buf.String()
	assert.Contains(t, out, "search started")
	assert.Contains(t, out, "algorithm=bfs")
	assert.Contains(t, out, "search finished")
	assert.Contains(t, out, "found=true")
}

func TestSetLogger(t *testing.T) {
	def := traversal.Logger()
	require.NotNil(t, def)
	assert.False(t, def.Enabled(context.Background(), slog.LevelError), "silent by default")

	l := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	traversal.SetLogger(l)
	assert.Same(t, l, traversal.Logger())

	traversal.SetLogger(nil)
	assert.False(t, traversal.Logger().Enabled(context.Background(), slog.LevelError))
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "idle", traversal.Idle.String())
	assert.Equal(t, "searching", traversal.Searching.String())
	assert.Equal(t, "walking", traversal.Walking.String())
	assert.Equal(t, "State(9)", traversal.State(9).String())
	assert.Equal(t, "objective", traversal.PaintObjective.String())
	assert.Equal(t, "PaintKind(7)", traversal.PaintKind(7).String())
}

func ptr[T any](v T) *T { return &v }
