// Command pathfind runs the grid searches on an ASCII map and prints the
// explored board.
//
// Usage:
//
//	pathfind [-map file] [-rows n -cols n] [-algo name|all] [-walk d] [-step d] [-trace file] [-v]
//
// Map symbols: '.' open, '1'-'9' weighted open cell, '#' blocked, 'G'
// objective, 'S' agent start; lines starting with ';' are comments. Without
// -map an empty rows×cols board is used with the objective in the far corner
// (the defaults give the 30×15 board of a 1200×600 window with 40px cells).
//
// Output, for a single algorithm: the board with '@' for the agent, '*' for
// the path, 'o' for closed cells and '+' for the frontier left behind,
// followed by one summary line. With -algo all every algorithm runs
// concurrently and prints one summary line each.
//
// Example:
//
//	$ pathfind -map testdata/detour.txt -algo dijkstra
//	*+@
//	***
//	dijkstra: found=true visited=5 length=5 cost=4
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/katalvlaran/gridpath/algorithms"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
	"github.com/katalvlaran/gridpath/trace"
	"github.com/katalvlaran/gridpath/traversal"
)

// config holds the parsed command line.
type config struct {
	mapFile   string
	rows      int
	cols      int
	cellSize  int
	algo      string
	walk      time.Duration
	step      time.Duration
	traceFile string
	verbose   bool
}

var errNoObjective = errors.New("pathfind: map has no objective")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("pathfind", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.mapFile, "map", "", "ASCII map file (default: empty board)")
	fs.IntVar(&cfg.rows, "rows", 15, "rows of the empty board")
	fs.IntVar(&cfg.cols, "cols", 30, "columns of the empty board")
	fs.IntVar(&cfg.cellSize, "cell", 40, "cell edge in pixels")
	fs.StringVar(&cfg.algo, "algo", "astar", "algorithm name, or all")
	fs.DurationVar(&cfg.walk, "walk", 0, "pause between agent steps")
	fs.DurationVar(&cfg.step, "step", 0, "pause after each search step")
	fs.StringVar(&cfg.traceFile, "trace", "", "write the msgpack visit trace to this file")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if cfg.algo == "all" && cfg.traceFile != "" {
		return config{}, errors.New("pathfind: -trace needs a single algorithm")
	}
	return cfg, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	traversal.SetLogger(logger)

	g, start, err := load(cfg)
	if err != nil {
		return err
	}
	obj, ok := g.Objective()
	if !ok {
		return errNoObjective
	}
	logger.Debug("board loaded", "rows", g.Rows(), "cols", g.Cols(),
		"start", start.String(), "regions", len(g.Regions()))
	if !g.Connected(start, obj.Position()) {
		logger.Warn("objective is not reachable from the start", "objective", obj.Position().String())
	}

	if cfg.algo == "all" {
		return compare(ctx, g, start, stdout)
	}
	return single(ctx, cfg, g, start, stdout)
}

// load reads the map file, or builds the empty board.
func load(cfg config) (*grid.Grid, grid.Position, error) {
	if cfg.mapFile == "" {
		g, err := grid.New(cfg.rows, cfg.cols, cfg.cellSize)
		if err != nil {
			return nil, grid.Position{}, err
		}
		if err = g.SetObjective(grid.Position{Col: cfg.cols - 1, Row: cfg.rows - 1}); err != nil {
			return nil, grid.Position{}, err
		}
		return g, grid.Position{}, nil
	}

	f, err := os.Open(cfg.mapFile)
	if err != nil {
		return nil, grid.Position{}, fmt.Errorf("pathfind: %w", err)
	}
	defer f.Close()

	return grid.Parse(f, cfg.cellSize)
}

// single runs one algorithm through the controller so marks, pacing and the
// walk behave as in an interactive session.
func single(ctx context.Context, cfg config, g *grid.Grid, start grid.Position, stdout io.Writer) error {
	agent := grid.NewAgent()
	agent.MoveTo(start)

	var rec trace.Recorder
	c := traversal.New(g, agent,
		traversal.WithWalkDelay(cfg.walk),
		traversal.WithStepDelay(cfg.step),
		traversal.WithOnVisit(rec.Visit),
	)

	ok, err := c.StartByName(cfg.algo)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("pathfind: %s did not start", cfg.algo)
	}

	// Interrupt cancels the run; the controller still reports it.
	finished := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			c.Cancel()
		case <-finished:
		}
	}()
	c.Wait()
	close(finished)

	rep, _ := c.LastReport()
	if rep.Err != nil {
		return rep.Err
	}
	pos := agent.Position()
	fmt.Fprint(stdout, g.Render(&pos))
	fmt.Fprintln(stdout, summary(rep.Algorithm, rep.Result, rep.Canceled))

	if cfg.traceFile != "" {
		return writeTrace(cfg.traceFile, rec.Events())
	}
	return nil
}

func compare(ctx context.Context, g *grid.Grid, start grid.Position, stdout io.Writer) error {
	rows, err := algorithms.Compare(ctx, g, start)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	for _, row := range rows {
		fmt.Fprintln(stdout, summary(row.Algorithm, row.Result, errors.Is(err, context.Canceled)))
	}
	return nil
}

func summary(name string, res search.Result, canceled bool) string {
	s := fmt.Sprintf("%s: found=%v visited=%d length=%d cost=%d",
		name, res.Found, res.Visited, res.PathLength(), res.Cost)
	if canceled {
		s += " (canceled)"
	}
	return s
}

func writeTrace(path string, events []trace.Event) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("pathfind: %w", err)
	}
	if err = trace.Encode(f, events); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
