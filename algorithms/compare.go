package algorithms

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Comparison is the outcome of one algorithm in a Compare call.
type Comparison struct {
	Algorithm string
	Result    search.Result
	Elapsed   time.Duration
}

// Compare runs each of algs from start to the objective of g concurrently
// and returns their outcomes in the order of algs. No algs means All().
//
// The first invalid-input error cancels the remaining runs and is returned
// wrapped with the algorithm name. When ctx ends first, the unfinished runs
// report Found=false and ctx.Err() is returned alongside the partial rows.
func Compare(ctx context.Context, g *grid.Grid, start grid.Position, algs ...search.Algorithm) ([]Comparison, error) {
	if len(algs) == 0 {
		algs = All()
	}
	out := make([]Comparison, len(algs))

	eg, egctx := errgroup.WithContext(ctx)
	for i, alg := range algs {
		eg.Go(func() error {
			began := time.Now()
			res, err := alg.Run(g, start, search.WithContext(egctx))
			if err != nil {
				return fmt.Errorf("%s: %w", alg.Name(), err)
			}
			out[i] = Comparison{Algorithm: alg.Name(), Result: res, Elapsed: time.Since(began)}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, ctx.Err()
}
