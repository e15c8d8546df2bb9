package bestfirst

import (
	"errors"
	"testing"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

func TestRun_NilHeuristicIsDijkstra(t *testing.T) {
	g, start, err := grid.ParseString("S9G\n...\n", 1)
	if err != nil {
		t.Fatal(err)
	}
	res, err := Run(g, start, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Found || res.Cost != 4 {
		t.Errorf("Found=%v Cost=%d; want true 4", res.Found, res.Cost)
	}
}

func TestRun_InvalidInput(t *testing.T) {
	if _, err := Run(nil, grid.Position{}, search.Zero); !errors.Is(err, search.ErrNilGrid) {
		t.Errorf("nil grid: got %v", err)
	}
}

// TestRun_StaleEntriesSkipped uses an inconsistent heuristic so that (1,1)
// and the objective are first reached through the weight-5 cell and then
// improved through (0,1). The outdated copies stay queued and must be
// dropped without a Continue poll or a second expansion.
//
//	S 5 .
//	. . G
func TestRun_StaleEntriesSkipped(t *testing.T) {
	g, start, err := grid.ParseString("S5.\n..G\n", 1)
	if err != nil {
		t.Fatal(err)
	}
	bias := map[grid.Position]int{{Col: 0, Row: 1}: 100, {Col: 1, Row: 1}: 150, {Col: 2, Row: 1}: 1000}
	h := func(a, _ grid.Position) int { return bias[a] }

	polls := 0
	closed := map[grid.Position]int{}
	res, err := Run(g, start, h,
		search.WithContinue(func() bool { polls++; return true }),
		search.WithOnVisit(func(p grid.Position, role grid.Mark) {
			if role == grid.MarkClosed {
				closed[p]++
			}
		}),
	)
	if err != nil {
		t.Fatal(err)
	}
	for p, n := range closed {
		if n != 1 {
			t.Errorf("%s closed %d times", p, n)
		}
	}
	if res.Visited != 6 || len(closed) != 6 {
		t.Errorf("Visited=%d closed=%d; want 6 6", res.Visited, len(closed))
	}
	// 6 expansions plus 4 path steps
	if polls != 10 {
		t.Errorf("polls=%d; want 10", polls)
	}
	if res.Cost != 3 {
		t.Errorf("Cost=%d; want 3", res.Cost)
	}
	want := []grid.Position{{Col: 0, Row: 0}, {Col: 0, Row: 1}, {Col: 1, Row: 1}, {Col: 2, Row: 1}}
	if len(res.Path) != len(want) {
		t.Fatalf("Path=%v; want %v", res.Path, want)
	}
	for i := range want {
		if res.Path[i] != want[i] {
			t.Errorf("Path[%d]=%s; want %s", i, res.Path[i], want[i])
		}
	}
}
