package algorithms_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridpath/algorithms"
	"github.com/katalvlaran/gridpath/grid"
)

// ExampleCompare runs every registered algorithm on a board whose direct
// route crosses a weight-9 cell. BFS and DFS take it; Dijkstra and A* go
// around through the bottom row.
func ExampleCompare() {
	g, start, _ := grid.ParseString(`
S9G
...
`, 40)

	rows, _ := algorithms.Compare(context.Background(), g, start)
	for _, row := range rows {
		fmt.Printf("%-8s found=%v visited=%d cost=%d\n",
			row.Algorithm, row.Result.Found, row.Result.Visited, row.Result.Cost)
	}
	// Output:
	// astar    found=true visited=5 cost=4
	// dijkstra found=true visited=5 cost=4
	// bfs      found=true visited=4 cost=10
	// dfs      found=true visited=3 cost=10
}
