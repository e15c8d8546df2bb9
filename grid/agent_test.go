package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
)

func TestAgent_Step(t *testing.T) {
	g, err := grid.New(2, 3, 40)
	require.NoError(t, err)
	require.NoError(t, g.Block(grid.Position{Col: 1, Row: 1}))

	a := grid.NewAgent()
	assert.Equal(t, grid.Position{}, a.Position())

	assert.False(t, a.Step(g, grid.Up), "off board")
	assert.False(t, a.Step(g, grid.Left), "off board")
	assert.True(t, a.Step(g, grid.Right))
	assert.False(t, a.Step(g, grid.Down), "blocked")
	assert.Equal(t, grid.Position{Col: 1, Row: 0}, a.Position())

	a.MoveTo(grid.Position{Col: 2, Row: 1})
	assert.Equal(t, grid.Position{Col: 2, Row: 1}, a.Position())
	a.Reset()
	assert.Equal(t, grid.Position{}, a.Position())
}
