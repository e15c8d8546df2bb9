package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Map symbols understood by Parse and produced by Render.
const (
	SymbolOpen      = '.'
	SymbolBlocked   = '#'
	SymbolObjective = 'G'
	SymbolStart     = 'S'
)

// Parse reads an ASCII map and builds a Grid with the given cell size.
//
// Symbols:
//
//	.    open cell, weight 1
//	1-9  open cell with that weight
//	#    blocked cell
//	G    objective (at most one)
//	S    agent start (open, weight 1); defaults to (0,0)
//
// Blank lines and lines starting with ';' are skipped; trailing spaces are
// trimmed.
//
// Returns ErrEmptyMap, ErrNonRectangular, ErrBadSymbol or
// ErrObjectiveExists for malformed input.
func Parse(r io.Reader, cellSize int, opts ...Option) (*Grid, Position, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, Position{}, fmt.Errorf("grid: read map: %w", err)
	}
	if len(lines) == 0 {
		return nil, Position{}, ErrEmptyMap
	}
	cols := len(lines[0])
	for _, line := range lines {
		if len(line) != cols {
			return nil, Position{}, ErrNonRectangular
		}
	}

	// 1) First pass: weights, so they can be fixed at construction.
	weights := make([]int, len(lines)*cols)
	for row, line := range lines {
		for col := 0; col < cols; col++ {
			w := 1
			if ch := line[col]; ch >= '1' && ch <= '9' {
				w = int(ch - '0')
			}
			weights[row*cols+col] = w
		}
	}
	o := append([]Option{WithWeights(func(p Position) int { return weights[p.Row*cols+p.Col] })}, opts...)
	g, err := New(len(lines), cols, cellSize, o...)
	if err != nil {
		return nil, Position{}, err
	}

	// 2) Second pass: flags.
	var start Position
	seenGoal := false
	for row, line := range lines {
		for col := 0; col < cols; col++ {
			p := Position{Col: col, Row: row}
			switch ch := line[col]; {
			case ch == SymbolOpen, ch >= '1' && ch <= '9':
			case ch == SymbolBlocked:
				_ = g.Block(p)
			case ch == SymbolObjective:
				if seenGoal {
					return nil, Position{}, fmt.Errorf("%w: second objective at %s", ErrObjectiveExists, p)
				}
				seenGoal = true
				_ = g.SetObjective(p)
			case ch == SymbolStart:
				start = p
			default:
				return nil, Position{}, fmt.Errorf("%w: %q at %s", ErrBadSymbol, ch, p)
			}
		}
	}

	return g, start, nil
}

// ParseString is Parse over a string literal.
func ParseString(s string, cellSize int, opts ...Option) (*Grid, Position, error) {
	return Parse(strings.NewReader(s), cellSize, opts...)
}
