package grid

import "errors"

var (
	// ErrBadDimensions indicates a non-positive rows, cols or cellSize.
	ErrBadDimensions = errors.New("grid: rows, cols and cell size must be positive")
	// ErrBadWeight indicates a cell weight below 1.
	ErrBadWeight = errors.New("grid: cell weight must be at least 1")
	// ErrOutOfBounds indicates a position outside the board.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
	// ErrObjectiveExists indicates another cell already holds the objective.
	ErrObjectiveExists = errors.New("grid: objective already set")
	// ErrEmptyMap indicates an ASCII map without rows or columns.
	ErrEmptyMap = errors.New("grid: map must have at least one row and one column")
	// ErrNonRectangular indicates ASCII map rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all map rows must have the same length")
	// ErrBadSymbol indicates an unknown character in an ASCII map.
	ErrBadSymbol = errors.New("grid: unknown map symbol")
)
