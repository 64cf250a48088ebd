package grid

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrOrderRange indicates an order outside [MinOrder, MaxOrder].
	ErrOrderRange = errors.New("grid: order out of range")
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNotSquare indicates ragged rows or a non-square shape.
	ErrNotSquare = errors.New("grid: rows must form a square")
	// ErrOddSide indicates a square whose side is not a multiple of two.
	ErrOddSide = errors.New("grid: side length must be even")
)

const (
	// MinOrder is the smallest grille order.
	MinOrder = 1
	// MaxOrder is the largest grille order (64×64 cells).
	MaxOrder = 32
)

// Mark and Open are the runes used by Parse and String.
const (
	Mark = '#'
	Open = '.'
)

// Grid is a square bit matrix of side 2·order.
// Grids returned by the synthesizer are treated as immutable; Set and Toggle
// exist for construction and for tests.
type Grid struct {
	order int
	side  int
	cells []bool
}

// fourNeighbours are the N, E, S, W offsets used by the border flood.
var fourNeighbours = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
