package grid

import (
	"fmt"
	"strings"
)

// New returns an all-open grid of the given order (side 2·order).
// Returns ErrOrderRange if order is outside [MinOrder, MaxOrder].
// Complexity: O(order²).
func New(order int) (*Grid, error) {
	if order < MinOrder || order > MaxOrder {
		return nil, fmt.Errorf("%w: %d not in [%d,%d]", ErrOrderRange, order, MinOrder, MaxOrder)
	}
	side := 2 * order
	return &Grid{
		order: order,
		side:  side,
		cells: make([]bool, side*side),
	}, nil
}

// From2D builds a grid from rows[y][x]. The input is deep-copied.
// Returns ErrEmptyGrid, ErrNotSquare, ErrOddSide or ErrOrderRange.
func From2D(rows [][]bool) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	side := len(rows)
	for _, row := range rows {
		if len(row) != side {
			return nil, ErrNotSquare
		}
	}
	if side%2 != 0 {
		return nil, ErrOddSide
	}
	g, err := New(side / 2)
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		copy(g.cells[y*side:(y+1)*side], row)
	}
	return g, nil
}

// Parse builds a grid from text rows, one string per row. Open ('.') and
// space are unmarked; any other rune is marked.
//
//	g, _ := grid.Parse(
//		"#.",
//		"..",
//	)
func Parse(rows ...string) (*Grid, error) {
	bits := make([][]bool, len(rows))
	for y, row := range rows {
		rs := []rune(row)
		bits[y] = make([]bool, len(rs))
		for x, r := range rs {
			bits[y][x] = r != Open && r != ' '
		}
	}
	return From2D(bits)
}

// Order returns half the side length.
func (g *Grid) Order() int { return g.order }

// Side returns the side length, always 2·Order.
func (g *Grid) Side() int { return g.side }

// Len returns the total number of cells (4·Order²).
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether (x,y) lies within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.side && y >= 0 && y < g.side
}

// Index maps (x,y) to its row-major index y·side + x.
func (g *Grid) Index(x, y int) int {
	return y*g.side + x
}

// Coordinate converts a row-major index back to (x,y).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.side, idx / g.side
}

// Bit reports whether (x,y) is marked. Out-of-bounds cells read as unmarked.
func (g *Grid) Bit(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.cells[g.Index(x, y)]
}

// Set marks or clears (x,y). Out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, v bool) {
	if g.InBounds(x, y) {
		g.cells[g.Index(x, y)] = v
	}
}

// Toggle flips (x,y): a second toggle of the same cell restores it.
func (g *Grid) Toggle(x, y int) {
	if g.InBounds(x, y) {
		i := g.Index(x, y)
		g.cells[i] = !g.cells[i]
	}
}

// Count returns the number of marked cells.
func (g *Grid) Count() int {
	n := 0
	for _, c := range g.cells {
		if c {
			n++
		}
	}
	return n
}

// Clone returns an independent copy.
func (g *Grid) Clone() *Grid {
	cells := make([]bool, len(g.cells))
	copy(cells, g.cells)
	return &Grid{order: g.order, side: g.side, cells: cells}
}

// Equal reports whether both grids have the same order and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.side != o.side {
		return false
	}
	for i, c := range g.cells {
		if o.cells[i] != c {
			return false
		}
	}
	return true
}

// Format renders the grid one row per line, using mark for marked cells and
// Open for the rest. Lines are separated by '\n' without a trailing newline.
func (g *Grid) Format(mark rune) string {
	var sb strings.Builder
	sb.Grow(g.side * (g.side + 1))
	for y := 0; y < g.side; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.side; x++ {
			if g.cells[g.Index(x, y)] {
				sb.WriteRune(mark)
			} else {
				sb.WriteRune(Open)
			}
		}
	}
	return sb.String()
}

// String implements fmt.Stringer using Mark.
func (g *Grid) String() string {
	return g.Format(Mark)
}
