// Package score rates a grille. Lower is better and zero is a perfect grille.
//
// The total is the sum of four independent terms:
//
//   - Adjacency:    +1 for every horizontally or vertically adjacent pair of
//     marks, each pair counted once (via the left and upper neighbour).
//   - Balance:      Σ |marks in quadrant − order²/4| over the four geometric
//     quadrants split at x = order and y = order.
//   - Parity:       −1 when order is odd, where an exact split is impossible.
//   - Connectivity: +2·order when some open cell is walled off from the border
//     (see grid.BorderConnected).
//
// The parity bonus and the connectivity weight are fixed empirical constants;
// the search stops on a total of zero, so changing them changes which grilles
// count as perfect.
//
// Complexity: O(S²) time and memory, S = side.
package score

import "github.com/katalvlaran/grille/grid"

const (
	// ParityBonus is added to the total for odd orders.
	ParityBonus = -1
	// DisconnectWeight multiplies order to give the connectivity penalty.
	DisconnectWeight = 2
	// Perfect is the score at which a search stops early.
	Perfect = 0
)

// Breakdown holds each scoring term separately.
type Breakdown struct {
	Adjacency    int
	Balance      int
	Parity       int
	Connectivity int
	// Quadrants holds the mark count per quadrant: TL, TR, BL, BR.
	Quadrants [4]int
}

// Total returns the sum of the four terms.
func (b Breakdown) Total() int {
	return b.Adjacency + b.Balance + b.Parity + b.Connectivity
}

// Evaluate computes every scoring term for g. The grid is not modified.
func Evaluate(g *grid.Grid) Breakdown {
	var b Breakdown
	order := g.Order()
	side := g.Side()

	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			if !g.Bit(x, y) {
				continue
			}
			if x > 0 && g.Bit(x-1, y) {
				b.Adjacency++
			}
			if y > 0 && g.Bit(x, y-1) {
				b.Adjacency++
			}
			q := 0
			if x >= order {
				q++
			}
			if y >= order {
				q += 2
			}
			b.Quadrants[q]++
		}
	}

	expected := order * order / 4
	for _, n := range b.Quadrants {
		b.Balance += abs(n - expected)
	}

	if order&1 == 1 {
		b.Parity = ParityBonus
	}
	if !grid.BorderConnected(g) {
		b.Connectivity = order * DisconnectWeight
	}
	return b
}

// Score returns Evaluate(g).Total().
func Score(g *grid.Grid) int {
	return Evaluate(g).Total()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
