// Package grid defines the square bit grid a grille is made of, together with
// the border flood used to decide whether its open area is connected.
//
// What:
//
//   - Grid is a 2N×2N matrix of booleans addressed by (x, y), stored row-major.
//     A true cell is "marked" (a hole of the grille); false is open.
//   - Enclosed lists every open cell that cannot be reached from the border by
//     4-directional moves through other open cells.
//   - BorderConnected reports whether no such pocket exists.
//
// Why:
//
//	Grilles are cut from a sheet. An open cell that is walled in by marks on all
//	sides cannot be reached from the edge of the sheet, so a grid with pockets
//	is penalised by the scorer.
//
// Complexity:
//
//   - New, Clone:      O(S²) time and memory, S = side.
//   - Bit, Set, Toggle: O(1).
//   - Enclosed:        O(S²) time, O(S²) memory (visited mask and queue).
//
// Errors:
//
//   - ErrOrderRange:     order outside [MinOrder, MaxOrder].
//   - ErrEmptyGrid:      input rows are empty.
//   - ErrNotSquare:      rows differ in length or do not form a square.
//   - ErrOddSide:        side length is odd, so no order describes it.
package grid
