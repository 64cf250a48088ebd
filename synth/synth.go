// Package synth turns an (order, seed) pair into a grille.
//
// Every cell of the top-left quadrant receives exactly one mark, placed at one
// of its four rotational images (0°, 90°, 180°, 270° about the grid centre).
// The rotation for base cell i is the 2-bit field at offset 2i of a seeded bit
// stream, so the same pair always yields the same grid.
//
// Marks are toggled rather than set: placing two marks on one target leaves it
// open. Each rotation maps the top-left quadrant one-to-one onto a distinct
// quadrant, so synthesized grids carry exactly order² marks; the toggle rule
// only matters for bit sources that are not a single pass over base cells.
package synth

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/grille/grid"
	"github.com/katalvlaran/grille/stream"
)

// Sentinel errors for synthesis input validation.
var (
	// ErrOrderRange indicates an order outside [grid.MinOrder, grid.MaxOrder].
	ErrOrderRange = errors.New("synth: order out of range")
	// ErrSeedRange indicates a seed outside [0, stream.MaxSeed].
	ErrSeedRange = errors.New("synth: seed out of range")
	// ErrShortStream indicates the bit source holds fewer than 2·order² bits.
	ErrShortStream = errors.New("synth: bit stream too short")
)

// Rotation selects one of the four rotational images of a base cell.
type Rotation uint8

const (
	// R0 keeps the base cell in the top-left quadrant.
	R0 Rotation = iota
	// R90 rotates a quarter turn into the top-right quadrant.
	R90
	// R180 rotates a half turn into the bottom-right quadrant.
	R180
	// R270 rotates three quarter turns into the bottom-left quadrant.
	R270
)

// RotationBits is the width of the per-cell rotation field.
const RotationBits = 2

// ValidateOrder returns ErrOrderRange unless order is in [grid.MinOrder, grid.MaxOrder].
func ValidateOrder(order int) error {
	if order < grid.MinOrder || order > grid.MaxOrder {
		return fmt.Errorf("%w: %d not in [%d,%d]", ErrOrderRange, order, grid.MinOrder, grid.MaxOrder)
	}
	return nil
}

// ValidateSeed returns ErrSeedRange unless seed is in [0, stream.MaxSeed].
func ValidateSeed(seed int64) error {
	if !stream.ValidSeed(seed) {
		return fmt.Errorf("%w: %d not in [0,%d]", ErrSeedRange, seed, stream.MaxSeed)
	}
	return nil
}

// ByteCount returns how many stream bytes a grille of the given order consumes:
// ceil(2·order² / 8).
func ByteCount(order int) int {
	return (order*order*RotationBits + 7) / 8
}

// Rotate maps base cell (x,y) of the top-left quadrant to its image under q in
// a grid of side 2·order. With s = 2·order-1:
//
//	R0:   (x,   y)
//	R90:  (s-y, x)
//	R180: (s-x, s-y)
//	R270: (y,   s-x)
//
// Only the low two bits of q are used.
func Rotate(order, x, y int, q Rotation) (rx, ry int) {
	s := 2*order - 1
	switch q & 3 {
	case R90:
		return s - y, x
	case R180:
		return s - x, s - y
	case R270:
		return y, s - x
	default:
		return x, y
	}
}

// Place builds a grid of the given order from an explicit bit source. Base
// cell i = y·order + x reads its rotation from bits [2i, 2i+2), first bit most
// significant, and toggles the rotated target.
// Returns ErrOrderRange or ErrShortStream.
// Complexity: O(order²).
func Place(order int, bits stream.Bits) (*grid.Grid, error) {
	if err := ValidateOrder(order); err != nil {
		return nil, err
	}
	cells := order * order
	if bits.Len() < cells*RotationBits {
		return nil, fmt.Errorf("%w: have %d bits, need %d", ErrShortStream, bits.Len(), cells*RotationBits)
	}
	g, err := grid.New(order)
	if err != nil {
		return nil, err
	}
	for i := 0; i < cells; i++ {
		x, y := i%order, i/order
		q := Rotation(bits.Uint(i*RotationBits, RotationBits))
		g.Toggle(Rotate(order, x, y, q))
	}
	return g, nil
}

// Synthesize returns the grille for (order, seed). It is a pure function: the
// same pair yields the same grid on every platform.
// Returns ErrOrderRange or ErrSeedRange for invalid input.
func Synthesize(order int, seed int64) (*grid.Grid, error) {
	if err := ValidateOrder(order); err != nil {
		return nil, err
	}
	if err := ValidateSeed(seed); err != nil {
		return nil, err
	}
	return Place(order, stream.Draw(seed, ByteCount(order)))
}
