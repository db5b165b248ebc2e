package grid

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSize     = errors.New("grid dimensions must be positive")
	ErrInvalidPosition = errors.New("position out of bounds")
	ErrInvalidValue    = errors.New("cannot write the empty sentinel")
	ErrConflict        = errors.New("cell already holds a different letter")
)

// InBounds reports whether row, col lies inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// validatePosition checks if a position is within grid bounds.
func (g *Grid) validatePosition(row, col int) error {
	if !g.InBounds(row, col) {
		return fmt.Errorf("%w: (%d, %d) must be in [0, %d) x [0, %d)", ErrInvalidPosition, row, col, g.height, g.width)
	}
	return nil
}

// validateValue checks that a letter can be stored in a cell.
func validateValue(r rune) error {
	if r == Empty || r == Invalid {
		return fmt.Errorf("%w: got %d", ErrInvalidValue, r)
	}
	return nil
}
