package grid

import (
	"fmt"
	"strings"
)

// Special cell values
const (
	Empty   rune = 0
	Invalid rune = -1
)

// Grid is a width×height matrix of letters being filled in by the generator.
type Grid struct {
	width  int
	height int
	cells  []rune

	// emptyCount tracks unfilled cells for quick completion checks.
	// Once initialized, emptyCount should only be touched inside Set.
	emptyCount int

	// writes counts every successful Set call, including no-op rewrites.
	writes int
}

// New creates an empty Grid with the given dimensions.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, width, height)
	}
	return &Grid{
		width:      width,
		height:     height,
		cells:      make([]rune, width*height),
		emptyCount: width * height,
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Clone creates an independent copy of the Grid.
func (g *Grid) Clone() *Grid {
	if g == nil {
		return nil
	}
	clone := *g
	clone.cells = make([]rune, len(g.cells))
	copy(clone.cells, g.cells)
	return &clone
}

// Set writes a letter into the cell at row, col.
// Rewriting a cell with the letter it already holds succeeds and changes nothing;
// replacing one letter with another returns ErrConflict.
func (g *Grid) Set(row, col int, r rune) error {
	if err := g.validatePosition(row, col); err != nil {
		return err
	}
	if err := validateValue(r); err != nil {
		return err
	}

	pos := g.pos(row, col)
	switch g.cells[pos] {
	case Empty:
		g.cells[pos] = r
		g.emptyCount--
	case r:
	default:
		return fmt.Errorf("%w: cell (%d, %d) holds %q, cannot write %q", ErrConflict, row, col, g.cells[pos], r)
	}
	g.writes++

	return nil
}

// Get returns the value at the given cell.
// Returns Invalid for out-of-range positions.
func (g *Grid) Get(row, col int) rune {
	if !g.InBounds(row, col) {
		return Invalid
	}
	return g.cells[g.pos(row, col)]
}

// IsEmpty reports whether the cell at row, col is in bounds and holds no letter.
func (g *Grid) IsEmpty(row, col int) bool {
	return g.Get(row, col) == Empty
}

// EmptyCount returns the number of empty cells on the grid.
func (g *Grid) EmptyCount() int {
	return g.emptyCount
}

// FilledCount returns the number of cells holding a letter.
func (g *Grid) FilledCount() int {
	return len(g.cells) - g.emptyCount
}

// Writes returns how many successful Set calls the grid has seen.
func (g *Grid) Writes() int {
	return g.writes
}

// Rows returns a copy of the cells, one slice per row.
func (g *Grid) Rows() [][]rune {
	rows := make([][]rune, g.height)
	for row := range g.height {
		rows[row] = make([]rune, g.width)
		copy(rows[row], g.cells[row*g.width:(row+1)*g.width])
	}
	return rows
}

// String returns the grid one row per line, with '.' for empty cells.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)

	for row := range g.height {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := range g.width {
			sb.WriteRune(displayRune(g.Get(row, col)))
		}
	}

	return sb.String()
}

// Format returns the grid with cells separated by single spaces, one row per line.
func (g *Grid) Format() string {
	var sb strings.Builder

	for row := range g.height {
		for col := range g.width {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteRune(displayRune(g.Get(row, col)))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func displayRune(r rune) rune {
	if r == Empty {
		return '.'
	}
	return r
}

// pos transforms a row and column into a linear position.
func (g *Grid) pos(row, col int) int {
	return g.width*row + col
}
