// Package placement finds and commits positions for words on a grid.
//
// A placement attempt draws a direction and a start cell from the random
// stream, then accepts the candidate only if every cell along its span is
// empty or already holds the matching letter. When an intersection is
// required, at least one span cell must already hold its letter. Nothing is
// written until both checks pass.
package placement

import (
	"fmt"
	"unicode/utf8"

	"github.com/Goreek/wordsearch/internal/grid"
)

// Rand is the subset of the random stream used by placement.
// IntRange returns a value in [lo, hi], both inclusive.
type Rand interface {
	IntRange(lo, hi int) int
}

// Cell is a grid coordinate.
type Cell struct {
	Row int
	Col int
}

// Placement is a candidate or committed position for a word.
type Placement struct {
	Word string
	Row  int
	Col  int
	Dir  Direction
}

// At returns the cell holding the word's i-th letter.
func (p Placement) At(i int) Cell {
	return Cell{Row: p.Row + i*p.Dir.DRow, Col: p.Col + i*p.Dir.DCol}
}

// End returns the cell holding the word's last letter.
func (p Placement) End() Cell {
	return p.At(utf8.RuneCountInString(p.Word) - 1)
}

// Span returns the cells the word occupies, in letter order.
func (p Placement) Span() []Cell {
	n := utf8.RuneCountInString(p.Word)
	cells := make([]Cell, n)
	for i := range n {
		cells[i] = p.At(i)
	}
	return cells
}

func (p Placement) String() string {
	return fmt.Sprintf("%s@(%d,%d)%s", p.Word, p.Row, p.Col, p.Dir)
}

// Oversized reports whether a word of n letters can never fit a width×height grid.
func Oversized(n, width, height int) bool {
	return n > width || n > height
}

// Sample draws a candidate placement for word. It consumes, in order: the
// vertical step, the start row, the horizontal step and the start column.
//
// Pure horizontal directions are half as likely as the others because the
// horizontal step is only forced non-zero after a zero vertical step.
//
// Forward start ranges exclude their upper bound, so a word exactly as long
// as the grid dimension has no forward start on that axis; the attempt is
// then rejected without drawing further.
func Sample(word string, width, height int, r Rand) (Placement, bool) {
	n := utf8.RuneCountInString(word)

	dRow := r.IntRange(-1, 1)
	row, ok := start(n, height, dRow, r)
	if !ok {
		return Placement{}, false
	}

	var dCol int
	if dRow != 0 {
		dCol = r.IntRange(-1, 1)
	} else {
		dCol = r.IntRange(0, 1)*2 - 1
	}
	col, ok := start(n, width, dCol, r)
	if !ok {
		return Placement{}, false
	}

	return Placement{
		Word: word,
		Row:  row,
		Col:  col,
		Dir:  Direction{DRow: dRow, DCol: dCol},
	}, true
}

// start draws the first coordinate along one axis of length size.
func start(n, size, step int, r Rand) (int, bool) {
	switch step {
	case 1:
		if size-n <= 0 {
			return 0, false
		}
		return r.IntRange(0, size-n-1), true
	case -1:
		return r.IntRange(n-1, size-1), true
	default:
		return r.IntRange(0, size-1), true
	}
}

// Crosses reports whether at least one span cell already holds the letter
// the word puts there.
func Crosses(g *grid.Grid, p Placement) bool {
	i := 0
	for _, letter := range p.Word {
		c := p.At(i)
		if g.Get(c.Row, c.Col) == letter {
			return true
		}
		i++
	}
	return false
}

// Fits reports whether every span cell is in bounds and either empty or
// already holding the word's letter.
func Fits(g *grid.Grid, p Placement) bool {
	i := 0
	for _, letter := range p.Word {
		c := p.At(i)
		if v := g.Get(c.Row, c.Col); v != grid.Empty && v != letter {
			return false
		}
		i++
	}
	return true
}

// Commit writes the word into the grid. The placement must already satisfy Fits.
func Commit(g *grid.Grid, p Placement) {
	i := 0
	for _, letter := range p.Word {
		c := p.At(i)
		if err := g.Set(c.Row, c.Col, letter); err != nil {
			panic(fmt.Sprintf("placement: commit of %s after validation: %v", p, err))
		}
		i++
	}
}

// TryPlace makes a single placement attempt for word. On success the word
// is written into g and its placement returned. On failure g is unchanged.
// Words that can never fit are rejected without consuming any draws.
func TryPlace(word string, g *grid.Grid, r Rand, requireIntersection bool) (Placement, bool) {
	if Oversized(utf8.RuneCountInString(word), g.Width(), g.Height()) {
		return Placement{}, false
	}

	p, ok := Sample(word, g.Width(), g.Height(), r)
	if !ok {
		return Placement{}, false
	}
	if requireIntersection && !Crosses(g, p) {
		return Placement{}, false
	}
	if !Fits(g, p) {
		return Placement{}, false
	}

	Commit(g, p)
	return p, true
}
