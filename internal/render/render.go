// Package render writes a finished puzzle as plain text, a markdown table or
// an HTML page. Renderers only read the puzzle.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/leonelquinteros/gotext"
	"github.com/mitchellh/go-wordwrap"
	"github.com/vyevs/ansi"

	"github.com/Goreek/wordsearch/internal/grid"
	"github.com/Goreek/wordsearch/internal/placement"
)

// Puzzle is the read-only view a renderer needs.
type Puzzle interface {
	Grid() *grid.Grid
	PlacedWords() []string
}

// Solved is implemented by puzzles that know where their words are.
type Solved interface {
	Puzzle
	Placements() []placement.Placement
}

// Format names an output form.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "md"
	FormatHTML     Format = "html"
)

// Formats lists the supported output forms.
var Formats = []Format{FormatText, FormatMarkdown, FormatHTML}

// TextOptions controls the plain text form.
type TextOptions struct {
	// Solution colours the cells of every placed word.
	Solution bool
}

var solutionColors = [...]string{"red", "green", "yellow", "cyan", "orange", "pink", "purple", "chartreuse"}

// Write renders p in the given format.
func Write(w io.Writer, f Format, p Puzzle, opts TextOptions) error {
	switch f {
	case FormatText:
		return Text(w, p, opts)
	case FormatMarkdown:
		return Markdown(w, p)
	case FormatHTML:
		return HTML(w, p)
	default:
		return fmt.Errorf("unknown format %q", f)
	}
}

// Text writes the grid with cells separated by spaces, a blank line, and the
// placed words wrapped to the width of the grid.
func Text(w io.Writer, p Puzzle, opts TextOptions) error {
	var sb strings.Builder

	if opts.Solution {
		writeSolution(&sb, p)
	} else {
		sb.WriteString(p.Grid().Format())
	}

	sb.WriteByte('\n')
	sb.WriteString(footer(p))

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeSolution(sb *strings.Builder, p Puzzle) {
	cellColor := map[placement.Cell]string{}
	if s, ok := p.(Solved); ok {
		for i, pl := range s.Placements() {
			for _, c := range pl.Span() {
				if _, taken := cellColor[c]; !taken {
					cellColor[c] = solutionColors[i%len(solutionColors)]
				}
			}
		}
	}

	g := p.Grid()
	for row := range g.Height() {
		for col := range g.Width() {
			if col > 0 {
				sb.WriteByte(' ')
			}
			if color, ok := cellColor[placement.Cell{Row: row, Col: col}]; ok {
				sb.WriteString(ansi.FGColorName(color))
				sb.WriteRune(g.Get(row, col))
				sb.WriteString(ansi.Clear)
			} else {
				sb.WriteRune(g.Get(row, col))
			}
		}
		sb.WriteByte('\n')
	}
}

// Markdown writes the grid as a pipe table under a title, followed by the word list.
func Markdown(w io.Writer, p Puzzle) error {
	g := p.Grid()
	var sb strings.Builder

	sb.WriteString(gotext.Get("Word Search:"))
	sb.WriteString("\n\n")

	sb.WriteByte('|')
	sb.WriteString(strings.Repeat(" |", g.Width()))
	sb.WriteByte('\n')

	sep := make([]string, g.Width())
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintf(&sb, "| %s |\n", strings.Join(sep, " | "))

	for _, row := range rowStrings(g) {
		fmt.Fprintf(&sb, "| %s |\n", strings.Join(row, " | "))
	}

	sb.WriteByte('\n')
	sb.WriteString(footer(p))

	_, err := io.WriteString(w, sb.String())
	return err
}

// footer wraps the placed words to 2·width−1 columns, the width of a text row.
func footer(p Puzzle) string {
	words := strings.Join(p.PlacedWords(), " ")
	if words == "" {
		return ""
	}
	return wordwrap.WrapString(words, uint(p.Grid().Width()*2-1)) + "\n"
}

func rowStrings(g *grid.Grid) [][]string {
	rows := g.Rows()
	out := make([][]string, len(rows))
	for r, row := range rows {
		out[r] = make([]string, len(row))
		for c, cell := range row {
			if cell == grid.Empty {
				out[r][c] = "."
			} else {
				out[r][c] = string(cell)
			}
		}
	}
	return out
}
