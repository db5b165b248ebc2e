package render

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/leonelquinteros/gotext"
)

const pageStyle = `div.wordsearch{width: min-content;}
        table{table-layout: fixed; border-collapse: collapse;}
        td{font-size: 30px; border: 1px solid black; text-align: center;}
        p{width: fit-content;font-size: 20px;}`

// HTML writes a standalone page holding the grid as a table and the placed
// words as a paragraph.
func HTML(w io.Writer, p Puzzle) error {
	title := html.EscapeString(gotext.Get("Word Search"))
	heading := html.EscapeString(gotext.Get("Word Search:"))

	_, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>%s</title>
    <style>
        %s
    </style>
</head>
<body>
    <h1>%s</h1>
    <div class="wordsearch">
        %s
        <p>%s</p>
    </div>
</body>
</html>
`, title, pageStyle, heading, gridToHTML(p), html.EscapeString(strings.Join(p.PlacedWords(), " ")))
	return err
}

// gridToHTML converts the grid to a table with one cell per letter.
func gridToHTML(p Puzzle) string {
	var sb strings.Builder
	sb.WriteString(`<table class="wsboard">`)

	for _, row := range rowStrings(p.Grid()) {
		sb.WriteString("<tr>")
		for _, cell := range row {
			sb.WriteString("<td>")
			sb.WriteString(html.EscapeString(cell))
			sb.WriteString("</td>")
		}
		sb.WriteString("</tr>")
	}

	sb.WriteString("</table>")
	return sb.String()
}
