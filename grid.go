package vid2ascii

import (
	"fmt"
	"strings"

	"github.com/mzhao/vid2ascii/imageutil"
)

const esc = "\x1b"

// Cell is one character position in a grid: a glyph plus the color
// attached by the configured ColorMode (meaningful only when the grid's
// mode is not ColorNone).
type Cell struct {
	Glyph rune
	Color imageutil.RGB
}

// Grid is one frame's character-grid representation. Rows all have the
// declared width once finalized; a grid is produced, consumed and
// discarded per frame.
type Grid struct {
	cells [][]Cell
	width int
	mode  ColorMode
}

// Width returns the grid width in character columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return len(g.cells)
}

// Mode returns the color mode the grid was sampled with.
func (g *Grid) Mode() ColorMode {
	return g.mode
}

// CellAt returns the cell at (x, y). Coordinates outside the grid yield
// a blank cell, so callers drawing a fixed canvas never index out of
// bounds.
func (g *Grid) CellAt(x, y int) Cell {
	if y < 0 || y >= len(g.cells) {
		return Cell{Glyph: ' '}
	}
	row := g.cells[y]
	if x < 0 || x >= len(row) {
		return Cell{Glyph: ' '}
	}
	return row[x]
}

// Text serializes the grid as plain text: rows joined by newline, no
// color codes.
func (g *Grid) Text() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * len(g.cells))

	for i, row := range g.cells {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, cell := range row {
			sb.WriteRune(cell.Glyph)
		}
	}
	return sb.String()
}

// AnsiText serializes the grid as true-color terminal text: each glyph
// preceded by an ESC[38;2;R;G;Bm sequence, each row terminated by an
// ESC[0m reset before its newline, and a final reset after the last
// row. Grids sampled without color fall back to plain text.
func (g *Grid) AnsiText() string {
	if g.mode == ColorNone {
		return g.Text()
	}

	var sb strings.Builder
	// ~19 bytes of escape overhead per colored glyph
	sb.Grow((g.width*20 + 6) * len(g.cells))

	for i, row := range g.cells {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, cell := range row {
			sb.WriteString(fmt.Sprintf("%s[38;2;%d;%d;%dm",
				esc, cell.Color.R, cell.Color.G, cell.Color.B))
			sb.WriteRune(cell.Glyph)
		}
		sb.WriteString(esc + "[0m")
	}
	return sb.String()
}
