package vid2ascii

import (
	"regexp"
	"strings"
)

// CSI-style escape sequences: ESC [ parameter bytes, intermediate
// bytes, one final byte.
var csiSeq = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]`)

// Sanitize strips terminal escape sequences from text and maps every
// remaining character outside the printable range [0x20, 0x7E] to a
// space. Newlines are preserved. Sanitize is idempotent.
//
// Only raster-render input is sanitized; true-color text returned to a
// terminal consumer keeps its embedded color codes.
func Sanitize(text string) string {
	text = csiSeq.ReplaceAllString(text, "")

	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\n':
			sb.WriteByte('\n')
		case r >= 0x20 && r <= 0x7E:
			sb.WriteRune(r)
		default:
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// Sanitized returns a copy of the grid with every glyph outside the
// printable range replaced by a space. Cell colors are kept. Used
// before raster rendering; text serialization is unaffected.
func (g *Grid) Sanitized() *Grid {
	cells := make([][]Cell, len(g.cells))
	for y, row := range g.cells {
		out := make([]Cell, len(row))
		for x, cell := range row {
			if cell.Glyph < 0x20 || cell.Glyph > 0x7E {
				cell.Glyph = ' '
			}
			out[x] = cell
		}
		cells[y] = out
	}
	return &Grid{cells: cells, width: g.width, mode: g.mode}
}
