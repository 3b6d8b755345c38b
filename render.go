package vid2ascii

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/mzhao/vid2ascii/imageutil"
)

const (
	// CellWidth and CellHeight define the pixel box one grid cell
	// occupies in raster output.
	CellWidth  = 8
	CellHeight = 14

	// The glyph baseline sits this many pixels above the cell's bottom
	// edge.
	baselineOffset = 4

	// Nominal point size for TTF-derived glyph sets.
	glyphPointSize = 12.0

	// Alpha threshold for turning anti-aliased coverage into bitmap
	// pixels. 25% keeps thin strokes and dots that a 50% cut loses.
	alphaThreshold = 64
)

// cellBitmap is one pre-rendered glyph, one byte of column bits per
// cell row.
type cellBitmap [CellHeight]uint8

// GlyphSet holds pre-rendered cell bitmaps for the printable ASCII
// range. A set renders any number of grids; lookups are read-only.
type GlyphSet struct {
	glyphs map[rune]cellBitmap
	name   string
}

var (
	defaultSet     *GlyphSet
	defaultSetOnce sync.Once
)

// DefaultGlyphSet returns the built-in glyph set, rendered once from
// the basicfont face. It needs no font file on disk.
func DefaultGlyphSet() *GlyphSet {
	defaultSetOnce.Do(func() {
		defaultSet = buildBasicGlyphSet()
	})
	return defaultSet
}

func buildBasicGlyphSet() *GlyphSet {
	gs := &GlyphSet{
		glyphs: make(map[rune]cellBitmap, 95),
		name:   "basicfont-7x13",
	}

	face := basicfont.Face7x13
	for r := rune(0x20); r <= 0x7E; r++ {
		img := image.NewAlpha(image.Rect(0, 0, CellWidth, CellHeight))
		d := &font.Drawer{
			Dst:  img,
			Src:  image.White,
			Face: face,
			Dot:  fixed.P(0, CellHeight-baselineOffset),
		}
		d.DrawString(string(r))
		gs.glyphs[r] = bitmapFromAlpha(img)
	}
	return gs
}

// LoadGlyphSet pre-renders the printable ASCII range of a TrueType
// font into cell bitmaps.
func LoadGlyphSet(path string) (*GlyphSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font %s: %w", path, err)
	}
	ttf, err := freetype.ParseFont(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}

	gs := &GlyphSet{
		glyphs: make(map[rune]cellBitmap, 95),
		name:   path,
	}
	for r := rune(0x20); r <= 0x7E; r++ {
		gs.glyphs[r] = renderTTFGlyph(ttf, r)
	}
	return gs, nil
}

// renderTTFGlyph rasterizes a single glyph into an 8x14 cell bitmap
// with the baseline anchored baselineOffset pixels above the bottom.
func renderTTFGlyph(ttf *truetype.Font, r rune) cellBitmap {
	img := image.NewAlpha(image.Rect(0, 0, CellWidth, CellHeight))

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(ttf)
	ctx.SetFontSize(glyphPointSize)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(image.White)
	ctx.SetHinting(font.HintingFull)

	pt := freetype.Pt(0, CellHeight-baselineOffset)
	if _, err := ctx.DrawString(string(r), pt); err != nil {
		// Undrawable glyph stays blank; rendering continues.
		return cellBitmap{}
	}
	return bitmapFromAlpha(img)
}

func bitmapFromAlpha(img *image.Alpha) cellBitmap {
	var bm cellBitmap
	for y := 0; y < CellHeight; y++ {
		for x := 0; x < CellWidth; x++ {
			if img.AlphaAt(x, y).A > alphaThreshold {
				bm[y] |= 1 << x
			}
		}
	}
	return bm
}

// Glyph returns the cell bitmap for a character.
func (gs *GlyphSet) Glyph(r rune) (cellBitmap, bool) {
	bm, ok := gs.glyphs[r]
	return bm, ok
}

// RenderGrid composites a sanitized grid into a raster buffer of
// Width*CellWidth by Height*CellHeight pixels.
func (gs *GlyphSet) RenderGrid(g *Grid) *image.RGBA {
	return gs.RenderGridSized(g, g.Width(), g.Height())
}

// RenderGridSized composites a grid onto a fixed gridW x gridH cell
// canvas. Grids smaller than the canvas leave the remaining cells
// blank; larger grids are truncated. The background is black and a
// glyph the set cannot draw leaves its cell blank while rendering
// continues.
func (gs *GlyphSet) RenderGridSized(g *Grid, gridW, gridH int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, gridW*CellWidth, gridH*CellHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	for cy := 0; cy < gridH; cy++ {
		for cx := 0; cx < gridW; cx++ {
			cell := g.CellAt(cx, cy)
			bm, ok := gs.glyphs[cell.Glyph]
			if !ok {
				continue
			}

			glyphColor := imageutil.White
			if g.mode != ColorNone {
				glyphColor = cell.Color
			}
			gs.drawBitmap(img, bm, cx*CellWidth, cy*CellHeight, glyphColor)
		}
	}
	return img
}

func (gs *GlyphSet) drawBitmap(img *image.RGBA, bm cellBitmap, startX, startY int, c imageutil.RGB) {
	rgba := c.ToColor()
	for y := 0; y < CellHeight; y++ {
		row := bm[y]
		if row == 0 {
			continue
		}
		for x := 0; x < CellWidth; x++ {
			if row&(1<<x) != 0 {
				img.SetRGBA(startX+x, startY+y, rgba)
			}
		}
	}
}
