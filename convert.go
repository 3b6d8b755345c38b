package vid2ascii

import (
	"fmt"
	"image"
	"math"

	"gocv.io/x/gocv"

	"github.com/mzhao/vid2ascii/imageutil"
)

// gridHeight derives the row count for a source frame:
// round(targetWidth * (srcHeight/srcWidth) * verticalScale), minimum 1.
func gridHeight(srcWidth, srcHeight, targetWidth int, verticalScale float64) int {
	h := int(math.Round(float64(targetWidth) *
		float64(srcHeight) / float64(srcWidth) * verticalScale))
	if h < 1 {
		h = 1
	}
	return h
}

// Convert runs the per-frame pipeline on one decoded raster frame:
// tone adjustment, resampling to the character grid's dimensions, then
// glyph and color sampling. The source image is only read; on failure
// no partial grid is returned.
func (c *Converter) Convert(src image.Image) (*Grid, error) {
	if src == nil {
		return nil, fmt.Errorf("convert: %w: nil source image", ErrDecodeFailure)
	}
	bounds := src.Bounds()
	if bounds.Dx() < 1 || bounds.Dy() < 1 {
		return nil, fmt.Errorf("convert: %w: empty %dx%d frame",
			ErrDecodeFailure, bounds.Dx(), bounds.Dy())
	}

	frame := imageutil.FromImage(src)
	if c.contrast != 1.0 || c.brightness != 0 {
		frame = imageutil.AdjustTone(frame, c.contrast, c.brightness)
	}

	height := gridHeight(bounds.Dx(), bounds.Dy(), c.width, c.verticalScale)
	resampled := imageutil.Resize(frame, c.width, height, c.interp)
	gray := imageutil.ToGrayscale(resampled)

	// Luminance and color sampling share (x, y) into the same
	// resampled frame.
	cells := make([][]Cell, height)
	for y := 0; y < height; y++ {
		row := make([]Cell, c.width)
		for x := 0; x < c.width; x++ {
			cell := Cell{Glyph: glyphFor(c.ramp, gray.GetGray(x, y))}
			switch c.colorMode {
			case ColorTrue:
				cell.Color = resampled.GetRGB(x, y)
			case ColorAccent:
				cell.Color = c.accent
			}
			row[x] = cell
		}
		cells[y] = row
	}

	return &Grid{cells: cells, width: c.width, mode: c.colorMode}, nil
}

// ConvertFile decodes a still image from disk and converts it.
func (c *Converter) ConvertFile(path string) (*Grid, error) {
	img, err := imageutil.LoadImage(path)
	if err != nil {
		return nil, fmt.Errorf("convert %s: %w: %v", path, ErrDecodeFailure, err)
	}
	return c.Convert(img)
}

// ConvertMat converts one decoded video frame. The Mat stays owned by
// the caller; it is only read.
func (c *Converter) ConvertMat(mat gocv.Mat) (*Grid, error) {
	if mat.Empty() {
		return nil, fmt.Errorf("convert frame: %w: empty mat", ErrDecodeFailure)
	}
	img, err := mat.ToImage()
	if err != nil {
		return nil, fmt.Errorf("convert frame: %w: %v", ErrDecodeFailure, err)
	}
	return c.Convert(img)
}
