package imageutil

import (
	"image"

	"golang.org/x/image/draw"
)

// Interpolation specifies the interpolation method for resampling.
type Interpolation int

const (
	// InterpolationBilinear uses bilinear interpolation. Deterministic
	// and the default for grid resampling.
	InterpolationBilinear Interpolation = iota

	// InterpolationNearest uses nearest-neighbor interpolation.
	// Fastest but lowest quality.
	InterpolationNearest

	// InterpolationArea uses Catmull-Rom, the closest equivalent to
	// OpenCV's INTER_AREA for downscaling.
	InterpolationArea
)

func scalerFor(interp Interpolation) draw.Scaler {
	switch interp {
	case InterpolationNearest:
		return draw.NearestNeighbor
	case InterpolationArea:
		return draw.CatmullRom
	default:
		return draw.BiLinear
	}
}

// Resize resamples an RGBA image to exactly width x height using the
// given interpolation method.
func Resize(img *RGBAImage, width, height int, interp Interpolation) *RGBAImage {
	dst := NewRGBAImage(width, height)
	dstRect := image.Rect(0, 0, width, height)

	scalerFor(interp).Scale(dst.RGBA, dstRect, img.RGBA, img.Bounds(), draw.Over, nil)
	return dst
}
