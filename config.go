// Package vid2ascii converts raster images and video frames into
// character grids, and renders those grids back into raster form as
// stills, video streams and looping animations.
package vid2ascii

import (
	"fmt"

	"github.com/mzhao/vid2ascii/imageutil"
)

// ColorMode selects how cell colors are attached during sampling.
type ColorMode int

const (
	// ColorNone attaches no color; text output is plain and raster
	// output draws glyphs in white.
	ColorNone ColorMode = iota

	// ColorTrue samples the per-cell RGB from the tone-adjusted,
	// resampled frame at the same coordinates as the luminance sample.
	ColorTrue

	// ColorAccent tags every cell with one configured accent color.
	ColorAccent
)

const (
	// DefaultWidth is the default character-grid width.
	DefaultWidth = 100

	// DefaultVerticalScale compensates for glyph cells being visually
	// taller than wide; without it the output appears vertically
	// stretched when displayed in a monospaced grid.
	DefaultVerticalScale = 0.43

	// MaxRenderWidth caps the grid width for raster exports to bound
	// per-frame render cost.
	MaxRenderWidth = 150
)

// Converter holds one immutable conversion configuration. Build it
// with New; it is read-only once a conversion begins and safe for
// concurrent use across independent frames.
type Converter struct {
	width         int
	verticalScale float64
	ramp          []rune
	invert        bool
	brightness    int
	contrast      float64
	colorMode     ColorMode
	accent        imageutil.RGB
	interp        imageutil.Interpolation
}

// Option is a functional option for configuring a Converter.
type Option func(*Converter)

// New creates a Converter with the given options. Ramp inversion is
// applied here, once; an empty ramp or non-positive width is rejected.
func New(opts ...Option) (*Converter, error) {
	c := &Converter{
		width:         DefaultWidth,
		verticalScale: DefaultVerticalScale,
		ramp:          rampFor(CharsetStandard),
		contrast:      1.0,
		accent:        imageutil.White,
		interp:        imageutil.InterpolationBilinear,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.width < 1 {
		return nil, fmt.Errorf("target width must be positive, got %d", c.width)
	}
	if c.contrast < 0 {
		return nil, fmt.Errorf("contrast factor must be >= 0, got %g", c.contrast)
	}
	if len(c.ramp) == 0 {
		return nil, fmt.Errorf("resolve charset: %w", ErrEmptyRamp)
	}
	if c.invert {
		c.ramp = reverseRamp(c.ramp)
	}

	return c, nil
}

// WithWidth sets the target width in character columns.
func WithWidth(width int) Option {
	return func(c *Converter) {
		c.width = width
	}
}

// WithVerticalScale sets the vertical compression factor.
func WithVerticalScale(scale float64) Option {
	return func(c *Converter) {
		c.verticalScale = scale
	}
}

// WithCharset selects one of the built-in glyph ramps.
func WithCharset(cs Charset) Option {
	return func(c *Converter) {
		c.ramp = rampFor(cs)
	}
}

// WithRamp sets a custom glyph ramp, ordered sparse to dense.
func WithRamp(ramp string) Option {
	return func(c *Converter) {
		c.ramp = []rune(ramp)
	}
}

// WithInvert reverses the ramp, swapping dark and light.
func WithInvert(invert bool) Option {
	return func(c *Converter) {
		c.invert = invert
	}
}

// WithColorMode sets how cell colors are sampled.
func WithColorMode(mode ColorMode) Option {
	return func(c *Converter) {
		c.colorMode = mode
	}
}

// WithAccentColor sets the color used in ColorAccent mode.
func WithAccentColor(accent imageutil.RGB) Option {
	return func(c *Converter) {
		c.accent = accent
	}
}

// WithBrightness sets the brightness delta, nominally -100..100.
func WithBrightness(delta int) Option {
	return func(c *Converter) {
		c.brightness = delta
	}
}

// WithContrast sets the contrast factor (1.0 = unchanged).
func WithContrast(factor float64) Option {
	return func(c *Converter) {
		c.contrast = factor
	}
}

// WithInterpolation sets the resampling method.
func WithInterpolation(interp imageutil.Interpolation) Option {
	return func(c *Converter) {
		c.interp = interp
	}
}

// Width returns the configured grid width in character columns.
func (c *Converter) Width() int {
	return c.width
}

// Ramp returns the resolved glyph ramp (inversion already applied).
func (c *Converter) Ramp() []rune {
	ramp := make([]rune, len(c.ramp))
	copy(ramp, c.ramp)
	return ramp
}

// exportConverter derives the effective configuration for raster
// export: width capped at MaxRenderWidth and true-color sampling
// dropped, since exported rasters carry accent-or-white glyphs only.
// The receiver is left untouched.
func (c *Converter) exportConverter() *Converter {
	e := *c
	if e.width > MaxRenderWidth {
		e.width = MaxRenderWidth
	}
	if e.colorMode == ColorTrue {
		e.colorMode = ColorNone
	}
	return &e
}
