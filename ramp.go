package vid2ascii

// Charset selects one of the built-in glyph ramps. Each ramp is an
// ordered sequence of characters ascending in rendered ink density,
// indexed from sparse (dark background) to dense.
type Charset int

const (
	// CharsetSimple is a short ramp suited to low-detail output and
	// plain-text frame export.
	CharsetSimple Charset = iota

	// CharsetStandard is the default ramp.
	CharsetStandard

	// CharsetDetailed is the classic 70-glyph ramp for high-detail
	// conversions.
	CharsetDetailed
)

const (
	simpleRamp   = " .:-=+*#%@$"
	standardRamp = " .,:;i1tfLCG08#%@"
	detailedRamp = " .'`^\",:;Il!i><~+_-?][}{1)(|\\/tfjrxnuvczXYUJCLQ0OZmwqpdbkhao*#MW&8%B@$"
)

// rampFor returns the glyph sequence for a charset variant. Unknown
// variants fall back to the standard ramp.
func rampFor(cs Charset) []rune {
	switch cs {
	case CharsetSimple:
		return []rune(simpleRamp)
	case CharsetDetailed:
		return []rune(detailedRamp)
	default:
		return []rune(standardRamp)
	}
}

// reverseRamp returns a reversed copy of a ramp. Used once at
// configuration time for inverted output; never recomputed per pixel.
func reverseRamp(ramp []rune) []rune {
	out := make([]rune, len(ramp))
	for i, r := range ramp {
		out[len(ramp)-1-i] = r
	}
	return out
}

// glyphFor maps a luminance value in [0, 255] onto a ramp glyph:
// ramp[floor(b/255 * (L-1))]. b=0 selects ramp[0], b=255 selects
// ramp[L-1], and selection is monotonically non-decreasing in b.
func glyphFor(ramp []rune, b uint8) rune {
	return ramp[int(b)*(len(ramp)-1)/255]
}
