package imageutil

// AdjustTone applies contrast and brightness to a frame and returns the
// adjusted copy. The source image is never modified.
//
// Contrast is a linear scaling of each channel around the perceptual
// midpoint 128: factor 1.0 is a no-op, factor 0 flattens every channel
// to mid-gray, factors above 1 expand contrast. Brightness is a
// multiplicative enhancement with factor 1 + delta/100, applied after
// contrast. Channel values are clamped to [0, 255] after each stage.
func AdjustTone(img *RGBAImage, contrast float64, brightness int) *RGBAImage {
	if contrast == 1.0 && brightness == 0 {
		return img.Clone()
	}

	// 256-entry transfer table: both transforms are per-channel, so one
	// lookup covers all three channels of every pixel.
	brightFactor := 1.0 + float64(brightness)/100.0
	var table [256]uint8
	for v := 0; v < 256; v++ {
		adjusted := (float64(v)-128.0)*contrast + 128.0
		adjusted = clampChannel(adjusted)
		adjusted = clampChannel(adjusted * brightFactor)
		table[v] = uint8(adjusted + 0.5)
	}

	width, height := img.Width(), img.Height()
	dst := NewRGBAImage(width, height)
	for i := 0; i < len(img.Pix); i += 4 {
		dst.Pix[i] = table[img.Pix[i]]
		dst.Pix[i+1] = table[img.Pix[i+1]]
		dst.Pix[i+2] = table[img.Pix[i+2]]
		dst.Pix[i+3] = img.Pix[i+3]
	}
	return dst
}

func clampChannel(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
