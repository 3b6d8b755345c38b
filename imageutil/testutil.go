package imageutil

// Synthetic image generators shared by tests in this module.

// CreateSolidImage creates an image filled with a single color.
func CreateSolidImage(width, height int, c RGB) *RGBAImage {
	img := NewRGBAImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGB(x, y, c)
		}
	}
	return img
}

// CreateGradientImage creates a horizontal black-to-white gradient.
func CreateGradientImage(width, height int) *RGBAImage {
	img := NewRGBAImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := uint8(x * 255 / (width - 1))
			img.SetRGB(x, y, RGB{R: v, G: v, B: v})
		}
	}
	return img
}

// CreateCheckerboardImage creates an alternating black/white grid with
// the given square size.
func CreateCheckerboardImage(width, height, square int) *RGBAImage {
	img := NewRGBAImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if ((x/square)+(y/square))%2 == 0 {
				img.SetRGB(x, y, White)
			} else {
				img.SetRGB(x, y, RGB{})
			}
		}
	}
	return img
}
