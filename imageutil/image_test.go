package imageutil

import (
	"path/filepath"
	"testing"
)

func TestNewRGBAImage(t *testing.T) {
	img := NewRGBAImage(100, 50)
	if img.Width() != 100 {
		t.Errorf("Expected width 100, got %d", img.Width())
	}
	if img.Height() != 50 {
		t.Errorf("Expected height 50, got %d", img.Height())
	}
}

func TestRGBAImageGetSetRGB(t *testing.T) {
	img := NewRGBAImage(10, 10)
	c := RGB{R: 100, G: 150, B: 200}
	img.SetRGB(5, 5, c)

	got := img.GetRGB(5, 5)
	if got != c {
		t.Errorf("Expected %v, got %v", c, got)
	}
}

func TestRGBAImageClone(t *testing.T) {
	img := NewRGBAImage(10, 10)
	img.SetRGB(5, 5, RGB{R: 255, G: 0, B: 0})

	clone := img.Clone()
	if clone.GetRGB(5, 5) != img.GetRGB(5, 5) {
		t.Error("Clone should have same pixel values")
	}

	// Modify clone, original should be unchanged
	clone.SetRGB(5, 5, RGB{R: 0, G: 255, B: 0})
	if img.GetRGB(5, 5).G != 0 {
		t.Error("Modifying clone should not affect original")
	}
}

func TestLuminance(t *testing.T) {
	if v := Luminance(RGB{R: 255, G: 255, B: 255}); v != 255 {
		t.Errorf("White should have luminance 255, got %d", v)
	}
	if v := Luminance(RGB{}); v != 0 {
		t.Errorf("Black should have luminance 0, got %d", v)
	}

	// Red weighted at 0.299: 0.299 * 255 = 76.245
	if v := Luminance(RGB{R: 255}); v < 75 || v > 77 {
		t.Errorf("Red should have luminance ~76, got %d", v)
	}

	// Weighted conversion, not averaging: green dominates
	green := Luminance(RGB{G: 255})
	blue := Luminance(RGB{B: 255})
	if green <= blue {
		t.Errorf("Green (%d) should be brighter than blue (%d)", green, blue)
	}
}

func TestToGrayscale(t *testing.T) {
	img := CreateSolidImage(4, 4, RGB{R: 255, G: 255, B: 255})
	gray := ToGrayscale(img)

	if gray.Width() != 4 || gray.Height() != 4 {
		t.Errorf("Grayscale should preserve dimensions, got %dx%d",
			gray.Width(), gray.Height())
	}
	if v := gray.GetGray(2, 2); v != 255 {
		t.Errorf("White pixel should convert to 255, got %d", v)
	}
}

func TestResizeExactDimensions(t *testing.T) {
	img := CreateGradientImage(200, 100)

	for _, interp := range []Interpolation{
		InterpolationBilinear, InterpolationNearest, InterpolationArea,
	} {
		resized := Resize(img, 100, 22, interp)
		if resized.Width() != 100 || resized.Height() != 22 {
			t.Errorf("interp %d: expected 100x22, got %dx%d",
				interp, resized.Width(), resized.Height())
		}
	}

	// Upscale
	resized := Resize(img, 400, 200, InterpolationBilinear)
	if resized.Width() != 400 || resized.Height() != 200 {
		t.Errorf("Expected 400x200, got %dx%d", resized.Width(), resized.Height())
	}
}

func TestResizeDeterministic(t *testing.T) {
	img := CreateCheckerboardImage(64, 64, 8)

	a := Resize(img, 17, 9, InterpolationBilinear)
	b := Resize(img, 17, 9, InterpolationBilinear)
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("Resampling should be deterministic, pixel byte %d differs", i)
		}
	}
}

func TestAdjustToneNoOp(t *testing.T) {
	img := CreateGradientImage(16, 8)
	out := AdjustTone(img, 1.0, 0)

	for i := range img.Pix {
		if out.Pix[i] != img.Pix[i] {
			t.Fatal("contrast 1.0 / brightness 0 should be a no-op")
		}
	}

	// Must be a copy, not an alias
	out.SetRGB(0, 0, RGB{R: 1, G: 2, B: 3})
	if img.GetRGB(0, 0) == (RGB{R: 1, G: 2, B: 3}) {
		t.Error("AdjustTone must not alias the source image")
	}
}

func TestAdjustToneZeroContrast(t *testing.T) {
	img := CreateGradientImage(32, 4)
	out := AdjustTone(img, 0, 0)

	for y := 0; y < out.Height(); y++ {
		for x := 0; x < out.Width(); x++ {
			c := out.GetRGB(x, y)
			if c.R != 128 || c.G != 128 || c.B != 128 {
				t.Fatalf("contrast 0 should flatten to mid-gray, got %v at (%d,%d)", c, x, y)
			}
		}
	}
}

func TestAdjustToneContrastExpansion(t *testing.T) {
	img := CreateSolidImage(2, 2, RGB{R: 200, G: 200, B: 200})
	out := AdjustTone(img, 2.0, 0)

	// (200-128)*2 + 128 = 272 -> clamped to 255
	if c := out.GetRGB(0, 0); c.R != 255 {
		t.Errorf("expected clamp to 255, got %d", c.R)
	}

	img = CreateSolidImage(2, 2, RGB{R: 100, G: 100, B: 100})
	out = AdjustTone(img, 2.0, 0)
	// (100-128)*2 + 128 = 72
	if c := out.GetRGB(0, 0); c.R != 72 {
		t.Errorf("expected 72, got %d", c.R)
	}
}

func TestAdjustToneBrightness(t *testing.T) {
	img := CreateSolidImage(2, 2, RGB{R: 100, G: 100, B: 100})

	// +50 -> factor 1.5 -> 150
	out := AdjustTone(img, 1.0, 50)
	if c := out.GetRGB(0, 0); c.R != 150 {
		t.Errorf("expected 150, got %d", c.R)
	}

	// -100 -> factor 0 -> black
	out = AdjustTone(img, 1.0, -100)
	if c := out.GetRGB(0, 0); c.R != 0 {
		t.Errorf("expected 0, got %d", c.R)
	}

	// +200 -> factor 3 -> clamped
	out = AdjustTone(img, 1.0, 200)
	if c := out.GetRGB(0, 0); c.R != 255 {
		t.Errorf("expected clamp to 255, got %d", c.R)
	}
}

func TestAdjustToneOrderContrastFirst(t *testing.T) {
	img := CreateSolidImage(1, 1, RGB{R: 64, G: 64, B: 64})

	// Contrast then brightness: ((64-128)*0.5 + 128) * 1.5 = 96 * 1.5 = 144.
	// Brightness first would give ((96-128)*0.5 + 128) = 112.
	out := AdjustTone(img, 0.5, 50)
	if c := out.GetRGB(0, 0); c.R != 144 {
		t.Errorf("contrast must be applied before brightness: expected 144, got %d", c.R)
	}
}

func TestLoadSavePNG(t *testing.T) {
	tmpDir := t.TempDir()

	img := CreateCheckerboardImage(64, 64, 16)
	pngPath := filepath.Join(tmpDir, "test.png")
	if err := SavePNG(img.RGBA, pngPath); err != nil {
		t.Fatalf("Failed to save PNG: %v", err)
	}

	loaded, err := LoadImage(pngPath)
	if err != nil {
		t.Fatalf("Failed to load PNG: %v", err)
	}

	if loaded.Width() != 64 || loaded.Height() != 64 {
		t.Errorf("Expected 64x64, got %dx%d", loaded.Width(), loaded.Height())
	}
	// PNG round trip is lossless
	for i := range img.Pix {
		if img.Pix[i] != loaded.Pix[i] {
			t.Fatal("PNG round trip should be lossless")
		}
	}
}
