package vid2ascii

import (
	"errors"
	"testing"

	"github.com/mzhao/vid2ascii/imageutil"
)

func TestNewDefaults(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if c.width != DefaultWidth {
		t.Errorf("width = %d, want %d", c.width, DefaultWidth)
	}
	if c.verticalScale != DefaultVerticalScale {
		t.Errorf("verticalScale = %g, want %g", c.verticalScale, DefaultVerticalScale)
	}
	if string(c.ramp) != standardRamp {
		t.Errorf("default ramp = %q, want standard", string(c.ramp))
	}
	if c.colorMode != ColorNone {
		t.Errorf("colorMode = %d, want ColorNone", c.colorMode)
	}
	if c.accent != imageutil.White {
		t.Errorf("accent = %+v, want white", c.accent)
	}
	if c.contrast != 1.0 || c.brightness != 0 {
		t.Errorf("tone defaults = (%g, %d), want (1.0, 0)", c.contrast, c.brightness)
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	if _, err := New(WithWidth(0)); err == nil {
		t.Error("zero width accepted")
	}
	if _, err := New(WithWidth(-5)); err == nil {
		t.Error("negative width accepted")
	}
	if _, err := New(WithContrast(-1)); err == nil {
		t.Error("negative contrast accepted")
	}
}

func TestNewEmptyRamp(t *testing.T) {
	_, err := New(WithRamp(""))
	if !errors.Is(err, ErrEmptyRamp) {
		t.Errorf("error = %v, want ErrEmptyRamp", err)
	}
}

func TestNewInvertAppliedOnce(t *testing.T) {
	c, err := New(WithRamp("abc"), WithInvert(true))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if got := string(c.Ramp()); got != "cba" {
		t.Errorf("inverted ramp = %q, want %q", got, "cba")
	}
}

func TestRampReturnsCopy(t *testing.T) {
	c, err := New(WithRamp("abc"))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	ramp := c.Ramp()
	ramp[0] = 'Z'
	if string(c.Ramp()) != "abc" {
		t.Error("Ramp() exposed internal state")
	}
}

func TestExportConverterCapsWidth(t *testing.T) {
	c, err := New(WithWidth(300))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	e := c.exportConverter()
	if e.width != MaxRenderWidth {
		t.Errorf("export width = %d, want %d", e.width, MaxRenderWidth)
	}
	if c.width != 300 {
		t.Errorf("original width mutated to %d", c.width)
	}
}

func TestExportConverterKeepsSmallWidth(t *testing.T) {
	c, err := New(WithWidth(80))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if e := c.exportConverter(); e.width != 80 {
		t.Errorf("export width = %d, want 80", e.width)
	}
}

func TestExportConverterDropsTrueColor(t *testing.T) {
	c, err := New(WithColorMode(ColorTrue))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if e := c.exportConverter(); e.colorMode != ColorNone {
		t.Errorf("export colorMode = %d, want ColorNone", e.colorMode)
	}
	if c.colorMode != ColorTrue {
		t.Error("original colorMode mutated")
	}
}

func TestExportConverterKeepsAccent(t *testing.T) {
	accent := imageutil.RGB{R: 0, G: 255, B: 0}
	c, err := New(WithColorMode(ColorAccent), WithAccentColor(accent))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	e := c.exportConverter()
	if e.colorMode != ColorAccent || e.accent != accent {
		t.Errorf("export accent config = (%d, %+v), want (ColorAccent, %+v)",
			e.colorMode, e.accent, accent)
	}
}
