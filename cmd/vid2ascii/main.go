package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mzhao/vid2ascii"
	"github.com/mzhao/vid2ascii/imageutil"
)

func main() {
	inputFile := flag.String("input", "",
		"Path to the input image or video file (required)")
	outputFile := flag.String("output", "",
		"Path to save the output; extension selects the format "+
			"(.txt/.ans text, .png still, .mp4 video, .gif animation). "+
			"Empty prints text to stdout")
	width := flag.Int("width", vid2ascii.DefaultWidth,
		"Target width in character columns")
	scale := flag.Float64("scale", vid2ascii.DefaultVerticalScale,
		"Vertical compression factor")
	charset := flag.String("charset", "standard",
		"Glyph ramp: simple, standard, or detailed")
	customRamp := flag.String("ramp", "",
		"Custom glyph ramp, sparse to dense (overrides -charset)")
	invert := flag.Bool("invert", false,
		"Reverse the glyph ramp, swapping dark and light")
	colorMode := flag.String("color", "none",
		"Color mode: none, true, or accent")
	accent := flag.String("accent", "255,255,255",
		"Accent color as R,G,B (used with -color accent)")
	brightness := flag.Int("brightness", 0,
		"Brightness delta, -100 to 100")
	contrast := flag.Float64("contrast", 1.0,
		"Contrast factor (1.0 = unchanged)")
	atTime := flag.Float64("time", -1,
		"Timestamp in seconds; converts that single video frame")
	framesDir := flag.String("frames", "",
		"Extract every video frame as text into this directory")
	showInfo := flag.Bool("info", false,
		"Print video stream properties and exit")
	fontFile := flag.String("font", "",
		"TTF font for raster output (default: built-in bitmap font)")
	flag.Parse()

	if *inputFile == "" {
		fmt.Println("Please provide the input file using the -input flag")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if *showInfo {
		info, err := vid2ascii.VideoInfo(*inputFile)
		if err != nil {
			fmt.Printf("Error reading video info: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("fps: %g\nframes: %d\nsize: %dx%d\nduration: %.2fs\n",
			info.FPS, info.FrameCount, info.Width, info.Height, info.Duration)
		return
	}

	opts := []vid2ascii.Option{
		vid2ascii.WithWidth(*width),
		vid2ascii.WithVerticalScale(*scale),
		vid2ascii.WithInvert(*invert),
		vid2ascii.WithBrightness(*brightness),
		vid2ascii.WithContrast(*contrast),
	}

	switch strings.ToLower(*charset) {
	case "simple":
		opts = append(opts, vid2ascii.WithCharset(vid2ascii.CharsetSimple))
	case "standard":
		opts = append(opts, vid2ascii.WithCharset(vid2ascii.CharsetStandard))
	case "detailed":
		opts = append(opts, vid2ascii.WithCharset(vid2ascii.CharsetDetailed))
	default:
		fmt.Println("Invalid charset, options are simple, standard, or detailed")
		os.Exit(1)
	}
	if *customRamp != "" {
		opts = append(opts, vid2ascii.WithRamp(*customRamp))
	}

	switch strings.ToLower(*colorMode) {
	case "none":
	case "true":
		opts = append(opts, vid2ascii.WithColorMode(vid2ascii.ColorTrue))
	case "accent":
		accentRGB, err := parseAccent(*accent)
		if err != nil {
			fmt.Printf("Invalid accent color: %v\n", err)
			os.Exit(1)
		}
		opts = append(opts,
			vid2ascii.WithColorMode(vid2ascii.ColorAccent),
			vid2ascii.WithAccentColor(accentRGB))
	default:
		fmt.Println("Invalid color mode, options are none, true, or accent")
		os.Exit(1)
	}

	conv, err := vid2ascii.New(opts...)
	if err != nil {
		fmt.Printf("Error in configuration: %v\n", err)
		os.Exit(1)
	}

	if *framesDir != "" {
		sink, err := vid2ascii.NewTextDirSink(*framesDir)
		if err != nil {
			fmt.Printf("Error opening frame directory: %v\n", err)
			os.Exit(1)
		}
		frames, err := conv.ExtractFrames(*inputFile, sink)
		if err != nil {
			fmt.Printf("Error extracting frames: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Extracted %d frames to %s\n", frames, *framesDir)
		return
	}

	out := strings.ToLower(*outputFile)
	switch {
	case strings.HasSuffix(out, ".mp4"):
		frames, err := conv.ExportVideo(*inputFile, *outputFile)
		if err != nil {
			fmt.Printf("Error exporting video: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %d frames to %s\n", frames, *outputFile)

	case strings.HasSuffix(out, ".gif"):
		videoOut := strings.TrimSuffix(*outputFile, ".gif") + ".mp4"
		frames, err := conv.ExportAnimation(*inputFile, videoOut, *outputFile)
		if err != nil {
			fmt.Printf("Error exporting animation: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %d frames to %s and %s\n", frames, videoOut, *outputFile)

	case strings.HasSuffix(out, ".png"):
		grid, err := loadGrid(conv, *inputFile, *atTime)
		if err != nil {
			fmt.Printf("Error converting input: %v\n", err)
			os.Exit(1)
		}
		glyphs, err := glyphSet(*fontFile)
		if err != nil {
			fmt.Printf("Error loading font: %v\n", err)
			os.Exit(1)
		}
		rendered := glyphs.RenderGrid(grid.Sanitized())
		if err := imageutil.SavePNG(rendered, *outputFile); err != nil {
			fmt.Printf("Error writing PNG: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("PNG output written to %s\n", *outputFile)

	default:
		grid, err := loadGrid(conv, *inputFile, *atTime)
		if err != nil {
			fmt.Printf("Error converting input: %v\n", err)
			os.Exit(1)
		}
		text := grid.Text()
		if strings.ToLower(*colorMode) != "none" {
			text = grid.AnsiText()
		}
		if *outputFile == "" {
			fmt.Println(text)
			return
		}
		if err := os.WriteFile(*outputFile, []byte(text), 0644); err != nil {
			fmt.Printf("Error writing to file: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Output written to %s\n", *outputFile)
	}
}

// loadGrid converts either a still image or, when a timestamp is
// given, a single video frame.
func loadGrid(conv *vid2ascii.Converter, path string, atTime float64) (*vid2ascii.Grid, error) {
	if atTime >= 0 {
		return conv.FrameAt(path, atTime)
	}
	return conv.ConvertFile(path)
}

func glyphSet(fontFile string) (*vid2ascii.GlyphSet, error) {
	if fontFile == "" {
		return vid2ascii.DefaultGlyphSet(), nil
	}
	return vid2ascii.LoadGlyphSet(fontFile)
}

func parseAccent(s string) (imageutil.RGB, error) {
	var r, g, b int
	if _, err := fmt.Sscanf(s, "%d,%d,%d", &r, &g, &b); err != nil {
		return imageutil.RGB{}, fmt.Errorf("expected R,G,B: %w", err)
	}
	for _, v := range []int{r, g, b} {
		if v < 0 || v > 255 {
			return imageutil.RGB{}, fmt.Errorf("channel %d out of range 0-255", v)
		}
	}
	return imageutil.RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}
