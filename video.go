package vid2ascii

import (
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"math"
	"os"

	"github.com/soniakeys/quant/median"
	"gocv.io/x/gocv"
)

// defaultFPS is used when a container reports a non-positive frame
// rate.
const defaultFPS = 25.0

// StreamInfo summarizes a video container's stream properties.
type StreamInfo struct {
	FPS        float64
	FrameCount int
	Width      int
	Height     int
	// Duration in seconds, derived from FrameCount and FPS.
	Duration float64
}

// VideoSource wraps an open capture handle for sequential or seeked
// frame access. Close releases the underlying handle.
type VideoSource struct {
	cap  *gocv.VideoCapture
	path string
}

// OpenVideo opens a video file for reading.
func OpenVideo(path string) (*VideoSource, error) {
	cap, err := gocv.VideoCaptureFile(path)
	if err != nil {
		return nil, fmt.Errorf("open video %s: %w: %v", path, ErrDecodeFailure, err)
	}
	if !cap.IsOpened() {
		cap.Close()
		return nil, fmt.Errorf("open video %s: %w: container not readable", path, ErrDecodeFailure)
	}
	return &VideoSource{cap: cap, path: path}, nil
}

// Info reads the stream properties off the open capture.
func (v *VideoSource) Info() StreamInfo {
	info := StreamInfo{
		FPS:        v.cap.Get(gocv.VideoCaptureFPS),
		FrameCount: int(v.cap.Get(gocv.VideoCaptureFrameCount)),
		Width:      int(v.cap.Get(gocv.VideoCaptureFrameWidth)),
		Height:     int(v.cap.Get(gocv.VideoCaptureFrameHeight)),
	}
	if info.FPS > 0 {
		info.Duration = float64(info.FrameCount) / info.FPS
	}
	return info
}

// Next reads the next frame into dst. It returns false at end of
// stream or on a read error.
func (v *VideoSource) Next(dst *gocv.Mat) bool {
	return v.cap.Read(dst) && !dst.Empty()
}

// SeekFrame positions the stream so the next read returns frame n.
func (v *VideoSource) SeekFrame(n int) {
	v.cap.Set(gocv.VideoCapturePosFrames, float64(n))
}

// Close releases the capture handle.
func (v *VideoSource) Close() error {
	return v.cap.Close()
}

// VideoInfo opens a video file and returns its stream properties.
func VideoInfo(path string) (StreamInfo, error) {
	src, err := OpenVideo(path)
	if err != nil {
		return StreamInfo{}, err
	}
	defer src.Close()
	return src.Info(), nil
}

// FrameAt converts the frame nearest the given timestamp. Timestamps
// map to frame numbers by truncation of seconds * fps.
func (c *Converter) FrameAt(path string, seconds float64) (*Grid, error) {
	src, err := OpenVideo(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	fps := src.Info().FPS
	if fps <= 0 {
		fps = defaultFPS
	}
	src.SeekFrame(int(seconds * fps))

	mat := gocv.NewMat()
	defer mat.Close()
	if !src.Next(&mat) {
		return nil, fmt.Errorf("frame at %gs in %s: %w: seek past end of stream",
			seconds, path, ErrDecodeFailure)
	}
	return c.ConvertMat(mat)
}

// FrameSink receives converted frames in stream order. WriteFrame is
// called once per frame with a strictly increasing index starting at 0;
// returning an error stops the extraction.
type FrameSink interface {
	WriteFrame(index int, grid *Grid) error
}

// ExtractFrames converts every frame of a video in order, handing each
// grid to the sink. It returns the number of frames delivered.
func (c *Converter) ExtractFrames(path string, sink FrameSink) (int, error) {
	src, err := OpenVideo(path)
	if err != nil {
		return 0, err
	}
	defer src.Close()

	mat := gocv.NewMat()
	defer mat.Close()

	count := 0
	for src.Next(&mat) {
		grid, err := c.ConvertMat(mat)
		if err != nil {
			return count, fmt.Errorf("frame %d: %w", count, err)
		}
		if err := sink.WriteFrame(count, grid); err != nil {
			return count, fmt.Errorf("sink frame %d: %w", count, err)
		}
		count++
	}
	return count, nil
}

// ExportVideo re-encodes a video as rendered character-grid frames.
// The export runs with the effective configuration: width capped at
// MaxRenderWidth and glyphs drawn accent-or-white. Output dimensions
// are fixed by the first frame; later frames that resolve to a
// different grid size are padded or truncated to fit. It returns the
// number of frames written.
func (c *Converter) ExportVideo(videoPath, outPath string) (int, error) {
	ec := c.exportConverter()

	src, err := OpenVideo(videoPath)
	if err != nil {
		return 0, err
	}
	defer src.Close()

	fps := src.Info().FPS
	if fps <= 0 {
		fps = defaultFPS
	}

	glyphs := DefaultGlyphSet()
	mat := gocv.NewMat()
	defer mat.Close()

	var writer *gocv.VideoWriter
	var gridW, gridH int
	count := 0

	for src.Next(&mat) {
		grid, err := ec.ConvertMat(mat)
		if err != nil {
			abandonExport(writer, outPath)
			return count, fmt.Errorf("frame %d: %w", count, err)
		}

		if writer == nil {
			gridW, gridH = grid.Width(), grid.Height()
			writer, err = gocv.VideoWriterFile(outPath, "mp4v", fps,
				gridW*CellWidth, gridH*CellHeight, true)
			if err != nil {
				return 0, fmt.Errorf("open writer %s: %w: %v", outPath, ErrSinkOpen, err)
			}
			if !writer.IsOpened() {
				writer.Close()
				os.Remove(outPath)
				return 0, fmt.Errorf("open writer %s: %w: codec unavailable", outPath, ErrSinkOpen)
			}
		}

		rendered := glyphs.RenderGridSized(grid.Sanitized(), gridW, gridH)
		if err := writeRasterFrame(writer, rendered); err != nil {
			abandonExport(writer, outPath)
			return count, fmt.Errorf("write frame %d: %w", count, err)
		}
		count++
	}

	if writer == nil {
		return 0, fmt.Errorf("export %s: %w: no decodable frames", videoPath, ErrDecodeFailure)
	}
	if err := writer.Close(); err != nil {
		os.Remove(outPath)
		return count, fmt.Errorf("finalize %s: %w", outPath, err)
	}
	return count, nil
}

// abandonExport closes a partial export and removes the output so no
// truncated file is left behind.
func abandonExport(writer *gocv.VideoWriter, path string) {
	if writer == nil {
		return
	}
	writer.Close()
	os.Remove(path)
}

// writeRasterFrame pushes one rendered RGBA frame through the encoder,
// converting to the BGR channel order the writer expects.
func writeRasterFrame(writer *gocv.VideoWriter, img *image.RGBA) error {
	rgb, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return err
	}
	defer rgb.Close()

	bgr := gocv.NewMat()
	defer bgr.Close()
	gocv.CvtColor(rgb, &bgr, gocv.ColorRGBToBGR)

	return writer.Write(bgr)
}

// ExportAnimation renders a video export and then re-encodes the
// rendered stream as a looping GIF. Both output files are produced; the
// frame count of the video export is returned.
func (c *Converter) ExportAnimation(videoPath, videoOutPath, gifOutPath string) (int, error) {
	count, err := c.ExportVideo(videoPath, videoOutPath)
	if err != nil {
		return count, err
	}
	if err := EncodeAnimation(videoOutPath, gifOutPath); err != nil {
		return count, err
	}
	return count, nil
}

// EncodeAnimation decodes a rendered video and writes it as an
// infinitely looping GIF, quantizing each frame with a median-cut
// palette. Frame delay follows the source frame rate.
func EncodeAnimation(videoPath, gifPath string) error {
	src, err := OpenVideo(videoPath)
	if err != nil {
		return err
	}
	defer src.Close()

	delay := delayCentiseconds(src.Info().FPS)
	q := median.Quantizer(255)

	anim := &gif.GIF{LoopCount: 0}
	mat := gocv.NewMat()
	defer mat.Close()

	for src.Next(&mat) {
		img, err := mat.ToImage()
		if err != nil {
			return fmt.Errorf("decode frame %d: %w: %v", len(anim.Image), ErrDecodeFailure, err)
		}
		p := q.Paletted(img)
		draw.Draw(p, p.Bounds(), img, image.Point{}, draw.Over)
		anim.Image = append(anim.Image, p)
		anim.Delay = append(anim.Delay, delay)
	}
	if len(anim.Image) == 0 {
		return fmt.Errorf("encode %s: %w: no decodable frames", gifPath, ErrDecodeFailure)
	}

	f, err := os.Create(gifPath)
	if err != nil {
		return fmt.Errorf("create %s: %w: %v", gifPath, ErrSinkOpen, err)
	}
	if err := gif.EncodeAll(f, anim); err != nil {
		f.Close()
		os.Remove(gifPath)
		return fmt.Errorf("encode %s: %w", gifPath, err)
	}
	return f.Close()
}

// frameDelayMS converts a frame rate into a per-frame delay in
// milliseconds, rounded to the nearest integer. Non-positive rates fall
// back to defaultFPS.
func frameDelayMS(fps float64) int {
	if fps <= 0 {
		fps = defaultFPS
	}
	return int(math.Round(1000 / fps))
}

// delayCentiseconds converts a frame rate into the centisecond delay
// units GIF uses, rounding the millisecond delay to the nearest tick.
func delayCentiseconds(fps float64) int {
	return (frameDelayMS(fps) + 5) / 10
}
