package vid2ascii

import "errors"

// Error kinds surfaced by the conversion and export pipeline. All are
// wrapped with operation context via fmt.Errorf("...: %w", err) and can
// be tested with errors.Is.
var (
	// ErrDecodeFailure indicates a source image or video frame could not
	// be read. Fatal for the current conversion; acquired decoder
	// resources are released before it propagates.
	ErrDecodeFailure = errors.New("frame decode failure")

	// ErrEmptyRamp indicates a charset configuration resolved to a
	// zero-length glyph ramp. Rejected at construction time.
	ErrEmptyRamp = errors.New("glyph ramp is empty")

	// ErrSinkOpen indicates a video or animation writer could not be
	// created. No partially written output is left behind.
	ErrSinkOpen = errors.New("output sink open failure")
)
