package vid2ascii

import (
	"fmt"
	"os"
	"path/filepath"
)

// TextDirSink writes each frame as a numbered plain-text file in a
// directory, frame_000000.txt onward. It implements FrameSink.
type TextDirSink struct {
	dir string
}

// NewTextDirSink creates the target directory if needed.
func NewTextDirSink(dir string) (*TextDirSink, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create frame directory %s: %w: %v", dir, ErrSinkOpen, err)
	}
	return &TextDirSink{dir: dir}, nil
}

// WriteFrame writes one frame's plain-text serialization.
func (s *TextDirSink) WriteFrame(index int, grid *Grid) error {
	path := filepath.Join(s.dir, fmt.Sprintf("frame_%06d.txt", index))
	return os.WriteFile(path, []byte(grid.Text()), 0644)
}

// MemorySink collects frame texts in order. Useful for tests and for
// callers that post-process whole clips at once.
type MemorySink struct {
	Frames []string
}

// WriteFrame appends the frame's plain-text serialization. Indices
// arrive strictly increasing, so append preserves stream order.
func (s *MemorySink) WriteFrame(index int, grid *Grid) error {
	if index != len(s.Frames) {
		return fmt.Errorf("frame %d arrived out of order, have %d", index, len(s.Frames))
	}
	s.Frames = append(s.Frames, grid.Text())
	return nil
}
