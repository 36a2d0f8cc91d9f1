package capture

import (
	"context"
	"fmt"
	"image"

	"github.com/kbinani/screenshot"
)

// ScreenSource grabs frames from a connected display. It is the stand-in for
// a live camera feed: point a webcam preview window at the card and scan the
// screen region showing it.
type ScreenSource struct {
	display int
}

// NewScreenSource creates a source over the given display index.
func NewScreenSource(display int) (*ScreenSource, error) {
	n := screenshot.NumActiveDisplays()
	if n == 0 {
		return nil, fmt.Errorf("no active displays")
	}
	if display < 0 || display >= n {
		return nil, fmt.Errorf("display %d out of range (have %d)", display, n)
	}
	return &ScreenSource{display: display}, nil
}

// Frame captures the current contents of the display.
func (s *ScreenSource) Frame(ctx context.Context) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	img, err := screenshot.CaptureDisplay(s.display)
	if err != nil {
		return nil, fmt.Errorf("capture display %d: %w", s.display, err)
	}
	return img, nil
}

// Close is a no-op; screen capture holds no persistent resources.
func (s *ScreenSource) Close() error { return nil }
