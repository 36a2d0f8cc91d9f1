// Package capture provides frame acquisition for the scan pipeline. A frame
// source hands out one image per request; where the image comes from (a file,
// a watched folder, the screen, a PDF page) is the source's business.
package capture

import (
	"context"
	"errors"
	"image"
)

// ErrExhausted is returned by finite sources once every frame has been
// handed out.
var ErrExhausted = errors.New("capture: no more frames")

// FrameSource produces frames for the pipeline. Frame blocks until a frame
// is available, the source is exhausted, or the context is done. Sources are
// not safe for concurrent use; the orchestrator serializes passes.
type FrameSource interface {
	Frame(ctx context.Context) (image.Image, error)
	Close() error
}
