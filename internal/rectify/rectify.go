// Package rectify turns a raw camera frame into a flat, high-contrast card
// image ready for OCR. Detection or processing failures never abort a scan:
// the frame is re-encoded unchanged instead.
package rectify

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"github.com/disintegration/imaging"
	"github.com/meza-digital/dniscan/internal/detector"
	"github.com/meza-digital/dniscan/internal/utils"
)

// errNoQuad reports that no card-shaped contour was found in the frame.
var errNoQuad = errors.New("no 4-point contour detected")

// Rectifier detects the card quadrilateral in a frame, warps it to a frontal
// view, and normalizes the result for text recognition.
type Rectifier struct {
	cfg Config
	det *detector.Detector
}

// New creates a rectifier with the given configuration.
func New(cfg Config) *Rectifier {
	return &Rectifier{cfg: cfg, det: detector.New(cfg.Detector)}
}

// Apply runs the full rectification chain and returns the result as an
// encoded JPEG buffer. On detection failure or any internal processing error
// the original frame is encoded unchanged at a slightly lower quality; an
// error is returned only when even that fallback encode is impossible.
func (r *Rectifier) Apply(img image.Image) ([]byte, error) {
	if img == nil {
		return nil, errors.New("nil frame")
	}

	out, err := r.rectify(img)
	if err == nil {
		buf, encErr := utils.EncodeJPEG(out, r.cfg.EncodeQuality)
		if encErr == nil {
			return buf, nil
		}
		err = encErr
	}

	if errors.Is(err, errNoQuad) {
		slog.Debug("card not detected; passing frame through unrectified")
	} else {
		slog.Warn("card rectification failed; falling back to original frame", "error", err)
	}
	return utils.EncodeJPEG(img, r.cfg.FallbackQuality)
}

// rectify performs detection, warp, grayscale, upscale, and binarization.
func (r *Rectifier) rectify(img image.Image) (out image.Image, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			out = nil
			err = fmt.Errorf("vision stage panic: %v", rec)
		}
	}()

	quad, ok := r.det.FindCardQuad(img)
	if !ok {
		return nil, errNoQuad
	}

	w, h := utils.EstimateRectSize(quad)
	warped := warpPerspective(img, quad, w, h)
	if warped == nil {
		return nil, errors.New("perspective transform is singular")
	}

	gray := utils.ToGray(warped)
	gray = r.upscaleForOCR(gray)
	return adaptiveThreshold(gray, r.cfg.ThresholdBlock, r.cfg.ThresholdOffset), nil
}

// upscaleForOCR grows small warps by an integer factor so the recognizer sees
// enough pixels per glyph. Images already at or above the minimum dimension
// pass through untouched.
func (r *Rectifier) upscaleForOCR(gray *image.Gray) *image.Gray {
	b := gray.Bounds()
	maxDim := b.Dx()
	if b.Dy() > maxDim {
		maxDim = b.Dy()
	}
	if maxDim == 0 {
		return gray
	}
	factor := r.cfg.MinOCRDimension / maxDim
	if factor <= 1 {
		return gray
	}
	resized := imaging.Resize(gray, b.Dx()*factor, b.Dy()*factor, imaging.CatmullRom)
	return utils.ToGray(resized)
}
