// Package detector finds the dominant card-shaped quadrilateral in a frame.
//
// The chain mirrors the classic document-scanner recipe: grayscale, Gaussian
// blur, Canny edges, contour extraction, polygon approximation, and max-area
// selection among 4-vertex candidates.
package detector

import (
	"image"
	"log/slog"

	"github.com/meza-digital/dniscan/internal/utils"
)

// Detector locates card quadrilaterals in raw frames.
type Detector struct {
	cfg Config
}

// New creates a detector with the given configuration.
func New(cfg Config) *Detector { return &Detector{cfg: cfg} }

// FindCardQuad returns the canonical-ordered corners of the largest 4-vertex
// contour in the frame. The boolean result is false when no candidate exists;
// that is an expected outcome for frames without a card, not an error.
func (d *Detector) FindCardQuad(img image.Image) (utils.Quadrilateral, bool) {
	gray := utils.ToGray(img)
	b := gray.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < 3 || h < 3 {
		return utils.Quadrilateral{}, false
	}

	blurred := gaussianBlur5(gray)
	edges := cannyEdges(blurred, d.cfg.CannyLow, d.cfg.CannyHigh)
	comps, labels := connectedComponents(edges, w, h)

	best, found := d.selectLargestQuad(comps, labels, w, h)
	if !found {
		slog.Debug("no card quadrilateral found", "contours", len(comps))
		return utils.Quadrilateral{}, false
	}
	return utils.OrderCorners(best), true
}

// selectLargestQuad approximates every sufficiently large contour to a polygon
// at 2% of its perimeter and keeps the 4-vertex candidate with the maximum
// enclosed area. Ties keep the first candidate encountered, so selection is
// stable in contour-discovery order.
func (d *Detector) selectLargestQuad(comps []compStats, labels []int, w, h int) ([4]utils.Point, bool) {
	var best [4]utils.Point
	maxArea := 0.0
	found := false

	for i := range comps {
		contour := traceContour(labels, w, h, i+1, comps[i])
		if len(contour) < 4 {
			continue
		}
		area := utils.PolygonArea(contour)
		if area < d.cfg.MinContourArea {
			continue
		}
		peri := utils.PolygonPerimeter(contour)
		approx := utils.ApproxPolygon(contour, d.cfg.ApproxTolerance*peri)
		if len(approx) != 4 {
			continue
		}
		if area > maxArea {
			maxArea = area
			copy(best[:], approx)
			found = true
		}
	}
	return best, found
}
