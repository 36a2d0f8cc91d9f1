package utils

import (
	"math"
	"sort"
)

// Quadrilateral is a 4-corner polygon in canonical order:
// top-left, top-right, bottom-right, bottom-left.
type Quadrilateral [4]Point

// TopLeft returns the top-left corner.
func (q Quadrilateral) TopLeft() Point { return q[0] }

// TopRight returns the top-right corner.
func (q Quadrilateral) TopRight() Point { return q[1] }

// BottomRight returns the bottom-right corner.
func (q Quadrilateral) BottomRight() Point { return q[2] }

// BottomLeft returns the bottom-left corner.
func (q Quadrilateral) BottomLeft() Point { return q[3] }

// OrderCorners derives the canonical corner order from 4 points in arbitrary
// order. The points are split by x-coordinate into a left and a right pair;
// within each pair the smaller y is the top corner. The result is stable under
// any permutation of the input as long as the points form a convex, roughly
// axis-aligned quadrilateral. Collinear or duplicate points are undefined
// behavior; callers must reject non-4-point detections beforehand.
func OrderCorners(pts [4]Point) Quadrilateral {
	s := pts
	sort.Slice(s[:], func(i, j int) bool { return s[i].X < s[j].X })
	left := [2]Point{s[0], s[1]}
	right := [2]Point{s[2], s[3]}
	if left[0].Y > left[1].Y {
		left[0], left[1] = left[1], left[0]
	}
	if right[0].Y > right[1].Y {
		right[0], right[1] = right[1], right[0]
	}
	return Quadrilateral{left[0], right[0], right[1], left[1]}
}

// EstimateRectSize estimates the true width and height of the rectangle a
// quadrilateral was projected from. Each dimension takes the larger of the two
// opposite-edge lengths so perspective foreshortening never under-sizes the
// output.
func EstimateRectSize(q Quadrilateral) (int, int) {
	wBottom := math.Floor(Dist(q.BottomRight(), q.BottomLeft()))
	wTop := math.Floor(Dist(q.TopRight(), q.TopLeft()))
	hRight := math.Floor(Dist(q.TopRight(), q.BottomRight()))
	hLeft := math.Floor(Dist(q.TopLeft(), q.BottomLeft()))

	w := int(math.Max(wBottom, wTop))
	h := int(math.Max(hRight, hLeft))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}
