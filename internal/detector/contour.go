package detector

import "github.com/meza-digital/dniscan/internal/utils"

// traceContour extracts the outer boundary polygon of a labeled component
// using Moore-neighbor tracing, restricted to the component's bounding box.
// Collinear runs are collapsed as points are appended, so straight edges
// contribute only their endpoints. Returned points are pixel centers.
func traceContour(labels []int, w, h, label int, st compStats) []utils.Point {
	if label <= 0 || len(labels) != w*h {
		return nil
	}

	sx, sy := findBoundaryStart(labels, w, h, label, st)
	if sx == -1 {
		return nil
	}

	pts := make([]utils.Point, 0, 64)
	addPoint := func(x, y int) {
		p := utils.Point{X: float64(x), Y: float64(y)}
		n := len(pts)
		if n >= 2 {
			a, b := pts[n-2], pts[n-1]
			cross := (b.X-a.X)*(p.Y-b.Y) - (b.Y-a.Y)*(p.X-b.X)
			if cross == 0 {
				pts = pts[:n-1] // drop collinear middle point
			}
		}
		pts = append(pts, p)
	}

	cx, cy := sx, sy
	bx, by := sx-1, sy // backtrack starts to the left of the start pixel
	startCx, startCy := cx, cy
	addPoint(cx, cy)

	maxSteps := w*h*4 + 8
	for steps := 0; steps < maxSteps; steps++ {
		nx, ny, nbx, nby, found := nextBoundaryPixel(labels, w, h, label, cx, cy, bx, by)
		if !found {
			break
		}
		bx, by = nbx, nby
		cx, cy = nx, ny

		if len(pts) == 0 || pts[len(pts)-1].X != float64(cx) || pts[len(pts)-1].Y != float64(cy) {
			addPoint(cx, cy)
		}
		// One full lap: appending the start again lets the collinear
		// collapse clean up the last edge before the duplicate is dropped.
		if cx == startCx && cy == startCy {
			break
		}
	}

	// Drop a duplicated closing point if present.
	if len(pts) >= 2 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	return pts
}

// findBoundaryStart locates the first boundary pixel of the component.
func findBoundaryStart(labels []int, w, h, label int, st compStats) (int, int) {
	for y := st.minY; y <= st.maxY; y++ {
		for x := st.minX; x <= st.maxX; x++ {
			if !isLabel(labels, w, h, label, x, y) {
				continue
			}
			if !isLabel(labels, w, h, label, x+1, y) ||
				!isLabel(labels, w, h, label, x-1, y) ||
				!isLabel(labels, w, h, label, x, y+1) ||
				!isLabel(labels, w, h, label, x, y-1) {
				return x, y
			}
		}
	}
	return -1, -1
}

func isLabel(labels []int, w, h, label, x, y int) bool {
	if x < 0 || y < 0 || x >= w || y >= h {
		return false
	}
	return labels[y*w+x] == label
}

// nextBoundaryPixel scans the Moore neighborhood clockwise starting from the
// backtrack direction and returns the next component pixel plus the new
// backtrack position.
func nextBoundaryPixel(labels []int, w, h, label, cx, cy, bx, by int) (int, int, int, int, bool) {
	// 8-neighborhood clockwise: E, SE, S, SW, W, NW, N, NE
	ndx := [8]int{1, 1, 0, -1, -1, -1, 0, 1}
	ndy := [8]int{0, 1, 1, 1, 0, -1, -1, -1}

	start := 0
	dx, dy := bx-cx, by-cy
	for i := 0; i < 8; i++ {
		if ndx[i] == dx && ndy[i] == dy {
			start = (i + 1) % 8
			break
		}
	}

	for k := 0; k < 8; k++ {
		i := (start + k) % 8
		tx, ty := cx+ndx[i], cy+ndy[i]
		if isLabel(labels, w, h, label, tx, ty) {
			return tx, ty, cx, cy, true
		}
		bx, by = tx, ty
	}
	return 0, 0, bx, by, false
}
