package utils

import "math"

// PolygonPerimeter returns the perimeter of a closed polygon.
func PolygonPerimeter(pts []Point) float64 {
	if len(pts) < 2 {
		return 0
	}
	var sum float64
	for i := range pts {
		sum += Dist(pts[i], pts[(i+1)%len(pts)])
	}
	return sum
}

// PolygonArea returns the enclosed area of a closed polygon via the shoelace
// formula. The result is always non-negative regardless of winding order.
func PolygonArea(pts []Point) float64 {
	if len(pts) < 3 {
		return 0
	}
	var sum float64
	for i := range pts {
		j := (i + 1) % len(pts)
		sum += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return math.Abs(sum) / 2
}

// ApproxPolygon approximates a closed contour with a simpler polygon using
// Douglas–Peucker simplification at tolerance epsilon. The contour is anchored
// at its two mutually farthest points so that closure is preserved; the two
// resulting chains are simplified independently and merged.
func ApproxPolygon(pts []Point, epsilon float64) []Point {
	if len(pts) <= 3 || epsilon <= 0 {
		return append([]Point(nil), pts...)
	}

	a, b := farthestPair(pts)
	if a == b {
		return append([]Point(nil), pts...)
	}
	if a > b {
		a, b = b, a
	}

	chain1 := pts[a : b+1]
	chain2 := make([]Point, 0, len(pts)-(b-a)+1)
	chain2 = append(chain2, pts[b:]...)
	chain2 = append(chain2, pts[:a+1]...)

	out := simplifyChain(chain1, epsilon)
	back := simplifyChain(chain2, epsilon)
	// Drop the shared endpoints when merging the return chain.
	if len(back) > 2 {
		out = append(out, back[1:len(back)-1]...)
	}
	return out
}

// farthestPair approximates the contour diameter with two linear sweeps,
// which is exact for convex shapes and close enough to anchor simplification.
func farthestPair(pts []Point) (int, int) {
	a := farthestFrom(pts, 0)
	b := farthestFrom(pts, a)
	return a, b
}

func farthestFrom(pts []Point, i int) int {
	best := -1.0
	idx := i
	for j := range pts {
		if d := Dist(pts[i], pts[j]); d > best {
			best = d
			idx = j
		}
	}
	return idx
}

// simplifyChain runs Douglas–Peucker on an open polyline, keeping both
// endpoints.
func simplifyChain(pts []Point, epsilon float64) []Point {
	keep := make([]bool, len(pts))
	keep[0] = true
	keep[len(pts)-1] = true
	dpSimplify(pts, 0, len(pts)-1, epsilon, keep)
	out := make([]Point, 0, len(pts))
	for i, k := range keep {
		if k {
			out = append(out, pts[i])
		}
	}
	return out
}

func dpSimplify(pts []Point, start, end int, eps float64, keep []bool) {
	if end <= start+1 {
		return
	}
	maxDist := -1.0
	index := -1
	a := pts[start]
	b := pts[end]
	for i := start + 1; i < end; i++ {
		d := perpendicularDistance(pts[i], a, b)
		if d > maxDist {
			maxDist = d
			index = i
		}
	}
	if maxDist > eps {
		dpSimplify(pts, start, index, eps, keep)
		keep[index] = true
		dpSimplify(pts, index, end, eps, keep)
	}
}

func perpendicularDistance(p, a, b Point) float64 {
	vx, vy := b.X-a.X, b.Y-a.Y
	if vx == 0 && vy == 0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	num := math.Abs((p.X-a.X)*vy - (p.Y-a.Y)*vx)
	den := math.Hypot(vx, vy)
	return num / den
}
