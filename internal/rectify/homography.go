package rectify

import "github.com/meza-digital/dniscan/internal/utils"

// computeHomography computes the 3x3 projective matrix H mapping p[i] -> q[i],
// returned row-major as [9]float64 with h22 fixed to 1. The four point pairs
// yield an 8x8 linear system in the remaining unknowns, solved by Gaussian
// elimination with partial pivoting. Returns false for singular systems
// (degenerate quadrilaterals).
func computeHomography(p, q [4]utils.Point) ([9]float64, bool) {
	var a [8][8]float64
	var b [8]float64
	for i := 0; i < 4; i++ {
		X, Y := p[i].X, p[i].Y
		x, y := q[i].X, q[i].Y
		r := 2 * i
		// x' = (h00 X + h01 Y + h02)/(h20 X + h21 Y + 1)
		a[r] = [8]float64{X, Y, 1, 0, 0, 0, -X * x, -Y * x}
		b[r] = x
		// y' = (h10 X + h11 Y + h12)/(h20 X + h21 Y + 1)
		a[r+1] = [8]float64{0, 0, 0, X, Y, 1, -X * y, -Y * y}
		b[r+1] = y
	}

	h, ok := solve8x8(a, b)
	if !ok {
		return [9]float64{}, false
	}
	return [9]float64{h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7], 1}, true
}

func solve8x8(a [8][8]float64, b [8]float64) ([8]float64, bool) {
	for col := 0; col < 8; col++ {
		pivot := findPivotRow(a, col)
		if pivot == -1 {
			return [8]float64{}, false
		}
		if pivot != col {
			a[col], a[pivot] = a[pivot], a[col]
			b[col], b[pivot] = b[pivot], b[col]
		}
		div := a[col][col]
		for c := col; c < 8; c++ {
			a[col][c] /= div
		}
		b[col] /= div

		for r := 0; r < 8; r++ {
			if r == col {
				continue
			}
			factor := a[r][col]
			if factor == 0 {
				continue
			}
			for c := col; c < 8; c++ {
				a[r][c] -= factor * a[col][c]
			}
			b[r] -= factor * b[col]
		}
	}
	return b, true
}

func findPivotRow(a [8][8]float64, col int) int {
	maxAbs := absFloat(a[col][col])
	pivot := col
	for r := col + 1; r < 8; r++ {
		if v := absFloat(a[r][col]); v > maxAbs {
			maxAbs = v
			pivot = r
		}
	}
	if maxAbs == 0 {
		return -1
	}
	return pivot
}

func applyHomography(h [9]float64, x, y float64) (float64, float64) {
	denom := h[6]*x + h[7]*y + h[8]
	if denom == 0 {
		return -1e9, -1e9
	}
	sx := (h[0]*x + h[1]*y + h[2]) / denom
	sy := (h[3]*x + h[4]*y + h[5]) / denom
	return sx, sy
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
