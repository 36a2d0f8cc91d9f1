package detector

import (
	"image"

	"github.com/meza-digital/dniscan/internal/mempool"
)

// gaussianBlur5 applies a 5x5 binomial Gaussian blur to a grayscale image.
// The kernel is applied separably with replicated borders.
func gaussianBlur5(src *image.Gray) *image.Gray {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return src
	}
	kernel := [5]float64{1, 4, 6, 4, 1} // binomial approximation, sum 16

	tmp := mempool.GetFloat64(w * h)
	defer mempool.PutFloat64(tmp)

	// Horizontal pass.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum float64
			for k := -2; k <= 2; k++ {
				xx := clampInt(x+k, 0, w-1)
				sum += kernel[k+2] * float64(src.Pix[y*src.Stride+xx])
			}
			tmp[y*w+x] = sum / 16
		}
	}

	// Vertical pass.
	out := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum float64
			for k := -2; k <= 2; k++ {
				yy := clampInt(y+k, 0, h-1)
				sum += kernel[k+2] * tmp[yy*w+x]
			}
			out.Pix[y*out.Stride+x] = uint8(sum/16 + 0.5)
		}
	}
	return out
}

// cannyEdges computes a binary edge mask using Sobel gradients, non-maximum
// suppression, and double-threshold hysteresis tracking.
func cannyEdges(src *image.Gray, low, high float64) []bool {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	n := w * h
	if n == 0 {
		return nil
	}

	mag := mempool.GetFloat64(n)
	defer mempool.PutFloat64(mag)
	dir := make([]uint8, n) // quantized gradient direction: 0,1,2,3

	sobel(src, w, h, mag, dir)

	thin := mempool.GetFloat64(n)
	defer mempool.PutFloat64(thin)
	nonMaxSuppress(mag, dir, w, h, thin)

	return hysteresis(thin, w, h, low, high)
}

func sobel(src *image.Gray, w, h int, mag []float64, dir []uint8) {
	at := func(x, y int) float64 {
		return float64(src.Pix[clampInt(y, 0, h-1)*src.Stride+clampInt(x, 0, w-1)])
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			gx := -at(x-1, y-1) + at(x+1, y-1) +
				-2*at(x-1, y) + 2*at(x+1, y) +
				-at(x-1, y+1) + at(x+1, y+1)
			gy := -at(x-1, y-1) - 2*at(x, y-1) - at(x+1, y-1) +
				at(x-1, y+1) + 2*at(x, y+1) + at(x+1, y+1)

			i := y*w + x
			mag[i] = absFloat(gx) + absFloat(gy) // L1 magnitude
			dir[i] = quantizeDirection(gx, gy)
		}
	}
}

// quantizeDirection maps a gradient vector to one of four directions:
// 0 = horizontal, 1 = 45deg, 2 = vertical, 3 = 135deg.
func quantizeDirection(gx, gy float64) uint8 {
	ax, ay := absFloat(gx), absFloat(gy)
	const tan22 = 0.4142135623730951 // tan(22.5deg)
	switch {
	case ay <= ax*tan22:
		return 0
	case ax <= ay*tan22:
		return 2
	case (gx > 0) == (gy > 0):
		return 1
	default:
		return 3
	}
}

func nonMaxSuppress(mag []float64, dir []uint8, w, h int, out []float64) {
	offsets := [4][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			d := offsets[dir[i]]
			m := mag[i]
			if m < neighborMag(mag, w, h, x+d[0], y+d[1]) || m < neighborMag(mag, w, h, x-d[0], y-d[1]) {
				out[i] = 0
				continue
			}
			out[i] = m
		}
	}
}

func neighborMag(mag []float64, w, h, x, y int) float64 {
	if x < 0 || y < 0 || x >= w || y >= h {
		return 0
	}
	return mag[y*w+x]
}

// hysteresis keeps pixels above the high threshold and grows them through
// 8-connected pixels above the low threshold.
func hysteresis(mag []float64, w, h int, low, high float64) []bool {
	edges := make([]bool, w*h)
	visited := mempool.GetBool(w * h)
	defer mempool.PutBool(visited)

	var stack []int
	for i, m := range mag {
		if m >= high && !visited[i] {
			visited[i] = true
			stack = append(stack, i)
			for len(stack) > 0 {
				ci := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				edges[ci] = true
				cx, cy := ci%w, ci/w
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						nx, ny := cx+dx, cy+dy
						if nx < 0 || ny < 0 || nx >= w || ny >= h {
							continue
						}
						ni := ny*w + nx
						if !visited[ni] && mag[ni] >= low {
							visited[ni] = true
							stack = append(stack, ni)
						}
					}
				}
			}
		}
	}
	return edges
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
