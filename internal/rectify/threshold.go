package rectify

import (
	"image"
	"math"

	"github.com/meza-digital/dniscan/internal/mempool"
)

// adaptiveThreshold binarizes a grayscale image against a Gaussian-weighted
// local mean: a pixel becomes white when it exceeds the mean of its
// blockSize x blockSize neighborhood minus offset, black otherwise. The local
// threshold compensates for uneven lighting across the card.
func adaptiveThreshold(src *image.Gray, blockSize int, offset float64) *image.Gray {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewGray(image.Rect(0, 0, w, h))
	if w == 0 || h == 0 {
		return out
	}
	if blockSize < 3 {
		blockSize = 3
	}
	if blockSize%2 == 0 {
		blockSize++
	}

	kernel := gaussianKernel(blockSize)
	half := blockSize / 2

	// Separable weighted mean: horizontal pass into tmp, vertical pass inline.
	tmp := mempool.GetFloat64(w * h)
	defer mempool.PutFloat64(tmp)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum float64
			for k := -half; k <= half; k++ {
				xx := clampInt(x+k, 0, w-1)
				sum += kernel[k+half] * float64(src.Pix[y*src.Stride+xx])
			}
			tmp[y*w+x] = sum
		}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var mean float64
			for k := -half; k <= half; k++ {
				yy := clampInt(y+k, 0, h-1)
				mean += kernel[k+half] * tmp[yy*w+x]
			}
			if float64(src.Pix[y*src.Stride+x]) > mean-offset {
				out.Pix[y*out.Stride+x] = 255
			}
		}
	}
	return out
}

// gaussianKernel returns a normalized 1D Gaussian of the given odd size with
// sigma derived from the size the way block-based thresholding conventions do:
// sigma = 0.3*((size-1)*0.5 - 1) + 0.8.
func gaussianKernel(size int) []float64 {
	sigma := 0.3*(float64(size-1)*0.5-1) + 0.8
	half := size / 2
	k := make([]float64, size)
	var sum float64
	for i := -half; i <= half; i++ {
		v := math.Exp(-float64(i*i) / (2 * sigma * sigma))
		k[i+half] = v
		sum += v
	}
	for i := range k {
		k[i] /= sum
	}
	return k
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
