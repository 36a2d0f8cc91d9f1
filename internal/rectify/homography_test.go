package rectify

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meza-digital/dniscan/internal/utils"
)

func TestComputeHomographyIdentity(t *testing.T) {
	pts := [4]utils.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	h, ok := computeHomography(pts, pts)
	require.True(t, ok)

	for _, p := range []utils.Point{{X: 3, Y: 7}, {X: 0, Y: 0}, {X: 10, Y: 10}, {X: 5.5, Y: 2.2}} {
		x, y := applyHomography(h, p.X, p.Y)
		assert.InDelta(t, p.X, x, 1e-6)
		assert.InDelta(t, p.Y, y, 1e-6)
	}
}

func TestComputeHomographyMapsCorners(t *testing.T) {
	src := [4]utils.Point{{X: 0, Y: 0}, {X: 99, Y: 0}, {X: 99, Y: 59}, {X: 0, Y: 59}}
	dst := [4]utils.Point{{X: 120, Y: 115}, {X: 510, Y: 130}, {X: 505, Y: 360}, {X: 118, Y: 350}}

	h, ok := computeHomography(src, dst)
	require.True(t, ok)

	for i := range src {
		x, y := applyHomography(h, src[i].X, src[i].Y)
		assert.InDelta(t, dst[i].X, x, 1e-6, "corner %d x", i)
		assert.InDelta(t, dst[i].Y, y, 1e-6, "corner %d y", i)
	}
}

func TestComputeHomographyDegenerate(t *testing.T) {
	// All source points coincide: no projective map exists.
	src := [4]utils.Point{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 0}}
	dst := [4]utils.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	_, ok := computeHomography(src, dst)
	assert.False(t, ok)
}

func TestWarpPerspectiveAxisAlignedCrop(t *testing.T) {
	// Frame with a red rectangle; warping its bounds must yield all-red.
	src := image.NewRGBA(image.Rect(0, 0, 100, 80))
	draw.Draw(src, src.Bounds(), &image.Uniform{color.White}, image.Point{}, draw.Src)
	red := color.RGBA{R: 200, G: 10, B: 10, A: 255}
	draw.Draw(src, image.Rect(20, 30, 60, 60), &image.Uniform{red}, image.Point{}, draw.Src)

	quad := utils.Quadrilateral{
		{X: 20, Y: 30}, {X: 59, Y: 30}, {X: 59, Y: 59}, {X: 20, Y: 59},
	}
	out := warpPerspective(src, quad, 40, 30)
	require.NotNil(t, out)

	b := out.Bounds()
	assert.Equal(t, 40, b.Dx())
	assert.Equal(t, 30, b.Dy())

	center := out.At(20, 15)
	r, g, _, _ := center.RGBA()
	assert.Greater(t, r>>8, uint32(150))
	assert.Less(t, g>>8, uint32(60))
}

func TestWarpPerspectiveInvalidSize(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 10, 10))
	var quad utils.Quadrilateral
	assert.Nil(t, warpPerspective(src, quad, 0, 10))
	assert.Nil(t, warpPerspective(src, quad, 10, -1))
}

func TestAdaptiveThresholdSeparatesInkFromPaper(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 60, 40))
	for i := range src.Pix {
		src.Pix[i] = 220 // paper
	}
	// A dark glyph-like blob.
	for y := 15; y < 25; y++ {
		for x := 25; x < 35; x++ {
			src.Pix[y*src.Stride+x] = 20
		}
	}

	out := adaptiveThreshold(src, 15, 10)
	assert.EqualValues(t, 0, out.Pix[20*out.Stride+30], "ink stays black")
	assert.EqualValues(t, 255, out.Pix[5*out.Stride+5], "paper goes white")
}

func TestGaussianKernelNormalized(t *testing.T) {
	k := gaussianKernel(15)
	require.Len(t, k, 15)
	var sum float64
	for _, v := range k {
		sum += v
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
	assert.Greater(t, k[7], k[0], "center outweighs tails")
}
