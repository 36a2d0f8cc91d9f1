package detector

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func grayStep(w, h, split int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8(30)
			if x >= split {
				v = 230
			}
			img.Pix[y*img.Stride+x] = v
		}
	}
	return img
}

func TestGaussianBlurPreservesFlatRegions(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 20, 20))
	for i := range img.Pix {
		img.Pix[i] = 77
	}
	out := gaussianBlur5(img)
	for _, p := range out.Pix {
		assert.EqualValues(t, 77, p)
	}
}

func TestGaussianBlurSoftensStep(t *testing.T) {
	img := grayStep(20, 10, 10)
	out := gaussianBlur5(img)
	// The transition column picks up mass from both sides.
	mid := out.Pix[5*out.Stride+10]
	assert.Greater(t, mid, uint8(30))
	assert.Less(t, mid, uint8(230))
}

func TestCannyEdgesFlatImageHasNone(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 30, 30))
	for i := range img.Pix {
		img.Pix[i] = 128
	}
	mask := cannyEdges(img, 75, 200)
	for _, e := range mask {
		assert.False(t, e)
	}
}

func TestCannyEdgesVerticalStep(t *testing.T) {
	img := grayStep(40, 20, 20)
	mask := cannyEdges(img, 75, 200)
	require.Len(t, mask, 40*20)

	// An edge column near x=20 on interior rows; flat regions stay clean.
	found := 0
	for y := 2; y < 18; y++ {
		for x := 18; x <= 22; x++ {
			if mask[y*40+x] {
				found++
			}
		}
	}
	assert.Greater(t, found, 10)
	assert.False(t, mask[10*40+5])
	assert.False(t, mask[10*40+35])
}

func TestConnectedComponentsSeparatesBlobs(t *testing.T) {
	w, h := 20, 10
	mask := make([]bool, w*h)
	// Two disjoint blobs.
	for _, idx := range []int{2*w + 2, 2*w + 3, 3*w + 2} {
		mask[idx] = true
	}
	for _, idx := range []int{7*w + 15, 7*w + 16} {
		mask[idx] = true
	}

	comps, labels := connectedComponents(mask, w, h)
	assert.Len(t, comps, 2)
	assert.NotEqual(t, labels[2*w+2], labels[7*w+15])
	assert.Equal(t, labels[2*w+2], labels[3*w+2])
	assert.Equal(t, 3, comps[0].count)
	assert.Equal(t, 2, comps[1].count)
}

func TestConnectedComponentsDiagonalIsOne(t *testing.T) {
	w, h := 10, 10
	mask := make([]bool, w*h)
	for i := 0; i < 5; i++ {
		mask[i*w+i] = true
	}
	comps, _ := connectedComponents(mask, w, h)
	assert.Len(t, comps, 1, "8-connectivity joins diagonals")
}
