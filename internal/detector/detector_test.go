package detector

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meza-digital/dniscan/internal/testutil"
	"github.com/meza-digital/dniscan/internal/utils"
)

func TestFindCardQuadBlankFrame(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 320, 240))
	draw.Draw(frame, frame.Bounds(), &image.Uniform{color.Gray{Y: 128}}, image.Point{}, draw.Src)

	det := New(DefaultConfig())
	_, ok := det.FindCardQuad(frame)
	assert.False(t, ok)
}

func TestFindCardQuadAxisAligned(t *testing.T) {
	cfg := testutil.DefaultCardConfig()
	cfg.Rotation = 0
	frame := testutil.GenerateCardFrame(cfg)

	det := New(DefaultConfig())
	quad, ok := det.FindCardQuad(frame)
	require.True(t, ok, "card outline not detected")

	// Card is centered: 400x250 inside 640x480.
	wantCorners := []utils.Point{
		{X: 120, Y: 115}, {X: 520, Y: 115}, {X: 520, Y: 365}, {X: 120, Y: 365},
	}
	for i, want := range wantCorners {
		got := quad[i]
		assert.InDelta(t, want.X, got.X, 8, "corner %d x", i)
		assert.InDelta(t, want.Y, got.Y, 8, "corner %d y", i)
	}
}

func TestFindCardQuadRotated(t *testing.T) {
	cfg := testutil.DefaultCardConfig()
	cfg.Rotation = 12
	frame := testutil.GenerateCardFrame(cfg)

	det := New(DefaultConfig())
	quad, ok := det.FindCardQuad(frame)
	require.True(t, ok, "rotated card outline not detected")

	// The detected quadrilateral should still enclose roughly the card area.
	area := utils.PolygonArea(quad[:])
	assert.InDelta(t, 400*250, area, 0.25*400*250)
}

func TestFindCardQuadIgnoresSmallContours(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 320, 240))
	draw.Draw(frame, frame.Bounds(), &image.Uniform{color.RGBA{R: 40, G: 40, B: 48, A: 255}}, image.Point{}, draw.Src)
	// A tiny bright square well under the area floor.
	draw.Draw(frame, image.Rect(100, 100, 112, 112), &image.Uniform{color.White}, image.Point{}, draw.Src)

	det := New(DefaultConfig())
	_, ok := det.FindCardQuad(frame)
	assert.False(t, ok)
}
