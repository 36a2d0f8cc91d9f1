// Package testutil generates synthetic card frames for pipeline tests: a
// bright card with printed lines, pasted at an angle onto a dark background,
// so the detector has a real quadrilateral to find.
package testutil

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// CardConfig holds configuration for generating synthetic card frames.
type CardConfig struct {
	FrameWidth  int
	FrameHeight int
	CardWidth   int
	CardHeight  int
	Rotation    float64 // degrees, counter-clockwise
	Lines       []string
	Background  color.Color // frame fill behind the card
	CardColor   color.Color
	InkColor    color.Color
}

// DefaultCardConfig returns a frame with an ID-card-proportioned white card
// tilted on a dark background.
func DefaultCardConfig() CardConfig {
	return CardConfig{
		FrameWidth:  640,
		FrameHeight: 480,
		CardWidth:   400,
		CardHeight:  250,
		Rotation:    12,
		Lines:       []string{"MARIA LOPEZ", "123456789", "12-08-1985"},
		Background:  color.RGBA{R: 40, G: 40, B: 48, A: 255},
		CardColor:   color.White,
		InkColor:    color.Black,
	}
}

// GenerateCardFrame renders the configured card into a full frame.
func GenerateCardFrame(cfg CardConfig) *image.RGBA {
	card := image.NewRGBA(image.Rect(0, 0, cfg.CardWidth, cfg.CardHeight))
	draw.Draw(card, card.Bounds(), &image.Uniform{cfg.CardColor}, image.Point{}, draw.Src)
	drawLines(card, cfg.Lines, cfg.InkColor)

	var cardImg image.Image = card
	if cfg.Rotation != 0 {
		cardImg = imaging.Rotate(card, cfg.Rotation, cfg.Background)
	}

	frame := image.NewRGBA(image.Rect(0, 0, cfg.FrameWidth, cfg.FrameHeight))
	draw.Draw(frame, frame.Bounds(), &image.Uniform{cfg.Background}, image.Point{}, draw.Src)

	cb := cardImg.Bounds()
	offset := image.Pt((cfg.FrameWidth-cb.Dx())/2, (cfg.FrameHeight-cb.Dy())/2)
	draw.Draw(frame, cb.Add(offset).Sub(cb.Min), cardImg, cb.Min, draw.Over)
	return frame
}

// drawLines prints each line left-aligned down the card face.
func drawLines(dst *image.RGBA, lines []string, ink color.Color) {
	face := basicfont.Face7x13
	drawer := &font.Drawer{
		Dst:  dst,
		Src:  &image.Uniform{ink},
		Face: face,
	}
	lineHeight := face.Metrics().Height.Ceil() + 8
	y := 40
	for _, line := range lines {
		drawer.Dot = fixed.P(24, y)
		drawer.DrawString(line)
		y += lineHeight
	}
}

// SaveImage writes an image as PNG, failing the test on error. Handy when
// debugging detector behavior on generated frames.
func SaveImage(t *testing.T, img image.Image, path string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer func() { require.NoError(t, f.Close()) }()
	require.NoError(t, png.Encode(f, img))
}
