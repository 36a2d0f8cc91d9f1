package capture

import (
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, path string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer func() { require.NoError(t, f.Close()) }()
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, 8, 8))))
}

func TestStillSourceFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.png")
	b := filepath.Join(dir, "b.png")
	writePNG(t, a)
	writePNG(t, b)

	src, err := NewStillSource([]string{a, b})
	require.NoError(t, err)
	defer func() { _ = src.Close() }()

	assert.Equal(t, 2, src.Remaining())

	for i := 0; i < 2; i++ {
		img, err := src.Frame(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 8, img.Bounds().Dx())
	}

	_, err = src.Frame(context.Background())
	assert.ErrorIs(t, err, ErrExhausted)
}

func TestStillSourceExpandsDirectories(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "b.png"))
	writePNG(t, filepath.Join(dir, "a.png"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	src, err := NewStillSource([]string{dir})
	require.NoError(t, err)
	defer func() { _ = src.Close() }()

	// Sorted by name, non-images skipped.
	assert.Equal(t, 2, src.Remaining())
}

func TestStillSourceEmptyDirectory(t *testing.T) {
	_, err := NewStillSource([]string{t.TempDir()})
	assert.Error(t, err)
}

func TestStillSourceMissingPath(t *testing.T) {
	_, err := NewStillSource([]string{"/does/not/exist.png"})
	assert.Error(t, err)
}

func TestStillSourceCanceledContext(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "a.png")
	writePNG(t, p)

	src, err := NewStillSource([]string{p})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = src.Frame(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
