package capture

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/meza-digital/dniscan/internal/utils"
)

// PDFSource serves the embedded page images of a scanned PDF, one frame per
// image, in page order. Scanner software commonly emits one full-page image
// per page, which is exactly the frame the detector wants.
type PDFSource struct {
	still   *StillSource
	tempDir string
}

// NewPDFSource extracts the images from the PDF up front and iterates them.
// An optional page selection uses pdfcpu syntax ("1-3", "2,5"); nil means
// all pages.
func NewPDFSource(path string, pages []string) (*PDFSource, error) {
	tempDir, err := os.MkdirTemp("", "dniscan-pdf-*")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}

	if err := api.ExtractImagesFile(path, tempDir, pages, nil); err != nil {
		_ = os.RemoveAll(tempDir)
		return nil, fmt.Errorf("extract images from %s: %w", path, err)
	}

	entries, err := os.ReadDir(tempDir)
	if err != nil {
		_ = os.RemoveAll(tempDir)
		return nil, fmt.Errorf("read extracted images: %w", err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !utils.IsSupportedImage(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(tempDir, e.Name()))
	}
	if len(files) == 0 {
		_ = os.RemoveAll(tempDir)
		return nil, fmt.Errorf("no images found in %s", path)
	}
	// pdfcpu names files page_<num>_..., so name order is page order.
	sort.Strings(files)

	still, err := NewStillSource(files)
	if err != nil {
		_ = os.RemoveAll(tempDir)
		return nil, err
	}
	return &PDFSource{still: still, tempDir: tempDir}, nil
}

// Frame returns the next extracted page image.
func (s *PDFSource) Frame(ctx context.Context) (image.Image, error) {
	return s.still.Frame(ctx)
}

// Close removes the extracted images.
func (s *PDFSource) Close() error {
	return os.RemoveAll(s.tempDir)
}
