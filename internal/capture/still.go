package capture

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"

	"github.com/meza-digital/dniscan/internal/utils"
)

// StillSource serves frames from a fixed list of image files, in order.
type StillSource struct {
	paths []string
	next  int
}

// NewStillSource builds a source over the given paths. Directory arguments
// are expanded to the supported image files they contain, sorted by name.
func NewStillSource(paths []string) (*StillSource, error) {
	var expanded []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", p, err)
		}
		if !info.IsDir() {
			expanded = append(expanded, p)
			continue
		}
		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, fmt.Errorf("read dir %s: %w", p, err)
		}
		var inDir []string
		for _, e := range entries {
			if e.IsDir() || !utils.IsSupportedImage(e.Name()) {
				continue
			}
			inDir = append(inDir, filepath.Join(p, e.Name()))
		}
		sort.Strings(inDir)
		expanded = append(expanded, inDir...)
	}
	if len(expanded) == 0 {
		return nil, fmt.Errorf("no image files found in %v", paths)
	}
	return &StillSource{paths: expanded}, nil
}

// Frame loads and returns the next image in the list.
func (s *StillSource) Frame(ctx context.Context) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.next >= len(s.paths) {
		return nil, ErrExhausted
	}
	path := s.paths[s.next]
	s.next++
	img, err := utils.LoadImage(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return img, nil
}

// Remaining reports how many frames have not been served yet.
func (s *StillSource) Remaining() int {
	return len(s.paths) - s.next
}

// Close is a no-op; still sources hold no resources.
func (s *StillSource) Close() error { return nil }
