package capture

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/meza-digital/dniscan/internal/utils"
)

// settleDelay is how long a newly created file must stay quiet before it is
// considered fully written. Copies into the drop directory are not atomic.
const settleDelay = 300 * time.Millisecond

// WatchSource serves frames from image files dropped into a directory. Each
// created file becomes one frame once its contents have settled.
type WatchSource struct {
	watcher *fsnotify.Watcher
	files   chan string

	closeOnce sync.Once
	done      chan struct{}
}

// NewWatchSource starts watching dir for new image files.
func NewWatchSource(dir string) (*WatchSource, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	s := &WatchSource{
		watcher: w,
		files:   make(chan string, 64),
		done:    make(chan struct{}),
	}
	go s.collect()
	slog.Info("watching directory for card images", "dir", dir)
	return s, nil
}

// collect debounces create events into settled file paths.
func (s *WatchSource) collect() {
	pending := map[string]time.Time{}
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-s.watcher.Events:
			if !ok {
				close(s.files)
				return
			}
			if ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Write) {
				if utils.IsSupportedImage(filepath.Base(ev.Name)) {
					pending[ev.Name] = time.Now()
				}
			}
		case <-ticker.C:
			now := time.Now()
			for path, t := range pending {
				if now.Sub(t) >= settleDelay {
					delete(pending, path)
					select {
					case s.files <- path:
					case <-s.done:
						return
					}
				}
			}
		case err, ok := <-s.watcher.Errors:
			if !ok {
				close(s.files)
				return
			}
			slog.Warn("watch error", "error", err)
		case <-s.done:
			return
		}
	}
}

// Frame blocks until a new image file lands in the watched directory.
func (s *WatchSource) Frame(ctx context.Context) (image.Image, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case path, ok := <-s.files:
		if !ok {
			return nil, ErrExhausted
		}
		img, err := utils.LoadImage(path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		return img, nil
	}
}

// Close stops the watcher. Safe to call more than once.
func (s *WatchSource) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.done)
		err = s.watcher.Close()
	})
	return err
}
