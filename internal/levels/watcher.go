package levels

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pixil98/go-sokoban/internal/storage"
)

const DefaultDebounce = 250 * time.Millisecond

// Refresher is run after level files change.
type Refresher interface {
	Tick(context.Context) error
}

// Watcher refreshes levels when asset files under root change. Bursts of
// events within the debounce window cause a single refresh.
type Watcher struct {
	root     string
	target   Refresher
	debounce time.Duration
}

func NewWatcher(root string, target Refresher, debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{root: root, target: target, debounce: debounce}
}

func (w *Watcher) Start(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer func() { _ = fw.Close() }()

	err = filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		return fw.Add(path)
	})
	if err != nil {
		return fmt.Errorf("watching %s: %w", w.root, err)
	}

	slog.InfoContext(ctx, "watching levels", "path", w.root)

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) {
				// New subdirectories need their own watch.
				if err := fw.Add(event.Name); err == nil {
					slog.DebugContext(ctx, "watching new directory", "path", event.Name)
				}
			}
			if !storage.IsAssetFile(event.Name) {
				continue
			}
			timer.Reset(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			slog.WarnContext(ctx, "level watcher", "error", err)

		case <-timer.C:
			if err := w.target.Tick(ctx); err != nil {
				return err
			}
		}
	}
}
