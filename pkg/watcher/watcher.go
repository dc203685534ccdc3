// Package watcher reloads point files when they change on disk, so a
// calculation can be recomputed from the new input.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/philipparndt/gosurvey/internal/monitoring"
	"github.com/philipparndt/gosurvey/pkg/points"
)

// ReloadFunc receives the freshly parsed file, or the parse error
type ReloadFunc func(path string, set *points.PointSet, err error)

// PointWatcher watches point files and re-parses them after changes settle
type PointWatcher struct {
	watcher  *fsnotify.Watcher
	mu       sync.Mutex
	files    map[string]ReloadFunc
	dirs     map[string]bool
	debounce time.Duration
	timers   map[string]*time.Timer
}

// New creates a point watcher that waits debounce after the last change
// before reloading
func New(debounce time.Duration) (*PointWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &PointWatcher{
		watcher:  watcher,
		files:    make(map[string]ReloadFunc),
		dirs:     make(map[string]bool),
		debounce: debounce,
		timers:   make(map[string]*time.Timer),
	}, nil
}

// Watch registers files for reloading. The containing directories are
// watched so editors that save by rename are picked up too.
func (pw *PointWatcher) Watch(files []string, onReload ReloadFunc) error {
	pw.mu.Lock()
	defer pw.mu.Unlock()

	for _, file := range files {
		absPath, err := filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("failed to resolve path %s: %w", file, err)
		}

		dir := filepath.Dir(absPath)
		if !pw.dirs[dir] {
			if err := pw.watcher.Add(dir); err != nil {
				return fmt.Errorf("failed to watch %s: %w", dir, err)
			}
			pw.dirs[dir] = true
		}

		pw.files[absPath] = onReload
	}

	return nil
}

// Run dispatches file events until ctx is cancelled or the watcher is closed
func (pw *PointWatcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			pw.stopTimers()
			return ctx.Err()

		case event, ok := <-pw.watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				pw.handleFileChange(filepath.Clean(event.Name))
			}

		case err, ok := <-pw.watcher.Errors:
			if !ok {
				return nil
			}
			monitoring.Logf("watcher error: %v", err)
		}
	}
}

// handleFileChange restarts the debounce timer of a watched file
func (pw *PointWatcher) handleFileChange(path string) {
	pw.mu.Lock()
	defer pw.mu.Unlock()

	onReload, exists := pw.files[path]
	if !exists {
		return
	}

	if timer, exists := pw.timers[path]; exists {
		timer.Stop()
	}

	pw.timers[path] = time.AfterFunc(pw.debounce, func() {
		set, err := points.Parse(path)
		if err != nil {
			monitoring.Logf("reload %s failed: %v", path, err)
		} else {
			monitoring.Logf("reloaded %s: %d stations", path, set.Len())
		}
		onReload(path, set, err)
	})
}

func (pw *PointWatcher) stopTimers() {
	pw.mu.Lock()
	defer pw.mu.Unlock()

	for _, timer := range pw.timers {
		timer.Stop()
	}
	pw.timers = make(map[string]*time.Timer)
}

// Close stops the watcher
func (pw *PointWatcher) Close() error {
	pw.stopTimers()
	return pw.watcher.Close()
}
