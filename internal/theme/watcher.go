package theme

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches theme files (the config file, user presets) and triggers
// hot-reload after a quiet period.
type Watcher struct {
	mu     sync.RWMutex
	logger *slog.Logger

	// Files being watched; their directories are added to fsnotify
	paths []string

	// Preset directories; any preset file inside them counts
	presetDirs []string

	// Quiet period after the last event before the callback runs
	debounce time.Duration

	onChangeCallback func(path string)

	watcher *fsnotify.Watcher
	stopCh  chan struct{}
	doneCh  chan struct{}

	running bool
}

// NewWatcher creates a new watcher for the given files.
func NewWatcher(logger *slog.Logger, paths ...string) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}

	return &Watcher{
		logger:   logger,
		paths:    paths,
		debounce: 200 * time.Millisecond,
	}
}

// SetDebounce sets the quiet period after a change before reloading.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.debounce = d
}

// WatchPresetDir also watches every preset file in dir, including files
// created after Start. A missing directory is skipped.
func (w *Watcher) WatchPresetDir(dir string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.presetDirs = append(w.presetDirs, dir)
}

// SetChangeCallback sets the callback to invoke when a watched file changes.
// The callback receives the path of the last changed file.
func (w *Watcher) SetChangeCallback(callback func(path string)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChangeCallback = callback
}

// Start begins watching. Directories are watched rather than the files
// themselves so that editors replacing files atomically are noticed.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return nil
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	dirs := make(map[string]bool)
	for _, p := range w.paths {
		dir := filepath.Dir(p)
		if dirs[dir] {
			continue
		}
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		dirs[dir] = true
	}
	for _, dir := range w.presetDirs {
		if dirs[dir] {
			continue
		}
		if err := fw.Add(dir); err != nil {
			w.logger.Debug("not watching preset directory", "dir", dir, "error", err)
			continue
		}
		dirs[dir] = true
	}

	w.watcher = fw
	w.running = true
	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})

	go w.watchLoop(ctx, fw, w.stopCh, w.doneCh)

	w.logger.Debug("theme watcher started", "paths", w.paths, "preset_dirs", w.presetDirs, "debounce", w.debounce)
	return nil
}

// Stop stops watching and waits for the watch loop to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	close(w.stopCh)
	done := w.doneCh
	w.mu.Unlock()

	<-done
	w.logger.Debug("theme watcher stopped")
}

// IsRunning returns whether the watcher is currently running.
func (w *Watcher) IsRunning() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.running
}

func (w *Watcher) watched(name string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	clean := filepath.Clean(name)
	for _, p := range w.paths {
		if filepath.Clean(p) == clean {
			return true
		}
	}
	if !isPresetExt(filepath.Ext(clean)) {
		return false
	}
	dir := filepath.Dir(clean)
	for _, d := range w.presetDirs {
		if filepath.Clean(d) == dir {
			return true
		}
	}
	return false
}

// watchLoop is the main event loop.
func (w *Watcher) watchLoop(ctx context.Context, fw *fsnotify.Watcher, stopCh, doneCh chan struct{}) {
	defer close(doneCh)
	defer fw.Close()

	w.mu.RLock()
	debounce := w.debounce
	w.mu.RUnlock()

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	pending := ""

	for {
		select {
		case <-ctx.Done():
			return
		case <-stopCh:
			return

		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			if !w.watched(event.Name) {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				w.logger.Debug("theme file event", "path", event.Name, "op", event.Op.String())
				pending = event.Name
				timer.Reset(debounce)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("file watcher error", "error", err)

		case <-timer.C:
			if pending == "" {
				continue
			}
			w.mu.RLock()
			callback := w.onChangeCallback
			w.mu.RUnlock()

			w.logger.Info("theme file changed, reloading", "path", pending)
			if callback != nil {
				callback(pending)
			}
			pending = ""
		}
	}
}
