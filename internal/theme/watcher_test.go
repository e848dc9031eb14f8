package theme

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_CallsBackOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	other := filepath.Join(dir, "other.toml")
	require.NoError(t, os.WriteFile(path, []byte("a = 1\n"), 0644))

	var mu sync.Mutex
	var changed []string

	w := NewWatcher(nil, path)
	w.SetDebounce(20 * time.Millisecond)
	w.SetChangeCallback(func(p string) {
		mu.Lock()
		defer mu.Unlock()
		changed = append(changed, p)
	})

	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()
	assert.True(t, w.IsRunning())

	// Unwatched files in the same directory are ignored
	require.NoError(t, os.WriteFile(other, []byte("b = 2\n"), 0644))
	require.NoError(t, os.WriteFile(path, []byte("a = 2\n"), 0644))

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(changed) > 0
	}, 2*time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	for _, p := range changed {
		assert.Equal(t, path, p)
	}
}

func TestWatcher_DebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	var mu sync.Mutex
	calls := 0

	w := NewWatcher(nil, path)
	w.SetDebounce(300 * time.Millisecond)
	w.SetChangeCallback(func(string) {
		mu.Lock()
		defer mu.Unlock()
		calls++
	})
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte{byte('0' + i)}, 0644))
	}

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return calls == 1
	}, 3*time.Second, 20*time.Millisecond)
}

func TestWatcher_StartStop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	w := NewWatcher(nil, path)
	assert.False(t, w.IsRunning())

	require.NoError(t, w.Start(context.Background()))
	require.NoError(t, w.Start(context.Background()), "second start is a no-op")
	assert.True(t, w.IsRunning())

	w.Stop()
	assert.False(t, w.IsRunning())
	w.Stop()
}

func TestWatcher_ContextCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	ctx, cancel := context.WithCancel(context.Background())

	w := NewWatcher(nil, path)
	require.NoError(t, w.Start(ctx))
	cancel()

	// Stop still returns after the loop exited on its own
	done := make(chan struct{})
	go func() {
		w.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("stop did not return after context cancel")
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "config.toml")

	w := NewWatcher(nil, path)
	err := w.Start(context.Background())
	require.Error(t, err)
	assert.False(t, w.IsRunning())
}

func TestWatcher_PresetDirPicksUpNewFiles(t *testing.T) {
	dir := t.TempDir()
	presets := filepath.Join(dir, "themes")
	require.NoError(t, os.MkdirAll(presets, 0755))
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	var mu sync.Mutex
	var changed []string

	w := NewWatcher(nil, path)
	w.WatchPresetDir(presets)
	w.SetDebounce(20 * time.Millisecond)
	w.SetChangeCallback(func(p string) {
		mu.Lock()
		defer mu.Unlock()
		changed = append(changed, p)
	})
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	// Not a preset extension
	require.NoError(t, os.WriteFile(filepath.Join(presets, "notes.txt"), []byte("x"), 0644))
	created := filepath.Join(presets, "new.yaml")
	require.NoError(t, os.WriteFile(created, []byte("name: new\n"), 0644))

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(changed) > 0
	}, 2*time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	for _, p := range changed {
		assert.Equal(t, created, p)
	}
}

func TestWatcher_MissingPresetDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	w := NewWatcher(nil, path)
	w.WatchPresetDir(filepath.Join(dir, "themes"))
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()
	assert.True(t, w.IsRunning())
}

func TestWatcher_Watched(t *testing.T) {
	w := NewWatcher(nil, "/etc/tvtheme/config.toml")
	w.WatchPresetDir("/home/u/.config/tvtheme/themes")

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"config file", "/etc/tvtheme/config.toml", true},
		{"config sibling", "/etc/tvtheme/other.toml", false},
		{"toml preset", "/home/u/.config/tvtheme/themes/ocean.toml", true},
		{"yml preset", "/home/u/.config/tvtheme/themes/ocean.yml", true},
		{"editor swap file", "/home/u/.config/tvtheme/themes/.ocean.toml.swp", false},
		{"nested preset", "/home/u/.config/tvtheme/themes/old/ocean.toml", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.watched(tt.path))
		})
	}
}
