package theme

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jmylchreest/tvtheme/internal/config"
)

// Preset sources.
const (
	SourceUser    = "user"
	SourceBundled = "bundled"
)

// presetExts are the user preset extensions, in lookup order.
var presetExts = []string{".toml", ".yaml", ".yml"}

// Preset is a declarative theme loaded from a user or bundled file.
type Preset struct {
	Name   string
	Source string
	Path   string // Empty for bundled presets
	Theme  config.ThemeConfig
}

// PresetInfo describes an available preset without parsing it.
type PresetInfo struct {
	Name       string
	Source     string
	Path       string
	Size       int64
	ModTime    time.Time // Zero for bundled presets
	Overridden bool      // A user preset shadows the bundled one
}

// Loader resolves preset names to presets.
type Loader struct {
	mu        sync.RWMutex
	logger    *slog.Logger
	themesDir string
	cache     map[string]*Preset
}

// NewLoader creates a preset loader. An empty themesDir uses the user's
// tvtheme themes directory.
func NewLoader(themesDir string, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	if themesDir == "" {
		themesDir = config.ThemesDir()
	}
	return &Loader{
		logger:    logger,
		themesDir: themesDir,
		cache:     make(map[string]*Preset),
	}
}

// ThemesDir returns the user presets directory.
func (l *Loader) ThemesDir() string {
	return l.themesDir
}

// LoadPreset loads a preset by name.
// Preset resolution order:
//  1. User themes directory (~/.config/tvtheme/themes/)
//  2. Embedded/bundled presets
//  3. The bundled default, with a warning
//
// This allows users to override bundled presets by placing a file with the
// same name in their themes directory.
func (l *Loader) LoadPreset(name string) (*Preset, error) {
	if name == "" {
		name = DefaultPresetName
	}

	l.mu.RLock()
	p, ok := l.cache[name]
	l.mu.RUnlock()
	if ok {
		return p, nil
	}

	p, err := l.resolve(name)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.cache[name] = p
	l.mu.Unlock()
	return p, nil
}

func (l *Loader) resolve(name string) (*Preset, error) {
	if path := l.userPath(name); path != "" {
		p, err := parsePresetFile(name, path)
		if err == nil {
			l.logger.Info("loaded user preset", "name", name, "path", path)
			return p, nil
		}
		l.logger.Warn("failed to load user preset, trying bundled", "preset", name, "error", err)
	}

	if data, found := GetEmbeddedPreset(name); found {
		p, err := parsePreset(name, SourceBundled, "", "preset.toml", data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse bundled preset %q: %w", name, err)
		}
		l.logger.Debug("loaded bundled preset", "name", name)
		return p, nil
	}

	l.logger.Warn("preset not found, using default", "preset", name)
	data, _ := GetEmbeddedPreset(DefaultPresetName)
	p, err := parsePreset(DefaultPresetName, SourceBundled, "", "preset.toml", data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse default preset: %w", err)
	}
	return p, nil
}

// userPath returns the user preset file for name, or "" if there is none.
func (l *Loader) userPath(name string) string {
	if l.themesDir == "" || strings.ContainsAny(name, `/\`) {
		return ""
	}
	for _, ext := range presetExts {
		path := filepath.Join(l.themesDir, name+ext)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

func parsePresetFile(name, path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset file: %w", err)
	}
	return parsePreset(name, SourceUser, path, path, data)
}

func parsePreset(name, source, path, format string, data []byte) (*Preset, error) {
	var th config.ThemeConfig
	if err := config.Unmarshal(format, data, &th); err != nil {
		return nil, err
	}
	if th.Preset != "" {
		return nil, fmt.Errorf("preset %q cannot itself use a preset", name)
	}
	if th.ParentTheme != "" {
		return nil, fmt.Errorf("preset %q cannot name a parent_theme", name)
	}
	if err := th.Validate(); err != nil {
		return nil, err
	}
	if th.Name == "" {
		th.Name = name
	}
	return &Preset{Name: name, Source: source, Path: path, Theme: th}, nil
}

// Reload drops cached presets so the next LoadPreset reads from disk again.
func (l *Loader) Reload() {
	l.mu.Lock()
	defer l.mu.Unlock()
	clear(l.cache)
}

// ListPresets returns the available presets sorted by name. User presets
// shadow bundled presets of the same name.
func (l *Loader) ListPresets() []PresetInfo {
	byName := make(map[string]PresetInfo)

	for _, name := range ListEmbeddedPresets() {
		data, _ := GetEmbeddedPreset(name)
		byName[name] = PresetInfo{
			Name:   name,
			Source: SourceBundled,
			Size:   int64(len(data)),
		}
	}

	if l.themesDir != "" {
		entries, err := os.ReadDir(l.themesDir)
		if err != nil {
			l.logger.Debug("failed to read themes directory", "error", err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			ext := filepath.Ext(entry.Name())
			if !isPresetExt(ext) {
				continue
			}
			name := strings.TrimSuffix(entry.Name(), ext)
			if prev, ok := byName[name]; ok && prev.Source == SourceUser {
				continue
			}
			info, err := entry.Info()
			if err != nil {
				continue
			}
			_, bundled := byName[name]
			byName[name] = PresetInfo{
				Name:       name,
				Source:     SourceUser,
				Path:       filepath.Join(l.themesDir, entry.Name()),
				Size:       info.Size(),
				ModTime:    info.ModTime(),
				Overridden: bundled,
			}
		}
	}

	out := make([]PresetInfo, 0, len(byName))
	for _, info := range byName {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func isPresetExt(ext string) bool {
	for _, e := range presetExts {
		if e == ext {
			return true
		}
	}
	return false
}
