// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Default configuration values.
const (
	DefaultWidth    = 48
	DefaultDebounce = 200 * time.Millisecond
)

// Config represents the tvtheme configuration.
type Config struct {
	Display DisplayConfig `toml:"display" yaml:"display"`
	Watch   WatchConfig   `toml:"watch" yaml:"watch"`
	Themes  []ThemeConfig `toml:"themes" yaml:"themes"`
}

// DisplayConfig holds settings of the simulated display used for previews.
type DisplayConfig struct {
	Width int    `toml:"width" yaml:"width"` // Preview width in terminal cells
	State string `toml:"state" yaml:"state"` // Initial widget state, e.g. "pressed|focused"
}

// WatchConfig holds hot-reload settings.
type WatchConfig struct {
	Debounce Duration `toml:"debounce" yaml:"debounce"` // Quiet period before reloading
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			Width: DefaultWidth,
		},
		Watch: WatchConfig{
			Debounce: Duration(DefaultDebounce),
		},
	}
}

// ConfigDir returns the tvtheme configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "tvtheme")
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.toml")
}

// ThemesDir returns the path to the user's theme presets.
func ThemesDir() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "themes")
}

// isYAML reports whether path should be parsed as YAML.
func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := Unmarshal(path, data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Unmarshal decodes data into v, choosing YAML or TOML by the extension of
// path.
func Unmarshal(path string, data []byte, v any) error {
	if isYAML(path) {
		return yaml.Unmarshal(data, v)
	}
	return toml.Unmarshal(data, v)
}

// Marshal encodes v in the named format ("toml" or "yaml").
func Marshal(format string, v any) ([]byte, error) {
	switch strings.ToLower(format) {
	case "toml", "":
		return toml.Marshal(v)
	case "yaml", "yml":
		return yaml.Marshal(v)
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}

// Save writes the configuration to the specified path, in YAML or TOML by
// extension. Creates parent directories if needed.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	format := "toml"
	if isYAML(path) {
		format = "yaml"
	}
	data, err := Marshal(format, c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return os.Rename(tmpPath, path)
}

// Theme returns the theme with the given id.
func (c *Config) Theme(id string) (*ThemeConfig, bool) {
	for i := range c.Themes {
		if c.Themes[i].ID == id {
			return &c.Themes[i], true
		}
	}
	return nil, false
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Display.Width < 16 || c.Display.Width > 400 {
		return fmt.Errorf("display width must be between 16 and 400, got %d", c.Display.Width)
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch debounce must not be negative, got %s", c.Watch.Debounce.Duration())
	}

	ids := make(map[string]bool, len(c.Themes))
	for i, th := range c.Themes {
		if th.ID == "" {
			return fmt.Errorf("theme %d: id is required", i)
		}
		if ids[th.ID] {
			return fmt.Errorf("duplicate theme id %q", th.ID)
		}
		ids[th.ID] = true
	}

	for i := range c.Themes {
		th := &c.Themes[i]
		if err := th.Validate(); err != nil {
			return fmt.Errorf("theme %q: %w", th.ID, err)
		}
		if th.ParentTheme != "" && !ids[th.ParentTheme] {
			return fmt.Errorf("theme %q: parent_theme %q is not a configured theme", th.ID, th.ParentTheme)
		}
	}

	if _, err := c.ParentOrder(); err != nil {
		return err
	}
	return nil
}

// ParentOrder returns the themes ordered so that every theme comes after the
// theme its parent_theme names. Themes without a parent keep their relative
// order.
func (c *Config) ParentOrder() ([]*ThemeConfig, error) {
	byID := make(map[string]*ThemeConfig, len(c.Themes))
	for i := range c.Themes {
		byID[c.Themes[i].ID] = &c.Themes[i]
	}

	const (
		unvisited = iota
		visiting
		visited
	)
	mark := make(map[string]int, len(c.Themes))
	out := make([]*ThemeConfig, 0, len(c.Themes))

	var visit func(th *ThemeConfig, path []string) error
	visit = func(th *ThemeConfig, path []string) error {
		switch mark[th.ID] {
		case visited:
			return nil
		case visiting:
			return fmt.Errorf("parent_theme cycle: %s", strings.Join(append(path, th.ID), " -> "))
		}
		mark[th.ID] = visiting
		if parent, ok := byID[th.ParentTheme]; ok && th.ParentTheme != "" {
			if err := visit(parent, append(path, th.ID)); err != nil {
				return err
			}
		}
		mark[th.ID] = visited
		out = append(out, th)
		return nil
	}

	for i := range c.Themes {
		if err := visit(&c.Themes[i], nil); err != nil {
			return nil, err
		}
	}
	return out, nil
}
