package config

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/jmylchreest/tvtheme/internal/toolkit"
)

// ThemeConfig describes one theme manager.
type ThemeConfig struct {
	ID          string `toml:"id" yaml:"id"`
	Name        string `toml:"name,omitempty" yaml:"name,omitempty"`
	Description string `toml:"description,omitempty" yaml:"description,omitempty"`
	Preset      string `toml:"preset,omitempty" yaml:"preset,omitempty"` // Bundled or user preset to start from

	// Colors are integers (0x2196f3) or strings ("#2196f3").
	PrimaryColor   any `toml:"primary_color,omitempty" yaml:"primary_color,omitempty"`
	SecondaryColor any `toml:"secondary_color,omitempty" yaml:"secondary_color,omitempty"`

	SelectParentTheme string `toml:"select_parent_theme,omitempty" yaml:"select_parent_theme,omitempty"`
	ParentTheme       string `toml:"parent_theme,omitempty" yaml:"parent_theme,omitempty"` // Id of another configured theme

	// ApplyTheme is a bool (sets apply and force) or a table {apply, force}.
	ApplyTheme any `toml:"apply_theme,omitempty" yaml:"apply_theme,omitempty"`

	// Styles maps a slot name to its properties, e.g. styles.button.bg_color.
	Styles map[string]map[string]any `toml:"styles,omitempty" yaml:"styles,omitempty"`
}

// ErrSelfParent is returned when parent_theme names the theme itself.
var ErrSelfParent = errors.New("parent_theme can't point to the same theme")

// Validate checks the parts of a theme that do not depend on other themes.
func (t *ThemeConfig) Validate() error {
	if t.ParentTheme != "" && t.ParentTheme == t.ID {
		return ErrSelfParent
	}
	if _, _, err := t.PrimaryColorValue(); err != nil {
		return fmt.Errorf("primary_color: %w", err)
	}
	if _, _, err := t.SecondaryColorValue(); err != nil {
		return fmt.Errorf("secondary_color: %w", err)
	}
	if _, _, err := t.ApplyOptions(); err != nil {
		return err
	}
	for slot, props := range t.Styles {
		for name, v := range props {
			if _, err := StyleValue(name, v); err != nil {
				return fmt.Errorf("styles.%s: %w", slot, err)
			}
		}
	}
	return nil
}

// PrimaryColorValue returns the configured primary color and whether one is
// set.
func (t *ThemeConfig) PrimaryColorValue() (toolkit.Color, bool, error) {
	return colorValue(t.PrimaryColor)
}

// SecondaryColorValue returns the configured secondary color and whether one
// is set.
func (t *ThemeConfig) SecondaryColorValue() (toolkit.Color, bool, error) {
	return colorValue(t.SecondaryColor)
}

// ApplyOptions returns the apply and force flags.
func (t *ThemeConfig) ApplyOptions() (apply, force bool, err error) {
	switch v := t.ApplyTheme.(type) {
	case nil:
		return false, false, nil
	case bool:
		return v, v, nil
	case map[string]any:
		for key, raw := range v {
			b, ok := raw.(bool)
			if !ok {
				return false, false, fmt.Errorf("apply_theme.%s must be a boolean, got %T", key, raw)
			}
			switch key {
			case "apply":
				apply = b
			case "force":
				force = b
			default:
				return false, false, fmt.Errorf("unknown apply_theme key %q", key)
			}
		}
		return apply, force, nil
	}
	return false, false, fmt.Errorf("apply_theme must be a boolean or a table with apply and force, got %T", t.ApplyTheme)
}

// StyleSlots returns the configured slot names in sorted order.
func (t *ThemeConfig) StyleSlots() []string {
	out := make([]string, 0, len(t.Styles))
	for name := range t.Styles {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Overlay returns base with every field set in t replacing base's. Style
// properties are merged per slot.
func (t ThemeConfig) Overlay(base ThemeConfig) ThemeConfig {
	out := base
	out.ID = t.ID
	out.Preset = t.Preset
	if t.Name != "" {
		out.Name = t.Name
	}
	if t.Description != "" {
		out.Description = t.Description
	}
	if t.PrimaryColor != nil {
		out.PrimaryColor = t.PrimaryColor
	}
	if t.SecondaryColor != nil {
		out.SecondaryColor = t.SecondaryColor
	}
	if t.SelectParentTheme != "" {
		out.SelectParentTheme = t.SelectParentTheme
	}
	if t.ParentTheme != "" {
		out.ParentTheme = t.ParentTheme
	}
	if t.ApplyTheme != nil {
		out.ApplyTheme = t.ApplyTheme
	}

	out.Styles = make(map[string]map[string]any, len(base.Styles)+len(t.Styles))
	for _, src := range []map[string]map[string]any{base.Styles, t.Styles} {
		for slot, props := range src {
			dst, ok := out.Styles[slot]
			if !ok {
				dst = make(map[string]any, len(props))
				out.Styles[slot] = dst
			}
			for k, v := range props {
				dst[k] = v
			}
		}
	}
	return out
}

// StyleValue converts a configured property value to the type the toolkit
// stores for the named property.
func StyleValue(name string, v any) (any, error) {
	p, err := toolkit.ParseProp(name)
	if err != nil {
		return nil, err
	}

	switch p.Kind() {
	case toolkit.KindColor:
		c, ok, err := colorValue(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		if !ok {
			return nil, fmt.Errorf("%s: missing color", name)
		}
		return c, nil
	case toolkit.KindInt:
		n, err := intValue(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return int(n), nil
	case toolkit.KindOpa:
		n, err := intValue(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		if n < 0 || n > math.MaxUint8 {
			return nil, fmt.Errorf("%s: opacity must be between 0 and 255, got %d", name, n)
		}
		return uint8(n), nil
	case toolkit.KindFont:
		s, ok := v.(string)
		if !ok || s == "" {
			return nil, fmt.Errorf("%s: font must be a name, got %T", name, v)
		}
		if s == toolkit.DefaultFont.Name {
			return toolkit.DefaultFont, nil
		}
		return &toolkit.Font{Name: s, LineHeight: toolkit.DefaultFont.LineHeight}, nil
	}
	return nil, fmt.Errorf("%s: unsupported property kind", name)
}

func colorValue(v any) (toolkit.Color, bool, error) {
	switch c := v.(type) {
	case nil:
		return toolkit.Color{}, false, nil
	case string:
		parsed, err := toolkit.ParseColor(c)
		if err != nil {
			return toolkit.Color{}, false, err
		}
		return parsed, true, nil
	}

	n, err := intValue(v)
	if err != nil {
		return toolkit.Color{}, false, fmt.Errorf("color must be an integer or a string: %w", err)
	}
	if n < 0 || n > 0xffffff {
		return toolkit.Color{}, false, fmt.Errorf("color %#x out of range", n)
	}
	return toolkit.Hex(uint32(n)), true, nil
}

// intValue accepts the integer types TOML and YAML decoders produce.
func intValue(v any) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	case uint64:
		if n > math.MaxInt64 {
			return 0, fmt.Errorf("value %d out of range", n)
		}
		return int64(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("value %v is not an integer", n)
		}
		return int64(n), nil
	}
	return 0, fmt.Errorf("expected an integer, got %T", v)
}
