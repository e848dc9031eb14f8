package theme

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/jmylchreest/tvtheme/internal/config"
	"github.com/jmylchreest/tvtheme/internal/toolkit"
)

// Build creates one manager per configured theme, ordered so that a theme
// always follows the theme its parent_theme names. Presets are resolved
// through loader; a nil loader uses the user's themes directory.
func Build(cfg *config.Config, loader *Loader, display *toolkit.Display, logger *slog.Logger) ([]*Manager, error) {
	if logger == nil {
		logger = slog.Default()
	}

	order, err := cfg.ParentOrder()
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*Manager, len(order))
	managers := make([]*Manager, 0, len(order))
	for _, tc := range order {
		resolved := *tc
		if tc.Preset != "" {
			if loader == nil {
				loader = NewLoader("", logger)
			}
			p, err := loader.LoadPreset(tc.Preset)
			if err != nil {
				return nil, fmt.Errorf("theme %q: failed to load preset: %w", tc.ID, err)
			}
			resolved = tc.Overlay(p.Theme)
		}

		m, err := FromConfig(&resolved, display, logger)
		if err != nil {
			return nil, fmt.Errorf("theme %q: %w", tc.ID, err)
		}

		if resolved.ParentTheme != "" {
			parent, ok := byID[resolved.ParentTheme]
			if !ok {
				return nil, fmt.Errorf("theme %q: parent_theme %q is not a configured theme", tc.ID, resolved.ParentTheme)
			}
			m.SetCustomParentFunc(func(*Manager) *toolkit.Theme { return parent.Theme() })
		}

		byID[tc.ID] = m
		managers = append(managers, m)
	}
	return managers, nil
}

// FromConfig creates a manager from a single theme configuration. A
// parent_theme reference is not resolved here; Build wires it.
func FromConfig(tc *config.ThemeConfig, display *toolkit.Display, logger *slog.Logger) (*Manager, error) {
	if err := tc.Validate(); err != nil {
		return nil, err
	}

	m := NewManager(display, logger)

	name := tc.Name
	if name == "" {
		name = tc.ID
	}
	m.SetName(name)

	sel, err := selection(tc)
	if err != nil {
		return nil, err
	}
	m.SelectParentTheme(sel)

	if c, ok, _ := tc.PrimaryColorValue(); ok {
		m.SetPrimaryColor(c)
	}
	if c, ok, _ := tc.SecondaryColorValue(); ok {
		m.SetSecondaryColor(c)
	}

	apply, force, _ := tc.ApplyOptions()
	m.SetApplyTheme(apply)
	m.SetForceApplyTheme(force)

	seen := make(map[Slot]string, len(tc.Styles))
	for _, slotName := range tc.StyleSlots() {
		s, fn, err := compileStyle(slotName, tc.Styles[slotName])
		if err != nil {
			return nil, err
		}
		if prev, ok := seen[s]; ok {
			return nil, fmt.Errorf("style slot %s configured twice (%q and %q)", s, prev, slotName)
		}
		seen[s] = slotName
		m.SetStyleFunc(s, fn)
	}

	return m, nil
}

// selection returns the parent selection for tc. A parent_theme without an
// explicit selection implies CustomTheme.
func selection(tc *config.ThemeConfig) (ParentSelection, error) {
	if tc.SelectParentTheme == "" {
		if tc.ParentTheme != "" {
			return ParentCustom, nil
		}
		return ParentDefault, nil
	}

	sel, err := ParseParentSelection(tc.SelectParentTheme)
	if err != nil {
		return 0, err
	}
	if tc.ParentTheme != "" && sel != ParentCustom {
		return 0, fmt.Errorf("parent_theme requires select_parent_theme %s, got %s", ParentCustom, sel)
	}
	return sel, nil
}

type propValue struct {
	prop  toolkit.Prop
	value any
}

// compileStyle turns a slot's property table into a populate callback.
// Properties are set in name order so that repeated runs are identical.
func compileStyle(slotName string, props map[string]any) (Slot, StyleFunc, error) {
	s, err := ParseSlot(slotName)
	if err != nil {
		return 0, nil, err
	}

	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)

	values := make([]propValue, 0, len(names))
	for _, name := range names {
		p, err := toolkit.ParseProp(name)
		if err != nil {
			return 0, nil, fmt.Errorf("styles.%s: %w", slotName, err)
		}
		v, err := config.StyleValue(name, props[name])
		if err != nil {
			return 0, nil, fmt.Errorf("styles.%s: %w", slotName, err)
		}
		values = append(values, propValue{prop: p, value: v})
	}

	return s, func(_ *Manager, style *toolkit.Style) {
		for _, pv := range values {
			style.Set(pv.prop, pv.value)
		}
	}, nil
}
