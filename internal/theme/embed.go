package theme

import (
	"embed"
	"io/fs"
	"path/filepath"
	"strings"
)

// EmbeddedPresets contains all bundled theme presets.
//
//go:embed themes/*.toml
var EmbeddedPresets embed.FS

// DefaultPresetName is the name of the built-in default preset.
const DefaultPresetName = "default"

// BundledPresets lists all embedded preset names.
var BundledPresets = []string{"default", "highcontrast", "mono", "ocean"}

// GetEmbeddedPreset retrieves a bundled preset by name.
// Returns the TOML content and whether it was found.
func GetEmbeddedPreset(name string) ([]byte, bool) {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return nil, false
	}
	data, err := EmbeddedPresets.ReadFile("themes/" + name + ".toml")
	if err != nil {
		return nil, false
	}
	return data, true
}

// ListEmbeddedPresets returns names of all embedded presets.
func ListEmbeddedPresets() []string {
	var presets []string

	entries, err := fs.ReadDir(EmbeddedPresets, "themes")
	if err != nil {
		return BundledPresets
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if ext := filepath.Ext(name); ext == ".toml" {
			presets = append(presets, strings.TrimSuffix(name, ext))
		}
	}

	return presets
}

// IsEmbeddedPreset checks if a preset name is bundled.
func IsEmbeddedPreset(name string) bool {
	_, found := GetEmbeddedPreset(name)
	return found
}
