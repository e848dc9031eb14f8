package theme

import (
	"fmt"
	"strings"
)

// ParentSelection chooses the theme a Manager delegates to.
type ParentSelection int

const (
	ParentDefault ParentSelection = iota
	ParentDarkDefault
	ParentMono
	ParentDarkMono
	ParentBasic
	ParentCustom
	ParentNone
)

var parentNames = []string{
	ParentDefault:     "DefaultTheme",
	ParentDarkDefault: "DarkDefaultTheme",
	ParentMono:        "MonoTheme",
	ParentDarkMono:    "DarkMonoTheme",
	ParentBasic:       "BasicTheme",
	ParentCustom:      "CustomTheme",
	ParentNone:        "NoParentTheme",
}

// ParentSelections returns every valid selection.
func ParentSelections() []ParentSelection {
	return []ParentSelection{
		ParentDefault,
		ParentDarkDefault,
		ParentMono,
		ParentDarkMono,
		ParentBasic,
		ParentCustom,
		ParentNone,
	}
}

func (p ParentSelection) String() string {
	if p >= 0 && int(p) < len(parentNames) {
		return parentNames[p]
	}
	return fmt.Sprintf("ParentSelection(%d)", int(p))
}

// Dark reports whether the selection is a dark variant.
func (p ParentSelection) Dark() bool {
	return p == ParentDarkDefault || p == ParentDarkMono
}

// ParseParentSelection parses a selection name such as "DarkMonoTheme".
// Matching ignores case and the "Theme" suffix is optional.
func ParseParentSelection(s string) (ParentSelection, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "none" {
		return ParentNone, nil
	}
	for i, n := range parentNames {
		ln := strings.ToLower(n)
		if name == ln || name == strings.TrimSuffix(ln, "theme") {
			return ParentSelection(i), nil
		}
	}
	return 0, fmt.Errorf("invalid parent theme %q, possible values: %s", s, strings.Join(parentNames, ","))
}

// MarshalText implements encoding.TextMarshaler.
func (p ParentSelection) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *ParentSelection) UnmarshalText(text []byte) error {
	sel, err := ParseParentSelection(string(text))
	if err != nil {
		return err
	}
	*p = sel
	return nil
}
