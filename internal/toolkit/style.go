package toolkit

import (
	"fmt"
	"strings"
)

// Prop identifies a style property.
type Prop int

const (
	PropBgColor Prop = iota + 1
	PropBgOpa
	PropTextColor
	PropTextFont
	PropBorderColor
	PropBorderWidth
	PropRadius
	PropPadAll
	PropOutlineColor
	PropOutlineWidth
)

// PropKind describes the value type a property holds.
type PropKind int

const (
	KindColor PropKind = iota
	KindInt
	KindOpa
	KindFont
)

var propInfo = map[Prop]struct {
	name string
	kind PropKind
}{
	PropBgColor:      {"bg_color", KindColor},
	PropBgOpa:        {"bg_opa", KindOpa},
	PropTextColor:    {"text_color", KindColor},
	PropTextFont:     {"text_font", KindFont},
	PropBorderColor:  {"border_color", KindColor},
	PropBorderWidth:  {"border_width", KindInt},
	PropRadius:       {"radius", KindInt},
	PropPadAll:       {"pad_all", KindInt},
	PropOutlineColor: {"outline_color", KindColor},
	PropOutlineWidth: {"outline_width", KindInt},
}

// String returns the property's config name.
func (p Prop) String() string {
	if info, ok := propInfo[p]; ok {
		return info.name
	}
	return fmt.Sprintf("prop(%d)", int(p))
}

// Kind returns the value type of the property.
func (p Prop) Kind() PropKind {
	return propInfo[p].kind
}

// ParseProp looks up a property by its config name.
func ParseProp(name string) (Prop, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for p, info := range propInfo {
		if info.name == n {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown style property %q", name)
}

// Opacity values.
const (
	OpaTransp uint8 = 0
	OpaCover  uint8 = 255
)

// Style is an ordered bag of style properties. The zero value is an empty
// style ready for use.
type Style struct {
	values map[Prop]any
	order  []Prop
}

// NewStyle returns an empty style.
func NewStyle() *Style {
	s := &Style{}
	s.Init()
	return s
}

// Init resets the style to empty.
func (s *Style) Init() {
	s.values = make(map[Prop]any)
	s.order = nil
}

// Set stores a property value. Values must match the property kind:
// Color, uint8 for opacity, int, or *Font.
func (s *Style) Set(p Prop, v any) {
	if s.values == nil {
		s.values = make(map[Prop]any)
	}
	if _, exists := s.values[p]; !exists {
		s.order = append(s.order, p)
	}
	s.values[p] = v
}

// Get returns a property value.
func (s *Style) Get(p Prop) (any, bool) {
	v, ok := s.values[p]
	return v, ok
}

// Props returns the properties set on the style, in insertion order.
func (s *Style) Props() []Prop {
	out := make([]Prop, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of properties set.
func (s *Style) Len() int {
	return len(s.order)
}

func (s *Style) SetBgColor(c Color)      { s.Set(PropBgColor, c) }
func (s *Style) SetBgOpa(opa uint8)      { s.Set(PropBgOpa, opa) }
func (s *Style) SetTextColor(c Color)    { s.Set(PropTextColor, c) }
func (s *Style) SetTextFont(f *Font)     { s.Set(PropTextFont, f) }
func (s *Style) SetBorderColor(c Color)  { s.Set(PropBorderColor, c) }
func (s *Style) SetBorderWidth(w int)    { s.Set(PropBorderWidth, w) }
func (s *Style) SetRadius(r int)         { s.Set(PropRadius, r) }
func (s *Style) SetPadAll(p int)         { s.Set(PropPadAll, p) }
func (s *Style) SetOutlineColor(c Color) { s.Set(PropOutlineColor, c) }
func (s *Style) SetOutlineWidth(w int)   { s.Set(PropOutlineWidth, w) }

// ColorProp returns a color property, if set.
func (s *Style) ColorProp(p Prop) (Color, bool) {
	v, ok := s.values[p]
	if !ok {
		return Color{}, false
	}
	c, ok := v.(Color)
	return c, ok
}

// IntProp returns an integer property, if set.
func (s *Style) IntProp(p Prop) (int, bool) {
	v, ok := s.values[p]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case uint8:
		return int(n), true
	}
	return 0, false
}
