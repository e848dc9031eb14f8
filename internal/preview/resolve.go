// Package preview renders toolkit widget trees in the terminal with the styles
// the active theme attached to them.
package preview

import (
	"github.com/jmylchreest/tvtheme/internal/toolkit"
)

// Resolved holds the effective style properties of a widget in its current
// state.
type Resolved struct {
	Bg      toolkit.Color
	HasBg   bool
	BgOpa   uint8
	Text    toolkit.Color
	HasText bool
	Font    *toolkit.Font

	Border      toolkit.Color
	BorderWidth int
	Radius      int
	Pad         int

	Outline      toolkit.Color
	OutlineWidth int
}

// Resolve looks up every property of obj for its current state.
func Resolve(obj *toolkit.Object) Resolved {
	r := Resolved{BgOpa: toolkit.OpaCover, Font: toolkit.DefaultFont}

	r.Bg, r.HasBg = colorProp(obj, toolkit.PropBgColor)
	r.Text, r.HasText = colorProp(obj, toolkit.PropTextColor)
	r.Border, _ = colorProp(obj, toolkit.PropBorderColor)
	r.Outline, _ = colorProp(obj, toolkit.PropOutlineColor)

	if v, ok := obj.StyleProp(toolkit.PropBgOpa); ok {
		if opa, ok := v.(uint8); ok {
			r.BgOpa = opa
		}
	}
	if v, ok := obj.StyleProp(toolkit.PropTextFont); ok {
		if f, ok := v.(*toolkit.Font); ok && f != nil {
			r.Font = f
		}
	}

	r.BorderWidth = intProp(obj, toolkit.PropBorderWidth)
	r.Radius = intProp(obj, toolkit.PropRadius)
	r.Pad = intProp(obj, toolkit.PropPadAll)
	r.OutlineWidth = intProp(obj, toolkit.PropOutlineWidth)
	return r
}

// Visible reports whether the background is drawn.
func (r Resolved) Visible() bool {
	return r.HasBg && r.BgOpa > toolkit.OpaTransp
}

func colorProp(obj *toolkit.Object, p toolkit.Prop) (toolkit.Color, bool) {
	v, ok := obj.StyleProp(p)
	if !ok {
		return toolkit.Color{}, false
	}
	c, ok := v.(toolkit.Color)
	return c, ok
}

func intProp(obj *toolkit.Object, p toolkit.Prop) int {
	v, ok := obj.StyleProp(p)
	if !ok {
		return 0
	}
	n, _ := v.(int)
	return n
}
