package toolkit

import "errors"

var (
	// ErrSelfParent is returned when a theme is made its own parent.
	ErrSelfParent = errors.New("theme cannot be its own parent")
	// ErrThemeCycle is returned when linking a parent would close a loop.
	ErrThemeCycle = errors.New("parent link would create a theme cycle")
)

// ApplyFunc attaches a theme's styles to a single object.
type ApplyFunc func(th *Theme, obj *Object)

// Theme is a toolkit theme object. Themes form a chain through their parent
// links; applying a theme applies its parents first.
type Theme struct {
	Name string

	ColorPrimary   Color
	ColorSecondary Color
	FontSmall      *Font
	FontNormal     *Font
	FontLarge      *Font

	// UserData is an opaque slot owned by whoever installed the apply callback.
	UserData any

	parent *Theme
	apply  ApplyFunc
}

// Parent returns the parent theme, or nil.
func (t *Theme) Parent() *Theme { return t.parent }

// SetParent links p as the parent theme. A nil parent clears the link.
func (t *Theme) SetParent(p *Theme) error {
	if p == t {
		return ErrSelfParent
	}
	for cur := p; cur != nil; cur = cur.parent {
		if cur == t {
			return ErrThemeCycle
		}
	}
	t.parent = p
	return nil
}

// SetApplyFunc installs the per-object apply callback.
func (t *Theme) SetApplyFunc(fn ApplyFunc) { t.apply = fn }

// HasApplyFunc reports whether an apply callback is installed.
func (t *Theme) HasApplyFunc() bool { return t.apply != nil }

// ChainLength returns the number of themes in the chain starting at t.
func (t *Theme) ChainLength() int {
	n := 0
	for cur := t; cur != nil; cur = cur.parent {
		n++
	}
	return n
}

// Chain returns the themes from t to the root of its chain.
func (t *Theme) Chain() []*Theme {
	var out []*Theme
	for cur := t; cur != nil; cur = cur.parent {
		out = append(out, cur)
	}
	return out
}

// ApplyTheme applies th to obj: the parent chain first, then th itself, so
// that a leaf theme's attachments land after the inherited ones.
func ApplyTheme(th *Theme, obj *Object) {
	if th == nil || obj == nil {
		return
	}
	if th.parent != nil {
		ApplyTheme(th.parent, obj)
	}
	if th.apply != nil {
		th.apply(th, obj)
	}
}
