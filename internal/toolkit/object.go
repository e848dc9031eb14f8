package toolkit

import (
	"fmt"
	"strings"
)

// Class is the runtime type of a widget.
type Class int

const (
	ClassObject Class = iota
	ClassButton
	ClassSwitch
	ClassSlider
	ClassCheckbox
	ClassBar
	ClassImage
	ClassList
	ClassChart
	ClassTable
	ClassLabel
	ClassSpinner
	ClassTextarea
	ClassDropdownList
)

var classNames = map[Class]string{
	ClassObject:       "obj",
	ClassButton:       "button",
	ClassSwitch:       "switch",
	ClassSlider:       "slider",
	ClassCheckbox:     "checkbox",
	ClassBar:          "bar",
	ClassImage:        "image",
	ClassList:         "list",
	ClassChart:        "chart",
	ClassTable:        "table",
	ClassLabel:        "label",
	ClassSpinner:      "spinner",
	ClassTextarea:     "textarea",
	ClassDropdownList: "dropdownlist",
}

func (c Class) String() string {
	if name, ok := classNames[c]; ok {
		return name
	}
	return fmt.Sprintf("class(%d)", int(c))
}

// ParseClass looks up a class by name.
func ParseClass(name string) (Class, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for c, cn := range classNames {
		if cn == n {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown widget class %q", name)
}

// StyleEntry is a style attached to an object with a state selector.
type StyleEntry struct {
	Style    *Style
	Selector State
}

// Object is a widget instance in the object tree.
type Object struct {
	id       int
	class    Class
	text     string
	parent   *Object
	children []*Object
	state    State
	styles   []StyleEntry
}

// ID returns the object's display-unique id.
func (o *Object) ID() int { return o.id }

// Class returns the object's runtime class.
func (o *Object) Class() Class { return o.class }

// CheckType reports whether the object is exactly of class c.
func (o *Object) CheckType(c Class) bool { return o.class == c }

// Parent returns the parent object, or nil for a screen.
func (o *Object) Parent() *Object { return o.parent }

// Text returns the object's display text.
func (o *Object) Text() string { return o.text }

// SetText sets the object's display text.
func (o *Object) SetText(text string) { o.text = text }

// ChildCount returns the number of direct children.
func (o *Object) ChildCount() int { return len(o.children) }

// Child returns the i-th child, or nil if out of range.
func (o *Object) Child(i int) *Object {
	if i < 0 || i >= len(o.children) {
		return nil
	}
	return o.children[i]
}

// Children returns a copy of the direct children.
func (o *Object) Children() []*Object {
	out := make([]*Object, len(o.children))
	copy(out, o.children)
	return out
}

// State returns the current runtime state.
func (o *Object) State() State { return o.state }

// AddState sets state bits.
func (o *Object) AddState(s State) { o.state |= s }

// ClearState clears state bits.
func (o *Object) ClearState(s State) { o.state &^= s }

// HasState reports whether every bit of s is set.
func (o *Object) HasState(s State) bool { return o.state.Has(s) }

// AddStyle attaches a style with a state selector. Attaching a style that is
// already present with the same selector moves it to the end.
func (o *Object) AddStyle(s *Style, selector State) {
	if s == nil {
		return
	}
	for i, e := range o.styles {
		if e.Style == s && e.Selector == selector {
			o.styles = append(o.styles[:i], o.styles[i+1:]...)
			break
		}
	}
	o.styles = append(o.styles, StyleEntry{Style: s, Selector: selector})
}

// RemoveStyleAll detaches every style.
func (o *Object) RemoveStyleAll() {
	o.styles = nil
}

// Styles returns a copy of the attached styles in attachment order.
func (o *Object) Styles() []StyleEntry {
	out := make([]StyleEntry, len(o.styles))
	copy(out, o.styles)
	return out
}

// HasStyle reports whether s is attached with the given selector.
func (o *Object) HasStyle(s *Style, selector State) bool {
	for _, e := range o.styles {
		if e.Style == s && e.Selector == selector {
			return true
		}
	}
	return false
}

// StyleProp resolves a property for the object's current state. Among the
// attached styles whose selector matches the state and which set p, the one
// with the highest selector wins; on a tie the most recently attached wins.
func (o *Object) StyleProp(p Prop) (any, bool) {
	var (
		best    any
		found   bool
		bestSel State
	)
	for _, e := range o.styles {
		if !o.state.Has(e.Selector) {
			continue
		}
		v, ok := e.Style.Get(p)
		if !ok {
			continue
		}
		if !found || e.Selector >= bestSel {
			best, bestSel, found = v, e.Selector, true
		}
	}
	return best, found
}

// Walk visits the object and all its descendants in pre-order.
func (o *Object) Walk(fn func(obj *Object)) {
	fn(o)
	for _, child := range o.children {
		child.Walk(fn)
	}
}

// Depth returns the number of ancestors.
func (o *Object) Depth() int {
	d := 0
	for p := o.parent; p != nil; p = p.parent {
		d++
	}
	return d
}
