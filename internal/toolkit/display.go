package toolkit

// Display owns the screens, the active screen and the active theme. New
// objects get the active theme applied as they are created.
type Display struct {
	theme        *Theme
	active       *Object
	screens      []*Object
	nextID       int
	ready        bool
	styleChanges int
	invalidated  map[*Object]int
}

// NewDisplay returns a display with no theme and no screens.
func NewDisplay() *Display {
	return &Display{invalidated: make(map[*Object]int)}
}

// Theme returns the active theme.
func (d *Display) Theme() *Theme { return d.theme }

// SetTheme installs th as the active theme. Existing objects are not
// restyled.
func (d *Display) SetTheme(th *Theme) { d.theme = th }

// Ready reports whether the display has been brought up.
func (d *Display) Ready() bool { return d.ready }

// SetReady marks the display as ready.
func (d *Display) SetReady(ready bool) { d.ready = ready }

// NewScreen creates a parentless object. The first screen becomes active.
func (d *Display) NewScreen() *Object {
	return d.NewScreenOf(ClassObject)
}

// NewScreenOf creates a parentless object of the given class.
func (d *Display) NewScreenOf(class Class) *Object {
	scr := d.newObject(nil, class)
	d.screens = append(d.screens, scr)
	if d.active == nil {
		d.active = scr
	}
	ApplyTheme(d.theme, scr)
	return scr
}

// LoadScreen makes scr the active screen.
func (d *Display) LoadScreen(scr *Object) {
	if scr == nil || scr.parent != nil {
		return
	}
	d.active = scr
}

// ActiveScreen returns the active screen, creating one if none exists.
func (d *Display) ActiveScreen() *Object {
	if d.active == nil {
		return d.NewScreen()
	}
	return d.active
}

// Create adds an object of the given class under parent and applies the
// active theme to it.
func (d *Display) Create(parent *Object, class Class) *Object {
	if parent == nil {
		parent = d.ActiveScreen()
	}
	obj := d.newObject(parent, class)
	parent.children = append(parent.children, obj)
	ApplyTheme(d.theme, obj)
	return obj
}

func (d *Display) newObject(parent *Object, class Class) *Object {
	d.nextID++
	return &Object{id: d.nextID, class: class, parent: parent}
}

// ReportStyleChange notifies that a style changed. A nil style means every
// style may have changed.
func (d *Display) ReportStyleChange(_ *Style) { d.styleChanges++ }

// StyleChangeCount returns how many style changes were reported.
func (d *Display) StyleChangeCount() int { return d.styleChanges }

// Invalidate marks obj for redraw.
func (d *Display) Invalidate(obj *Object) {
	if obj != nil {
		d.invalidated[obj]++
	}
}

// InvalidateCount returns how often obj was invalidated.
func (d *Display) InvalidateCount(obj *Object) int { return d.invalidated[obj] }
