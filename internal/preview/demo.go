package preview

import (
	"github.com/jmylchreest/tvtheme/internal/toolkit"
)

// DemoScreen creates a screen holding one widget of every class and makes it
// the active screen. Widgets are created through the display, so its active
// theme is applied to each of them.
func DemoScreen(d *toolkit.Display) *toolkit.Object {
	scr := d.NewScreen()
	d.LoadScreen(scr)
	scr.SetText("screen")

	panel := d.Create(scr, toolkit.ClassObject)
	panel.SetText("panel")

	btn := d.Create(panel, toolkit.ClassButton)
	btn.SetText("OK")
	label := d.Create(btn, toolkit.ClassLabel)
	label.SetText("OK")

	widgets := []struct {
		class toolkit.Class
		text  string
	}{
		{toolkit.ClassSwitch, "wifi"},
		{toolkit.ClassSlider, "volume"},
		{toolkit.ClassCheckbox, "remember me"},
		{toolkit.ClassBar, "battery"},
		{toolkit.ClassImage, "logo"},
		{toolkit.ClassList, "rooms"},
		{toolkit.ClassChart, "temperature"},
		{toolkit.ClassTable, "schedule"},
		{toolkit.ClassLabel, "hello"},
		{toolkit.ClassSpinner, "loading"},
		{toolkit.ClassTextarea, "notes"},
		{toolkit.ClassDropdownList, "mode"},
	}
	for _, w := range widgets {
		obj := d.Create(scr, w.class)
		obj.SetText(w.text)
	}
	return scr
}

// SetState puts every widget below root in exactly state. The root itself is
// left in its default state.
func SetState(root *toolkit.Object, state toolkit.State) {
	root.Walk(func(obj *toolkit.Object) {
		if obj != root {
			obj.ClearState(obj.State())
			obj.AddState(state)
		}
	})
}

// Restyle strips the styles of root and every descendant and applies th to
// each of them again, parents first. A nil theme leaves the tree unstyled.
func Restyle(root *toolkit.Object, th *toolkit.Theme) {
	root.Walk(func(obj *toolkit.Object) {
		obj.RemoveStyleAll()
		toolkit.ApplyTheme(th, obj)
	})
}
