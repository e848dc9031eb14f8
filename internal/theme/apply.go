package theme

import (
	"github.com/jmylchreest/tvtheme/internal/toolkit"
)

// dispatch is the apply callback installed on every manager's theme. It
// recovers the manager from the theme's user-data handle.
func dispatch(th *toolkit.Theme, obj *toolkit.Object) {
	if th == nil || obj == nil {
		return
	}
	m, ok := lookup(th.UserData)
	if !ok {
		return
	}
	m.attach(obj)
}

// attach adds this manager's own contributions to obj. Parent themes are
// handled by toolkit.ApplyTheme before this runs.
func (m *Manager) attach(obj *toolkit.Object) {
	if obj.Parent() == nil {
		if m.Active(SlotScreen) {
			obj.AddStyle(&m.slots[SlotScreen].style, toolkit.StateDefault)
		}
	} else if c := classify(obj); c != nil {
		for _, b := range c.bindings {
			if m.Active(b.slot) {
				obj.AddStyle(&m.slots[b.slot].style, b.state)
			}
		}
	}

	if m.applyFn != nil {
		m.applyFn(m, obj)
	}
}

// Apply applies the full theme chain to obj, parents first.
func (m *Manager) Apply(obj *toolkit.Object) {
	toolkit.ApplyTheme(&m.theme, obj)
}

// applyToDisplay installs the theme on the display and restyles the active
// screen. With force set, every widget on the screen, the screen included, is
// reapplied in a second pass.
func (m *Manager) applyToDisplay() {
	if m.display == nil {
		m.logger.Error("failed to apply theme", "theme", m.name, "error", errNoDisplay)
		return
	}

	m.display.SetTheme(&m.theme)
	scr := m.display.ActiveScreen()
	scr.RemoveStyleAll()
	m.logger.Debug("apply theme", "theme", m.name, "force", m.forceApply)

	m.Apply(scr)
	if m.forceApply {
		m.reapplyTree(scr)
	}

	m.display.ReportStyleChange(nil)
	m.display.Invalidate(scr)
}

// reapplyTree applies the theme to root and every descendant.
func (m *Manager) reapplyTree(root *toolkit.Object) {
	count := 0
	root.Walk(func(obj *toolkit.Object) {
		m.Apply(obj)
		count++
	})
	m.logger.Debug("forced theme reapply", "theme", m.name, "objects", count)
}
