package theme

import (
	"errors"
	"log/slog"

	"github.com/oklog/ulid/v2"

	"github.com/jmylchreest/tvtheme/internal/host"
	"github.com/jmylchreest/tvtheme/internal/toolkit"
)

// SetupFunc is called with the manager's toolkit theme before the parent is
// resolved (setup) or after the apply callback is installed (after setup).
type SetupFunc func(m *Manager, th *toolkit.Theme)

// StyleFunc populates a slot's style. The style is reset before each call.
type StyleFunc func(m *Manager, style *toolkit.Style)

// ApplyFunc is called for every widget the theme is applied to, after the
// built-in slot attachments.
type ApplyFunc func(m *Manager, obj *toolkit.Object)

// ParentFunc supplies the parent theme for the CustomTheme selection.
type ParentFunc func(m *Manager) *toolkit.Theme

// errNoDisplay is logged when apply is requested without a display.
var errNoDisplay = errors.New("no display to apply theme to")

type slot struct {
	style    toolkit.Style
	populate StyleFunc
}

// Manager owns a toolkit theme, its style slots and the callbacks that
// populate them. All methods must be called from the toolkit's goroutine.
type Manager struct {
	logger  *slog.Logger
	display *toolkit.Display

	name   string
	theme  toolkit.Theme
	handle ulid.ULID
	slots  [slotCount]slot

	selection ParentSelection
	parentRef *toolkit.Theme

	done       bool
	apply      bool
	forceApply bool

	setupFn      SetupFunc
	afterSetupFn SetupFunc
	applyFn      ApplyFunc
	parentFn     ParentFunc
}

// NewManager creates a manager that installs itself on display when asked to
// apply.
func NewManager(display *toolkit.Display, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		logger:    logger,
		display:   display,
		handle:    ulid.Make(),
		selection: ParentDefault,
	}
}

// Setup runs the first initialization.
func (m *Manager) Setup() {
	if m.display != nil && !m.display.Ready() {
		m.logger.Warn("display not ready at theme setup", "theme", m.name)
	}
	m.Initialize()
	m.logger.Info("theme setup done", "theme", m.name)
}

// Loop does nothing; the theme only reacts to toolkit callbacks.
func (m *Manager) Loop() {}

// SetupPriority places theme setup after the display is up.
func (m *Manager) SetupPriority() float64 { return host.PriorityLate }

// Theme returns the manager's toolkit theme.
func (m *Manager) Theme() *toolkit.Theme { return &m.theme }

// Handle returns the value stored in the theme's user-data slot.
func (m *Manager) Handle() ulid.ULID { return m.handle }

// SetName sets the manager's name, which is also the toolkit theme's name.
func (m *Manager) SetName(name string) {
	m.name = name
	m.theme.Name = name
}

// Name returns the manager's name.
func (m *Manager) Name() string { return m.name }

// Done reports whether Initialize has run.
func (m *Manager) Done() bool { return m.done }

// SetPrimaryColor sets the theme's primary color.
func (m *Manager) SetPrimaryColor(c toolkit.Color) { m.theme.ColorPrimary = c }

// SetSecondaryColor sets the theme's secondary color.
func (m *Manager) SetSecondaryColor(c toolkit.Color) { m.theme.ColorSecondary = c }

// SetPrimaryColorHex sets the primary color from a 0xRRGGBB value.
func (m *Manager) SetPrimaryColorHex(v uint32) { m.theme.ColorPrimary = toolkit.Hex(v) }

// SetSecondaryColorHex sets the secondary color from a 0xRRGGBB value.
func (m *Manager) SetSecondaryColorHex(v uint32) { m.theme.ColorSecondary = toolkit.Hex(v) }

// SelectParentTheme chooses where the parent theme comes from. It takes
// effect on the next Initialize.
func (m *Manager) SelectParentTheme(sel ParentSelection) { m.selection = sel }

// Selection returns the parent theme selection.
func (m *Manager) Selection() ParentSelection { return m.selection }

// SetApplyTheme makes Initialize install the theme on the display.
func (m *Manager) SetApplyTheme(apply bool) { m.apply = apply }

// ApplyTheme reports whether Initialize installs the theme on the display.
func (m *Manager) ApplyTheme() bool { return m.apply }

// SetForceApplyTheme makes Initialize reapply the theme to every existing
// widget on the active screen.
func (m *Manager) SetForceApplyTheme(force bool) { m.forceApply = force }

// ForceApplyTheme reports whether applying also restyles existing widgets.
func (m *Manager) ForceApplyTheme() bool { return m.forceApply }

// SetSetupFunc sets the callback run before the parent theme is resolved.
func (m *Manager) SetSetupFunc(fn SetupFunc) { m.setupFn = fn }

// SetAfterSetupFunc sets the callback run once the theme is fully set up.
func (m *Manager) SetAfterSetupFunc(fn SetupFunc) { m.afterSetupFn = fn }

// SetApplyFunc sets the hook run for every widget after the slot styles.
func (m *Manager) SetApplyFunc(fn ApplyFunc) { m.applyFn = fn }

// SetCustomParentFunc sets the parent provider used with ParentCustom.
func (m *Manager) SetCustomParentFunc(fn ParentFunc) { m.parentFn = fn }

// SetStyleFunc sets the populate callback for a slot. A nil callback
// deactivates the slot.
func (m *Manager) SetStyleFunc(s Slot, fn StyleFunc) {
	if s < 0 || s >= slotCount {
		m.logger.Warn("ignoring style callback for unknown slot", "slot", int(s))
		return
	}
	m.slots[s].populate = fn
}

// Active reports whether a slot has a populate callback.
func (m *Manager) Active(s Slot) bool {
	return s >= 0 && s < slotCount && m.slots[s].populate != nil
}

// ActiveSlots returns the slots with a populate callback.
func (m *Manager) ActiveSlots() []Slot {
	var out []Slot
	for _, s := range Slots() {
		if m.Active(s) {
			out = append(out, s)
		}
	}
	return out
}

// Style returns the style object owned by a slot.
func (m *Manager) Style(s Slot) *toolkit.Style {
	if s < 0 || s >= slotCount {
		return nil
	}
	return &m.slots[s].style
}

// SetParentTheme sets an explicit parent theme reference, used by the
// CustomTheme selection when no provider is set. Changing it after setup
// reruns Initialize. Setting the manager's own theme is ignored.
func (m *Manager) SetParentTheme(parent *toolkit.Theme) {
	if parent == &m.theme {
		m.logger.Warn("trying to set parent theme to internal theme, ignoring", "theme", m.name)
		return
	}
	m.parentRef = parent
	if m.done {
		m.Initialize()
	}
}

// Initialize builds the theme: resolves and links the parent, populates the
// active slots and installs the apply callback. When apply is set the theme
// also becomes the display's active theme. Every call performs the full
// sequence.
func (m *Manager) Initialize() {
	if !m.done && m.setupFn != nil {
		m.setupFn(m, &m.theme)
	}

	parent := m.resolveParent()
	if err := m.theme.SetParent(parent); err != nil {
		m.logger.Error("failed to link parent theme, continuing without parent", "theme", m.name, "error", err)
		_ = m.theme.SetParent(nil)
	}

	m.theme.FontSmall = toolkit.DefaultFont
	m.theme.FontNormal = toolkit.DefaultFont
	m.theme.FontLarge = toolkit.DefaultFont
	m.done = true

	m.theme.UserData = m.handle
	register(m.handle, m)

	for i := range m.slots {
		m.populate(Slot(i))
	}

	m.theme.SetApplyFunc(dispatch)

	if m.afterSetupFn != nil {
		m.afterSetupFn(m, &m.theme)
	}

	if m.apply {
		m.applyToDisplay()
	}
}

func (m *Manager) resolveParent() *toolkit.Theme {
	th := &m.theme
	switch m.selection {
	case ParentBasic:
		return toolkit.BasicTheme()
	case ParentDefault, ParentDarkDefault:
		return toolkit.DefaultTheme(th.ColorPrimary, th.ColorSecondary, m.selection.Dark(), nil)
	case ParentMono, ParentDarkMono:
		return toolkit.MonoTheme(m.selection.Dark(), nil)
	case ParentNone:
		return nil
	case ParentCustom:
		switch {
		case m.parentFn != nil:
			parent := m.parentFn(m)
			if parent == nil {
				m.logger.Error("custom parent theme selected, but provider returned no theme", "theme", m.name)
				return nil
			}
			m.logger.Debug("parent theme from provider", "theme", m.name, "parent", parent.Name)
			return parent
		case m.parentRef != nil:
			m.logger.Debug("parent theme from reference", "theme", m.name, "parent", m.parentRef.Name)
			return m.parentRef
		default:
			m.logger.Error("custom parent theme selected, but no provider given", "theme", m.name)
			return nil
		}
	}
	m.logger.Error("unknown parent theme selection, continuing without parent", "theme", m.name, "selection", int(m.selection))
	return nil
}

func (m *Manager) populate(s Slot) {
	sl := &m.slots[s]
	if sl.populate == nil {
		return
	}
	sl.style.Init()
	sl.populate(m, &sl.style)
}

// Close removes the manager's handle from the registry; the theme's apply
// callback becomes a no-op afterwards.
func (m *Manager) Close() {
	unregister(m.handle)
}

// Dump logs the manager's state.
func (m *Manager) Dump() {
	attrs := []any{
		"theme", m.name,
		"done", m.done,
		"parent", m.selection.String(),
		"chain", m.theme.ChainLength(),
		"apply", m.apply,
		"force", m.forceApply,
	}
	names := make([]string, 0, slotCount)
	for _, s := range m.ActiveSlots() {
		names = append(names, s.String())
	}
	attrs = append(attrs, "slots", names)
	m.logger.Info("theme dump", attrs...)
}
