package theme

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/tvtheme/internal/toolkit"
)

func newTestLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, &buf
}

// fill returns a style callback that sets a distinct background color.
func fill(c toolkit.Color) StyleFunc {
	return func(_ *Manager, s *toolkit.Style) {
		s.SetBgColor(c)
	}
}

func newManager(t *testing.T, d *toolkit.Display, sel ParentSelection) (*Manager, *bytes.Buffer) {
	t.Helper()
	logger, buf := newTestLogger()
	m := NewManager(d, logger)
	m.SetName(t.Name())
	m.SelectParentTheme(sel)
	t.Cleanup(m.Close)
	return m, buf
}

func TestManager_InactiveSlotsNeverAttached(t *testing.T) {
	d := toolkit.NewDisplay()
	m, _ := newManager(t, d, ParentNone)
	m.SetStyleFunc(SlotLabel, fill(toolkit.PaletteRed))
	m.Initialize()

	scr := d.ActiveScreen()
	var objs []*toolkit.Object
	for _, c := range categories {
		objs = append(objs, d.Create(scr, c.class))
	}
	objs = append(objs, scr)

	labelStyle := m.Style(SlotLabel)
	for _, obj := range objs {
		m.Apply(obj)
		for _, e := range obj.Styles() {
			assert.Same(t, labelStyle, e.Style, "object %s got a style from an inactive slot", obj.Class())
		}
		if obj.CheckType(toolkit.ClassLabel) {
			assert.True(t, obj.HasStyle(labelStyle, toolkit.StateDefault))
		} else {
			assert.Empty(t, obj.Styles(), "object %s", obj.Class())
		}
	}
}

func TestManager_ScreenGetsOnlyScreenStyle(t *testing.T) {
	d := toolkit.NewDisplay()
	m, _ := newManager(t, d, ParentNone)
	for _, s := range Slots() {
		m.SetStyleFunc(s, fill(toolkit.Hex(uint32(s))))
	}
	m.Initialize()

	for _, class := range []toolkit.Class{toolkit.ClassObject, toolkit.ClassButton, toolkit.ClassCheckbox, toolkit.ClassLabel} {
		t.Run(class.String(), func(t *testing.T) {
			scr := d.NewScreenOf(class)
			scr.RemoveStyleAll()
			m.Apply(scr)

			styles := scr.Styles()
			require.Len(t, styles, 1)
			assert.Same(t, m.Style(SlotScreen), styles[0].Style)
			assert.Equal(t, toolkit.StateDefault, styles[0].Selector)
		})
	}
}

func TestManager_ScreenWithoutScreenSlotGetsNothing(t *testing.T) {
	d := toolkit.NewDisplay()
	m, _ := newManager(t, d, ParentNone)
	m.SetStyleFunc(SlotButton, fill(toolkit.PaletteBlue))
	m.Initialize()

	scr := d.NewScreenOf(toolkit.ClassButton)
	m.Apply(scr)
	assert.Empty(t, scr.Styles())
}

func TestManager_ChainAppliesParentFirst(t *testing.T) {
	d := toolkit.NewDisplay()

	parent, _ := newManager(t, d, ParentNone)
	parent.SetStyleFunc(SlotButtonPressed, fill(toolkit.PaletteRed))
	parent.SetStyleFunc(SlotButton, fill(toolkit.PaletteGrey))
	parent.Initialize()

	child, _ := newManager(t, d, ParentCustom)
	child.SetCustomParentFunc(func(*Manager) *toolkit.Theme { return parent.Theme() })
	child.SetStyleFunc(SlotButton, fill(toolkit.PaletteBlue))
	child.Initialize()

	require.Equal(t, 2, child.Theme().ChainLength())

	btn := d.Create(nil, toolkit.ClassButton)
	child.Apply(btn)

	styles := btn.Styles()
	require.Len(t, styles, 3)
	assert.Same(t, parent.Style(SlotButtonPressed), styles[0].Style)
	assert.Equal(t, toolkit.StatePressed, styles[0].Selector)
	assert.Same(t, parent.Style(SlotButton), styles[1].Style)
	assert.Same(t, child.Style(SlotButton), styles[2].Style)

	bg, _ := btn.StyleProp(toolkit.PropBgColor)
	assert.Equal(t, toolkit.PaletteBlue, bg, "leaf base style wins over inherited base")

	btn.AddState(toolkit.StatePressed)
	bg, _ = btn.StyleProp(toolkit.PropBgColor)
	assert.Equal(t, toolkit.PaletteRed, bg, "inherited pressed style still applies")
}

func TestManager_ParentContributionsPreserved(t *testing.T) {
	d := toolkit.NewDisplay()
	m, _ := newManager(t, d, ParentDefault)
	m.SetPrimaryColorHex(0x00ff00)
	m.SetStyleFunc(SlotButton, fill(toolkit.PaletteRed))
	m.Initialize()

	lbl := d.Create(nil, toolkit.ClassLabel)
	m.Apply(lbl)
	assert.NotEmpty(t, lbl.Styles(), "label styled by the parent theme only")

	btn := d.Create(nil, toolkit.ClassButton)
	m.Apply(btn)
	bg, _ := btn.StyleProp(toolkit.PropBgColor)
	assert.Equal(t, toolkit.PaletteRed, bg)

	radius, ok := btn.StyleProp(toolkit.PropRadius)
	require.True(t, ok, "radius comes from the parent's button style")
	assert.Equal(t, 8, radius)
}

func TestManager_SelfParentIgnored(t *testing.T) {
	d := toolkit.NewDisplay()
	m, buf := newManager(t, d, ParentNone)
	calls := 0
	m.SetStyleFunc(SlotButton, func(*Manager, *toolkit.Style) { calls++ })
	m.Initialize()

	before := m.Theme().ChainLength()
	m.SetParentTheme(m.Theme())

	assert.Equal(t, before, m.Theme().ChainLength())
	assert.Equal(t, 1, calls, "ignored parent must not reinitialize")
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "trying to set parent theme to internal theme")
}

func TestManager_ReinitializeOnParentChange(t *testing.T) {
	d := toolkit.NewDisplay()
	m, _ := newManager(t, d, ParentCustom)

	calls := map[Slot]int{}
	m.SetStyleFunc(SlotButton, func(_ *Manager, s *toolkit.Style) {
		calls[SlotButton]++
		if calls[SlotButton] == 1 {
			s.SetRadius(3)
		} else {
			s.SetPadAll(7)
		}
	})
	m.SetStyleFunc(SlotLabel, func(*Manager, *toolkit.Style) { calls[SlotLabel]++ })

	setupCalls, afterCalls := 0, 0
	m.SetSetupFunc(func(*Manager, *toolkit.Theme) { setupCalls++ })
	m.SetAfterSetupFunc(func(*Manager, *toolkit.Theme) { afterCalls++ })

	// Before setup the reference is only stored
	first := toolkit.BasicTheme()
	m.SetParentTheme(first)
	assert.False(t, m.Done())
	assert.Equal(t, 0, calls[SlotButton])

	m.Setup()
	assert.Same(t, first, m.Theme().Parent())
	assert.Equal(t, 1, calls[SlotButton])

	second := toolkit.MonoTheme(false, nil)
	m.SetParentTheme(second)

	assert.Same(t, second, m.Theme().Parent())
	assert.Equal(t, 2, calls[SlotButton])
	assert.Equal(t, 2, calls[SlotLabel])
	assert.Equal(t, 1, setupCalls, "setup callback runs only on the first initialization")
	assert.Equal(t, 2, afterCalls)

	style := m.Style(SlotButton)
	_, hasRadius := style.Get(toolkit.PropRadius)
	assert.False(t, hasRadius, "stale properties are cleared on reinitialization")
	pad, ok := style.IntProp(toolkit.PropPadAll)
	require.True(t, ok)
	assert.Equal(t, 7, pad)
}

func TestManager_PressedButtonScenario(t *testing.T) {
	d := toolkit.NewDisplay()
	m, _ := newManager(t, d, ParentNone)
	m.SetStyleFunc(SlotButton, fill(toolkit.PaletteBlue))
	m.SetStyleFunc(SlotButtonPressed, fill(toolkit.PaletteRed))
	m.Initialize()

	btn := d.Create(nil, toolkit.ClassButton)
	btn.AddState(toolkit.StatePressed)
	m.Apply(btn)

	assert.True(t, btn.HasStyle(m.Style(SlotButtonPressed), toolkit.StatePressed))
	assert.True(t, btn.HasStyle(m.Style(SlotButton), toolkit.StateDefault))
	styles := btn.Styles()
	require.Len(t, styles, 2)
	assert.Same(t, m.Style(SlotButton), styles[1].Style, "base style is attached last")

	bg, _ := btn.StyleProp(toolkit.PropBgColor)
	assert.Equal(t, toolkit.PaletteRed, bg)

	plain := d.Create(nil, toolkit.ClassObject)
	m.Apply(plain)
	assert.Empty(t, plain.Styles())
}

func TestManager_StateBindingOrder(t *testing.T) {
	tests := []struct {
		class    toolkit.Class
		expected []Slot
	}{
		{toolkit.ClassButton, []Slot{SlotButtonPressed, SlotButtonDisabled, SlotButtonChecked, SlotButtonFocused, SlotButton}},
		{toolkit.ClassSwitch, []Slot{SlotSwitchDisabled, SlotSwitchFocused, SlotSwitch}},
		{toolkit.ClassSlider, []Slot{SlotSliderDisabled, SlotSliderPressed, SlotSlider}},
		{toolkit.ClassCheckbox, []Slot{SlotCheckboxPressed, SlotCheckboxDisabled, SlotCheckboxChecked, SlotCheckboxFocused, SlotCheckbox}},
		{toolkit.ClassDropdownList, []Slot{SlotDropdown}},
	}

	d := toolkit.NewDisplay()
	m, _ := newManager(t, d, ParentNone)
	for _, s := range Slots() {
		m.SetStyleFunc(s, fill(toolkit.Hex(uint32(s))))
	}
	m.Initialize()

	for _, tt := range tests {
		t.Run(tt.class.String(), func(t *testing.T) {
			obj := d.Create(nil, tt.class)
			m.Apply(obj)

			styles := obj.Styles()
			require.Len(t, styles, len(tt.expected))
			for i, s := range tt.expected {
				assert.Same(t, m.Style(s), styles[i].Style, "position %d", i)
			}
			assert.Equal(t, toolkit.StateDefault, styles[len(styles)-1].Selector)
		})
	}
}

func TestClassify_PriorityOrder(t *testing.T) {
	expected := []toolkit.Class{
		toolkit.ClassButton,
		toolkit.ClassSwitch,
		toolkit.ClassSlider,
		toolkit.ClassCheckbox,
		toolkit.ClassBar,
		toolkit.ClassImage,
		toolkit.ClassList,
		toolkit.ClassChart,
		toolkit.ClassTable,
		toolkit.ClassLabel,
		toolkit.ClassSpinner,
		toolkit.ClassTextarea,
		toolkit.ClassDropdownList,
	}
	require.Len(t, categories, len(expected))
	for i, c := range categories {
		assert.Equal(t, expected[i], c.class)
		assert.Equal(t, toolkit.StateDefault, c.bindings[len(c.bindings)-1].state)
	}

	d := toolkit.NewDisplay()
	assert.Nil(t, classify(d.Create(nil, toolkit.ClassObject)))
	assert.Equal(t, toolkit.ClassSpinner, classify(d.Create(nil, toolkit.ClassSpinner)).class)
}

func TestManager_EverySlotIsBound(t *testing.T) {
	bound := map[Slot]bool{SlotScreen: true}
	for _, c := range categories {
		for _, b := range c.bindings {
			assert.False(t, bound[b.slot], "slot %s bound twice", b.slot)
			bound[b.slot] = true
		}
	}
	assert.Len(t, bound, int(slotCount))
}

func TestManager_CustomApplyHook(t *testing.T) {
	d := toolkit.NewDisplay()

	var seen []string
	parent, _ := newManager(t, d, ParentNone)
	parent.SetApplyFunc(func(m *Manager, _ *toolkit.Object) { seen = append(seen, "parent") })
	parent.Initialize()

	child, _ := newManager(t, d, ParentCustom)
	child.SetCustomParentFunc(func(*Manager) *toolkit.Theme { return parent.Theme() })
	child.SetApplyFunc(func(m *Manager, obj *toolkit.Object) {
		seen = append(seen, "child")
		obj.SetText("hooked")
	})
	child.Initialize()

	// Unclassified widgets only get the hook
	obj := d.Create(nil, toolkit.ClassObject)
	child.Apply(obj)

	assert.Equal(t, []string{"parent", "child"}, seen)
	assert.Equal(t, "hooked", obj.Text())
	assert.Empty(t, obj.Styles())
}

func TestManager_CustomParentWithoutProvider(t *testing.T) {
	d := toolkit.NewDisplay()
	m, buf := newManager(t, d, ParentCustom)
	m.SetStyleFunc(SlotButton, fill(toolkit.PaletteBlue))

	assert.NotPanics(t, m.Initialize)

	assert.True(t, m.Done())
	assert.Nil(t, m.Theme().Parent())
	assert.Equal(t, 1, m.Theme().ChainLength())
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "no provider given")

	btn := d.Create(nil, toolkit.ClassButton)
	m.Apply(btn)
	assert.True(t, btn.HasStyle(m.Style(SlotButton), toolkit.StateDefault))
}

func TestManager_CustomProviderReturnsNil(t *testing.T) {
	d := toolkit.NewDisplay()
	m, buf := newManager(t, d, ParentCustom)
	m.SetCustomParentFunc(func(*Manager) *toolkit.Theme { return nil })

	m.Initialize()

	assert.Nil(t, m.Theme().Parent())
	assert.Contains(t, buf.String(), "provider returned no theme")
}

func TestManager_CustomProviderCycle(t *testing.T) {
	d := toolkit.NewDisplay()

	a, _ := newManager(t, d, ParentNone)
	a.Initialize()

	b, _ := newManager(t, d, ParentCustom)
	b.SetCustomParentFunc(func(*Manager) *toolkit.Theme { return a.Theme() })
	b.Initialize()
	require.Same(t, a.Theme(), b.Theme().Parent())

	// Point a at b: a -> b -> a would loop
	logger, buf := newTestLogger()
	a.logger = logger
	a.SelectParentTheme(ParentCustom)
	a.SetCustomParentFunc(func(*Manager) *toolkit.Theme { return b.Theme() })
	a.Initialize()

	assert.Nil(t, a.Theme().Parent())
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "continuing without parent")
}

func TestManager_ParentSelectionResolution(t *testing.T) {
	tests := []struct {
		selection ParentSelection
		expected  string
	}{
		{ParentDefault, "default"},
		{ParentDarkDefault, "default-dark"},
		{ParentMono, "mono"},
		{ParentDarkMono, "mono-dark"},
		{ParentBasic, "basic"},
		{ParentNone, ""},
	}

	for _, tt := range tests {
		t.Run(tt.selection.String(), func(t *testing.T) {
			d := toolkit.NewDisplay()
			m, _ := newManager(t, d, tt.selection)
			m.Initialize()

			parent := m.Theme().Parent()
			if tt.expected == "" {
				assert.Nil(t, parent)
				return
			}
			require.NotNil(t, parent)
			assert.Equal(t, tt.expected, parent.Name)
		})
	}
}

func TestManager_DefaultParentUsesThemeColors(t *testing.T) {
	d := toolkit.NewDisplay()
	m, _ := newManager(t, d, ParentDefault)
	m.SetSetupFunc(func(_ *Manager, th *toolkit.Theme) {
		th.ColorPrimary = toolkit.Hex(0x112233)
		th.ColorSecondary = toolkit.Hex(0x445566)
	})
	m.Initialize()

	parent := m.Theme().Parent()
	require.NotNil(t, parent)
	assert.Equal(t, toolkit.Hex(0x112233), parent.ColorPrimary)
	assert.Equal(t, toolkit.Hex(0x445566), parent.ColorSecondary)
}

func TestManager_InitializeState(t *testing.T) {
	d := toolkit.NewDisplay()
	m, _ := newManager(t, d, ParentNone)
	assert.False(t, m.Done())
	assert.False(t, m.Theme().HasApplyFunc())

	m.Initialize()

	th := m.Theme()
	assert.True(t, m.Done())
	assert.True(t, th.HasApplyFunc())
	assert.Same(t, toolkit.DefaultFont, th.FontSmall)
	assert.Same(t, toolkit.DefaultFont, th.FontNormal)
	assert.Same(t, toolkit.DefaultFont, th.FontLarge)
	assert.Equal(t, m.Handle(), th.UserData)

	found, ok := lookup(th.UserData)
	require.True(t, ok)
	assert.Same(t, m, found)

	_, ok = lookup("not a handle")
	assert.False(t, ok)
}

func TestManager_CloseDisablesDispatch(t *testing.T) {
	d := toolkit.NewDisplay()
	m, _ := newManager(t, d, ParentNone)
	m.SetStyleFunc(SlotLabel, fill(toolkit.White))
	m.Initialize()
	m.Close()

	lbl := d.Create(nil, toolkit.ClassLabel)
	m.Apply(lbl)
	assert.Empty(t, lbl.Styles())
}

func TestManager_ApplyToDisplay(t *testing.T) {
	d := toolkit.NewDisplay()
	scr := d.ActiveScreen()
	stale := toolkit.NewStyle()
	scr.AddStyle(stale, toolkit.StateDefault)

	m, _ := newManager(t, d, ParentNone)
	m.SetStyleFunc(SlotScreen, fill(toolkit.PaletteDark))
	m.SetApplyTheme(true)
	m.Initialize()

	assert.Same(t, m.Theme(), d.Theme())
	assert.False(t, scr.HasStyle(stale, toolkit.StateDefault), "screen styles are stripped")
	assert.True(t, scr.HasStyle(m.Style(SlotScreen), toolkit.StateDefault))
	assert.Equal(t, 1, d.StyleChangeCount())
	assert.Equal(t, 1, d.InvalidateCount(scr))

	// Widgets created afterwards pick the theme up from the display
	lbl := d.Create(scr, toolkit.ClassLabel)
	assert.Empty(t, lbl.Styles())
}

func TestManager_ForceApplyWalksTree(t *testing.T) {
	build := func() (*toolkit.Display, []*toolkit.Object) {
		d := toolkit.NewDisplay()
		scr := d.ActiveScreen()
		panel := d.Create(scr, toolkit.ClassObject)
		btn := d.Create(panel, toolkit.ClassButton)
		lbl := d.Create(btn, toolkit.ClassLabel)
		return d, []*toolkit.Object{scr, panel, btn, lbl}
	}

	tests := []struct {
		name     string
		force    bool
		expected []int
	}{
		// The screen gets the initial pass plus the forced walk
		{"force", true, []int{2, 1, 1, 1}},
		{"no force", false, []int{1, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, objs := build()
			m, _ := newManager(t, d, ParentNone)
			m.SetStyleFunc(SlotButton, fill(toolkit.PaletteBlue))
			m.SetStyleFunc(SlotLabel, fill(toolkit.White))

			counts := map[*toolkit.Object]int{}
			m.SetApplyFunc(func(_ *Manager, obj *toolkit.Object) { counts[obj]++ })
			m.SetApplyTheme(true)
			m.SetForceApplyTheme(tt.force)
			m.Initialize()

			for i, obj := range objs {
				assert.Equal(t, tt.expected[i], counts[obj], "object %d (%s)", i, obj.Class())
			}

			btn, lbl := objs[2], objs[3]
			assert.Equal(t, tt.force, btn.HasStyle(m.Style(SlotButton), toolkit.StateDefault))
			assert.Equal(t, tt.force, lbl.HasStyle(m.Style(SlotLabel), toolkit.StateDefault))
		})
	}
}

func TestManager_ForceApplyIsIdempotentOnStyles(t *testing.T) {
	d := toolkit.NewDisplay()
	btn := d.Create(nil, toolkit.ClassButton)

	m, _ := newManager(t, d, ParentNone)
	m.SetStyleFunc(SlotButton, fill(toolkit.PaletteBlue))
	m.SetApplyTheme(true)
	m.SetForceApplyTheme(true)
	m.Initialize()
	m.Initialize()

	assert.Len(t, btn.Styles(), 1)
}

func TestManager_ApplyWithoutDisplay(t *testing.T) {
	m, buf := newManager(t, nil, ParentNone)
	m.SetApplyTheme(true)

	assert.NotPanics(t, m.Initialize)
	assert.Contains(t, buf.String(), "no display to apply theme to")
}

func TestManager_SetupWarnsWhenDisplayNotReady(t *testing.T) {
	d := toolkit.NewDisplay()
	m, buf := newManager(t, d, ParentNone)

	m.Setup()
	assert.True(t, m.Done())
	assert.Contains(t, buf.String(), "display not ready")
}

func TestManager_Dump(t *testing.T) {
	d := toolkit.NewDisplay()
	m, buf := newManager(t, d, ParentMono)
	m.SetStyleFunc(SlotBar, fill(toolkit.Black))
	m.Initialize()
	m.Dump()

	out := buf.String()
	assert.Contains(t, out, "theme dump")
	assert.Contains(t, out, "parent=MonoTheme")
	assert.Contains(t, out, "chain=2")
	assert.Contains(t, out, "bar")
}

func TestManager_SetStyleFuncUnknownSlot(t *testing.T) {
	m, buf := newManager(t, nil, ParentNone)
	m.SetStyleFunc(Slot(99), fill(toolkit.Black))
	assert.Contains(t, buf.String(), "unknown slot")
	assert.Nil(t, m.Style(Slot(99)))
	assert.False(t, m.Active(Slot(99)))
}
