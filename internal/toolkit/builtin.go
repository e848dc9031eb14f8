package toolkit

// BasicTheme returns a minimal theme: a plain screen background and a thin
// outline on everything else.
func BasicTheme() *Theme {
	scr := NewStyle()
	scr.SetBgColor(White)
	scr.SetBgOpa(OpaCover)
	scr.SetTextColor(Black)

	base := NewStyle()
	base.SetBorderColor(PaletteGrey)
	base.SetBorderWidth(1)
	base.SetPadAll(2)

	th := &Theme{
		Name:           "basic",
		ColorPrimary:   PaletteBlue,
		ColorSecondary: PaletteRed,
		FontSmall:      DefaultFont,
		FontNormal:     DefaultFont,
		FontLarge:      DefaultFont,
	}
	th.SetApplyFunc(func(_ *Theme, obj *Object) {
		if obj.Parent() == nil {
			obj.AddStyle(scr, StateDefault)
			return
		}
		obj.AddStyle(base, StateDefault)
	})
	return th
}

type defaultStyles struct {
	scr, card, btn, pressed, checked, disabled, focus, knob, text *Style
}

// DefaultTheme returns the toolkit's standard theme built around the primary
// and secondary colors, in light or dark mode.
func DefaultTheme(primary, secondary Color, dark bool, font *Font) *Theme {
	if font == nil {
		font = DefaultFont
	}

	bg, surface, text := White, PaletteLight, Hex(0x212121)
	if dark {
		bg, surface, text = PaletteDark, PaletteDark.Lighten(0.12), PaletteLight
	}

	s := defaultStyles{
		scr:      NewStyle(),
		card:     NewStyle(),
		btn:      NewStyle(),
		pressed:  NewStyle(),
		checked:  NewStyle(),
		disabled: NewStyle(),
		focus:    NewStyle(),
		knob:     NewStyle(),
		text:     NewStyle(),
	}

	s.scr.SetBgColor(bg)
	s.scr.SetBgOpa(OpaCover)
	s.scr.SetTextColor(text)
	s.scr.SetTextFont(font)

	s.card.SetBgColor(surface)
	s.card.SetBgOpa(OpaCover)
	s.card.SetBorderColor(Mix(surface, text, 0.2))
	s.card.SetBorderWidth(1)
	s.card.SetRadius(8)
	s.card.SetPadAll(4)

	s.btn.SetBgColor(primary)
	s.btn.SetBgOpa(OpaCover)
	s.btn.SetTextColor(White)
	s.btn.SetRadius(8)
	s.btn.SetPadAll(4)

	s.pressed.SetBgColor(primary.Darken(0.3))

	s.checked.SetBgColor(secondary)

	s.disabled.SetBgColor(Mix(surface, PaletteGrey, 0.5))
	s.disabled.SetTextColor(PaletteGrey)

	s.focus.SetOutlineColor(primary.Lighten(0.4))
	s.focus.SetOutlineWidth(2)

	s.knob.SetBgColor(primary)
	s.knob.SetRadius(100)

	s.text.SetTextColor(text)
	s.text.SetTextFont(font)

	name := "default"
	if dark {
		name = "default-dark"
	}
	th := &Theme{
		Name:           name,
		ColorPrimary:   primary,
		ColorSecondary: secondary,
		FontSmall:      font,
		FontNormal:     font,
		FontLarge:      font,
	}
	th.SetApplyFunc(func(_ *Theme, obj *Object) {
		s.apply(obj)
	})
	return th
}

func (s defaultStyles) apply(obj *Object) {
	if obj.Parent() == nil {
		obj.AddStyle(s.scr, StateDefault)
		return
	}

	switch obj.Class() {
	case ClassButton:
		obj.AddStyle(s.btn, StateDefault)
		obj.AddStyle(s.pressed, StatePressed)
		obj.AddStyle(s.checked, StateChecked)
		obj.AddStyle(s.disabled, StateDisabled)
		obj.AddStyle(s.focus, StateFocused)
	case ClassSwitch, ClassSlider, ClassBar:
		obj.AddStyle(s.card, StateDefault)
		obj.AddStyle(s.knob, StateDefault)
		obj.AddStyle(s.checked, StateChecked)
		obj.AddStyle(s.disabled, StateDisabled)
		obj.AddStyle(s.focus, StateFocused)
	case ClassCheckbox:
		obj.AddStyle(s.text, StateDefault)
		obj.AddStyle(s.checked, StateChecked)
		obj.AddStyle(s.disabled, StateDisabled)
		obj.AddStyle(s.focus, StateFocused)
	case ClassLabel, ClassSpinner:
		obj.AddStyle(s.text, StateDefault)
	case ClassObject, ClassList, ClassChart, ClassTable, ClassTextarea, ClassDropdownList:
		obj.AddStyle(s.card, StateDefault)
		obj.AddStyle(s.focus, StateFocused)
	}
}

// MonoTheme returns a two-color theme for monochrome displays.
func MonoTheme(dark bool, font *Font) *Theme {
	if font == nil {
		font = DefaultFont
	}

	fg, bg := Black, White
	if dark {
		fg, bg = White, Black
	}

	scr := NewStyle()
	scr.SetBgColor(bg)
	scr.SetBgOpa(OpaCover)
	scr.SetTextColor(fg)
	scr.SetTextFont(font)

	base := NewStyle()
	base.SetBgColor(bg)
	base.SetTextColor(fg)
	base.SetBorderColor(fg)
	base.SetBorderWidth(1)

	inverted := NewStyle()
	inverted.SetBgColor(fg)
	inverted.SetTextColor(bg)

	focus := NewStyle()
	focus.SetOutlineColor(fg)
	focus.SetOutlineWidth(1)

	name := "mono"
	if dark {
		name = "mono-dark"
	}
	th := &Theme{
		Name:           name,
		ColorPrimary:   fg,
		ColorSecondary: bg,
		FontSmall:      font,
		FontNormal:     font,
		FontLarge:      font,
	}
	th.SetApplyFunc(func(_ *Theme, obj *Object) {
		if obj.Parent() == nil {
			obj.AddStyle(scr, StateDefault)
			return
		}
		obj.AddStyle(base, StateDefault)
		obj.AddStyle(inverted, StatePressed)
		obj.AddStyle(inverted, StateChecked)
		obj.AddStyle(focus, StateFocused)
	})
	return th
}
