package theme

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/tvtheme/internal/toolkit"
)

// Slot identifies a per-category style slot.
type Slot int

const (
	SlotScreen Slot = iota
	SlotButton
	SlotButtonPressed
	SlotButtonDisabled
	SlotButtonChecked
	SlotButtonFocused
	SlotSwitch
	SlotSwitchDisabled
	SlotSwitchFocused
	SlotLabel
	SlotImage
	SlotList
	SlotSlider
	SlotSliderPressed
	SlotSliderDisabled
	SlotCheckbox
	SlotCheckboxPressed
	SlotCheckboxDisabled
	SlotCheckboxFocused
	SlotCheckboxChecked
	SlotDropdown
	SlotSpinner
	SlotChart
	SlotBar
	SlotTable
	SlotTextarea

	slotCount
)

var slotNames = [slotCount]string{
	SlotScreen:           "screen",
	SlotButton:           "button",
	SlotButtonPressed:    "button_pressed",
	SlotButtonDisabled:   "button_disabled",
	SlotButtonChecked:    "button_checked",
	SlotButtonFocused:    "button_focused",
	SlotSwitch:           "switch",
	SlotSwitchDisabled:   "switch_disabled",
	SlotSwitchFocused:    "switch_focused",
	SlotLabel:            "label",
	SlotImage:            "img",
	SlotList:             "list",
	SlotSlider:           "slider",
	SlotSliderPressed:    "slider_pressed",
	SlotSliderDisabled:   "slider_disabled",
	SlotCheckbox:         "checkbox",
	SlotCheckboxPressed:  "checkbox_pressed",
	SlotCheckboxDisabled: "checkbox_disabled",
	SlotCheckboxFocused:  "checkbox_focused",
	SlotCheckboxChecked:  "checkbox_checked",
	SlotDropdown:         "dropdown",
	SlotSpinner:          "spinner",
	SlotChart:            "chart",
	SlotBar:              "bar",
	SlotTable:            "table",
	SlotTextarea:         "textarea",
}

// Slots returns every slot in declaration order.
func Slots() []Slot {
	out := make([]Slot, slotCount)
	for i := range out {
		out[i] = Slot(i)
	}
	return out
}

func (s Slot) String() string {
	if s >= 0 && s < slotCount {
		return slotNames[s]
	}
	return fmt.Sprintf("slot(%d)", int(s))
}

// ParseSlot looks up a slot by name. The "style_" prefix is optional and
// "image" is accepted for "img".
func ParseSlot(name string) (Slot, error) {
	n := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), "style_")
	if n == "image" {
		n = "img"
	}
	for i, sn := range slotNames {
		if sn == n {
			return Slot(i), nil
		}
	}
	return 0, fmt.Errorf("unknown style slot %q", name)
}

// binding attaches a slot's style with a state selector.
type binding struct {
	slot  Slot
	state toolkit.State
}

// category is a widget class and the slots attached to it, in attachment
// order. The base slot is always last.
type category struct {
	class    toolkit.Class
	bindings []binding
}

// categories is evaluated in order; the first matching class wins. Screens
// (objects without a parent) are classified before any of these.
var categories = []category{
	{toolkit.ClassButton, []binding{
		{SlotButtonPressed, toolkit.StatePressed},
		{SlotButtonDisabled, toolkit.StateDisabled},
		{SlotButtonChecked, toolkit.StateChecked},
		{SlotButtonFocused, toolkit.StateFocused},
		{SlotButton, toolkit.StateDefault},
	}},
	{toolkit.ClassSwitch, []binding{
		{SlotSwitchDisabled, toolkit.StateDisabled},
		{SlotSwitchFocused, toolkit.StateFocused},
		{SlotSwitch, toolkit.StateDefault},
	}},
	{toolkit.ClassSlider, []binding{
		{SlotSliderDisabled, toolkit.StateDisabled},
		{SlotSliderPressed, toolkit.StatePressed},
		{SlotSlider, toolkit.StateDefault},
	}},
	{toolkit.ClassCheckbox, []binding{
		{SlotCheckboxPressed, toolkit.StatePressed},
		{SlotCheckboxDisabled, toolkit.StateDisabled},
		{SlotCheckboxChecked, toolkit.StateChecked},
		{SlotCheckboxFocused, toolkit.StateFocused},
		{SlotCheckbox, toolkit.StateDefault},
	}},
	{toolkit.ClassBar, []binding{{SlotBar, toolkit.StateDefault}}},
	{toolkit.ClassImage, []binding{{SlotImage, toolkit.StateDefault}}},
	{toolkit.ClassList, []binding{{SlotList, toolkit.StateDefault}}},
	{toolkit.ClassChart, []binding{{SlotChart, toolkit.StateDefault}}},
	{toolkit.ClassTable, []binding{{SlotTable, toolkit.StateDefault}}},
	{toolkit.ClassLabel, []binding{{SlotLabel, toolkit.StateDefault}}},
	{toolkit.ClassSpinner, []binding{{SlotSpinner, toolkit.StateDefault}}},
	{toolkit.ClassTextarea, []binding{{SlotTextarea, toolkit.StateDefault}}},
	{toolkit.ClassDropdownList, []binding{{SlotDropdown, toolkit.StateDefault}}},
}

// classify returns the category for obj, or nil if its class is not styled.
func classify(obj *toolkit.Object) *category {
	for i := range categories {
		if obj.CheckType(categories[i].class) {
			return &categories[i]
		}
	}
	return nil
}
