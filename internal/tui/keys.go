package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the key bindings for the TUI.
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding
	Home key.Binding
	End  key.Binding

	// State toggles on the selected widget
	Pressed  key.Binding
	Checked  key.Binding
	Focused  key.Binding
	Disabled key.Binding
	Reset    key.Binding
	AllState key.Binding

	// Themes
	NextTheme key.Binding
	Reload    key.Binding

	// Global
	Quit key.Binding
	Help key.Binding
}

// ShortHelp returns a short help message.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Pressed, k.Checked, k.Focused, k.Disabled, k.Help, k.Quit}
}

// FullHelp returns a full help message.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Home, k.End},
		{k.Pressed, k.Checked, k.Focused, k.Disabled},
		{k.Reset, k.AllState, k.NextTheme, k.Reload},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home/g", "go to top"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end/G", "go to bottom"),
		),
		Pressed: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pressed"),
		),
		Checked: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "checked"),
		),
		Focused: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "focused"),
		),
		Disabled: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "disabled"),
		),
		Reset: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear state"),
		),
		AllState: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "apply state to all"),
		),
		NextTheme: key.NewBinding(
			key.WithKeys("tab", "t"),
			key.WithHelp("tab", "next theme"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}
