// Package theme implements a widget theme manager for the toolkit: per-widget
// category style slots populated by callbacks, a parent theme selected from a
// fixed set or supplied by the caller, and an apply callback that attaches the
// active slots to each widget by runtime type and state.
//
// Bundled declarative presets are embedded in the binary and can be
// overridden from ~/.config/tvtheme/themes/.
package theme
