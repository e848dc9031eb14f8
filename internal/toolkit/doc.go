// Package toolkit is a small retained-mode model of the widget toolkit that
// themes are installed into: an object tree, style objects attached with state
// selectors, theme objects with parent links, and a display that owns the
// active theme and screen.
package toolkit
