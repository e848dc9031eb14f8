package toolkit

// Font is a reference to a font registered with the toolkit.
type Font struct {
	Name       string
	LineHeight int
}

// DefaultFont is the toolkit's default font. Themes assign it to all three
// size slots.
var DefaultFont = &Font{Name: "montserrat_14", LineHeight: 16}
