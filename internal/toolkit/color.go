package toolkit

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a 24-bit RGB color.
type Color struct {
	R, G, B uint8
}

// Common colors.
var (
	White = Color{R: 0xff, G: 0xff, B: 0xff}
	Black = Color{}
)

// Palette colors used by the built-in themes.
var (
	PaletteBlue  = Hex(0x2196f3)
	PaletteRed   = Hex(0xf44336)
	PaletteGrey  = Hex(0x9e9e9e)
	PaletteDark  = Hex(0x15171a)
	PaletteLight = Hex(0xeeeeee)
)

// Hex builds a color from a raw 0xRRGGBB value. Bits above 24 are ignored.
func Hex(v uint32) Color {
	return Color{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}

// Uint32 returns the color as 0xRRGGBB.
func (c Color) Uint32() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// String returns the color in #rrggbb form.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseColor parses "#RRGGBB", "0xRRGGBB", "RRGGBB" or "#RGB".
func ParseColor(s string) (Color, error) {
	raw := strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(raw, "#"):
		raw = raw[1:]
	case strings.HasPrefix(raw, "0x"), strings.HasPrefix(raw, "0X"):
		raw = raw[2:]
	}

	if len(raw) == 3 {
		raw = string([]byte{raw[0], raw[0], raw[1], raw[1], raw[2], raw[2]})
	}
	if len(raw) != 6 {
		return Color{}, fmt.Errorf("invalid color %q: expected #RRGGBB, 0xRRGGBB or #RGB", s)
	}

	v, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Hex(uint32(v)), nil
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Lighten blends the color towards white by amount (0..1) in Lab space.
func (c Color) Lighten(amount float64) Color {
	return Mix(c, White, amount)
}

// Darken blends the color towards black by amount (0..1) in Lab space.
func (c Color) Darken(amount float64) Color {
	return Mix(c, Black, amount)
}

// Mix blends a towards b by t (0..1) in Lab space.
func Mix(a, b Color, t float64) Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return fromColorful(a.colorful().BlendLab(b.colorful(), t))
}

// IsDark reports whether the color's perceived lightness is below the midpoint.
func (c Color) IsDark() bool {
	l, _, _ := c.colorful().Lab()
	return l < 0.5
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func fromColorful(cf colorful.Color) Color {
	r, g, b := cf.Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}
