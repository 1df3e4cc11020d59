package palette

import (
	"fmt"
	"image/color"
)

// TextColor is one of the 16 colors of a text-mode console.
type TextColor uint8

const (
	Black TextColor = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGray
	DarkGray
	LightBlue
	LightGreen
	LightCyan
	LightRed
	LightMagenta
	Yellow
	White
)

var textColorNames = [...]string{
	"Black", "Blue", "Green", "Cyan", "Red", "Magenta", "Brown", "LightGray",
	"DarkGray", "LightBlue", "LightGreen", "LightCyan", "LightRed", "LightMagenta", "Yellow", "White",
}

// VGA default palette
var textColorRGB = [...]uint32{
	0x000000, 0x0000aa, 0x00aa00, 0x00aaaa, 0xaa0000, 0xaa00aa, 0xaa5500, 0xaaaaaa,
	0x555555, 0x5555ff, 0x55ff55, 0x55ffff, 0xff5555, 0xff55ff, 0xffff55, 0xffffff,
}

var textColorAliases = map[string]TextColor{
	"BLK": Black,
	"LMG": LightMagenta,
	"LGR": LightGray,
	"BWN": Brown,
	"LRD": LightRed,
	"MGA": Magenta,
	"WHT": White,
}

func (c TextColor) String() string {
	if int(c) < len(textColorNames) {
		return textColorNames[c]
	}
	return fmt.Sprintf("TextColor(%d)", uint8(c))
}

// RGB returns the 24-bit value the console displays for c.
func (c TextColor) RGB() uint32 {
	return textColorRGB[c&0x0f]
}

// RGBA returns c as an opaque image color.
func (c TextColor) RGBA() color.RGBA {
	v := c.RGB()
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

// ParseTextColor resolves a color name, or one of the abbreviations of the
// prototype palette, to a TextColor.
func ParseTextColor(name string) (TextColor, error) {
	for i, n := range textColorNames {
		if n == name {
			return TextColor(i), nil
		}
	}
	if c, ok := textColorAliases[name]; ok {
		return c, nil
	}
	return Black, fmt.Errorf("unknown text color %q", name)
}

// ParseTextColors resolves every name of a translated frame.
func ParseTextColors(names []string) ([]TextColor, error) {
	colors := make([]TextColor, len(names))
	for i, name := range names {
		c, err := ParseTextColor(name)
		if err != nil {
			return nil, fmt.Errorf("cell %d: %w", i, err)
		}
		colors[i] = c
	}
	return colors, nil
}
