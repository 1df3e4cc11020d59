package palette

import (
	"fmt"
	"sort"
)

// basic is the palette of the 80x25 animation.
var basic = mustNew("basic", 1, "Black", map[string]string{
	"000000": "Black",
	"0200ff": "Blue",
	"ff99ff": "LightMagenta",
	"999999": "LightGray",
	"ffcc99": "Brown",
	"ff9999": "LightRed",
	"ff3399": "Magenta",
	"ffffff": "White",
})

// rainbow extends basic with the hues of the rainbow trail. The pink that
// basic renders as Magenta is drawn as Red here.
var rainbow = mustNew("rainbow", 2, "Black", map[string]string{
	"000000": "Black",
	"0200ff": "Blue",
	"ff99ff": "LightMagenta",
	"999999": "LightGray",
	"ffcc99": "Brown",
	"ff9999": "LightRed",
	"ff3399": "Red",
	"ffffff": "White",
	"e7ed0e": "Yellow",
	"33ff00": "LightGreen",
	"009900": "Green",
	"0099ff": "LightBlue",
	"666666": "DarkGray",
})

// prototype is the abbreviated palette used while exploring the 40x25 image.
// Its names are aliases understood by ParseTextColor.
var prototype = mustNew("prototype", 0, "BLK", map[string]string{
	"000000": "BLK",
	"ff99ff": "LMG",
	"999999": "LGR",
	"ffcc99": "BWN",
	"ff9999": "LRD",
	"ff3399": "MGA",
	"ffffff": "WHT",
})

var builtins = map[string]*Palette{
	basic.name:     basic,
	rainbow.name:   rainbow,
	prototype.name: prototype,
}

// Builtin returns the built-in palette registered under name. Palettes are
// immutable, so the same value is shared by every caller.
func Builtin(name string) (*Palette, error) {
	p, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("unknown palette %q (available: %v)", name, Names())
	}
	return p, nil
}

// Names returns the names of the built-in palettes in ascending order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
