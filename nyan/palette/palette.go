package palette

import (
	"fmt"
	"regexp"
	"sort"
)

var codePattern = regexp.MustCompile(`^[0-9a-f]{6}$`)

// Palette maps hex color codes, as extracted from the exported markup, to the
// symbolic color names of the target program.
//
// A Palette cannot be changed once built: New copies the mapping it is given
// and every field is read through an accessor.
type Palette struct {
	name     string
	version  int
	fallback string
	colors   map[string]string
}

// New builds a palette after validating every code.
func New(name string, version int, fallback string, colors map[string]string) (*Palette, error) {
	if name == "" {
		return nil, fmt.Errorf("palette name is empty")
	}
	if len(colors) == 0 {
		return nil, fmt.Errorf("palette %s has no colors", name)
	}
	if fallback == "" {
		return nil, fmt.Errorf("palette %s has no fallback color", name)
	}

	c := make(map[string]string, len(colors))
	for code, color := range colors {
		if !codePattern.MatchString(code) {
			return nil, fmt.Errorf("palette %s: invalid color code %q", name, code)
		}
		if color == "" {
			return nil, fmt.Errorf("palette %s: empty name for color code %s", name, code)
		}
		c[code] = color
	}

	return &Palette{
		name:     name,
		version:  version,
		fallback: fallback,
		colors:   c,
	}, nil
}

func mustNew(name string, version int, fallback string, colors map[string]string) *Palette {
	p, err := New(name, version, fallback, colors)
	if err != nil {
		panic(err)
	}
	return p
}

// Name returns the palette name.
func (p *Palette) Name() string {
	return p.name
}

// Version returns the palette revision.
func (p *Palette) Version() int {
	return p.version
}

// Fallback returns the color name substituted for unknown codes in lenient
// translation.
func (p *Palette) Fallback() string {
	return p.fallback
}

// String returns the name and version of the palette, e.g. "rainbow v2".
func (p *Palette) String() string {
	return fmt.Sprintf("%s v%d", p.name, p.version)
}

// Len returns the number of codes in the palette.
func (p *Palette) Len() int {
	return len(p.colors)
}

// Codes returns the palette codes in ascending order.
func (p *Palette) Codes() []string {
	codes := make([]string, 0, len(p.colors))
	for code := range p.colors {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Lookup returns the color name registered for code.
func (p *Palette) Lookup(code string) (string, error) {
	name, ok := p.colors[code]
	if !ok {
		return "", &UnknownColorError{Code: code, Palette: p.name, Version: p.version}
	}
	return name, nil
}

// Translate maps every code to its color name. Any code missing from the
// palette aborts the translation.
func (p *Palette) Translate(codes []string) ([]string, error) {
	names := make([]string, len(codes))
	for i, code := range codes {
		name, err := p.Lookup(code)
		if err != nil {
			return nil, err
		}
		names[i] = name
	}
	return names, nil
}

// Report lists the codes that TranslateLenient could not find, with the
// number of cells that carried each of them.
type Report struct {
	Substituted int
	Unknown     map[string]int
}

// TranslateLenient maps every code to its color name, substituting the
// palette Fallback for unknown codes. It is meant for palette authoring only.
func (p *Palette) TranslateLenient(codes []string) ([]string, Report) {
	names := make([]string, len(codes))
	report := Report{Unknown: map[string]int{}}
	for i, code := range codes {
		name, ok := p.colors[code]
		if !ok {
			name = p.fallback
			report.Substituted++
			report.Unknown[code]++
		}
		names[i] = name
	}
	return names, report
}
