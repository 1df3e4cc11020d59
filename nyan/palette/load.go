package palette

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk form of a palette:
//
//	name: rainbow
//	version: 3
//	fallback: Black
//	colors:
//	  "000000": Black
//	  "e7ed0e": Yellow
//
// Codes must be quoted so that all-digit codes are not read as numbers.
type File struct {
	Name     string            `yaml:"name"`
	Version  int               `yaml:"version"`
	Fallback string            `yaml:"fallback"`
	Colors   map[string]string `yaml:"colors"`
}

// Parse decodes a YAML palette document.
func Parse(data []byte) (*Palette, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to decode palette: %w", err)
	}
	return New(f.Name, f.Version, f.Fallback, f.Colors)
}

// Load reads a YAML palette from path.
func Load(path string) (*Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read palette %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Marshal encodes p in the format accepted by Parse.
func Marshal(p *Palette) ([]byte, error) {
	colors := make(map[string]string, len(p.colors))
	for code, name := range p.colors {
		colors[code] = name
	}
	return yaml.Marshal(File{
		Name:     p.name,
		Version:  p.version,
		Fallback: p.fallback,
		Colors:   colors,
	})
}
