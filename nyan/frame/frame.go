package frame

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/cespare/xxhash"
	"github.com/valerio/go-nyan/nyan/display"
)

const (
	namePrefix = "frame"
	nameSuffix = ".html"
)

var numberPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// Dimensions is the size of the text-mode grid a frame is drawn on.
type Dimensions struct {
	Width  int
	Height int
}

var (
	// Wide is the standard 80x25 text mode.
	Wide = Dimensions{Width: display.WideColumns, Height: display.Rows}
	// Narrow is the 40x25 text mode.
	Narrow = Dimensions{Width: display.NarrowColumns, Height: display.Rows}
)

// Cells returns the number of cells in the grid.
func (d Dimensions) Cells() int {
	return d.Width * d.Height
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// ParseDimensions parses a "WIDTHxHEIGHT" string such as "80x25".
func ParseDimensions(s string) (Dimensions, error) {
	var d Dimensions
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return d, fmt.Errorf("invalid dimensions %q, expected WIDTHxHEIGHT", s)
	}
	var err error
	if d.Width, err = strconv.Atoi(w); err != nil {
		return d, fmt.Errorf("invalid dimensions %q: %w", s, err)
	}
	if d.Height, err = strconv.Atoi(h); err != nil {
		return d, fmt.Errorf("invalid dimensions %q: %w", s, err)
	}
	if d.Width <= 0 || d.Height <= 0 {
		return d, fmt.Errorf("invalid dimensions %q, both sides must be positive", s)
	}
	return d, nil
}

// DimensionError reports a frame whose cell count does not fill its grid.
type DimensionError struct {
	Number string
	Dims   Dimensions
	Cells  int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("frame %s has %d cells, expected %s=%d", e.Number, e.Cells, e.Dims, e.Dims.Cells())
}

// Frame is one translated animation frame.
type Frame struct {
	Number string
	Dims   Dimensions
	Colors []string
}

// Check verifies that the frame fills its grid exactly.
func (f *Frame) Check() error {
	if len(f.Colors) != f.Dims.Cells() {
		return &DimensionError{Number: f.Number, Dims: f.Dims, Cells: len(f.Colors)}
	}
	return nil
}

// At returns the color name of the cell at column x, row y.
func (f *Frame) At(x, y int) string {
	return f.Colors[y*f.Dims.Width+x]
}

// Digest hashes the ordered color names, so frames with identical content
// share a digest.
func (f *Frame) Digest() uint64 {
	d := xxhash.New()
	for _, c := range f.Colors {
		d.Write([]byte(c))
		d.Write([]byte{0})
	}
	return d.Sum64()
}

// NumberFromName derives the frame number from a file name such as
// "img/frame007.html". The remainder is used verbatim, so "007" stays "007".
func NumberFromName(name string) (string, error) {
	base := filepath.Base(name)
	if !strings.HasPrefix(base, namePrefix) || !strings.HasSuffix(base, nameSuffix) {
		return "", fmt.Errorf("file name %q does not match %s<number>%s", base, namePrefix, nameSuffix)
	}
	num := strings.TrimSuffix(strings.TrimPrefix(base, namePrefix), nameSuffix)
	if !numberPattern.MatchString(num) {
		return "", fmt.Errorf("file name %q has no usable frame number", base)
	}
	return num, nil
}
