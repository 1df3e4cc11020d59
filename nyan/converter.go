package nyan

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/valerio/go-nyan/nyan/cell"
	"github.com/valerio/go-nyan/nyan/frame"
	"github.com/valerio/go-nyan/nyan/palette"
)

// Converter turns the HTML export of one frame into a translated Frame.
// A Converter holds no per-frame state and can be reused for any number of
// frames in any order.
type Converter struct {
	Palette *palette.Palette
	Dims    frame.Dimensions

	// Lenient substitutes the palette fallback for unknown colors and only
	// warns about frames that do not fill the grid. Output produced this way
	// is for palette authoring, not for the final program.
	Lenient bool
}

// Result is the outcome of converting one frame.
type Result struct {
	Frame  *frame.Frame
	Codes  []string
	Report palette.Report
}

// New returns a strict Converter.
func New(p *palette.Palette, dims frame.Dimensions) *Converter {
	return &Converter{
		Palette: p,
		Dims:    dims,
	}
}

// ConvertFile converts the frame stored at path. The frame number is derived
// from the file name.
func (c *Converter) ConvertFile(path string) (*Result, error) {
	num, err := frame.NumberFromName(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open frame: %w", err)
	}
	defer f.Close()

	res, err := c.Convert(num, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return res, nil
}

// Convert runs filter, extraction and translation over the markup read from r.
func (c *Converter) Convert(number string, r io.Reader) (*Result, error) {
	if c.Palette == nil {
		return nil, fmt.Errorf("converter has no palette")
	}

	lines, err := cell.ReadLines(r)
	if err != nil {
		return nil, err
	}

	codes, err := cell.ExtractAll(cell.Filter(lines))
	if err != nil {
		return nil, err
	}

	res := &Result{Codes: codes}
	var names []string
	if c.Lenient {
		names, res.Report = c.Palette.TranslateLenient(codes)
		if res.Report.Substituted > 0 {
			slog.Warn("Substituted unknown colors", "frame", number, "palette", c.Palette.String(),
				"cells", res.Report.Substituted, "codes", len(res.Report.Unknown), "fallback", c.Palette.Fallback())
		}
	} else {
		names, err = c.Palette.Translate(codes)
		if err != nil {
			return nil, err
		}
	}

	res.Frame = &frame.Frame{Number: number, Dims: c.Dims, Colors: names}
	if err := res.Frame.Check(); err != nil {
		if !c.Lenient {
			return nil, err
		}
		slog.Warn("Frame does not fill the grid", "frame", number, "cells", len(names), "expected", c.Dims.Cells())
	}

	slog.Debug("Converted frame", "frame", number, "cells", len(names), "palette", c.Palette.String())
	return res, nil
}
