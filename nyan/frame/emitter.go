package frame

import (
	"fmt"
	"io"
	"strings"
)

const (
	// DefaultPrefix starts every generated constant name.
	DefaultPrefix = "NYAN"
	// DefaultElementType is the enumeration type of the generated arrays.
	DefaultElementType = "Color"
)

// Emitter formats translated frames as fixed-size array declarations:
//
//	pub const NYAN_80X25_007: [Color; 80*25] = [Black, White, ...];
//
// In Legacy mode only the comma-separated color names are written.
type Emitter struct {
	Prefix      string
	ElementType string
	Legacy      bool
}

// NewEmitter returns an Emitter with the default prefix and element type.
func NewEmitter() *Emitter {
	return &Emitter{
		Prefix:      DefaultPrefix,
		ElementType: DefaultElementType,
	}
}

// Identifier returns the constant name of f, e.g. NYAN_80X25_007.
func (e *Emitter) Identifier(f *Frame) string {
	return fmt.Sprintf("%s_%dX%d_%s", e.prefix(), f.Dims.Width, f.Dims.Height, f.Number)
}

// Emit returns the declaration of f, without a trailing newline.
func (e *Emitter) Emit(f *Frame) string {
	values := strings.Join(f.Colors, ", ")
	if e.Legacy {
		return values
	}
	return fmt.Sprintf("pub const %s: [%s; %d*%d] = [%s];",
		e.Identifier(f), e.elementType(), f.Dims.Width, f.Dims.Height, values)
}

// Write writes the declaration of f to w. Declarations are followed by a
// blank line so that consecutive outputs concatenate into one listing.
func (e *Emitter) Write(w io.Writer, f *Frame) error {
	out := e.Emit(f) + "\n"
	if !e.Legacy {
		out += "\n"
	}
	_, err := io.WriteString(w, out)
	return err
}

func (e *Emitter) prefix() string {
	if e.Prefix == "" {
		return DefaultPrefix
	}
	return e.Prefix
}

func (e *Emitter) elementType() string {
	if e.ElementType == "" {
		return DefaultElementType
	}
	return e.ElementType
}
