package palette

import "fmt"

// UnknownColorError is returned when a color code has no entry in the active palette.
type UnknownColorError struct {
	Code    string
	Palette string
	Version int
}

func (e *UnknownColorError) Error() string {
	return fmt.Sprintf("unknown color #%s in palette %s v%d", e.Code, e.Palette, e.Version)
}
