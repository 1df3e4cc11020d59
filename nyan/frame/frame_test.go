package frame

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberFromName(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"frame007.html", "007"},
		{"frame1.html", "1"},
		{"img/frames/frame12.html", "12"},
		{"/tmp/frame_b.html", "_b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			num, err := NumberFromName(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, num)
		})
	}
}

func TestNumberFromNameRejects(t *testing.T) {
	for _, name := range []string{"nyan.html", "frame007.htm", "frame.html", "frame0-7.html", "Frame007.html"} {
		t.Run(name, func(t *testing.T) {
			_, err := NumberFromName(name)
			assert.Error(t, err)
		})
	}
}

func TestParseDimensions(t *testing.T) {
	d, err := ParseDimensions("80x25")
	require.NoError(t, err)
	assert.Equal(t, Wide, d)
	assert.Equal(t, 2000, d.Cells())

	d, err = ParseDimensions("40X25")
	require.NoError(t, err)
	assert.Equal(t, Narrow, d)
	assert.Equal(t, "40x25", d.String())

	for _, s := range []string{"", "80", "x25", "80x", "0x25", "-4x25", "80x25x3", "axb"} {
		_, err := ParseDimensions(s)
		assert.Error(t, err, s)
	}
}

func TestCheck(t *testing.T) {
	f := &Frame{Number: "1", Dims: Dimensions{Width: 2, Height: 2}, Colors: []string{"Black", "White", "White", "Black"}}
	assert.NoError(t, f.Check())
	assert.Equal(t, "White", f.At(1, 0))
	assert.Equal(t, "Black", f.At(1, 1))

	f.Colors = f.Colors[:3]
	err := f.Check()
	var dimErr *DimensionError
	require.ErrorAs(t, err, &dimErr)
	assert.Equal(t, 3, dimErr.Cells)
	assert.Contains(t, err.Error(), "2x2=4")

	empty := &Frame{Number: "2", Dims: Wide}
	assert.Error(t, empty.Check())
}

func TestDigest(t *testing.T) {
	a := &Frame{Colors: []string{"Black", "White"}}
	b := &Frame{Colors: []string{"Black", "White"}}
	c := &Frame{Colors: []string{"BlackWhite"}}
	d := &Frame{Colors: []string{"White", "Black"}}

	assert.Equal(t, a.Digest(), b.Digest())
	assert.NotEqual(t, a.Digest(), c.Digest())
	assert.NotEqual(t, a.Digest(), d.Digest())
}

func TestEmit(t *testing.T) {
	num, err := NumberFromName("frame007.html")
	require.NoError(t, err)

	f := &Frame{Number: num, Dims: Wide, Colors: []string{"Black", "White"}}
	e := NewEmitter()

	assert.Equal(t, "NYAN_80X25_007", e.Identifier(f))
	assert.Equal(t, "pub const NYAN_80X25_007: [Color; 80*25] = [Black, White];", e.Emit(f))

	var buf bytes.Buffer
	require.NoError(t, e.Write(&buf, f))
	assert.Equal(t, "pub const NYAN_80X25_007: [Color; 80*25] = [Black, White];\n\n", buf.String())
}

func TestEmitCustom(t *testing.T) {
	f := &Frame{Number: "3", Dims: Narrow, Colors: []string{"BLK", "WHT", "LMG"}}

	e := &Emitter{Prefix: "CAT", ElementType: "text::Color"}
	assert.Equal(t, "pub const CAT_40X25_3: [text::Color; 40*25] = [BLK, WHT, LMG];", e.Emit(f))

	// zero value falls back to the defaults
	assert.True(t, strings.HasPrefix((&Emitter{}).Emit(f), "pub const NYAN_40X25_3: [Color; 40*25]"))
}

func TestEmitLegacy(t *testing.T) {
	f := &Frame{Number: "1", Dims: Narrow, Colors: []string{"Black", "Blue"}}
	e := &Emitter{Legacy: true}

	assert.Equal(t, "Black, Blue", e.Emit(f))

	var buf bytes.Buffer
	require.NoError(t, e.Write(&buf, f))
	assert.Equal(t, "Black, Blue\n", buf.String())
}
