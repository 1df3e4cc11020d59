package render

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-nyan/nyan/display"
	"github.com/valerio/go-nyan/nyan/frame"
	"github.com/valerio/go-nyan/nyan/palette"
)

func filled(num string, dims frame.Dimensions, name string) *frame.Frame {
	colors := make([]string, dims.Cells())
	for i := range colors {
		colors[i] = name
	}
	return &frame.Frame{Number: num, Dims: dims, Colors: colors}
}

func TestTerminalColor(t *testing.T) {
	assert.Equal(t, tcell.ColorBlack, TerminalColor(palette.Black))
	assert.Equal(t, tcell.ColorNavy, TerminalColor(palette.Blue))
	assert.Equal(t, tcell.ColorFuchsia, TerminalColor(palette.LightMagenta))
	assert.Equal(t, tcell.ColorWhite, TerminalColor(palette.White))
}

func TestPlayerDraw(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")

	first := filled("1", frame.Wide, "Blue")
	first.Colors[1] = "LightMagenta"
	second := filled("2", frame.Wide, "White")

	p, err := NewPlayer(screen, []*frame.Frame{first, second}, display.DefaultFPS)
	require.NoError(t, err)
	defer screen.Fini()

	p.draw()
	mainc, _, style, _ := screen.GetContent(0, 0)
	fg, _, _ := style.Decompose()
	assert.Equal(t, display.FullBlock, mainc)
	assert.Equal(t, tcell.ColorNavy, fg)

	_, _, style, _ = screen.GetContent(1, 0)
	fg, _, _ = style.Decompose()
	assert.Equal(t, tcell.ColorFuchsia, fg)

	p.Step()
	assert.Equal(t, 1, p.Current())
	p.draw()
	_, _, style, _ = screen.GetContent(79, 24)
	fg, _, _ = style.Decompose()
	assert.Equal(t, tcell.ColorWhite, fg)

	p.Step()
	assert.Equal(t, 0, p.Current())
}

func TestPlayerDrawNarrowIsStretched(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")

	f := filled("1", frame.Narrow, "BLK")
	f.Colors[1] = "WHT"

	p, err := NewPlayer(screen, []*frame.Frame{f}, 1)
	require.NoError(t, err)
	defer screen.Fini()

	p.draw()
	for x, expected := range []tcell.Color{tcell.ColorBlack, tcell.ColorBlack, tcell.ColorWhite, tcell.ColorWhite, tcell.ColorBlack} {
		_, _, style, _ := screen.GetContent(x, 0)
		fg, _, _ := style.Decompose()
		assert.Equal(t, expected, fg, "column %d", x)
	}
}

func TestNewPlayerErrors(t *testing.T) {
	good := filled("1", frame.Narrow, "Black")

	_, err := NewPlayer(tcell.NewSimulationScreen("UTF-8"), nil, 1)
	assert.Error(t, err)

	_, err = NewPlayer(tcell.NewSimulationScreen("UTF-8"), []*frame.Frame{good}, 0)
	assert.Error(t, err)

	_, err = NewPlayer(tcell.NewSimulationScreen("UTF-8"), []*frame.Frame{good}, display.MaxFPS+1)
	assert.Error(t, err)

	short := &frame.Frame{Number: "2", Dims: frame.Narrow, Colors: []string{"Black"}}
	_, err = NewPlayer(tcell.NewSimulationScreen("UTF-8"), []*frame.Frame{short}, 1)
	var dimErr *frame.DimensionError
	assert.ErrorAs(t, err, &dimErr)

	odd := filled("3", frame.Narrow, "Chartreuse")
	_, err = NewPlayer(tcell.NewSimulationScreen("UTF-8"), []*frame.Frame{odd}, 1)
	assert.Error(t, err)
}

func TestPlayerQuitsOnKey(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	p, err := NewPlayer(screen, []*frame.Frame{filled("1", frame.Wide, "Black")}, display.MaxFPS)
	require.NoError(t, err)

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	done := make(chan error, 1)
	go func() { done <- p.Run() }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("player did not stop on quit key")
	}
}
