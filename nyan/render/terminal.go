package render

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/valerio/go-nyan/nyan/display"
	"github.com/valerio/go-nyan/nyan/frame"
	"github.com/valerio/go-nyan/nyan/palette"
)

// tcell colors matching the text-mode palette
var terminalColors = [...]tcell.Color{
	palette.Black:        tcell.ColorBlack,
	palette.Blue:         tcell.ColorNavy,
	palette.Green:        tcell.ColorGreen,
	palette.Cyan:         tcell.ColorTeal,
	palette.Red:          tcell.ColorMaroon,
	palette.Magenta:      tcell.ColorPurple,
	palette.Brown:        tcell.ColorOlive,
	palette.LightGray:    tcell.ColorSilver,
	palette.DarkGray:     tcell.ColorGray,
	palette.LightBlue:    tcell.ColorBlue,
	palette.LightGreen:   tcell.ColorLime,
	palette.LightCyan:    tcell.ColorAqua,
	palette.LightRed:     tcell.ColorRed,
	palette.LightMagenta: tcell.ColorFuchsia,
	palette.Yellow:       tcell.ColorYellow,
	palette.White:        tcell.ColorWhite,
}

// TerminalColor returns the tcell color used to draw c.
func TerminalColor(c palette.TextColor) tcell.Color {
	return terminalColors[c&0x0f]
}

type sprite struct {
	dims   frame.Dimensions
	colors []palette.TextColor
}

// Player loops through a sequence of frames on a terminal screen.
type Player struct {
	screen  tcell.Screen
	frames  []sprite
	current int
	running bool
	delay   time.Duration
	quit    chan struct{}
}

// NewPlayer prepares frames for playback on screen at fps frames per second.
// If screen is nil a terminal screen is created.
func NewPlayer(screen tcell.Screen, frames []*frame.Frame, fps int) (*Player, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("no frames to play")
	}
	if fps <= 0 || fps > display.MaxFPS {
		return nil, fmt.Errorf("fps must be between 1 and %d, got %d", display.MaxFPS, fps)
	}

	sprites := make([]sprite, len(frames))
	for i, f := range frames {
		if err := f.Check(); err != nil {
			return nil, err
		}
		colors, err := palette.ParseTextColors(f.Colors)
		if err != nil {
			return nil, fmt.Errorf("frame %s: %w", f.Number, err)
		}
		sprites[i] = sprite{dims: f.Dims, colors: colors}
	}

	if screen == nil {
		var err error
		screen, err = tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("failed to initialize terminal: %v", err)
		}
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize terminal: %v", err)
	}

	return &Player{
		screen:  screen,
		frames:  sprites,
		running: true,
		delay:   time.Second / time.Duration(fps),
		quit:    make(chan struct{}),
	}, nil
}

// Run plays the frames until the user quits or the process is signalled.
func (p *Player) Run() error {
	defer func() {
		slog.Info("Finishing terminal")
		p.screen.Fini()
	}()

	p.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	p.screen.Clear()

	go p.handleInput()

	ticker := time.NewTicker(p.delay)
	defer ticker.Stop()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	p.draw()
	p.screen.Show()

	for p.running {
		select {
		case <-ticker.C:
			p.Step()
			p.draw()
			p.screen.Show()
		case <-p.quit:
			p.running = false
			slog.Info("Received quit key")
		case <-signals:
			p.running = false
			slog.Info("Received signal to stop")
		}
	}

	return nil
}

// Step advances to the next frame, wrapping around at the end.
func (p *Player) Step() {
	p.current = (p.current + 1) % len(p.frames)
}

// Current returns the index of the frame on screen.
func (p *Player) Current() int {
	return p.current
}

func (p *Player) handleInput() {
	for {
		ev := p.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			// screen finalized
			return
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				close(p.quit)
				return
			}
		case *tcell.EventResize:
			p.screen.Sync()
		}
	}
}

func (p *Player) draw() {
	s := p.frames[p.current]
	scaleX := scaleFor(s.dims)

	p.screen.Clear()
	for y := 0; y < s.dims.Height; y++ {
		for x := 0; x < s.dims.Width; x++ {
			c := TerminalColor(s.colors[y*s.dims.Width+x])
			style := tcell.StyleDefault.Foreground(c).Background(c)
			for sx := 0; sx < scaleX; sx++ {
				p.screen.SetContent(x*scaleX+sx, y, display.FullBlock, nil, style)
			}
		}
	}
}

// narrow modes use double-width characters, so they are stretched to fill
// the same area as the wide mode
func scaleFor(d frame.Dimensions) int {
	if d.Width <= display.NarrowColumns {
		return 2
	}
	return 1
}
