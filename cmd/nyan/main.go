package main

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli"
	"github.com/valerio/go-nyan/nyan"
	"github.com/valerio/go-nyan/nyan/cell"
	"github.com/valerio/go-nyan/nyan/debug"
	"github.com/valerio/go-nyan/nyan/display"
	"github.com/valerio/go-nyan/nyan/frame"
	"github.com/valerio/go-nyan/nyan/palette"
	"github.com/valerio/go-nyan/nyan/render"
)

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		slog.Error("Error running nyan", "error", err)
		os.Exit(1)
	}
}

var converterFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "palette",
		Value: "basic",
		Usage: "Built-in palette used to name the colors",
	},
	cli.StringFlag{
		Name:  "palette-file",
		Usage: "YAML palette file, overrides --palette",
	},
	cli.StringFlag{
		Name:  "size",
		Value: frame.Wide.String(),
		Usage: "Text-mode grid of the frames, WIDTHxHEIGHT",
	},
	cli.BoolFlag{
		Name:  "lenient",
		Usage: "Substitute the palette fallback for unknown colors instead of failing (palette authoring only)",
	},
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "nyan"
	app.Description = "Converts GIMP HTML table exports into text-mode color arrays"
	app.Usage = "nyan [options] <frame file>..."
	app.Version = "1.0.0"
	app.ErrWriter = os.Stderr
	app.Flags = append([]cli.Flag{
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "Enable debug logging",
		},
	}, convertFlags()...)
	app.Before = setupLogging
	app.Action = runConvert
	app.Commands = []cli.Command{
		{
			Name:      "convert",
			Usage:     "Print one array declaration per frame file",
			ArgsUsage: "<frame file>...",
			Flags:     convertFlags(),
			Action:    runConvert,
		},
		{
			Name:      "colors",
			Usage:     "Count the distinct colors of frame files and check them against a palette",
			ArgsUsage: "<frame file>...",
			Flags:     converterFlags,
			Action:    runColors,
		},
		{
			Name:      "palettes",
			Usage:     "List the built-in palettes, or print one as YAML",
			ArgsUsage: "[palette name]",
			Action:    runPalettes,
		},
		{
			Name:      "preview",
			Usage:     "Play frame files as an animation in the terminal",
			ArgsUsage: "<frame file>...",
			Flags: append([]cli.Flag{
				cli.IntFlag{
					Name:  "fps",
					Value: display.DefaultFPS,
					Usage: "Frames per second",
				},
			}, converterFlags...),
			Action: runPreview,
		},
		{
			Name:      "snapshot",
			Usage:     "Save frame files as PNG images",
			ArgsUsage: "<frame file>...",
			Flags: append([]cli.Flag{
				cli.IntFlag{
					Name:  "scale",
					Value: display.DefaultSnapshotScale,
					Usage: "Pixels per cell column",
				},
				cli.StringFlag{
					Name:  "out",
					Usage: "Directory to save the images (default: current directory)",
				},
			}, converterFlags...),
			Action: runSnapshot,
		},
	}
	return app
}

func convertFlags() []cli.Flag {
	return append([]cli.Flag{
		cli.StringFlag{
			Name:  "prefix",
			Value: frame.DefaultPrefix,
			Usage: "Prefix of the generated constant names",
		},
		cli.StringFlag{
			Name:  "type",
			Value: frame.DefaultElementType,
			Usage: "Element type of the generated arrays",
		},
		cli.StringFlag{
			Name:  "name",
			Usage: "Frame number to use instead of the one in the file name (single file only)",
		},
		cli.BoolFlag{
			Name:  "legacy",
			Usage: "Print only the comma-separated color names",
		},
	}, converterFlags...)
}

func setupLogging(c *cli.Context) error {
	level := slog.LevelInfo
	if c.Bool("verbose") {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
	return nil
}

func newConverter(c *cli.Context) (*nyan.Converter, error) {
	var (
		p   *palette.Palette
		err error
	)
	if path := c.String("palette-file"); path != "" {
		p, err = palette.Load(path)
	} else {
		p, err = palette.Builtin(c.String("palette"))
	}
	if err != nil {
		return nil, err
	}

	dims, err := frame.ParseDimensions(c.String("size"))
	if err != nil {
		return nil, err
	}

	conv := nyan.New(p, dims)
	conv.Lenient = c.Bool("lenient")
	slog.Debug("Using palette", "palette", p.String(), "colors", p.Len(), "size", dims.String(), "lenient", conv.Lenient)
	return conv, nil
}

func frameFiles(c *cli.Context) ([]string, error) {
	if c.NArg() == 0 {
		cli.ShowAppHelp(c)
		return nil, errors.New("no frame file provided")
	}
	return c.Args(), nil
}

func convertAll(c *cli.Context, conv *nyan.Converter, paths []string) ([]*frame.Frame, error) {
	name := c.String("name")
	if name != "" && len(paths) > 1 {
		return nil, errors.New("--name can only be used with a single frame file")
	}

	frames := make([]*frame.Frame, 0, len(paths))
	for _, path := range paths {
		var (
			res *nyan.Result
			err error
		)
		if name != "" {
			res, err = convertNamed(conv, name, path)
		} else {
			res, err = conv.ConvertFile(path)
		}
		if err != nil {
			return nil, err
		}
		frames = append(frames, res.Frame)
	}
	return frames, nil
}

func convertNamed(conv *nyan.Converter, name, path string) (*nyan.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open frame: %w", err)
	}
	defer f.Close()
	return conv.Convert(name, f)
}

func runConvert(c *cli.Context) error {
	paths, err := frameFiles(c)
	if err != nil {
		return err
	}
	conv, err := newConverter(c)
	if err != nil {
		return err
	}
	frames, err := convertAll(c, conv, paths)
	if err != nil {
		return err
	}

	emitter := &frame.Emitter{
		Prefix:      c.String("prefix"),
		ElementType: c.String("type"),
		Legacy:      c.Bool("legacy"),
	}

	// nothing is written unless every frame converted
	var out bytes.Buffer
	for _, f := range frames {
		if err := emitter.Write(&out, f); err != nil {
			return err
		}
	}
	_, err = c.App.Writer.Write(out.Bytes())
	return err
}

func runColors(c *cli.Context) error {
	paths, err := frameFiles(c)
	if err != nil {
		return err
	}
	conv, err := newConverter(c)
	if err != nil {
		return err
	}

	w := c.App.Writer
	unknown := 0
	for _, path := range paths {
		codes, err := readCodes(path)
		if err != nil {
			return err
		}

		counts := palette.Census(codes)
		fmt.Fprintf(w, "%s: %d cells, %d colors (expected %s=%d cells)\n",
			path, len(codes), len(counts), conv.Dims, conv.Dims.Cells())
		for _, cc := range counts {
			name, err := conv.Palette.Lookup(cc.Code)
			if err == nil {
				fmt.Fprintf(w, "  #%s %6d  %s\n", cc.Code, cc.Count, name)
				continue
			}
			unknown++
			m, err := conv.Palette.Nearest(cc.Code)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "  #%s %6d  ? nearest %s (#%s, distance %.3f)\n", cc.Code, cc.Count, m.Name, m.Code, m.Distance)
		}
	}

	if unknown > 0 && !conv.Lenient {
		return fmt.Errorf("%d color codes missing from palette %s", unknown, conv.Palette)
	}
	return nil
}

func readCodes(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open frame: %w", err)
	}
	defer f.Close()

	lines, err := cell.ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	codes, err := cell.ExtractAll(cell.Filter(lines))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return codes, nil
}

func runPalettes(c *cli.Context) error {
	w := c.App.Writer
	if c.NArg() > 0 {
		p, err := palette.Builtin(c.Args().First())
		if err != nil {
			return err
		}
		data, err := palette.Marshal(p)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}

	for _, name := range palette.Names() {
		p, _ := palette.Builtin(name)
		fmt.Fprintf(w, "%s (%d colors, fallback %s)\n", p, p.Len(), p.Fallback())
		for _, code := range p.Codes() {
			color, _ := p.Lookup(code)
			fmt.Fprintf(w, "  #%s  %s\n", code, color)
		}
	}
	return nil
}

func runPreview(c *cli.Context) error {
	paths, err := frameFiles(c)
	if err != nil {
		return err
	}
	conv, err := newConverter(c)
	if err != nil {
		return err
	}
	frames, err := convertAll(c, conv, paths)
	if err != nil {
		return err
	}

	slog.Info("Playing frames", "frames", len(frames), "fps", c.Int("fps"))
	player, err := render.NewPlayer(nil, frames, c.Int("fps"))
	if err != nil {
		return err
	}
	return player.Run()
}

func runSnapshot(c *cli.Context) error {
	paths, err := frameFiles(c)
	if err != nil {
		return err
	}
	conv, err := newConverter(c)
	if err != nil {
		return err
	}
	frames, err := convertAll(c, conv, paths)
	if err != nil {
		return err
	}

	dir := c.String("out")
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create snapshot directory: %v", err)
		}
	}

	for _, f := range frames {
		if _, err := debug.SaveFramePNG(f, dir, c.Int("scale")); err != nil {
			return err
		}
	}
	return nil
}
