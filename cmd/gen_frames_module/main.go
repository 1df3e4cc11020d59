package main

import (
	"bytes"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/valerio/go-nyan/nyan"
	"github.com/valerio/go-nyan/nyan/frame"
	"github.com/valerio/go-nyan/nyan/palette"
)

const (
	startMarker = "// FRAMES:START"
	endMarker   = "// FRAMES:END"
)

type options struct {
	frames      string
	target      string
	paletteName string
	paletteFile string
	size        string
	prefix      string
}

func main() {
	var opts options
	flag.StringVar(&opts.frames, "frames", filepath.Join("img", "frames"), "Directory holding the frame<number>.html exports")
	flag.StringVar(&opts.target, "target", "", "Source file to update in place between the FRAMES markers (default: print to stdout)")
	flag.StringVar(&opts.paletteName, "palette", "basic", "Built-in palette used to name the colors")
	flag.StringVar(&opts.paletteFile, "palette-file", "", "YAML palette file, overrides -palette")
	flag.StringVar(&opts.size, "size", frame.Wide.String(), "Text-mode grid of the frames, WIDTHxHEIGHT")
	flag.StringVar(&opts.prefix, "prefix", frame.DefaultPrefix, "Prefix of the generated constant names")
	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	conv, err := newConverter(opts)
	if err != nil {
		return err
	}

	paths, err := framePaths(opts.frames)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no frame*.html files in %s", opts.frames)
	}

	block, err := generate(conv, &frame.Emitter{Prefix: opts.prefix}, paths)
	if err != nil {
		return err
	}

	if opts.target == "" {
		_, err := os.Stdout.Write(block)
		return err
	}

	content, err := os.ReadFile(opts.target)
	if err != nil {
		return fmt.Errorf("reading %s: %v", opts.target, err)
	}
	out, err := splice(string(content), block)
	if err != nil {
		return fmt.Errorf("%s: %v", opts.target, err)
	}
	if err := os.WriteFile(opts.target, out, 0644); err != nil {
		return fmt.Errorf("writing %s: %v", opts.target, err)
	}
	slog.Info("Updated frame module", "path", opts.target, "frames", len(paths))
	return nil
}

func newConverter(opts options) (*nyan.Converter, error) {
	var (
		p   *palette.Palette
		err error
	)
	if opts.paletteFile != "" {
		p, err = palette.Load(opts.paletteFile)
	} else {
		p, err = palette.Builtin(opts.paletteName)
	}
	if err != nil {
		return nil, err
	}
	dims, err := frame.ParseDimensions(opts.size)
	if err != nil {
		return nil, err
	}
	return nyan.New(p, dims), nil
}

// framePaths lists the frame exports of dir sorted by name, so callers must
// keep frame numbers equally padded.
func framePaths(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %v", dir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasPrefix(name, "frame") || !strings.HasSuffix(name, ".html") {
			continue
		}
		paths = append(paths, filepath.Join(dir, name))
	}
	sort.Strings(paths)
	return paths, nil
}

// generate converts every frame independently and concatenates the declarations.
func generate(conv *nyan.Converter, emitter *frame.Emitter, paths []string) ([]byte, error) {
	var buf bytes.Buffer
	seen := map[uint64]string{}
	for _, path := range paths {
		res, err := conv.ConvertFile(path)
		if err != nil {
			return nil, err
		}

		digest := res.Frame.Digest()
		if first, ok := seen[digest]; ok {
			slog.Warn("Duplicate frame content", "frame", res.Frame.Number, "same_as", first)
		} else {
			seen[digest] = res.Frame.Number
		}

		if err := emitter.Write(&buf, res.Frame); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// splice replaces whatever sits between the start and end markers with block.
func splice(content string, block []byte) ([]byte, error) {
	start := strings.Index(content, startMarker)
	end := strings.Index(content, endMarker)
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("markers not found. Ensure %s and %s exist", startMarker, endMarker)
	}
	before := content[:start+len(startMarker)]
	after := content[end:]

	var out bytes.Buffer
	out.WriteString(before)
	out.WriteString("\n")
	out.Write(block)
	out.WriteString(after)
	return out.Bytes(), nil
}
