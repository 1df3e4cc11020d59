package debug

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/valerio/go-nyan/nyan/display"
	"github.com/valerio/go-nyan/nyan/frame"
	"github.com/valerio/go-nyan/nyan/palette"
	"golang.org/x/image/draw"
)

// FrameImage draws f with one pixel per cell, in the console colors.
func FrameImage(f *frame.Frame) (*image.RGBA, error) {
	if err := f.Check(); err != nil {
		return nil, err
	}
	colors, err := palette.ParseTextColors(f.Colors)
	if err != nil {
		return nil, fmt.Errorf("frame %s: %w", f.Number, err)
	}

	img := image.NewRGBA(image.Rect(0, 0, f.Dims.Width, f.Dims.Height))
	for i, c := range colors {
		img.SetRGBA(i%f.Dims.Width, i/f.Dims.Width, c.RGBA())
	}
	return img, nil
}

// ScaleFrame upscales a frame image so that each cell keeps the aspect of a
// text-mode character: scale pixels wide and scale*CellAspect pixels tall.
func ScaleFrame(src *image.RGBA, scale int) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale*display.CellAspect))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// SaveFramePNG writes f as frame<number>.png into directory.
func SaveFramePNG(f *frame.Frame, directory string, scale int) (string, error) {
	if scale <= 0 {
		return "", fmt.Errorf("scale must be positive, got %d", scale)
	}

	img, err := FrameImage(f)
	if err != nil {
		return "", err
	}
	img = ScaleFrame(img, scale)

	if directory == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get current directory: %v", err)
		}
		directory = cwd
	}

	filePath := filepath.Join(directory, fmt.Sprintf("frame%s.png", f.Number))
	file, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create file %s: %v", filePath, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("failed to encode PNG: %v", err)
	}

	slog.Info("Snapshot saved", "path", filePath, "size", fmt.Sprintf("%dx%d", img.Bounds().Dx(), img.Bounds().Dy()), "format", "PNG")
	return filePath, nil
}
