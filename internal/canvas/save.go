package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// ErrUnknownFormat is returned for an output extension with no encoder.
var ErrUnknownFormat = errors.New("canvas: unknown image format")

// Encode writes img in the format named by ext (".ppm", ".png", ".webp",
// ".tga"; case-insensitive).
func Encode(w io.Writer, img image.Image, ext string) error {
	switch strings.ToLower(ext) {
	case ".ppm":
		return writePPMImage(w, img)
	case ".png":
		return png.Encode(w, img)
	case ".webp":
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("canvas: webp encode: %w", err)
		}
		return nil
	case ".tga":
		return tga.Encode(w, img)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
}

// Save writes img to path, choosing the encoder from the file extension and
// creating parent directories as needed.
func Save(path string, img image.Image) error {
	ext := filepath.Ext(path)
	switch strings.ToLower(ext) {
	case ".ppm", ".png", ".webp", ".tga":
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("canvas: mkdir %s: %w", filepath.Dir(path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("canvas: create %s: %w", path, err)
	}
	if err := Encode(f, img, ext); err != nil {
		f.Close()
		return fmt.Errorf("canvas: write %s: %w", path, err)
	}
	return f.Close()
}
