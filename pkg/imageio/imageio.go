// Package imageio writes rendered frames to image files.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnsupportedFormat is returned for unknown output formats.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Format names an output encoding.
type Format string

const (
	FormatTGA  Format = "tga"
	FormatPNG  Format = "png"
	FormatWebP Format = "webp"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

// Formats lists every supported format.
var Formats = []Format{FormatTGA, FormatPNG, FormatWebP, FormatBMP, FormatTIFF}

// ParseFormat parses a format name, accepting a leading dot and "tif".
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimPrefix(s, "."))
	if s == "tif" {
		s = string(FormatTIFF)
	}
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// FormatFromPath derives the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case FormatTGA:
		return tga.Encode(w, img)
	case FormatPNG:
		return png.Encode(w, img)
	case FormatWebP:
		return nativewebp.Encode(w, img, nil)
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(f))
	}
}

// WriteFile encodes img into path, deriving the format from its extension.
func WriteFile(path string, img image.Image) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	return WriteFileAs(path, img, f)
}

// WriteFileAs encodes img into path using format f regardless of the
// extension.
func WriteFileAs(path string, img image.Image, f Format) error {
	if !slices.Contains(Formats, f) {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(f))
	}
	return writeFile(path, func(w io.Writer) error {
		return Encode(w, img, f)
	})
}

// EncodeAnimation writes frames as a looping animated WebP, showing each
// frame for delay.
func EncodeAnimation(w io.Writer, frames []image.Image, delay time.Duration) error {
	if len(frames) == 0 {
		return errors.New("no frames to encode")
	}
	ms := uint(max(delay.Milliseconds(), 1))
	ani := &nativewebp.Animation{
		Images:    frames,
		Durations: make([]uint, len(frames)),
		Disposals: make([]uint, len(frames)),
	}
	for i := range frames {
		ani.Durations[i] = ms
	}
	return nativewebp.EncodeAll(w, ani, nil)
}

// WriteAnimation writes frames to path as an animated WebP.
func WriteAnimation(path string, frames []image.Image, delay time.Duration) error {
	return writeFile(path, func(w io.Writer) error {
		return EncodeAnimation(w, frames, delay)
	})
}

func writeFile(path string, encode func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := encode(f); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
