// Package imageio writes rendered frames to disk in the format named by the
// file extension.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnsupportedFormat is returned for extensions with no encoder.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// DefaultJPEGQuality is used when Options.JPEGQuality is unset.
const DefaultJPEGQuality = 90

// Options tune lossy encoders. PNG, WebP, BMP and TIFF output is lossless.
type Options struct {
	JPEGQuality int
}

// Format normalizes an extension or format name ("PNG", ".jpeg", "tif")
// to the canonical name used by Encode.
func Format(name string) (string, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "png":
		return "png", nil
	case "jpg", "jpeg":
		return "jpeg", nil
	case "webp":
		return "webp", nil
	case "bmp":
		return "bmp", nil
	case "tif", "tiff":
		return "tiff", nil
	}
	return "", fmt.Errorf("imageio: %q: %w", name, ErrUnsupportedFormat)
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, format string, img image.Image, opts Options) error {
	f, err := Format(format)
	if err != nil {
		return err
	}
	switch f {
	case "png":
		return png.Encode(w, img)
	case "jpeg":
		q := opts.JPEGQuality
		if q <= 0 {
			q = DefaultJPEGQuality
		}
		return jpeg.Encode(w, img, &jpeg.Options{Quality: q})
	case "webp":
		return nativewebp.Encode(w, img, nil)
	case "bmp":
		return bmp.Encode(w, img)
	default:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
}

// Save writes img to path, creating parent directories. The format comes
// from the extension.
func Save(path string, img image.Image, opts Options) error {
	format, err := Format(filepath.Ext(path))
	if err != nil {
		return fmt.Errorf("imageio: save %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("imageio: save %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: save %s: %w", path, err)
	}
	if err := Encode(f, format, img, opts); err != nil {
		f.Close()
		return fmt.Errorf("imageio: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("imageio: save %s: %w", path, err)
	}
	return nil
}
