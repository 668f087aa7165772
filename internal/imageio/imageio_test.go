package imageio

import (
	"errors"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"testing"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

func pattern() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 7, 5))
	for y := 0; y < 5; y++ {
		for x := 0; x < 7; x++ {
			img.SetNRGBA(x, y, color.NRGBA{uint8(x * 36), uint8(y * 60), 128, 255})
		}
	}
	return img
}

func TestSaveRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		lossless bool
	}{
		{"out.png", true},
		{"out.webp", true},
		{"out.bmp", true},
		{"out.tiff", true},
		{"OUT.TIF", true},
		{"out.jpg", false},
		{"nested/dir/out.jpeg", false},
	}

	src := pattern()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.name)
			if err := Save(path, src, Options{JPEGQuality: 95}); err != nil {
				t.Fatalf("Save: %v", err)
			}

			f, err := os.Open(path)
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()
			got, _, err := image.Decode(f)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if got.Bounds().Size() != src.Bounds().Size() {
				t.Fatalf("size %v, want %v", got.Bounds().Size(), src.Bounds().Size())
			}
			if !tt.lossless {
				return
			}
			b := got.Bounds()
			for y := 0; y < 5; y++ {
				for x := 0; x < 7; x++ {
					r1, g1, b1, _ := src.At(x, y).RGBA()
					r2, g2, b2, _ := got.At(b.Min.X+x, b.Min.Y+y).RGBA()
					if r1>>8 != r2>>8 || g1>>8 != g2>>8 || b1>>8 != b2>>8 {
						t.Fatalf("pixel (%d,%d) differs", x, y)
					}
				}
			}
		})
	}
}

func TestSaveRejectsUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xyz")
	err := Save(path, pattern(), Options{})
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("err = %v, want ErrUnsupportedFormat", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("file should not be created")
	}
}

func TestFormat(t *testing.T) {
	tests := map[string]string{
		"png": "png", ".PNG": "png", "jpg": "jpeg", ".jpeg": "jpeg",
		"webp": "webp", "bmp": "bmp", "tif": "tiff", ".tiff": "tiff",
	}
	for in, want := range tests {
		got, err := Format(in)
		if err != nil || got != want {
			t.Errorf("Format(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := Format(""); err == nil {
		t.Error("empty format should fail")
	}
}
