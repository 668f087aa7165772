package postprocess

import (
	"image"
	"image/color"
	"testing"
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestDownsampleKeepsFlatColor(t *testing.T) {
	want := color.NRGBA{200, 100, 50, 255}
	out := Downsample(solid(64, 32, want), 16, 8)
	if out.Bounds().Dx() != 16 || out.Bounds().Dy() != 8 {
		t.Fatalf("bounds = %v", out.Bounds())
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 16; x++ {
			got := out.NRGBAAt(x, y)
			if absDiff(got.R, want.R) > 1 || absDiff(got.G, want.G) > 1 || absDiff(got.B, want.B) > 1 || got.A != 255 {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestDownsampleSharpEdgeStaysOpaque(t *testing.T) {
	img := solid(40, 40, color.NRGBA{0, 0, 0, 255})
	for y := 0; y < 40; y++ {
		for x := 20; x < 40; x++ {
			img.SetNRGBA(x, y, color.NRGBA{255, 255, 255, 255})
		}
	}
	out := Downsample(img, 10, 10)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c := out.NRGBAAt(x, y); c.A != 255 {
				t.Fatalf("pixel (%d,%d) alpha = %d", x, y, c.A)
			}
		}
	}
	if l, r := out.NRGBAAt(0, 5), out.NRGBAAt(9, 5); l.R != 0 || r.R != 255 {
		t.Errorf("edge columns = %v, %v; want black and white", l, r)
	}
}

func TestDownsampleNoopWhenSmall(t *testing.T) {
	img := solid(8, 8, color.NRGBA{1, 2, 3, 255})
	if out := Downsample(img, 8, 8); out != img {
		t.Error("expected the same image back")
	}
}

func TestFactor(t *testing.T) {
	tests := []struct {
		w, h, f      int
		wantW, wantH int
	}{
		{64, 48, 1, 64, 48},
		{64, 48, 3, 192, 144},
		{64, 48, 0, 64, 48},
		{64, 48, -2, 64, 48},
	}
	for _, tt := range tests {
		w, h := Factor(tt.w, tt.h, tt.f)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("Factor(%d,%d,%d) = %d,%d", tt.w, tt.h, tt.f, w, h)
		}
	}
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
