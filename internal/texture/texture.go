package texture

import (
	"fmt"
	"image"

	"scenetrace/internal/rgb"
)

// Filter selects how a texture is sampled.
type Filter int

const (
	Nearest Filter = iota
	Bilinear
)

// ParseFilter accepts "", "nearest" and "bilinear".
func ParseFilter(s string) (Filter, error) {
	switch s {
	case "", "nearest":
		return Nearest, nil
	case "bilinear":
		return Bilinear, nil
	}
	return Nearest, fmt.Errorf("texture: unknown filter %q", s)
}

// Texture is an image tiled every UMax units in u and VMax units in v.
type Texture struct {
	img        *image.NRGBA
	UMax, VMax float64
	Filter     Filter
	avg        rgb.Color
}

// New wraps a decoded image. Repeat periods must be positive.
func New(img *image.NRGBA, uMax, vMax float64, filter Filter) (*Texture, error) {
	if img == nil || img.Rect.Empty() {
		return nil, fmt.Errorf("texture: empty image")
	}
	if !(uMax > 0) || !(vMax > 0) {
		return nil, fmt.Errorf("texture: repeat period (%g, %g) must be positive", uMax, vMax)
	}
	img = toNRGBA(img)
	return &Texture{img: img, UMax: uMax, VMax: vMax, Filter: filter, avg: average(img)}, nil
}

// Color samples the texture at surface coordinates (u,v).
func (t *Texture) Color(u, v float64) rgb.Color {
	mu := wrap(u / t.UMax)
	mv := wrap(v / t.VMax)

	var r, g, b uint8
	if t.Filter == Bilinear {
		r, g, b = sampleBilinear(t.img, mu, mv)
	} else {
		r, g, b = sampleNearest(t.img, mu, mv)
	}
	return rgb.FromRGB8(r, g, b)
}

// Average returns the mean texel color.
func (t *Texture) Average() rgb.Color {
	return t.avg
}

// Bounds returns the image dimensions.
func (t *Texture) Bounds() image.Rectangle {
	return t.img.Rect
}

func average(img *image.NRGBA) rgb.Color {
	var sr, sg, sb float64
	w, h := img.Rect.Dx(), img.Rect.Dy()
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < w; x++ {
			sr += float64(row[x*4])
			sg += float64(row[x*4+1])
			sb += float64(row[x*4+2])
		}
	}
	n := float64(w*h) * 255
	return rgb.New(sr/n, sg/n, sb/n)
}

// Average returns the mean color of a decoded image.
func Average(img *image.NRGBA) rgb.Color {
	return average(img)
}
