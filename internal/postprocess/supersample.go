// Package postprocess resizes rendered frames.
package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample scales an opaque frame down to w×h with Catmull-Rom filtering.
// Frames already within the target size are returned as is.
func Downsample(img *image.NRGBA, w, h int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= w && b.Dy() <= h {
		return img
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)

	// With full alpha the premultiplied bytes are the straight ones.
	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = 0xff
	}
	return &image.NRGBA{Pix: dst.Pix, Stride: dst.Stride, Rect: dst.Rect}
}

// Factor returns the render size for an output of w×h at the given
// supersample factor. Factors below 1 count as 1.
func Factor(w, h, factor int) (int, int) {
	if factor < 1 {
		factor = 1
	}
	return w * factor, h * factor
}
