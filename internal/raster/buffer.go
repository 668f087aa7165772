// Package raster holds the render target.
package raster

import (
	"fmt"
	"image"

	"scenetrace/internal/rgb"
)

// FrameBuffer holds the rendering target as a flat slice for cache locality.
// Pixels are 8-bit RGB triples in row-major order.
type FrameBuffer struct {
	Width  int
	Height int
	Pix    []uint8 // RGB interleaved, len = W*H*3
}

// NewFrameBuffer allocates a black buffer.
func NewFrameBuffer(w, h int) (*FrameBuffer, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("raster: invalid size %dx%d", w, h)
	}
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Pix:    make([]uint8, w*h*3),
	}, nil
}

func (fb *FrameBuffer) offset(x, y int) int {
	return (y*fb.Width + x) * 3
}

// Set writes c at (x, y). Callers own distinct rows, so concurrent Sets on
// different rows do not conflict.
func (fb *FrameBuffer) Set(x, y int, c rgb.Color) {
	i := fb.offset(x, y)
	fb.Pix[i], fb.Pix[i+1], fb.Pix[i+2] = c.RGB8()
}

// At returns the 8-bit triple at (x, y).
func (fb *FrameBuffer) At(x, y int) (r, g, b uint8) {
	i := fb.offset(x, y)
	return fb.Pix[i], fb.Pix[i+1], fb.Pix[i+2]
}

// Row returns the slice backing row y.
func (fb *FrameBuffer) Row(y int) []uint8 {
	i := fb.offset(0, y)
	return fb.Pix[i : i+fb.Width*3]
}

// Image converts the buffer to an opaque NRGBA image.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		src := fb.Row(y)
		dst := img.Pix[y*img.Stride:]
		for x := 0; x < fb.Width; x++ {
			dst[x*4] = src[x*3]
			dst[x*4+1] = src[x*3+1]
			dst[x*4+2] = src[x*3+2]
			dst[x*4+3] = 255
		}
	}
	return img
}

// FromImage copies the color channels of img into a new buffer, dropping alpha.
func FromImage(img *image.NRGBA) *FrameBuffer {
	b := img.Bounds()
	fb := &FrameBuffer{Width: b.Dx(), Height: b.Dy(), Pix: make([]uint8, b.Dx()*b.Dy()*3)}
	for y := 0; y < fb.Height; y++ {
		dst := fb.Row(y)
		for x := 0; x < fb.Width; x++ {
			si := img.PixOffset(b.Min.X+x, b.Min.Y+y)
			copy(dst[x*3:x*3+3], img.Pix[si:si+3])
		}
	}
	return fb
}
