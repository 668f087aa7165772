package texture

import (
	"image"
	"math"
)

// wrap maps any coordinate onto [0,1) by tiling.
func wrap(u float64) float64 {
	u -= math.Floor(u)
	if u >= 1 {
		u = 0
	}
	return u
}

// sampleNearest returns the texel nearest to (u,v) in [0,1].
func sampleNearest(tex *image.NRGBA, u, v float64) (r, g, b uint8) {
	w := tex.Rect.Dx()
	h := tex.Rect.Dy()
	x := int(math.Round(u * float64(w-1)))
	y := int(math.Round(v * float64(h-1)))
	i := y*tex.Stride + x*4
	return tex.Pix[i], tex.Pix[i+1], tex.Pix[i+2]
}

// sampleBilinear performs bilinear filtering, wrapping at the right and
// bottom edges. Accesses tex.Pix directly for performance.
func sampleBilinear(tex *image.NRGBA, u, v float64) (r, g, b uint8) {
	w := tex.Rect.Dx()
	h := tex.Rect.Dy()

	fx := u * float64(w-1)
	fy := v * float64(h-1)
	x0 := int(fx)
	y0 := int(fy)
	x1 := (x0 + 1) % w
	y1 := (y0 + 1) % h
	dx := fx - float64(x0)
	dy := fy - float64(y0)

	stride := tex.Stride
	pix := tex.Pix

	// Four texels
	i00 := y0*stride + x0*4
	i10 := y0*stride + x1*4
	i01 := y1*stride + x0*4
	i11 := y1*stride + x1*4

	w00 := (1 - dx) * (1 - dy)
	w10 := dx * (1 - dy)
	w01 := (1 - dx) * dy
	w11 := dx * dy

	fr := float64(pix[i00])*w00 + float64(pix[i10])*w10 + float64(pix[i01])*w01 + float64(pix[i11])*w11
	fg := float64(pix[i00+1])*w00 + float64(pix[i10+1])*w10 + float64(pix[i01+1])*w01 + float64(pix[i11+1])*w11
	fb := float64(pix[i00+2])*w00 + float64(pix[i10+2])*w10 + float64(pix[i01+2])*w01 + float64(pix[i11+2])*w11

	return uint8(fr + 0.5), uint8(fg + 0.5), uint8(fb + 0.5)
}
