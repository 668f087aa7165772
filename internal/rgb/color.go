// Package rgb holds the renderer's floating-point color type. Every
// constructor and operator clamps each channel to [0,1].
package rgb

import (
	"fmt"
	"image/color"
	"math"
)

// Color is a linear RGB triple with channels in [0,1].
type Color struct {
	R, G, B float64
}

var (
	Black = Color{}
	White = Color{1, 1, 1}
)

// New returns a clamped color.
func New(r, g, b float64) Color {
	return Color{clamp(r), clamp(g), clamp(b)}
}

// Gray returns a clamped gray level.
func Gray(v float64) Color {
	return New(v, v, v)
}

// FromRGB8 converts 8-bit channels to a color.
func FromRGB8(r, g, b uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255}
}

// FromColor converts any image/color value, dropping alpha.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return FromRGB8(n.R, n.G, n.B)
}

func (c Color) Add(o Color) Color {
	return New(c.R+o.R, c.G+o.G, c.B+o.B)
}

// Scale multiplies every channel by s.
func (c Color) Scale(s float64) Color {
	return New(c.R*s, c.G*s, c.B*s)
}

// Mul multiplies channel-wise.
func (c Color) Mul(o Color) Color {
	return New(c.R*o.R, c.G*o.G, c.B*o.B)
}

// Div divides every channel by s. Division by zero saturates lit channels.
func (c Color) Div(s float64) Color {
	return New(c.R/s, c.G/s, c.B/s)
}

// Lerp blends from c toward o by amount in [0,1].
func (c Color) Lerp(o Color, amount float64) Color {
	amount = clamp(amount)
	return o.Scale(amount).Add(c.Scale(1 - amount))
}

// RGB8 converts to 8-bit channels, rounding to the nearest level.
func (c Color) RGB8() (r, g, b uint8) {
	return to8(c.R), to8(c.G), to8(c.B)
}

func (c Color) String() string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", c.R, c.G, c.B)
}

func to8(v float64) uint8 {
	return uint8(math.Round(clamp(v) * 255))
}

// clamp maps NaN to 0 and limits v to [0,1].
func clamp(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
