package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"scenetrace/internal/geometry"
	"scenetrace/internal/rgb"
)

// Light is a point light, or a square area light once SetSoft is called.
// Falloff holds the constant, linear and quadratic attenuation terms.
type Light struct {
	Color    rgb.Color
	Position mgl64.Vec3
	Falloff  [3]float64
	Radius   float64
	Samples  []mgl64.Vec3
}

// NewLight returns a point light with a single sample at pos.
func NewLight(color rgb.Color, pos mgl64.Vec3, falloff [3]float64) Light {
	return Light{
		Color:    color,
		Position: pos,
		Falloff:  falloff,
		Samples:  []mgl64.Vec3{pos},
	}
}

// SetSoft spreads the light over a k×k grid of samples covering the square
// of half-width radius in the horizontal plane through Position. A radius
// of zero or k <= 1 restores the single point sample.
func (l *Light) SetSoft(radius float64, k int) {
	if radius <= 0 || k <= 1 {
		l.Radius = 0
		l.Samples = []mgl64.Vec3{l.Position}
		return
	}

	l.Radius = radius
	l.Samples = make([]mgl64.Vec3, 0, k*k)
	step := 2 * radius / float64(k-1)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			off := mgl64.Vec3{-radius + float64(i)*step, 0, -radius + float64(j)*step}
			l.Samples = append(l.Samples, l.Position.Add(off))
		}
	}
}

// Attenuation evaluates the falloff polynomial at distance d.
func (l Light) Attenuation(d float64) float64 {
	return l.Falloff[0] + l.Falloff[1]*d + l.Falloff[2]*d*d
}

// ShadowFraction returns the share of the light's samples visible from p.
// A sample is blocked only by geometry strictly between p and the sample.
func ShadowFraction(root *Node, p mgl64.Vec3, l Light) float64 {
	if len(l.Samples) == 0 {
		return 0
	}

	lit := 0
	for _, s := range l.Samples {
		r, err := geometry.RayBetween(p, s)
		if err != nil {
			// The point coincides with the sample.
			lit++
			continue
		}
		hit, ok := root.Intersect(r)
		if !ok || hit.Point.Sub(p).LenSqr() >= s.Sub(p).LenSqr() {
			lit++
		}
	}
	return float64(lit) / float64(len(l.Samples))
}
