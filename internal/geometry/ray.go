// Package geometry implements rays and the ray-primitive collision tests.
// All tests work in the primitive's local frame and return a Hit value.
package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrZeroDirection is returned when a ray would have no direction.
var ErrZeroDirection = errors.New("zero-length ray direction")

// Ray is a half-line from Src along the unit vector Dir.
type Ray struct {
	Src mgl64.Vec3
	Dir mgl64.Vec3
}

// NewRay normalizes dir. A zero or non-finite direction is rejected.
func NewRay(src, dir mgl64.Vec3) (Ray, error) {
	l := dir.Len()
	if !(l > 0) || math.IsInf(l, 1) {
		return Ray{}, fmt.Errorf("geometry: ray from %v: %w", src, ErrZeroDirection)
	}
	return Ray{Src: src, Dir: dir.Mul(1 / l)}, nil
}

// RayBetween returns the ray from a toward b.
func RayBetween(a, b mgl64.Vec3) (Ray, error) {
	return NewRay(a, b.Sub(a))
}

// At returns the point at parameter t.
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Src.Add(r.Dir.Mul(t))
}

// Transform maps the ray through the affine matrix m. Source and direction
// transform independently and the direction is renormalized.
func (r Ray) Transform(m mgl64.Mat4) Ray {
	return Ray{
		Src: m.Mul4x1(r.Src.Vec4(1)).Vec3(),
		Dir: m.Mul4x1(r.Dir.Vec4(0)).Vec3().Normalize(),
	}
}

// Param returns the parameter of p projected onto the ray.
func (r Ray) Param(p mgl64.Vec3) float64 {
	return p.Sub(r.Src).Dot(r.Dir)
}
