package mathutil

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrSingularTransform is returned when a transform would lose its inverse.
var ErrSingularTransform = errors.New("singular transform")

// Affine pairs a forward transform with its inverse. Every constructor keeps
// Inverse equal to Forward⁻¹, composing the exact inverse of each step rather
// than re-inverting the accumulated matrix.
type Affine struct {
	Forward mgl64.Mat4
	Inverse mgl64.Mat4
}

// Identity returns the identity transform.
func Identity() Affine {
	return Affine{Forward: mgl64.Ident4(), Inverse: mgl64.Ident4()}
}

// then applies m after the current transform: Forward' = m·Forward.
func (a Affine) then(m, mInv mgl64.Mat4) Affine {
	return Affine{
		Forward: m.Mul4(a.Forward),
		Inverse: a.Inverse.Mul4(mInv),
	}
}

// Scale appends a non-uniform scale. Zero factors are rejected.
func (a Affine) Scale(x, y, z float64) (Affine, error) {
	if x == 0 || y == 0 || z == 0 {
		return a, fmt.Errorf("mathutil: scale (%g, %g, %g): %w", x, y, z, ErrSingularTransform)
	}
	return a.then(mgl64.Scale3D(x, y, z), mgl64.Scale3D(1/x, 1/y, 1/z)), nil
}

// Translate appends a translation.
func (a Affine) Translate(x, y, z float64) Affine {
	return a.then(mgl64.Translate3D(x, y, z), mgl64.Translate3D(-x, -y, -z))
}

// Rotate appends a rotation of deg degrees about the labelled axis.
func (a Affine) Rotate(axis string, deg float64) (Affine, error) {
	m, err := AxisRotation(axis, deg)
	if err != nil {
		return a, err
	}
	// Rotation matrices are orthonormal.
	return a.then(m, m.Transpose()), nil
}

// Compose returns the transform that applies b first and then a.
func (a Affine) Compose(b Affine) Affine {
	return b.then(a.Forward, a.Inverse)
}

// Point maps a point through the forward transform.
func (a Affine) Point(p mgl64.Vec3) mgl64.Vec3 {
	return a.Forward.Mul4x1(p.Vec4(1)).Vec3()
}

// Vector maps a direction through the forward transform.
func (a Affine) Vector(v mgl64.Vec3) mgl64.Vec3 {
	return a.Forward.Mul4x1(v.Vec4(0)).Vec3()
}

// InvPoint maps a point through the inverse transform.
func (a Affine) InvPoint(p mgl64.Vec3) mgl64.Vec3 {
	return a.Inverse.Mul4x1(p.Vec4(1)).Vec3()
}

// InvVector maps a direction through the inverse transform.
func (a Affine) InvVector(v mgl64.Vec3) mgl64.Vec3 {
	return a.Inverse.Mul4x1(v.Vec4(0)).Vec3()
}

// Normal maps a surface normal to the forward frame using the
// transpose-inverse rule and renormalizes it.
func (a Affine) Normal(n mgl64.Vec3) mgl64.Vec3 {
	return a.Inverse.Transpose().Mul4x1(n.Vec4(0)).Vec3().Normalize()
}

// Translation returns the translation column of the forward transform.
func (a Affine) Translation() mgl64.Vec3 {
	return a.Forward.Col(3).Vec3()
}
