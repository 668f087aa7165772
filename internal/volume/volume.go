// Package volume applies pass-through effects (fog, glow, solid fill) along
// a ray after surface shading.
package volume

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"scenetrace/internal/geometry"
	"scenetrace/internal/mathutil"
)

// ShapeKind tags the variant held by a Volume.
type ShapeKind int

const (
	BoxShape ShapeKind = iota
	ConeShape
)

// Volume is an axis-aligned box or a posed cone.
type Volume struct {
	Kind ShapeKind

	// Box corner and extent.
	Pos, Size mgl64.Vec3

	Cone geometry.ConeShape
}

// NewBox returns a box volume spanning [pos, pos+size].
func NewBox(pos, size mgl64.Vec3) Volume {
	return Volume{Kind: BoxShape, Pos: pos, Size: size}
}

// ConeParams places a cone volume: scale(1, ScaleY, 1), then rotations
// about x, y and z in degrees, then translation to Pos.
type ConeParams struct {
	Pos    mgl64.Vec3
	ScaleY float64
	Rot    [3]float64
	Height float64
}

// DefaultConeHeight is the clip height in the cone's own frame.
const DefaultConeHeight = 3

// NewCone builds the cone pose from p.
func NewCone(p ConeParams) (Volume, error) {
	if p.Height == 0 {
		p.Height = DefaultConeHeight
	}
	if p.Height < 0 {
		return Volume{}, fmt.Errorf("volume: cone height %g must be positive", p.Height)
	}

	pose, err := mathutil.Identity().Scale(1, p.ScaleY, 1)
	if err != nil {
		return Volume{}, fmt.Errorf("volume: cone: %w", err)
	}
	for i, axis := range [3]string{"x", "y", "z"} {
		if pose, err = pose.Rotate(axis, p.Rot[i]); err != nil {
			return Volume{}, fmt.Errorf("volume: cone: %w", err)
		}
	}
	pose = pose.Translate(p.Pos[0], p.Pos[1], p.Pos[2])

	return Volume{Kind: ConeShape, Cone: geometry.ConeShape{Pose: pose, Height: p.Height}}, nil
}

// span is the part of a ray inside a volume, as world-space parameters.
// Enter is 0 when the ray starts inside.
type span struct {
	Enter, Exit float64
}

// passesThrough returns the ray's span inside the volume, if any.
func (v Volume) passesThrough(r geometry.Ray) (span, bool) {
	switch v.Kind {
	case BoxShape:
		roots, n := geometry.AABBRoots(r, v.Pos, v.Size)
		switch n {
		case 2:
			return span{roots[0], roots[1]}, true
		case 1:
			return span{0, roots[0]}, true
		}
	case ConeShape:
		enter, exit, ok := v.Cone.Span(r)
		if ok {
			return span{enter, exit}, true
		}
	}
	return span{}, false
}

func (k ShapeKind) String() string {
	if k == ConeShape {
		return "cone"
	}
	return "box"
}
