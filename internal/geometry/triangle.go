package geometry

import (
	"github.com/go-gl/mathgl/mgl64"

	"scenetrace/internal/mathutil"
)

// triangle caches the edges and face normal of one mesh face.
type triangle struct {
	v0     mgl64.Vec3
	e1, e2 mgl64.Vec3
	normal mgl64.Vec3
}

func newTriangle(v0, v1, v2 mgl64.Vec3) triangle {
	e1 := v1.Sub(v0)
	e2 := v2.Sub(v0)
	return triangle{v0: v0, e1: e1, e2: e2, normal: e1.Cross(e2).Normalize()}
}

// collide is a Möller–Trumbore test. Faces whose normal does not oppose the
// ray are culled. U and V are the barycentric weights of v1 and v2.
func (tri triangle) collide(r Ray) (Hit, bool) {
	q := r.Dir.Cross(tri.e2)
	a := tri.e1.Dot(q)
	if (a <= mathutil.TriangleEps && a >= -mathutil.TriangleEps) || tri.normal.Dot(r.Dir) >= 0 {
		return Hit{}, false
	}

	s := r.Src.Sub(tri.v0).Mul(1 / a)
	rr := s.Cross(tri.e1)

	x := s.Dot(q)
	y := rr.Dot(r.Dir)
	z := 1 - x - y
	if x < 0 || y < 0 || z < 0 {
		return Hit{}, false
	}

	t := tri.e2.Dot(rr)
	if t < mathutil.TriangleEps {
		return Hit{}, false
	}
	return Hit{T: t, Normal: tri.normal, U: x, V: y}, true
}
