package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"scenetrace/internal/mathutil"
)

// sphereCollide intersects the unit sphere at the origin. The position of
// the hit point is already the outward normal.
func sphereCollide(r Ray) (Hit, bool) {
	a := r.Dir.Dot(r.Dir)
	b := 2 * r.Src.Dot(r.Dir)
	c := r.Src.Dot(r.Src) - 1

	roots, n := mathutil.SolveQuadratic(a, b, c)
	if n == 0 {
		return Hit{}, false
	}
	t := roots[0]
	if t <= mathutil.SphereEps && n == 2 {
		t = roots[1]
	}
	if t <= mathutil.SphereEps {
		return Hit{}, false
	}

	p := r.At(t)
	u, v := sphereUV(p)
	return Hit{T: t, Normal: p, U: u, V: v}, true
}

// sphereUV maps a unit-sphere point to longitude/latitude in [0,1].
func sphereUV(p mgl64.Vec3) (u, v float64) {
	u = 0.5 + math.Atan2(p[2], p[0])/(2*math.Pi)
	v = 0.5 - math.Asin(mgl64.Clamp(p[1], -1, 1))/math.Pi
	return u, v
}
