package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"scenetrace/internal/mathutil"
)

// cylinderCollide intersects the unit cylinder x²+y²=1 clipped to z in
// [-1,1] and closed by the discs z=±1.
func cylinderCollide(r Ray) (Hit, bool) {
	src, dir := r.Src, r.Dir

	a := dir[0]*dir[0] + dir[1]*dir[1]
	b := 2 * (src[0]*dir[0] + src[1]*dir[1])
	c := src[0]*src[0] + src[1]*src[1] - 1

	best := Hit{T: math.Inf(1)}
	found := false

	roots, n := mathutil.SolveQuadratic(a, b, c)
	if n == 2 {
		z1, z2 := r.At(roots[0])[2], r.At(roots[1])[2]
		// Both wall crossings beyond the same end: the ray never enters
		// the finite solid, caps included.
		if (z1 > 1 && z2 > 1) || (z1 < -1 && z2 < -1) {
			return Hit{}, false
		}
	}
	for i := 0; i < n; i++ {
		t := roots[i]
		if t <= mathutil.CylinderEps || t >= best.T {
			continue
		}
		p := r.At(t)
		if p[2] < -1 || p[2] > 1 {
			continue
		}
		best = Hit{
			T:      t,
			Normal: mgl64.Vec3{p[0], p[1], 0},
			U:      0.5 + math.Atan2(p[1], p[0])/(2*math.Pi),
			V:      (p[2] + 1) / 2,
		}
		found = true
	}

	if dir[2] != 0 {
		for _, zc := range [2]float64{-1, 1} {
			t := (zc - src[2]) / dir[2]
			if t <= mathutil.CylinderEps || t >= best.T {
				continue
			}
			p := r.At(t)
			if p[0]*p[0]+p[1]*p[1] > 1 {
				continue
			}
			best = Hit{
				T:      t,
				Normal: mgl64.Vec3{0, 0, zc},
				U:      (p[0] + 1) / 2,
				V:      (p[1] + 1) / 2,
			}
			found = true
		}
	}

	return best, found
}
