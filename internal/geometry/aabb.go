package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"scenetrace/internal/mathutil"
)

// slab narrows [tmin, tmax] against the box [pos, pos+size] one axis at a
// time. Zero direction components divide to ±Inf; a NaN from 0·Inf (origin
// exactly on a slab plane) fails every comparison and leaves the interval
// untouched, so no axis needs special-casing.
func slab(r Ray, pos, size mgl64.Vec3) (tmin, tmax float64, ok bool) {
	tmin, tmax = math.Inf(-1), math.Inf(1)
	for i := 0; i < 3; i++ {
		inv := 1 / r.Dir[i]
		t1 := (pos[i] - r.Src[i]) * inv
		t2 := (pos[i] + size[i] - r.Src[i]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return 0, 0, false
		}
	}
	return tmin, tmax, true
}

// AABBHit returns the first forward parameter at which r meets the box.
// When the origin is inside the box that is the exit parameter.
func AABBHit(r Ray, pos, size mgl64.Vec3) (float64, bool) {
	tmin, tmax, ok := slab(r, pos, size)
	if !ok {
		return 0, false
	}
	if tmin <= mathutil.CubeEps {
		if tmax <= mathutil.CubeEps {
			return 0, false
		}
		return tmax, true
	}
	return tmin, true
}

// AABBRoots returns the forward boundary crossings of r with the box:
// two roots (entry, exit) when the origin is outside, one root (exit) when
// it is inside, none on a miss or when the box is behind the ray.
func AABBRoots(r Ray, pos, size mgl64.Vec3) (roots [2]float64, n int) {
	tmin, tmax, ok := slab(r, pos, size)
	if !ok || tmax <= mathutil.CubeEps {
		return roots, 0
	}
	if tmin <= mathutil.CubeEps {
		roots[0] = tmax
		return roots, 1
	}
	roots[0], roots[1] = tmin, tmax
	return roots, 2
}
