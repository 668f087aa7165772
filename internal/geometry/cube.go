package geometry

import (
	"github.com/go-gl/mathgl/mgl64"

	"scenetrace/internal/mathutil"
)

var (
	cubeMin  = mgl64.Vec3{0, 0, 0}
	cubeSize = mgl64.Vec3{1, 1, 1}
)

func cubeCollide(r Ray) (Hit, bool) {
	t, ok := AABBHit(r, cubeMin, cubeSize)
	if !ok {
		return Hit{}, false
	}
	p := r.At(t)
	n, u, v := cubeFace(p)
	return Hit{T: t, Normal: n, U: u, V: v}, true
}

// cubeFace recovers the face a surface point lies on. Faces are checked in
// the order x-, x+, y-, y+, z-, z+ and the first within CloseEps wins.
func cubeFace(p mgl64.Vec3) (n mgl64.Vec3, u, v float64) {
	switch {
	case mathutil.Close(p[0], 0):
		return mgl64.Vec3{-1, 0, 0}, p[2], p[1]
	case mathutil.Close(p[0], 1):
		return mgl64.Vec3{1, 0, 0}, p[2], p[1]
	case mathutil.Close(p[1], 0):
		return mgl64.Vec3{0, -1, 0}, p[0], p[2]
	case mathutil.Close(p[1], 1):
		return mgl64.Vec3{0, 1, 0}, p[0], p[2]
	case mathutil.Close(p[2], 0):
		return mgl64.Vec3{0, 0, -1}, p[0], p[1]
	}
	return mgl64.Vec3{0, 0, 1}, p[0], p[1]
}
