package raytracer

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"scenetrace/internal/geometry"
	"scenetrace/internal/mathutil"
)

// ErrDegenerateCamera is returned when eye, view and up do not define a frame.
var ErrDegenerateCamera = errors.New("degenerate camera")

// zNear is the camera-space depth of the image plane.
const zNear = -1.0

// camera turns pixel centers into world-space primary rays.
type camera struct {
	eye     mgl64.Vec3
	toWorld mgl64.Mat4
	side    float64
	w, h    float64
}

func newCamera(eye, view, up mgl64.Vec3, fovY float64, width, height int) (camera, error) {
	fwd := view.Sub(eye)
	if fwd.Len() == 0 || fwd.Cross(up).Len() < 1e-12 {
		return camera{}, fmt.Errorf("raytracer: eye %v, view %v, up %v: %w", eye, view, up, ErrDegenerateCamera)
	}
	if !(fovY > 0 && fovY < 180) {
		return camera{}, fmt.Errorf("raytracer: fov %g: %w", fovY, ErrDegenerateCamera)
	}
	// LookAtV is the world-to-camera transform; rays need the inverse.
	toWorld := mgl64.LookAtV(eye, view, up).Inv()
	return camera{
		eye:     eye,
		toWorld: toWorld,
		side:    -2 * math.Tan(mathutil.Deg2Rad(fovY)/2),
		w:       float64(width),
		h:       float64(height),
	}, nil
}

// dir returns the world-space direction through the center of pixel (x, y).
// Row 0 is the top of the image.
func (c camera) dir(x, y int) mgl64.Vec3 {
	fx := float64(x) + 0.5
	fy := float64(y) + 0.5
	d := mgl64.Vec3{
		zNear * (fx/c.w - 0.5) * c.side * c.w / c.h,
		zNear * -(fy/c.h - 0.5) * c.side,
		zNear,
	}
	return c.toWorld.Mul4x1(d.Vec4(0)).Vec3().Normalize()
}

// ray is the primary ray through pixel (x, y). The camera-space direction
// always has z = zNear, so it is never zero.
func (c camera) ray(x, y int) geometry.Ray {
	return geometry.Ray{Src: c.eye, Dir: c.dir(x, y)}
}
