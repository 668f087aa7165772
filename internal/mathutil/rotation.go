package mathutil

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrUnknownAxis is returned for rotation axis labels other than x, y or z.
var ErrUnknownAxis = errors.New("unknown rotation axis")

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}

// AxisRotation returns the homogeneous rotation about the labelled axis.
// Angle in degrees. Labels are case-insensitive single letters.
func AxisRotation(axis string, deg float64) (mgl64.Mat4, error) {
	a := Deg2Rad(deg)
	switch axis {
	case "x", "X":
		return mgl64.HomogRotate3DX(a), nil
	case "y", "Y":
		return mgl64.HomogRotate3DY(a), nil
	case "z", "Z":
		return mgl64.HomogRotate3DZ(a), nil
	}
	return mgl64.Ident4(), fmt.Errorf("mathutil: rotate %q: %w", axis, ErrUnknownAxis)
}
