package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"scenetrace/internal/mathutil"
)

// Intersection is the nearest hit found under a node. T is the parameter in
// the local frame where the hit was found and must not be compared across
// frames; Point and Normal are expressed in the caller's frame.
type Intersection struct {
	T      float64
	Point  mgl64.Vec3
	Normal mgl64.Vec3
	Node   *Node
	U, V   float64
}

// toParent maps the point through the forward transform and the normal
// through the transpose of the inverse.
func (i Intersection) toParent(a mathutil.Affine) Intersection {
	i.Point = a.Point(i.Point)
	i.Normal = a.Normal(i.Normal)
	return i
}
