package geometry

import "github.com/go-gl/mathgl/mgl64"

// Hit is a successful collision in the frame of the ray that produced it.
// Normal is not necessarily unit length.
type Hit struct {
	T      float64
	Normal mgl64.Vec3
	U, V   float64
}
