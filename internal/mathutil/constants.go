package mathutil

// Ray parameters at or below these thresholds are treated as behind the ray
// origin. They suppress self-intersection when shadow rays start on a surface.
const (
	SphereEps   = 1e-4
	CylinderEps = 1e-4
	CubeEps     = 1e-4
	ConeEps     = 1e-4
	TriangleEps = 1e-7

	// CloseEps is the face-plane tolerance used to recover cube normals.
	CloseEps = 1e-3
)

// Close reports whether a and b differ by less than CloseEps.
func Close(a, b float64) bool {
	d := a - b
	return d < CloseEps && d > -CloseEps
}
