package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrDegenerateTriangle is returned for faces with zero area.
var ErrDegenerateTriangle = errors.New("degenerate triangle")

// Mesh is an immutable triangle set with a precomputed bounding box used
// to reject rays before per-triangle tests.
type Mesh struct {
	Vertices []mgl64.Vec3
	Faces    [][3]int

	// Bounding box corner and extent.
	Min  mgl64.Vec3
	Size mgl64.Vec3

	tris []triangle
}

// NewMesh validates faces against vertices and computes the bounding box.
func NewMesh(vertices []mgl64.Vec3, faces [][3]int) (*Mesh, error) {
	if len(faces) == 0 {
		return nil, errors.New("mesh: no faces")
	}

	m := &Mesh{Vertices: vertices, Faces: faces, tris: make([]triangle, len(faces))}
	for i, f := range faces {
		for _, idx := range f {
			if idx < 0 || idx >= len(vertices) {
				return nil, fmt.Errorf("mesh: face %d: vertex index %d out of range [0,%d)", i, idx, len(vertices))
			}
		}
		v0, v1, v2 := vertices[f[0]], vertices[f[1]], vertices[f[2]]
		if v1.Sub(v0).Cross(v2.Sub(v0)).Len() == 0 {
			return nil, fmt.Errorf("mesh: face %d: %w", i, ErrDegenerateTriangle)
		}
		m.tris[i] = newTriangle(v0, v1, v2)
	}
	m.Min, m.Size = boundingBox(vertices)
	return m, nil
}

func boundingBox(vs []mgl64.Vec3) (corner, size mgl64.Vec3) {
	lo := mgl64.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi := mgl64.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, v := range vs {
		for i := 0; i < 3; i++ {
			lo[i] = math.Min(lo[i], v[i])
			hi[i] = math.Max(hi[i], v[i])
		}
	}
	return lo, hi.Sub(lo)
}

// Collide returns the closest front-facing triangle hit.
func (m *Mesh) Collide(r Ray) (Hit, bool) {
	if _, ok := AABBHit(r, m.Min, m.Size); !ok {
		return Hit{}, false
	}

	best := Hit{T: math.Inf(1)}
	found := false
	for _, tri := range m.tris {
		if h, ok := tri.collide(r); ok && h.T < best.T {
			best = h
			found = true
		}
	}
	return best, found
}
