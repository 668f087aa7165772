package geometry

// Kind tags the variant held by a Primitive.
type Kind int

const (
	None Kind = iota
	Sphere
	Cube
	Cylinder
	Cone
	MeshKind
)

var kindNames = [...]string{"none", "sphere", "cube", "cylinder", "cone", "mesh"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Primitive is a closed set of shapes in local unit coordinates:
//
//	Sphere    unit sphere at the origin
//	Cube      axis-aligned [0,1]³
//	Cylinder  x²+y²=1 for z in [-1,1], capped
//	Cone      x²+z²=y² for y in [0,1], apex at the origin, capped at y=1
//	MeshKind  triangles in Mesh
//
// The zero value is None and never collides.
type Primitive struct {
	Kind Kind
	Mesh *Mesh
}

// NewMeshPrimitive wraps a loaded mesh.
func NewMeshPrimitive(m *Mesh) Primitive {
	return Primitive{Kind: MeshKind, Mesh: m}
}

// Collide tests r, given in the primitive's local frame.
func (p Primitive) Collide(r Ray) (Hit, bool) {
	switch p.Kind {
	case Sphere:
		return sphereCollide(r)
	case Cube:
		return cubeCollide(r)
	case Cylinder:
		return cylinderCollide(r)
	case Cone:
		return UnitCone.Collide(r)
	case MeshKind:
		if p.Mesh == nil {
			return Hit{}, false
		}
		return p.Mesh.Collide(r)
	}
	return Hit{}, false
}

func (p Primitive) String() string {
	return p.Kind.String()
}
