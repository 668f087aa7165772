package mathutil

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// closeTo compares with an absolute tolerance; mgl64's relative check
// degenerates to eps² against exact zeros.
func closeTo(a, b mgl64.Vec3, eps float64) bool {
	return a.Sub(b).Len() < eps
}

func matCloseTo(a, b mgl64.Mat4, eps float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) >= eps {
			return false
		}
	}
	return true
}

func TestSolveQuadratic(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c float64
		want    []float64
	}{
		{"two roots", 1, -3, 2, []float64{1, 2}},
		{"two roots negative b", 1, 3, 2, []float64{-2, -1}},
		{"double root", 1, -2, 1, []float64{1}},
		{"no real roots", 1, 0, 1, nil},
		{"linear", 0, 2, -4, []float64{2}},
		{"degenerate", 0, 0, 1, nil},
		{"zero constant", 1, -1, 0, []float64{0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roots, n := SolveQuadratic(tt.a, tt.b, tt.c)
			if n != len(tt.want) {
				t.Fatalf("got %d roots, want %d", n, len(tt.want))
			}
			for i, w := range tt.want {
				if math.Abs(roots[i]-w) > 1e-9 {
					t.Errorf("root %d = %v, want %v", i, roots[i], w)
				}
			}
		})
	}
}

func TestAffineInverseStaysInSync(t *testing.T) {
	a, err := Identity().Scale(2, 0.5, 3)
	if err != nil {
		t.Fatal(err)
	}
	a, err = a.Rotate("y", 30)
	if err != nil {
		t.Fatal(err)
	}
	a = a.Translate(1, -2, 5)
	a, err = a.Rotate("X", -90)
	if err != nil {
		t.Fatal(err)
	}

	if !matCloseTo(a.Forward.Mul4(a.Inverse), mgl64.Ident4(), 1e-9) {
		t.Errorf("Forward·Inverse is not identity:\n%v", a.Forward.Mul4(a.Inverse))
	}
	if !matCloseTo(a.Inverse, a.Forward.Inv(), 1e-9) {
		t.Errorf("Inverse drifted from Forward.Inv()")
	}

	p := mgl64.Vec3{0.3, -1.2, 4}
	if got := a.InvPoint(a.Point(p)); !closeTo(got, p, 1e-9) {
		t.Errorf("round trip point = %v, want %v", got, p)
	}
}

func TestAffineOrder(t *testing.T) {
	// Scale then translate: the translation is not scaled.
	a, _ := Identity().Scale(2, 2, 2)
	a = a.Translate(1, 0, 0)
	if got := a.Point(mgl64.Vec3{1, 0, 0}); !closeTo(got, mgl64.Vec3{3, 0, 0}, 1e-12) {
		t.Errorf("Point = %v, want (3,0,0)", got)
	}

	b := Identity().Translate(1, 0, 0)
	c := a.Compose(b)
	if got := c.Point(mgl64.Vec3{}); !closeTo(got, mgl64.Vec3{3, 0, 0}, 1e-12) {
		t.Errorf("Compose Point = %v, want (3,0,0)", got)
	}
}

func TestAffineNormalNonUniformScale(t *testing.T) {
	a, _ := Identity().Scale(4, 1, 1)
	// The plane x + y = 0 has normal (1,1,0); scaled by 4 in x its
	// normal becomes (1,4,0) normalized.
	got := a.Normal(mgl64.Vec3{1, 1, 0})
	want := mgl64.Vec3{1, 4, 0}.Normalize()
	if !closeTo(got, want, 1e-12) {
		t.Errorf("Normal = %v, want %v", got, want)
	}
}

func TestDegenerateTransforms(t *testing.T) {
	if _, err := Identity().Scale(1, 0, 1); !errors.Is(err, ErrSingularTransform) {
		t.Errorf("zero scale err = %v, want ErrSingularTransform", err)
	}
	if _, err := Identity().Rotate("w", 10); !errors.Is(err, ErrUnknownAxis) {
		t.Errorf("bad axis err = %v, want ErrUnknownAxis", err)
	}
	if _, err := AxisRotation("", 10); !errors.Is(err, ErrUnknownAxis) {
		t.Errorf("empty axis err = %v, want ErrUnknownAxis", err)
	}
}
