package raytracer

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"scenetrace/internal/geometry"
	"scenetrace/internal/rgb"
	"scenetrace/internal/scene"
	"scenetrace/internal/volume"
)

func closeTo(a, b mgl64.Vec3, eps float64) bool {
	return a.Sub(b).Len() < eps
}

// sphereScene is a red unit sphere at the origin seen from (0,0,2), lit
// from the upper right.
func sphereScene() *Raytracer {
	rt := New()
	sphere := scene.NewNode(1, "sphere")
	sphere.Primitive = geometry.Primitive{Kind: geometry.Sphere}
	sphere.Material = scene.NewPhong(rgb.New(1, 0, 0), rgb.Black, 10)
	rt.Root.AddChild(sphere)

	rt.Eye = mgl64.Vec3{0, 0, 2}
	rt.View = mgl64.Vec3{0, 0, -1}
	// Wide enough that the whole sphere fits in the frame.
	rt.FovY = 90
	rt.Ambient = rgb.Gray(0.1)
	rt.Lights = []scene.Light{scene.NewLight(rgb.White, mgl64.Vec3{2, 2, 2}, [3]float64{1, 0, 0})}
	rt.Options.Workers = 4
	return rt
}

func TestRenderSphereScene(t *testing.T) {
	const size = 64
	fb, err := sphereScene().Render(size, size)
	if err != nil {
		t.Fatal(err)
	}
	if fb.Width != size || fb.Height != size {
		t.Fatalf("size %dx%d", fb.Width, fb.Height)
	}

	// Sky and stars always have a green component; the sphere never does.
	onSphere := func(x, y int) bool {
		r, g, b := fb.At(x, y)
		return r > 0 && g == 0 && b == 0
	}

	var n int
	var cx, cy float64
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if onSphere(x, y) {
				n++
				cx += float64(x)
				cy += float64(y)
			}
		}
	}
	if n == 0 {
		t.Fatal("no sphere pixels")
	}
	cx /= float64(n)
	cy /= float64(n)

	// The silhouette subtends 30° of a 45° half-angle: radius ≈ 0.577·32.
	radius := math.Tan(math.Pi/6) / math.Tan(math.Pi/4) * size / 2
	wantN := math.Pi * radius * radius
	if math.Abs(float64(n)-wantN) > 0.1*wantN {
		t.Errorf("sphere covers %d pixels, want about %.0f", n, wantN)
	}
	if math.Abs(cx-31.5) > 0.5 || math.Abs(cy-31.5) > 0.5 {
		t.Errorf("silhouette centered at (%.2f, %.2f)", cx, cy)
	}
	for _, p := range [][2]int{{0, 0}, {63, 0}, {0, 63}, {63, 63}} {
		if onSphere(p[0], p[1]) {
			t.Errorf("corner %v is on the sphere", p)
		}
	}

	// Upper right faces the light, lower left only gets ambient.
	lit, _, _ := fb.At(42, 22)
	dark, _, _ := fb.At(22, 42)
	if lit <= dark {
		t.Errorf("light-facing side %d not brighter than far side %d", lit, dark)
	}
	if want, _, _ := (rgb.Color{R: 0.1}).RGB8(); dark != want {
		t.Errorf("far side = %d, want ambient only %d", dark, want)
	}
}

func TestRenderDeterministicAcrossWorkers(t *testing.T) {
	a := sphereScene()
	a.Options.Workers = 1
	a.Options.Seed = 7
	b := sphereScene()
	b.Options.Workers = 8
	b.Options.Seed = 7

	fa, err := a.Render(32, 24)
	if err != nil {
		t.Fatal(err)
	}
	fb, err := b.Render(32, 24)
	if err != nil {
		t.Fatal(err)
	}
	for i := range fa.Pix {
		if fa.Pix[i] != fb.Pix[i] {
			t.Fatalf("renders differ at byte %d", i)
		}
	}
}

func TestRenderSupersampleKeepsOutputSize(t *testing.T) {
	rt := sphereScene()
	rt.Options.Supersample = 2
	fb, err := rt.Render(20, 10)
	if err != nil {
		t.Fatal(err)
	}
	if fb.Width != 20 || fb.Height != 10 || len(fb.Pix) != 20*10*3 {
		t.Errorf("got %dx%d with %d bytes", fb.Width, fb.Height, len(fb.Pix))
	}
}

func TestRenderAppliesVolumesToSky(t *testing.T) {
	rt := New()
	rt.Volumes = []volume.Solid{{
		Volume: volume.NewBox(mgl64.Vec3{-50, -50, -50}, mgl64.Vec3{100, 100, 100}),
		Effect: volume.Effect{Kind: volume.SolidEffect, Color: rgb.New(0, 0, 1)},
	}}
	fb, err := rt.Render(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if r, g, b := fb.At(x, y); r != 0 || g != 0 || b != 255 {
				t.Fatalf("pixel (%d,%d) = %d,%d,%d, want solid blue", x, y, r, g, b)
			}
		}
	}
}

func TestRenderRejectsBadInput(t *testing.T) {
	rt := New()
	if _, err := rt.Render(0, 10); err == nil {
		t.Error("zero width should fail")
	}

	rt.Up = mgl64.Vec3{0, 0, 1} // parallel to the view direction
	if _, err := rt.Render(4, 4); !errors.Is(err, ErrDegenerateCamera) {
		t.Errorf("err = %v, want ErrDegenerateCamera", err)
	}

	rt = New()
	rt.View = rt.Eye
	if _, err := rt.Render(4, 4); !errors.Is(err, ErrDegenerateCamera) {
		t.Errorf("err = %v, want ErrDegenerateCamera", err)
	}
}

func TestCameraDirections(t *testing.T) {
	cam, err := newCamera(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{1, 2, -7}, mgl64.Vec3{0, 1, 0}, 60, 100, 50)
	if err != nil {
		t.Fatal(err)
	}

	// The image center (between pixels 49 and 50) looks straight ahead.
	mid := cam.dir(49, 24).Add(cam.dir(50, 25)).Normalize()
	if !closeTo(mid, mgl64.Vec3{0, 0, -1}, 1e-3) {
		t.Errorf("center direction = %v", mid)
	}

	left, right := cam.dir(0, 25), cam.dir(99, 25)
	if left[0] >= 0 || right[0] <= 0 {
		t.Errorf("x ordering wrong: left %v right %v", left, right)
	}
	top, bottom := cam.dir(50, 0), cam.dir(50, 49)
	if top[1] <= 0 || bottom[1] >= 0 {
		t.Errorf("y ordering wrong: top %v bottom %v", top, bottom)
	}

	// Vertical extent matches the field of view.
	edge := cam.dir(50, 0)
	angle := math.Atan2(edge[1], -edge[2])
	halfPixel := math.Atan(math.Tan(math.Pi/6) * (1 - 1.0/50))
	if math.Abs(angle-halfPixel) > 1e-3 {
		t.Errorf("top row angle = %v, want %v", angle, halfPixel)
	}
}

func TestBackgroundGradient(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const h = 100

	// Below the star band the gradient is exact.
	for _, y := range []int{60, 80, 99} {
		rate := float64(y)/h - skyStart
		want := skyColor.Scale(rate)
		if got := Background(y, h, rng); got != want {
			t.Errorf("row %d = %v, want %v", y, got, want)
		}
	}

	// The top of the image is black apart from stars.
	stars := 0
	for i := 0; i < 10000; i++ {
		c := Background(0, h, rng)
		if c == rgb.Black {
			continue
		}
		stars++
		if c.R != c.G || c.G != c.B || c.R < 55.0/255 {
			t.Fatalf("star color %v is not a bright gray", c)
		}
	}
	if stars == 0 || stars > 150 {
		t.Errorf("%d stars in 10000 draws, want about 50", stars)
	}
}
