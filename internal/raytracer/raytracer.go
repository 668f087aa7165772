// Package raytracer drives the per-pixel render loop: primary rays from the
// camera, nearest hit through the scene tree, surface shading or sky, then
// every volume in order.
package raytracer

import (
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"scenetrace/internal/geometry"
	"scenetrace/internal/postprocess"
	"scenetrace/internal/raster"
	"scenetrace/internal/rgb"
	"scenetrace/internal/scene"
	"scenetrace/internal/volume"
)

// DefaultFovY is the vertical field of view in degrees when none is given.
const DefaultFovY = 30

// Raytracer owns everything a render reads. None of it is modified while
// Render runs.
type Raytracer struct {
	Root scene.Node

	Eye  mgl64.Vec3
	View mgl64.Vec3
	Up   mgl64.Vec3
	FovY float64

	Ambient rgb.Color
	Lights  []scene.Light
	Volumes []volume.Solid

	Options Options
	Logger  Logger
}

// New returns a raytracer with an empty root, the camera at the origin
// looking down -z, and every option enabled.
func New() *Raytracer {
	return &Raytracer{
		Root:    scene.NewNode(0, "root"),
		View:    mgl64.Vec3{0, 0, -1},
		Up:      mgl64.Vec3{0, 1, 0},
		FovY:    DefaultFovY,
		Options: DefaultOptions(),
		Logger:  NopLogger{},
	}
}

func (rt *Raytracer) logger() Logger {
	if rt.Logger == nil {
		return NopLogger{}
	}
	return rt.Logger
}

// Render traces a width×height image. With supersampling the trace runs at
// the larger size and is filtered down before returning.
func (rt *Raytracer) Render(width, height int) (*raster.FrameBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("raytracer: invalid size %dx%d", width, height)
	}
	factor := rt.Options.supersample()
	rw, rh := postprocess.Factor(width, height, factor)

	cam, err := newCamera(rt.Eye, rt.View, rt.Up, rt.FovY, rw, rh)
	if err != nil {
		return nil, err
	}
	fb, err := raster.NewFrameBuffer(rw, rh)
	if err != nil {
		return nil, err
	}

	log := rt.logger()
	log.Printf("Rendering %dx%d (x%d): eye %v, view %v, up %v\n", width, height, factor, rt.Eye, rt.View, rt.Up)

	ctx := &scene.Context{
		Root:           &rt.Root,
		Eye:            rt.Eye,
		Ambient:        rt.Ambient,
		Lights:         rt.Lights,
		ShadowRays:     rt.Options.ShadowRays,
		TextureMapping: rt.Options.TextureMapping,
		PhongLighting:  rt.Options.PhongLighting,
	}

	var processed atomic.Int64
	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					log.Printf("  [%d/%d] %.1f rows/sec\n", p, rh, float64(p)/elapsed)
				}
			}
		}
	}()

	// Worker pool over rows
	workers := rt.Options.workers()
	rows := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				rt.renderRow(fb, cam, ctx, y)
				processed.Add(1)
			}
		}()
	}

	for y := 0; y < rh; y++ {
		rows <- y
	}
	close(rows)
	wg.Wait()
	close(done)

	log.Printf("Rendered %d rows in %s\n", rh, time.Since(start).Round(time.Millisecond))

	if factor > 1 {
		fb = raster.FromImage(postprocess.Downsample(fb.Image(), width, height))
	}
	return fb, nil
}

// renderRow traces every pixel of row y. Each row has its own generator so
// the star field does not depend on scheduling.
func (rt *Raytracer) renderRow(fb *raster.FrameBuffer, cam camera, ctx *scene.Context, y int) {
	rng := rand.New(rand.NewSource(rt.Options.Seed + int64(y)))
	for x := 0; x < fb.Width; x++ {
		fb.Set(x, y, rt.trace(cam.ray(x, y), ctx, y, fb.Height, rng))
	}
}

// trace resolves one primary ray.
func (rt *Raytracer) trace(r geometry.Ray, ctx *scene.Context, y, height int, rng *rand.Rand) rgb.Color {
	var c rgb.Color
	var surface *scene.Intersection
	if hit, ok := rt.Root.Intersect(r); ok {
		c = hit.Node.Material.Shade(r, ctx, hit)
		surface = &hit
	} else {
		c = Background(y, height, rng)
	}
	return volume.ApplyAll(rt.Volumes, r, surface, c)
}
