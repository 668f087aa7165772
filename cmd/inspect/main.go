package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"scenetrace/internal/geometry"
	"scenetrace/internal/mathutil"
	"scenetrace/internal/scene"
	"scenetrace/internal/sceneio"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: inspect <scene.json | mesh.obj>")
		os.Exit(2)
	}
	path := os.Args[1]

	var err error
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = inspectScene(path)
	} else {
		err = inspectMesh(path)
	}
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func inspectScene(path string) error {
	s, err := sceneio.Load(path, nil, nil)
	if err != nil {
		return err
	}
	rt := s.Raytracer

	fmt.Printf("Scene: %s\n", path)
	rt.Root.Walk(func(n *scene.Node, depth int, world mathutil.Affine) {
		t := world.Translation()
		fmt.Printf("%s[%d] %q %s material=%s at (%.2f, %.2f, %.2f)\n",
			strings.Repeat("  ", depth), n.ID, n.Name, n.Primitive, n.Material.Kind, t[0], t[1], t[2])
	})
	fmt.Printf("Nodes: %d, Lights: %d, Volumes: %d\n", rt.Root.Count(), len(rt.Lights), len(rt.Volumes))
	for i, l := range rt.Lights {
		fmt.Printf("  Light[%d]: pos=%v color=%v falloff=%v samples=%d\n", i, l.Position, l.Color, l.Falloff, len(l.Samples))
	}
	for i, v := range rt.Volumes {
		fmt.Printf("  Volume[%d]: %s %s %v\n", i, v.Volume.Kind, v.Effect.Kind, v.Effect.Color)
	}
	fmt.Printf("Camera: eye=%v view=%v up=%v fov=%.1f\n", rt.Eye, rt.View, rt.Up, rt.FovY)
	for _, r := range s.Renders {
		fmt.Printf("  Render: %s %dx%d\n", r.Output, r.Width, r.Height)
	}
	return nil
}

func inspectMesh(path string) error {
	m, err := geometry.LoadMesh(path)
	if err != nil {
		return err
	}
	hi := m.Min.Add(m.Size)
	fmt.Printf("Mesh: %s\n", path)
	fmt.Printf("  Vertices: %d, Faces: %d\n", len(m.Vertices), len(m.Faces))
	fmt.Printf("  BBox: X[%.2f, %.2f] Y[%.2f, %.2f] Z[%.2f, %.2f]\n",
		m.Min[0], hi[0], m.Min[1], hi[1], m.Min[2], hi[2])
	fmt.Printf("  Size: %.2f x %.2f x %.2f\n", m.Size[0], m.Size[1], m.Size[2])

	// Surface area grouped by the dominant axis of each face normal
	areaByDir := map[string]float64{}
	total := 0.0
	for _, f := range m.Faces {
		v0, v1, v2 := m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]
		c := v1.Sub(v0).Cross(v2.Sub(v0))
		area := 0.5 * c.Len()
		areaByDir[dominant(c)] += area
		total += area
	}
	fmt.Println("  --- Surface area by direction ---")
	for _, d := range []string{"+X", "-X", "+Y", "-Y", "+Z", "-Z"} {
		fmt.Printf("  %s: %.2f sq units\n", d, areaByDir[d])
	}
	fmt.Printf("  Total: %.2f sq units\n", total)
	return nil
}

func dominant(n mgl64.Vec3) string {
	ax, ay, az := math.Abs(n[0]), math.Abs(n[1]), math.Abs(n[2])
	switch {
	case ax >= ay && ax >= az:
		if n[0] > 0 {
			return "+X"
		}
		return "-X"
	case ay >= az:
		if n[1] > 0 {
			return "+Y"
		}
		return "-Y"
	default:
		if n[2] > 0 {
			return "+Z"
		}
		return "-Z"
	}
}
