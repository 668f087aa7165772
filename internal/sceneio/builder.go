package sceneio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"scenetrace/internal/geometry"
	"scenetrace/internal/raytracer"
	"scenetrace/internal/scene"
	"scenetrace/internal/texture"
	"scenetrace/internal/volume"
)

// ErrInvalidScene is wrapped by every structural error in a description.
var ErrInvalidScene = errors.New("invalid scene")

// Scene is a fully built description: a raytracer ready to render plus the
// images requested from it.
type Scene struct {
	Path      string
	Raytracer *raytracer.Raytracer
	Renders   []RenderCfg
}

// Builder turns a File into a Scene. It owns the node id counter, so ids
// are unique within one build and assigned depth-first, parent first.
type Builder struct {
	// Dir is the directory relative paths resolve against.
	Dir string
	// Textures resolves texture names; a cache without an index is used
	// when nil.
	Textures texture.Resolver
	// Logger, when set, receives one line per applied transform.
	Logger raytracer.Logger

	nextID    uint32
	materials map[string]scene.Material
	meshes    map[string]*geometry.Mesh
}

// NewBuilder returns a builder resolving paths against dir.
func NewBuilder(dir string, textures texture.Resolver, logger raytracer.Logger) *Builder {
	return &Builder{Dir: dir, Textures: textures, Logger: logger}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("sceneio: %s: %w", fmt.Sprintf(format, args...), ErrInvalidScene)
}

// Build validates f and constructs every part of the scene. Nothing is
// rendered, so all input errors surface here.
func (b *Builder) Build(f *File) (*Scene, error) {
	b.nextID = 0
	b.meshes = make(map[string]*geometry.Mesh)
	if b.Textures == nil {
		b.Textures = texture.NewCache(nil)
	}

	if err := b.buildMaterials(f.Materials); err != nil {
		return nil, err
	}

	root, err := b.buildNode(f.Root)
	if err != nil {
		return nil, err
	}

	rt := raytracer.New()
	rt.Root = root
	rt.Ambient = f.Ambient.color()

	rt.Eye = f.Camera.Eye.vec()
	if f.Camera.View != nil {
		rt.View = f.Camera.View.vec()
	}
	if f.Camera.Up != nil {
		rt.Up = f.Camera.Up.vec()
	}
	if f.Camera.Fov != 0 {
		rt.FovY = f.Camera.Fov
	}

	for i, lc := range f.Lights {
		l, err := buildLight(lc)
		if err != nil {
			return nil, fmt.Errorf("sceneio: light %d: %w", i, err)
		}
		rt.Lights = append(rt.Lights, l)
	}

	for i, vc := range f.Volumes {
		s, err := buildVolume(vc)
		if err != nil {
			return nil, fmt.Errorf("sceneio: volume %d: %w", i, err)
		}
		rt.Volumes = append(rt.Volumes, s)
	}

	for i, r := range f.Renders {
		if r.Output == "" {
			return nil, invalid("render %d: missing output", i)
		}
		if r.Width <= 0 || r.Height <= 0 {
			return nil, invalid("render %d: size %dx%d", i, r.Width, r.Height)
		}
	}

	return &Scene{Raytracer: rt, Renders: f.Renders}, nil
}

// path resolves p against the builder directory.
func (b *Builder) path(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(b.Dir, p)
}

func (b *Builder) buildMaterials(cfgs map[string]MaterialCfg) error {
	b.materials = make(map[string]scene.Material, len(cfgs))
	for name, mc := range cfgs {
		if mc.Texture == "" {
			b.materials[name] = scene.NewPhong(mc.Kd.color(), mc.Ks.color(), mc.Shininess)
			continue
		}
		tex, err := b.loadTexture(mc)
		if err != nil {
			return fmt.Errorf("sceneio: material %q: %w", name, err)
		}
		b.materials[name] = scene.NewTextured(tex, mc.Ks.color(), mc.Shininess)
	}
	return nil
}

// loadTexture tries the name as a path under Dir first, then as given,
// which lets the resolver fall back to its stem index.
func (b *Builder) loadTexture(mc MaterialCfg) (*texture.Texture, error) {
	filter, err := texture.ParseFilter(mc.Filter)
	if err != nil {
		return nil, err
	}
	name := mc.Texture
	if p := b.path(name); fileExists(p) {
		name = p
	}
	img, err := b.Textures.Resolve(name)
	if err != nil {
		return nil, err
	}

	uMax, vMax := mc.UMax, mc.VMax
	if uMax == 0 {
		uMax = 1
	}
	if vMax == 0 {
		vMax = 1
	}
	return texture.New(img, uMax, vMax, filter)
}

func fileExists(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}

func (b *Builder) buildNode(nc NodeCfg) (scene.Node, error) {
	n := scene.NewNode(b.nextID, nc.Name)
	b.nextID++

	prim, err := b.primitive(nc)
	if err != nil {
		return n, fmt.Errorf("sceneio: node %q: %w", nc.Name, err)
	}
	n.Primitive = prim

	if nc.Material != "" {
		m, ok := b.materials[nc.Material]
		if !ok {
			return n, invalid("node %q: unknown material %q", nc.Name, nc.Material)
		}
		n.Material = m
	}

	for i, tc := range nc.Transforms {
		if err := b.applyTransform(&n, tc); err != nil {
			return n, fmt.Errorf("sceneio: node %q: transform %d: %w", nc.Name, i, err)
		}
	}

	for _, cc := range nc.Children {
		child, err := b.buildNode(cc)
		if err != nil {
			return n, err
		}
		n.AddChild(child)
	}
	return n, nil
}

func (b *Builder) primitive(nc NodeCfg) (geometry.Primitive, error) {
	if nc.File != "" && nc.Type != "mesh" {
		return geometry.Primitive{}, invalid("file is only valid on mesh nodes")
	}
	switch nc.Type {
	case "", "node":
		return geometry.Primitive{}, nil
	case "sphere":
		return geometry.Primitive{Kind: geometry.Sphere}, nil
	case "cube":
		return geometry.Primitive{Kind: geometry.Cube}, nil
	case "cylinder":
		return geometry.Primitive{Kind: geometry.Cylinder}, nil
	case "cone":
		return geometry.Primitive{Kind: geometry.Cone}, nil
	case "mesh":
		if nc.File == "" {
			return geometry.Primitive{}, invalid("mesh without file")
		}
		m, err := b.mesh(b.path(nc.File))
		if err != nil {
			return geometry.Primitive{}, err
		}
		return geometry.NewMeshPrimitive(m), nil
	}
	return geometry.Primitive{}, invalid("unknown node type %q", nc.Type)
}

// mesh loads each file once per build; nodes share the read-only data.
func (b *Builder) mesh(path string) (*geometry.Mesh, error) {
	if m, ok := b.meshes[path]; ok {
		return m, nil
	}
	m, err := geometry.LoadMesh(path)
	if err != nil {
		return nil, err
	}
	b.meshes[path] = m
	return m, nil
}

func (b *Builder) applyTransform(n *scene.Node, tc TransformCfg) error {
	set := 0
	for _, ok := range []bool{tc.Scale != nil, tc.Rotate != nil, tc.Translate != nil} {
		if ok {
			set++
		}
	}
	if set != 1 {
		return invalid("want exactly one of scale, rotate, translate; got %d", set)
	}

	switch {
	case tc.Scale != nil:
		s := tc.Scale
		b.logf("Applying scaling to %s of (%g, %g, %g)\n", n.Name, s[0], s[1], s[2])
		return n.Scale(s[0], s[1], s[2])
	case tc.Rotate != nil:
		b.logf("Applying rotation to %s of %g about %s\n", n.Name, tc.Rotate.Angle, tc.Rotate.Axis)
		return n.Rotate(tc.Rotate.Axis, tc.Rotate.Angle)
	default:
		t := tc.Translate
		b.logf("Applying translation to %s of (%g, %g, %g)\n", n.Name, t[0], t[1], t[2])
		n.Translate(t[0], t[1], t[2])
		return nil
	}
}

func (b *Builder) logf(format string, args ...any) {
	if b.Logger != nil {
		b.Logger.Printf(format, args...)
	}
}

func buildLight(lc LightCfg) (scene.Light, error) {
	falloff := [3]float64{1, 0, 0}
	if lc.Falloff != nil {
		falloff = *lc.Falloff
	}
	if falloff[0] < 0 || falloff[1] < 0 || falloff[2] < 0 || falloff == [3]float64{} {
		return scene.Light{}, invalid("falloff %v must be non-negative and not all zero", falloff)
	}
	l := scene.NewLight(lc.Color.color(), lc.Position.vec(), falloff)
	if lc.Soft != nil {
		if lc.Soft.Radius < 0 || lc.Soft.Samples < 0 {
			return scene.Light{}, invalid("soft radius %g, samples %d", lc.Soft.Radius, lc.Soft.Samples)
		}
		l.SetSoft(lc.Soft.Radius, lc.Soft.Samples)
	}
	return l, nil
}

func buildVolume(vc VolumeCfg) (volume.Solid, error) {
	effect, err := buildEffect(vc.Effect)
	if err != nil {
		return volume.Solid{}, err
	}

	switch {
	case vc.Box != nil && vc.Cone != nil:
		return volume.Solid{}, invalid("both box and cone given")
	case vc.Box != nil:
		v := volume.NewBox(vc.Box.Position.vec(), vc.Box.Size.vec())
		return volume.Solid{Volume: v, Effect: effect}, nil
	case vc.Cone != nil:
		c := vc.Cone
		scaleY := c.ScaleY
		if scaleY == 0 {
			scaleY = 1
		}
		v, err := volume.NewCone(volume.ConeParams{
			Pos:    c.Position.vec(),
			ScaleY: scaleY,
			Rot:    [3]float64(c.Rotate),
			Height: c.Height,
		})
		if err != nil {
			return volume.Solid{}, err
		}
		return volume.Solid{Volume: v, Effect: effect}, nil
	}
	return volume.Solid{}, invalid("volume needs a box or a cone")
}

func buildEffect(ec EffectCfg) (volume.Effect, error) {
	var out volume.Effect
	set := 0
	for _, e := range []struct {
		kind volume.EffectKind
		c    *Vec3
	}{
		{volume.FogEffect, ec.Fog},
		{volume.LightEffect, ec.Light},
		{volume.SolidEffect, ec.Solid},
	} {
		if e.c != nil {
			out = volume.Effect{Kind: e.kind, Color: e.c.color()}
			set++
		}
	}
	if set > 1 {
		return volume.Effect{}, invalid("effect sets %d colors, want at most one", set)
	}
	return out, nil
}
