package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"scenetrace/internal/geometry"
	"scenetrace/internal/rgb"
	"scenetrace/internal/texture"
)

// MaterialKind tags the variant held by a Material.
type MaterialKind int

const (
	NoMaterial MaterialKind = iota
	Phong
	PhongTextured
)

func (k MaterialKind) String() string {
	switch k {
	case Phong:
		return "phong"
	case PhongTextured:
		return "phong-texture"
	}
	return "none"
}

// Material is a Phong surface. Textured materials take kd from Texture.
// The zero value is NoMaterial and shades black.
type Material struct {
	Kind      MaterialKind
	Kd, Ks    rgb.Color
	Shininess float64
	Texture   *texture.Texture
}

func NewPhong(kd, ks rgb.Color, shininess float64) Material {
	return Material{Kind: Phong, Kd: kd, Ks: ks, Shininess: shininess}
}

func NewTextured(tex *texture.Texture, ks rgb.Color, shininess float64) Material {
	return Material{Kind: PhongTextured, Ks: ks, Shininess: shininess, Texture: tex}
}

// Context is the read-only state shading needs from the renderer.
type Context struct {
	Root    *Node
	Eye     mgl64.Vec3
	Ambient rgb.Color
	Lights  []Light

	ShadowRays     bool
	TextureMapping bool
	PhongLighting  bool
}

// Shade returns the surface color at hit, seen along r.
func (m Material) Shade(r geometry.Ray, ctx *Context, hit Intersection) rgb.Color {
	var kd rgb.Color
	switch m.Kind {
	case Phong:
		kd = m.Kd
	case PhongTextured:
		if ctx.TextureMapping {
			kd = m.Texture.Color(hit.U, hit.V)
		} else {
			kd = m.Texture.Average()
		}
	default:
		return rgb.Black
	}

	if !ctx.PhongLighting {
		return kd
	}
	return phong(kd, m.Ks, m.Shininess, ctx, hit)
}

func phong(kd, ks rgb.Color, shininess float64, ctx *Context, hit Intersection) rgb.Color {
	p := hit.Point
	n := hit.Normal.Normalize()
	v := ctx.Eye.Sub(p).Normalize()

	final := kd.Mul(ctx.Ambient)

	for _, light := range ctx.Lights {
		frac := 1.0
		if ctx.ShadowRays {
			frac = ShadowFraction(ctx.Root, p, light)
			if frac == 0 {
				continue
			}
		}

		l := light.Position.Sub(p)
		dist := l.Len()
		l = l.Normalize()

		ldotn := mgl64.Clamp(l.Dot(n), 0, 1)
		refl := n.Mul(2 * ldotn).Sub(l).Normalize()
		rdotv := mgl64.Clamp(refl.Dot(v), 0, 1)

		diffuse := kd.Scale(ldotn).Mul(light.Color)
		specular := ks.Scale(math.Pow(rdotv, shininess)).Mul(light.Color)
		sum := diffuse.Add(specular).Div(light.Attenuation(dist))
		final = final.Add(sum.Scale(frac))
	}

	return final
}
