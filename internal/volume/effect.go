package volume

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"scenetrace/internal/geometry"
	"scenetrace/internal/rgb"
	"scenetrace/internal/scene"
)

// EffectKind tags the variant held by an Effect.
type EffectKind int

const (
	NoEffect EffectKind = iota
	FogEffect
	LightEffect
	SolidEffect
)

func (k EffectKind) String() string {
	switch k {
	case FogEffect:
		return "fog"
	case LightEffect:
		return "light"
	case SolidEffect:
		return "solid"
	}
	return "none"
}

const (
	// FogDensity converts traveled distance to fog blend amount.
	FogDensity = 0.03
	// GlowDensity converts traveled distance to added light.
	GlowDensity = 0.2
	// GlowCap bounds the added light.
	GlowCap = 0.7
)

// Effect is what a volume does to the color of rays crossing it.
type Effect struct {
	Kind  EffectKind
	Color rgb.Color
}

// FogAmount is the blend factor toward the fog color after traveling dist.
func FogAmount(dist float64) float64 {
	return mgl64.Clamp(dist*FogDensity, 0, 1)
}

// GlowIntensity is the light added after traveling dist.
func GlowIntensity(dist float64) float64 {
	return mgl64.Clamp(dist*GlowDensity, 0, GlowCap)
}

// Solid pairs a volume with its effect. Solids are applied in the order
// they were registered.
type Solid struct {
	Volume Volume
	Effect Effect
}

// Apply returns c modified by the part of r inside the volume. hit is the
// world-space surface hit of r, or nil when the ray escaped.
// A solid effect replaces c whenever r crosses the volume. Fog and light
// leave c unchanged behind a surface in front of the volume; otherwise the
// traveled distance ends at the earlier of the volume exit and the surface.
func (s Solid) Apply(r geometry.Ray, hit *scene.Intersection, c rgb.Color) rgb.Color {
	if s.Effect.Kind == NoEffect {
		return c
	}
	sp, ok := s.Volume.passesThrough(r)
	if !ok {
		return c
	}
	if s.Effect.Kind == SolidEffect {
		return s.Effect.Color
	}

	enter := math.Max(sp.Enter, 0)
	exit := sp.Exit
	if hit != nil {
		tHit := hit.Point.Sub(r.Src).Len()
		if enter >= tHit {
			return c
		}
		exit = math.Min(exit, tHit)
	}
	dist := math.Max(exit-enter, 0)

	switch s.Effect.Kind {
	case FogEffect:
		return c.Lerp(s.Effect.Color, FogAmount(dist))
	case LightEffect:
		return c.Add(s.Effect.Color.Scale(GlowIntensity(dist)))
	}
	return c
}

// ApplyAll applies every solid in order.
func ApplyAll(solids []Solid, r geometry.Ray, hit *scene.Intersection, c rgb.Color) rgb.Color {
	for _, s := range solids {
		c = s.Apply(r, hit, c)
	}
	return c
}
