package raytracer

import "runtime"

// Options switch parts of the pipeline on and off.
type Options struct {
	// Supersample renders at this multiple of the output size and
	// downscales. Values below 1 mean 1.
	Supersample int
	// ShadowRays off treats every light sample as visible.
	ShadowRays bool
	// TextureMapping off shades textured materials with the texture's
	// average color.
	TextureMapping bool
	// PhongLighting off returns the flat diffuse color.
	PhongLighting bool
	// Workers is the number of row goroutines; 0 means runtime.NumCPU().
	Workers int
	// Seed drives the star field. Row y draws from Seed+y.
	Seed int64
}

// DefaultOptions enables every stage.
func DefaultOptions() Options {
	return Options{
		Supersample:    1,
		ShadowRays:     true,
		TextureMapping: true,
		PhongLighting:  true,
		Workers:        runtime.NumCPU(),
	}
}

func (o Options) workers() int {
	if o.Workers <= 0 {
		return runtime.NumCPU()
	}
	return o.Workers
}

func (o Options) supersample() int {
	if o.Supersample < 1 {
		return 1
	}
	return o.Supersample
}
