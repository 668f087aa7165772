package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"scenetrace/internal/imageio"
	"scenetrace/internal/raytracer"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	BaseDir     string   `json:"base_dir"`
	OutputDir   string   `json:"output_dir"`
	TextureDirs []string `json:"texture_dirs"`

	// Output
	Format      string `json:"format"`
	JPEGQuality int    `json:"jpeg_quality"`

	// Render settings
	Supersample int   `json:"supersample"`
	Workers     int   `json:"workers"`
	Seed        int64 `json:"seed"`

	// Pipeline stages; nil means enabled.
	ShadowRays     *bool `json:"shadow_rays"`
	TextureMapping *bool `json:"texture_mapping"`
	PhongLighting  *bool `json:"phong_lighting"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	BaseDir     string
	OutputDir   string
	Format      string
	Quality     int
	Workers     int
	Supersample int
	Seed        int64

	NoShadows  bool
	NoTextures bool
	NoPhong    bool
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.BaseDir != "" {
		c.BaseDir = flags.BaseDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Quality > 0 {
		c.JPEGQuality = flags.Quality
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Seed != 0 {
		c.Seed = flags.Seed
	}
	if flags.NoShadows {
		c.ShadowRays = boolPtr(false)
	}
	if flags.NoTextures {
		c.TextureMapping = boolPtr(false)
	}
	if flags.NoPhong {
		c.PhongLighting = boolPtr(false)
	}

	if c.BaseDir == "" {
		c.BaseDir, _ = os.Getwd()
	}

	// Resolve relative paths against base dir
	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}
	c.OutputDir = c.resolve(c.OutputDir)
	for i, d := range c.TextureDirs {
		c.TextureDirs[i] = c.resolve(d)
	}

	// Defaults for render settings
	c.Format = strings.ToLower(strings.TrimPrefix(c.Format, "."))
	if c.Format == "" {
		c.Format = "png"
	}
	if c.JPEGQuality <= 0 {
		c.JPEGQuality = imageio.DefaultJPEGQuality
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	for _, p := range []**bool{&c.ShadowRays, &c.TextureMapping, &c.PhongLighting} {
		if *p == nil {
			*p = boolPtr(true)
		}
	}
}

func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) || c.BaseDir == "" {
		return p
	}
	return filepath.Join(c.BaseDir, p)
}

// Validate reports settings Resolve cannot repair.
func (c *Config) Validate() error {
	if _, err := imageio.Format(c.Format); err != nil {
		return fmt.Errorf("config: format: %w", err)
	}
	if c.JPEGQuality > 100 {
		return fmt.Errorf("config: jpeg quality %d out of range 1-100", c.JPEGQuality)
	}
	if c.Supersample > 16 {
		return fmt.Errorf("config: supersample %d out of range 1-16", c.Supersample)
	}
	return nil
}

// Options maps the resolved config onto the render options.
func (c *Config) Options() raytracer.Options {
	return raytracer.Options{
		Supersample:    c.Supersample,
		ShadowRays:     enabled(c.ShadowRays),
		TextureMapping: enabled(c.TextureMapping),
		PhongLighting:  enabled(c.PhongLighting),
		Workers:        c.Workers,
		Seed:           c.Seed,
	}
}

// ImageOptions returns the encoder settings.
func (c *Config) ImageOptions() imageio.Options {
	return imageio.Options{JPEGQuality: c.JPEGQuality}
}

func enabled(b *bool) bool {
	return b == nil || *b
}

func boolPtr(b bool) *bool {
	return &b
}
