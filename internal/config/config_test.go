package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestLoadAndResolve(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	doc := `{
	  "output_dir": "out",
	  "texture_dirs": ["textures", "/abs/tex"],
	  "format": ".WEBP",
	  "supersample": 3,
	  "seed": 11,
	  "shadow_rays": false
	}`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	cfg.Resolve(Flags{BaseDir: dir})

	if cfg.OutputDir != filepath.Join(dir, "out") {
		t.Errorf("OutputDir = %q", cfg.OutputDir)
	}
	if cfg.TextureDirs[0] != filepath.Join(dir, "textures") || cfg.TextureDirs[1] != "/abs/tex" {
		t.Errorf("TextureDirs = %q", cfg.TextureDirs)
	}
	if cfg.Format != "webp" {
		t.Errorf("Format = %q", cfg.Format)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}

	opts := cfg.Options()
	if opts.ShadowRays {
		t.Error("explicit false shadow_rays was overwritten")
	}
	if !opts.TextureMapping || !opts.PhongLighting {
		t.Error("unset stages should default to enabled")
	}
	if opts.Supersample != 3 || opts.Seed != 11 || opts.Workers != runtime.NumCPU() {
		t.Errorf("options = %+v", opts)
	}
}

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{BaseDir: "/base"})

	if cfg.OutputDir != filepath.Join("/base", "renders") {
		t.Errorf("OutputDir = %q", cfg.OutputDir)
	}
	if cfg.Format != "png" || cfg.JPEGQuality != 90 || cfg.Supersample != 1 || cfg.Workers != runtime.NumCPU() {
		t.Errorf("defaults = %+v", cfg)
	}
	if cfg.ImageOptions().JPEGQuality != 90 {
		t.Errorf("image options = %+v", cfg.ImageOptions())
	}
}

func TestResolveUsesWorkingDirectory(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})
	wd, _ := os.Getwd()
	if cfg.BaseDir != wd {
		t.Errorf("BaseDir = %q, want %q", cfg.BaseDir, wd)
	}
}

func TestFlagsOverride(t *testing.T) {
	cfg := Config{Format: "png", Workers: 2, Supersample: 2, JPEGQuality: 50, Seed: 1}
	cfg.Resolve(Flags{
		BaseDir:     "/b",
		OutputDir:   "/elsewhere",
		Format:      "jpg",
		Quality:     70,
		Workers:     5,
		Supersample: 4,
		Seed:        9,
		NoShadows:   true,
		NoTextures:  true,
		NoPhong:     true,
	})

	if cfg.OutputDir != "/elsewhere" || cfg.Format != "jpg" || cfg.JPEGQuality != 70 {
		t.Errorf("paths/output = %+v", cfg)
	}
	opts := cfg.Options()
	if opts.Workers != 5 || opts.Supersample != 4 || opts.Seed != 9 {
		t.Errorf("options = %+v", opts)
	}
	if opts.ShadowRays || opts.TextureMapping || opts.PhongLighting {
		t.Errorf("stages should be disabled: %+v", opts)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"png", Config{Format: "png", JPEGQuality: 90, Supersample: 1}, true},
		{"tiff", Config{Format: "tif", JPEGQuality: 90, Supersample: 16}, true},
		{"unknown format", Config{Format: "gif", JPEGQuality: 90, Supersample: 1}, false},
		{"quality", Config{Format: "jpg", JPEGQuality: 101, Supersample: 1}, false},
		{"supersample", Config{Format: "png", JPEGQuality: 90, Supersample: 17}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err == nil) != tt.ok {
				t.Errorf("Validate() = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("missing file should fail")
	}
	path := filepath.Join(t.TempDir(), "bad.json")
	os.WriteFile(path, []byte("{"), 0644)
	if _, err := Load(path); err == nil {
		t.Error("malformed file should fail")
	}
}
