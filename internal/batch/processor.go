// Package batch renders every request of a list of scene files.
package batch

import (
	"fmt"
	"path/filepath"
	"time"

	"scenetrace/internal/imageio"
	"scenetrace/internal/raytracer"
	"scenetrace/internal/sceneio"
	"scenetrace/internal/texture"
)

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir string
	// Format is appended as an extension to outputs that have none.
	Format   string
	Textures texture.Resolver
	Options  raytracer.Options
	Image    imageio.Options
	Logger   raytracer.Logger
}

// Result holds the outcome of one render request. A scene that fails to
// load yields a single Result with an empty Image.
type Result struct {
	Scene   string
	Image   string // path relative to OutputDir
	Width   int
	Height  int
	Elapsed time.Duration
	Success bool
	Error   string
}

// Run loads and renders each scene in order. Every scene is fully built
// before its first render starts; rendering itself is parallel per image.
func Run(cfg Config, scenePaths []string) []Result {
	log := cfg.Logger
	if log == nil {
		log = raytracer.NopLogger{}
	}

	var results []Result
	for _, path := range scenePaths {
		s, err := sceneio.Load(path, cfg.Textures, log)
		if err != nil {
			results = append(results, Result{Scene: path, Error: err.Error()})
			continue
		}
		if len(s.Renders) == 0 {
			results = append(results, Result{Scene: path, Error: "no renders requested"})
			continue
		}

		s.Raytracer.Options = cfg.Options
		s.Raytracer.Logger = log
		for _, req := range s.Renders {
			results = append(results, processRender(cfg, s, req))
		}
	}
	return results
}

func processRender(cfg Config, s *sceneio.Scene, req sceneio.RenderCfg) Result {
	res := Result{
		Scene:  s.Path,
		Image:  OutputName(req.Output, cfg.Format),
		Width:  req.Width,
		Height: req.Height,
	}
	start := time.Now()

	fb, err := s.Raytracer.Render(req.Width, req.Height)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	outPath := filepath.Join(cfg.OutputDir, res.Image)
	if err := imageio.Save(outPath, fb.Image(), cfg.Image); err != nil {
		res.Error = err.Error()
		return res
	}

	res.Elapsed = time.Since(start)
	res.Success = true
	return res
}

// OutputName appends "."+format to names without an extension.
func OutputName(output, format string) string {
	if filepath.Ext(output) != "" || format == "" {
		return output
	}
	return fmt.Sprintf("%s.%s", output, format)
}
