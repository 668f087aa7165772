package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"scenetrace/internal/batch"
	"scenetrace/internal/config"
	"scenetrace/internal/raytracer"
	"scenetrace/internal/texture"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	baseDir := flag.String("base", "", "Directory relative paths resolve against (default: cwd)")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	format := flag.String("format", "", "Extension for outputs without one: png, jpg, webp, bmp, tiff (default: png)")
	quality := flag.Int("quality", 0, "JPEG quality 1-100 (default: 90)")
	supersample := flag.Int("supersample", 0, "Supersample factor (default: 1)")
	seed := flag.Int64("seed", 0, "Star field seed")
	noShadows := flag.Bool("no-shadows", false, "Disable shadow rays")
	noTextures := flag.Bool("no-textures", false, "Shade textured materials with their average color")
	noPhong := flag.Bool("no-phong", false, "Disable Phong lighting")
	quiet := flag.Bool("q", false, "Suppress per-render progress")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] scene.json...\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	scenes := flag.Args()
	if len(scenes) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		BaseDir:     *baseDir,
		OutputDir:   *outputDir,
		Format:      *format,
		Quality:     *quality,
		Workers:     *workers,
		Supersample: *supersample,
		Seed:        *seed,
		NoShadows:   *noShadows,
		NoTextures:  *noTextures,
		NoPhong:     *noPhong,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Build texture index
	texIndex := texture.BuildIndex(cfg.TextureDirs...)
	texCache := texture.NewCache(texIndex)
	fmt.Printf("Textures: %d indexed\n", texIndex.Len())

	// Print summary
	opts := cfg.Options()
	fmt.Printf("Scenes: %d, Workers: %d, Supersample: %d\n", len(scenes), opts.Workers, opts.Supersample)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	var logger raytracer.Logger = raytracer.StdoutLogger{}
	if *quiet {
		logger = raytracer.NopLogger{}
	}

	start := time.Now()

	results := batch.Run(batch.Config{
		OutputDir: cfg.OutputDir,
		Format:    cfg.Format,
		Textures:  texCache,
		Options:   opts,
		Image:     cfg.ImageOptions(),
		Logger:    logger,
	}, scenes)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(results))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			name := e.Scene
			if e.Image != "" {
				name += ":" + e.Image
			}
			fmt.Printf("  %s: %s\n", name, e.Error)
		}
	}

	// Write manifest
	if success > 0 {
		manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
		if err := batch.WriteManifest(manifestPath, results); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
		} else {
			fmt.Printf("Manifest: %s\n", manifestPath)
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}
