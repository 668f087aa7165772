package sceneio

import (
	"fmt"
	"os"
	"path/filepath"

	"scenetrace/internal/raytracer"
	"scenetrace/internal/texture"
)

// Load reads and builds the scene at path. Relative mesh and texture paths
// resolve against the scene file's directory; textures not found there go
// through textures, which may be nil.
func Load(path string, textures texture.Resolver, logger raytracer.Logger) (*Scene, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sceneio: open %s: %w", path, err)
	}
	defer fh.Close()

	f, err := Decode(fh)
	if err != nil {
		return nil, fmt.Errorf("sceneio: load %s: %w", path, err)
	}

	s, err := NewBuilder(filepath.Dir(path), textures, logger).Build(f)
	if err != nil {
		return nil, fmt.Errorf("sceneio: load %s: %w", path, err)
	}
	s.Path = path
	return s, nil
}
