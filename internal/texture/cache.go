package texture

import (
	"errors"
	"fmt"
	"image"
	"os"
	"sync"
)

// ErrNotFound is returned when a texture name resolves to no file.
var ErrNotFound = errors.New("texture not found")

// Resolver resolves a texture name to a decoded image.
type Resolver interface {
	Resolve(texName string) (*image.NRGBA, error)
}

// Cache is a concurrency-safe texture cache. Names that are existing file
// paths load directly; anything else goes through the index.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*image.NRGBA
	index *Index
}

// NewCache creates a new texture cache backed by the given index, which
// may be nil.
func NewCache(index *Index) *Cache {
	return &Cache{
		items: make(map[string]*image.NRGBA),
		index: index,
	}
}

// Resolve loads and caches a texture by path or name.
func (c *Cache) Resolve(texName string) (*image.NRGBA, error) {
	path, err := c.locate(texName)
	if err != nil {
		return nil, err
	}

	// Fast path: read lock
	c.mu.RLock()
	img, exists := c.items[path]
	c.mu.RUnlock()
	if exists {
		return img, nil
	}

	// Slow path: load from disk
	img, _, err = LoadTexture(path)
	if err != nil {
		return nil, err
	}

	// Write lock with double-check
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.items[path]; ok {
		return existing, nil
	}
	c.items[path] = img
	return img, nil
}

func (c *Cache) locate(texName string) (string, error) {
	if info, err := os.Stat(texName); err == nil && !info.IsDir() {
		return texName, nil
	}
	if c.index != nil {
		if path, ok := c.index.ResolvePath(texName); ok {
			return path, nil
		}
	}
	return "", fmt.Errorf("texture: %q: %w", texName, ErrNotFound)
}

// Len returns the number of decoded textures held.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
