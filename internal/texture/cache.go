package texture

import (
	"sync"

	"soft-raster/internal/raster"
)

// Resolver resolves a texture name to a sampling grid.
type Resolver interface {
	Resolve(name string) *raster.Texture
}

// Cache is a concurrency-safe texture cache backed by an Index. Batch
// workers share one cache, so a texture is decoded at most once per run.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*cacheEntry
	index *Index
}

type cacheEntry struct {
	tex    *raster.Texture
	loaded bool // true once a load was attempted (tex may still be nil)
}

// NewCache creates a texture cache backed by the given index.
func NewCache(index *Index) *Cache {
	return &Cache{
		items: make(map[string]*cacheEntry),
		index: index,
	}
}

// Resolve loads and caches a texture by name. Returns nil if the index has
// no file for the name or the file does not decode.
func (c *Cache) Resolve(name string) *raster.Texture {
	path, ok := c.index.ResolvePath(name)
	if !ok {
		return nil
	}

	// Fast path: read lock.
	c.mu.RLock()
	if entry, exists := c.items[path]; exists {
		c.mu.RUnlock()
		return entry.tex
	}
	c.mu.RUnlock()

	// Slow path: load from disk.
	tex, _ := Load(path)

	// Write lock with double-check.
	c.mu.Lock()
	if entry, exists := c.items[path]; exists {
		c.mu.Unlock()
		return entry.tex
	}
	c.items[path] = &cacheEntry{tex: tex, loaded: true}
	c.mu.Unlock()

	return tex
}
