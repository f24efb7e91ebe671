package texture

import (
	"image"
	"sync"
)

// Resolver resolves a label to its hover-preview image.
type Resolver interface {
	Resolve(label string) *image.NRGBA
}

// Cache is a concurrency-safe hover-image cache.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*cacheEntry
	index *Index
}

type cacheEntry struct {
	img    *image.NRGBA
	loaded bool // true if we've attempted to load (img may still be nil)
}

// NewCache creates a new image cache backed by the given index.
func NewCache(index *Index) *Cache {
	return &Cache{
		items: make(map[string]*cacheEntry),
		index: index,
	}
}

// Resolve loads and caches the image for a label. Returns nil if not found
// or undecodable; failures are remembered so the disk is read once.
func (c *Cache) Resolve(label string) *image.NRGBA {
	if c == nil || c.index == nil {
		return nil
	}
	path, ok := c.index.ResolvePath(label)
	if !ok {
		return nil
	}

	// Fast path: read lock
	c.mu.RLock()
	if entry, exists := c.items[path]; exists {
		c.mu.RUnlock()
		return entry.img
	}
	c.mu.RUnlock()

	// Slow path: load from disk
	img, err := LoadImage(path)
	if err != nil {
		logger.Warn("hover image unreadable", "path", path, "err", err)
	}

	// Write lock with double-check
	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, exists := c.items[path]; exists {
		return entry.img
	}
	c.items[path] = &cacheEntry{img: img, loaded: true}
	return img
}
