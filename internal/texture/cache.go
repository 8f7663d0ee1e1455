package texture

import (
	"image"
	"os"
	"sync"
	"time"
)

// Cache is a concurrency-safe cache of decoded texture files keyed by path.
// An entry is reloaded when the file's modification time changes.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*cacheEntry
}

type cacheEntry struct {
	img     *image.NRGBA
	modTime time.Time
}

// NewCache creates an empty texture cache.
func NewCache() *Cache {
	return &Cache{
		items: make(map[string]*cacheEntry),
	}
}

// Load returns the decoded texture at path, decoding it on first use.
// Failed loads are not cached.
func (c *Cache) Load(path string) (*image.NRGBA, error) {
	info, err := os.Stat(path)
	if err != nil {
		return LoadTexture(path)
	}

	// Fast path: read lock
	c.mu.RLock()
	if entry, exists := c.items[path]; exists && entry.modTime.Equal(info.ModTime()) {
		c.mu.RUnlock()
		return entry.img, nil
	}
	c.mu.RUnlock()

	// Slow path: load from disk
	img, err := LoadTexture(path)
	if err != nil {
		c.mu.Lock()
		delete(c.items, path)
		c.mu.Unlock()
		return nil, err
	}

	c.mu.Lock()
	c.items[path] = &cacheEntry{img: img, modTime: info.ModTime()}
	c.mu.Unlock()
	return img, nil
}

// Len returns the number of cached textures.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
