package fs

import (
	"sync"
	"time"

	"github.com/aretw0/overload/pkg/scenario"
)

// cacheEntry is a parsed scenario together with the mtime it was read at.
type cacheEntry struct {
	Scenario     *scenario.Scenario
	LastModified time.Time
}

// cache keeps parsed scenarios keyed by path so unchanged files are not
// decoded again on every run in watch mode.
type cache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	hits    int
	misses  int
}

func newCache() *cache {
	return &cache{entries: make(map[string]*cacheEntry)}
}

// Get retrieves an entry if it exists and is fresh.
func (c *cache) Get(path string, currentMtime time.Time) (*cacheEntry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[path]
	if !ok || !entry.LastModified.Equal(currentMtime) {
		c.misses++
		return nil, false
	}
	c.hits++
	return entry, true
}

// Set updates an entry in the cache.
func (c *cache) Set(path string, entry *cacheEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[path] = entry
}

// Delete removes a single entry from the cache.
func (c *cache) Delete(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, path)
}

// Prune removes entries that are not in the keep set.
func (c *cache) Prune(keep map[string]bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for path := range c.entries {
		if !keep[path] {
			delete(c.entries, path)
		}
	}
}

// Len returns the number of entries in the cache.
func (c *cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *cache) stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
