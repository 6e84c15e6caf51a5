package uax15

import (
	"sync"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// DefaultCacheSize is the capacity of caches created with a size < 1.
const DefaultCacheSize = 1024

// Cache memoizes normalized forms. Normalization results are never cached
// unless a client opts in by creating a Cache and using it.
//
// A Cache holds at most a fixed number of entries; when full, the oldest
// entry is evicted. Caches are safe for concurrent use.
type Cache struct {
	mu      sync.Mutex
	entries *linkedhashmap.Map // string -> Normalized, in insertion order
	size    int
	hits    int
	misses  int
}

// NewCache creates a cache holding up to size normalized forms.
func NewCache(size int) *Cache {
	if size < 1 {
		size = DefaultCacheSize
	}
	return &Cache{
		entries: linkedhashmap.New(),
		size:    size,
	}
}

// Normalize returns the canonical form of text, as does the package level
// function Normalize, consulting the cache first.
// Malformed input is never stored.
func (c *Cache) Normalize(text string) (Normalized, error) {
	c.mu.Lock()
	if v, found := c.entries.Get(text); found {
		c.hits++
		c.mu.Unlock()
		return v.(Normalized), nil
	}
	c.misses++
	c.mu.Unlock()
	n, err := Normalize(text)
	if err != nil {
		return "", err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, found := c.entries.Get(text); !found {
		if c.entries.Size() >= c.size {
			c.evictOldest()
		}
		c.entries.Put(text, n)
	}
	return n, nil
}

func (c *Cache) evictOldest() {
	it := c.entries.Iterator()
	if it.First() {
		c.entries.Remove(it.Key())
	}
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.Size()
}

// Stats returns the number of cache hits and misses so far.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

// Clear drops all entries and resets the statistics.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries.Clear()
	c.hits, c.misses = 0, 0
	T().Debugf("uax15: normalization cache cleared")
}
