package swr

import (
	"sort"
	"sync"
	"time"
)

// Entry is a cached result of a fetch.
type Entry struct {
	Value     any
	UpdatedAt time.Time
}

// Cache stores fetch results by key. Implementations must be safe for
// concurrent use.
type Cache interface {
	Get(key string) (Entry, bool)
	Set(key string, entry Entry)
	Delete(key string)
	Keys() []string
}

// Provider hands a client the cache it works on. It is called once per
// client.
type Provider func() Cache

// MapCache is a Cache backed by a map.
type MapCache struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

func NewMapCache() *MapCache {
	return &MapCache{entries: make(map[string]Entry)}
}

func (c *MapCache) Get(key string) (Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[key]
	return entry, ok
}

func (c *MapCache) Set(key string, entry Entry) {
	c.mu.Lock()
	c.entries[key] = entry
	c.mu.Unlock()
}

func (c *MapCache) Delete(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

func (c *MapCache) Keys() []string {
	c.mu.RLock()
	keys := make([]string, 0, len(c.entries))
	for key := range c.entries {
		keys = append(keys, key)
	}
	c.mu.RUnlock()

	sort.Strings(keys)
	return keys
}

var sharedCache = NewMapCache()

// DefaultProvider returns the cache shared by every client in the process.
func DefaultProvider() Cache {
	return sharedCache
}

// NewCacheProvider returns a provider handing out a fresh, empty cache on
// every call. Use it to isolate clients from each other, e.g. per test or
// per request.
func NewCacheProvider() Provider {
	return func() Cache {
		return NewMapCache()
	}
}
