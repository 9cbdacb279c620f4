package render

import "sync"

// DefaultCapacity bounds the render cache when no capacity is configured
const DefaultCapacity = 1000

// CacheStats is a snapshot of cache usage
type CacheStats struct {
	Size    int    `json:"size"`
	MaxSize int    `json:"maxSize"`
	Hits    uint64 `json:"hits"`
	Misses  uint64 `json:"misses"`
}

// Cache holds rendered fragments with first-in-first-out eviction. Lookups
// do not refresh an entry's position.
type Cache struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]Output
	order    []string
	hits     uint64
	misses   uint64
}

// NewCache creates a cache holding at most capacity entries. A capacity
// below one falls back to DefaultCapacity.
func NewCache(capacity int) *Cache {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Cache{
		capacity: capacity,
		entries:  make(map[string]Output, capacity),
		order:    make([]string, 0, capacity),
	}
}

// Get returns the fragment stored under key
func (c *Cache) Get(key string) (Output, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	out, ok := c.entries[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return out, ok
}

// Put stores a fragment. When the cache is full the earliest inserted entry
// is evicted first. Replacing an existing key keeps its position.
func (c *Cache) Put(key string, out Output) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		c.entries[key] = out
		return
	}

	if len(c.entries) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}

	c.entries[key] = out
	c.order = append(c.order, key)
}

// Contains reports whether key is cached without counting a lookup
func (c *Cache) Contains(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok
}

// Clear removes every entry and resets the counters
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]Output, c.capacity)
	c.order = make([]string, 0, c.capacity)
	c.hits = 0
	c.misses = 0
}

// Len returns the number of cached entries
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns a snapshot of the cache counters
func (c *Cache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return CacheStats{
		Size:    len(c.entries),
		MaxSize: c.capacity,
		Hits:    c.hits,
		Misses:  c.misses,
	}
}
