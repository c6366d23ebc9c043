// README: Bounded in-memory LRU cache for generated itineraries.
package itinerary

import (
	"container/list"
	"sync"
)

// DefaultCacheCapacity bounds the cache when no explicit capacity is configured.
const DefaultCacheCapacity = 100

// Cache is a capacity-bounded LRU map from RequestKey to CacheEntry. A single
// mutex guards both the entry map and the recency list; the workload is light
// relative to external-call latency, so finer locking buys nothing.
type Cache struct {
	mu       sync.Mutex
	capacity int
	entries  map[RequestKey]*list.Element
	order    *list.List // front = most recently used
}

type lruItem struct {
	key   RequestKey
	entry *CacheEntry
}

// NewCache creates a Cache holding at most capacity entries. Non-positive
// capacity falls back to DefaultCacheCapacity.
func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	return &Cache{
		capacity: capacity,
		entries:  make(map[RequestKey]*list.Element),
		order:    list.New(),
	}
}

// Get returns the entry stored under key, if any. A hit counts as a use: the
// key is promoted to most-recently-used.
func (c *Cache) Get(key RequestKey) (*CacheEntry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if !ok {
		cacheMisses.Inc()
		return nil, false
	}
	c.order.MoveToFront(el)
	cacheHits.Inc()
	return el.Value.(*lruItem).entry, true
}

// Put inserts or overwrites the entry under key and marks it most-recently-used.
// When the cache is full, the least-recently-used entry is evicted first.
func (c *Cache) Put(key RequestKey, entry *CacheEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		el.Value.(*lruItem).entry = entry
		c.order.MoveToFront(el)
		return
	}

	if c.order.Len() >= c.capacity {
		oldest := c.order.Back()
		if oldest == nil {
			panic("itinerary: cache at capacity with empty recency list")
		}
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*lruItem).key)
		cacheEvictions.Inc()
	}

	c.entries[key] = c.order.PushFront(&lruItem{key: key, entry: entry})
	cacheEntries.Set(float64(len(c.entries)))
}

// Clear empties the cache unconditionally and returns the number of entries removed.
func (c *Cache) Clear() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := len(c.entries)
	c.entries = make(map[RequestKey]*list.Element)
	c.order.Init()
	cacheEntries.Set(0)
	return removed
}

// Len reports the current number of entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
