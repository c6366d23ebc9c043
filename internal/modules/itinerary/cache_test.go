package itinerary

import (
	"fmt"
	"sync"
	"testing"
)

func testKey(t *testing.T, destination string) RequestKey {
	t.Helper()
	key, err := NewRequestKey(destination, 3, "", "en")
	if err != nil {
		t.Fatalf("build key: %v", err)
	}
	return key
}

func testEntry(destination string) *CacheEntry {
	return &CacheEntry{
		Itinerary: "itinerary for " + destination,
		Metadata:  Metadata{Destination: destination, Days: 3, Version: SchemaVersion},
	}
}

func TestCacheRoundTrip(t *testing.T) {
	c := NewCache(10)
	key := testKey(t, "Paris")
	entry := testEntry("Paris")

	c.Put(key, entry)

	got, ok := c.Get(key)
	if !ok {
		t.Fatal("expected hit after store")
	}
	if got != entry {
		t.Errorf("got different entry: %+v", got)
	}
}

func TestCacheMiss(t *testing.T) {
	c := NewCache(10)
	if _, ok := c.Get(testKey(t, "Nowhere")); ok {
		t.Fatal("expected miss on empty cache")
	}
}

func TestCacheLRUEviction(t *testing.T) {
	const capacity = 3
	c := NewCache(capacity)

	keys := make([]RequestKey, capacity+1)
	for i := range keys {
		keys[i] = testKey(t, fmt.Sprintf("city-%d", i))
	}

	// Fill to capacity, then insert one more: the first inserted key must go.
	for i := 0; i < capacity; i++ {
		c.Put(keys[i], testEntry(fmt.Sprintf("city-%d", i)))
	}
	c.Put(keys[capacity], testEntry("overflow"))

	if _, ok := c.Get(keys[0]); ok {
		t.Error("expected first-inserted key to be evicted")
	}
	for i := 1; i <= capacity; i++ {
		if _, ok := c.Get(keys[i]); !ok {
			t.Errorf("expected key %d to survive", i)
		}
	}
}

func TestCacheGetRefreshesRecency(t *testing.T) {
	c := NewCache(2)
	k1 := testKey(t, "Paris")
	k2 := testKey(t, "Rome")
	k3 := testKey(t, "Tokyo")

	c.Put(k1, testEntry("Paris"))
	c.Put(k2, testEntry("Rome"))

	// Touch k1 so k2 becomes least recently used.
	if _, ok := c.Get(k1); !ok {
		t.Fatal("expected hit for k1")
	}

	c.Put(k3, testEntry("Tokyo"))

	if _, ok := c.Get(k2); ok {
		t.Error("expected k2 to be evicted after k1 was touched")
	}
	if _, ok := c.Get(k1); !ok {
		t.Error("expected k1 to survive eviction")
	}
}

func TestCacheOverwriteRefreshesRecency(t *testing.T) {
	c := NewCache(2)
	k1 := testKey(t, "Paris")
	k2 := testKey(t, "Rome")
	k3 := testKey(t, "Tokyo")

	c.Put(k1, testEntry("Paris"))
	c.Put(k2, testEntry("Rome"))

	replacement := testEntry("Paris v2")
	c.Put(k1, replacement)

	c.Put(k3, testEntry("Tokyo"))

	if _, ok := c.Get(k2); ok {
		t.Error("expected k2 to be evicted after k1 was overwritten")
	}
	got, ok := c.Get(k1)
	if !ok {
		t.Fatal("expected k1 to survive")
	}
	if got != replacement {
		t.Error("overwrite did not replace the stored entry")
	}
}

func TestCacheClear(t *testing.T) {
	c := NewCache(10)
	k1 := testKey(t, "Paris")
	k2 := testKey(t, "Rome")
	c.Put(k1, testEntry("Paris"))
	c.Put(k2, testEntry("Rome"))

	if removed := c.Clear(); removed != 2 {
		t.Errorf("Clear() = %d, want 2", removed)
	}
	if _, ok := c.Get(k1); ok {
		t.Error("expected miss after clear")
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d after clear", c.Len())
	}
	if removed := c.Clear(); removed != 0 {
		t.Errorf("second Clear() = %d, want 0", removed)
	}
}

func TestCacheConcurrentAccess(t *testing.T) {
	c := NewCache(16)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := RequestKey{
					Destination: fmt.Sprintf("city-%d", j%32),
					Days:        3,
					Preferences: DefaultPreferences,
					Language:    "en",
				}
				switch j % 3 {
				case 0:
					c.Put(key, testEntry(key.Destination))
				case 1:
					c.Get(key)
				default:
					if j%30 == 2 {
						c.Clear()
					} else {
						c.Get(key)
					}
				}
			}
		}(i)
	}
	wg.Wait()

	if c.Len() > 16 {
		t.Errorf("cache exceeded capacity: %d entries", c.Len())
	}
}
