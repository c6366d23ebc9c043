// README: Generation gateway: cache-wrapped access to the external model call.
package itinerary

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"

	"voyago/internal/ai"
)

// GenerateFunc performs the external generation call for a single request.
type GenerateFunc func(ctx context.Context) (ai.Result, error)

// Gateway is the only component that invokes the external generation service.
// It wraps calls with the cache and guarantees at most one in-flight external
// call per RequestKey: concurrent requesters for the same key share the result
// of the single call instead of generating redundantly.
type Gateway struct {
	cache *Cache
	group singleflight.Group
	now   func() time.Time
}

// NewGateway creates a Gateway over the given cache.
func NewGateway(cache *Cache) *Gateway {
	return &Gateway{
		cache: cache,
		now:   time.Now,
	}
}

// GetOrGenerate returns the cached entry for key, or runs fn to produce one.
// On a miss, fn runs at most once per key regardless of how many callers are
// waiting; whoever joins the flight receives the same entry. Failures are
// never cached and any existing entry for the key is left untouched.
func (g *Gateway) GetOrGenerate(ctx context.Context, req Request, key RequestKey, fn GenerateFunc) (*CacheEntry, error) {
	if entry, ok := g.cache.Get(key); ok {
		return entry, nil
	}

	v, err, _ := g.group.Do(key.String(), func() (any, error) {
		// A previous flight may have filled the slot between our miss and
		// acquiring it.
		if entry, ok := g.cache.Get(key); ok {
			return entry, nil
		}

		start := g.now()
		res, err := fn(ctx)
		generationDuration.Observe(g.now().Sub(start).Seconds())
		if err != nil {
			generationErrors.Inc()
			return nil, err
		}

		entry := &CacheEntry{
			Itinerary: res.Itinerary,
			Metadata: Metadata{
				Destination:  req.Destination,
				Days:         key.Days,
				Preferences:  req.Preferences,
				Language:     key.Language,
				Model:        res.Model,
				PromptTokens: res.PromptTokens,
				GeneratedAt:  g.now().UTC(),
				Version:      SchemaVersion,
			},
		}
		g.cache.Put(key, entry)
		generations.Inc()
		return entry, nil
	})
	if err != nil {
		return nil, &GenerationError{Err: err}
	}
	return v.(*CacheEntry), nil
}
