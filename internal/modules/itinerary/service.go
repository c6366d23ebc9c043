// README: Itinerary service orchestrating validation, rate limiting, and generation.
package itinerary

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"voyago/internal/ai"
	"voyago/internal/logging"
	"voyago/internal/modules/ratelimit"
)

// Rate-limit scopes owned by this service. Every route budget in the limiter
// configuration is keyed by one of these names.
const (
	ScopeGenerate   = "generate"
	ScopeGlobal     = "global"
	ScopeClearCache = "clear_cache"
)

// DefaultGenerationTimeout bounds the external call when no explicit timeout
// is configured.
const DefaultGenerationTimeout = 60 * time.Second

// Service coordinates the full request path: validate, admit, then fetch from
// the gateway. It owns no state of its own; cache and limiter are injected so
// tests can run with fresh components and fake clocks.
type Service struct {
	gateway *Gateway
	cache   *Cache
	limiter *ratelimit.Limiter
	gen     ai.Generator
	timeout time.Duration
	log     zerolog.Logger
}

// NewService wires a Service from its collaborators. A non-positive timeout
// falls back to DefaultGenerationTimeout.
func NewService(gateway *Gateway, cache *Cache, limiter *ratelimit.Limiter, gen ai.Generator, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = DefaultGenerationTimeout
	}
	return &Service{
		gateway: gateway,
		cache:   cache,
		limiter: limiter,
		gen:     gen,
		timeout: timeout,
		log:     logging.NewLogger("itinerary"),
	}
}

// Generate handles one itinerary request for the given client identity.
// Outcomes map 1:1 onto the boundary contract: *ValidationError for bad input,
// *ratelimit.RateLimitError when a window is exhausted, *GenerationError when
// the upstream call fails.
func (s *Service) Generate(ctx context.Context, clientID string, req Request) (*CacheEntry, error) {
	key, err := NewRequestKey(req.Destination, req.Days, req.Preferences, req.Language)
	if err != nil {
		return nil, err
	}

	if err := s.limiter.Allow(clientID, ScopeGenerate, ScopeGlobal); err != nil {
		return nil, err
	}

	// The prompt keeps the user's casing; only blank preferences are replaced
	// so the default-preference request reads naturally upstream too.
	effective := Request{
		Destination: strings.TrimSpace(req.Destination),
		Days:        key.Days,
		Preferences: strings.TrimSpace(req.Preferences),
		Language:    key.Language,
	}
	if effective.Preferences == "" {
		effective.Preferences = DefaultPreferences
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	entry, err := s.gateway.GetOrGenerate(ctx, effective, key, func(ctx context.Context) (ai.Result, error) {
		return s.gen.GenerateItinerary(ctx, ai.Prompt{
			Destination: effective.Destination,
			Days:        effective.Days,
			Preferences: effective.Preferences,
			Language:    effective.Language,
		})
	})
	if err != nil {
		s.log.Error().Err(err).Str("destination", key.Destination).Int("days", key.Days).Msg("generation failed")
		return nil, err
	}

	s.log.Info().Str("destination", key.Destination).Int("days", key.Days).Str("language", key.Language).Msg("itinerary served")
	return entry, nil
}

// ClearCache empties the itinerary cache after admitting the caller against
// the clear_cache scope. Returns the number of entries removed.
func (s *Service) ClearCache(clientID string) (int, error) {
	if err := s.limiter.Allow(clientID, ScopeClearCache); err != nil {
		return 0, err
	}
	removed := s.cache.Clear()
	s.log.Info().Int("entries_removed", removed).Msg("cache cleared")
	return removed, nil
}
