// README: Itinerary domain model: request normalization, cache entry, error types.
package itinerary

import (
	"fmt"
	"strings"
	"time"
)

// SchemaVersion is stamped into every generated entry's metadata.
const SchemaVersion = "1.1.0"

// DefaultPreferences is substituted when a request omits preferences, so an
// omitted field and an explicit request for the default hit the same cache entry.
const DefaultPreferences = "sightseeing, food, public transportation"

const (
	MinDays = 1
	MaxDays = 30

	maxDestinationLen = 100
	maxPreferencesLen = 500
)

// supportedLanguages is the closed set of language codes we accept. Unknown
// codes are rejected rather than silently falling back, so the cache never
// holds an entry whose language differs from the one the client asked for.
var supportedLanguages = map[string]bool{
	"en": true,
	"es": true,
	"fr": true,
	"de": true,
	"it": true,
	"pt": true,
	"ja": true,
	"zh": true,
	"ko": true,
}

// ValidationError reports malformed or out-of-range request input.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// GenerationError wraps a failure of the external generation call.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string { return "itinerary generation failed: " + e.Err.Error() }

func (e *GenerationError) Unwrap() error { return e.Err }

// Request carries the raw itinerary request. Destination and preferences keep
// their original casing here because the prompt sent upstream should read the
// way the user wrote it; only the cache key is normalized.
type Request struct {
	Destination string
	Days        int
	Preferences string
	Language    string
}

// RequestKey is the canonical, normalized form of a request used for cache
// lookups. It is a comparable value: two semantically identical requests
// (differing only by casing or whitespace) produce equal keys.
type RequestKey struct {
	Destination string
	Days        int
	Preferences string
	Language    string
}

// String renders the key in a stable form, used to serialize in-flight
// generation slots.
func (k RequestKey) String() string {
	return fmt.Sprintf("%s|%d|%s|%s", k.Destination, k.Days, k.Preferences, k.Language)
}

// NewRequestKey validates the raw fields and derives the canonical key.
func NewRequestKey(destination string, days int, preferences, language string) (RequestKey, error) {
	dest := normalize(destination)
	if dest == "" {
		return RequestKey{}, &ValidationError{Reason: "destination required"}
	}
	if len(dest) > maxDestinationLen {
		return RequestKey{}, &ValidationError{Reason: "destination too long (max 100 characters)"}
	}

	if days < MinDays || days > MaxDays {
		return RequestKey{}, &ValidationError{Reason: "days out of range"}
	}

	prefs := normalize(preferences)
	if prefs == "" {
		prefs = DefaultPreferences
	}
	if len(prefs) > maxPreferencesLen {
		return RequestKey{}, &ValidationError{Reason: "preferences too long (max 500 characters)"}
	}

	lang := strings.ToLower(strings.TrimSpace(language))
	if !supportedLanguages[lang] {
		return RequestKey{}, &ValidationError{Reason: "unsupported language"}
	}

	return RequestKey{
		Destination: dest,
		Days:        days,
		Preferences: prefs,
		Language:    lang,
	}, nil
}

// normalize trims surrounding whitespace, collapses internal runs of
// whitespace to single spaces, and lower-cases.
func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// Metadata describes how and when a cached itinerary was generated.
type Metadata struct {
	Destination  string    `json:"destination"`
	Days         int       `json:"days"`
	Preferences  string    `json:"preferences"`
	Language     string    `json:"language"`
	Model        string    `json:"model"`
	PromptTokens int       `json:"prompt_tokens"`
	GeneratedAt  time.Time `json:"generated_at"`
	Version      string    `json:"version"`
}

// CacheEntry is the stored result of a past generation. Immutable once created.
type CacheEntry struct {
	Itinerary string   `json:"itinerary"`
	Metadata  Metadata `json:"metadata"`
}
