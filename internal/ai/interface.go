package ai

import (
	"context"
)

// Generator defines the contract for producing travel itineraries from an AI model.
// This interface allows for swapping different providers (Gemini, OpenAI, etc.)
// and for substituting a stub in tests.
type Generator interface {
	// GenerateItinerary produces the itinerary text and model metadata for the
	// given prompt. It is an expensive remote call; callers are expected to
	// bound it with a context deadline.
	GenerateItinerary(ctx context.Context, p Prompt) (Result, error)
}
