package ai

// Prompt carries the request fields used to build the generation prompt.
// Destination and preferences arrive with the user's original casing.
type Prompt struct {
	Destination string
	Days        int
	Preferences string
	Language    string
}

// Result captures the output of a generation call.
type Result struct {
	// Itinerary is the formatted itinerary text (markdown).
	Itinerary string

	// Model is the identifier of the model that produced the text.
	Model string

	// PromptTokens is an approximate token count for the prompt sent upstream.
	PromptTokens int
}
