package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// geminiModel is the model identifier used for itinerary generation.
const geminiModel = "gemini-1.5-pro"

// GeminiProvider implements Generator using Google's Gemini models.
type GeminiProvider struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(geminiModel)

	// Creative but structured output; long enough for a multi-day itinerary.
	model.SetTemperature(0.7)
	model.SetTopP(0.8)
	model.SetTopK(40)
	model.SetMaxOutputTokens(2048)

	return &GeminiProvider{
		client: client,
		model:  model,
	}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// GenerateItinerary asks Gemini for a day-by-day itinerary and post-formats
// the raw text into sectioned markdown.
func (p *GeminiProvider) GenerateItinerary(ctx context.Context, prompt Prompt) (Result, error) {
	systemPrompt := buildSystemPrompt(prompt.Language)
	userPrompt := buildUserPrompt(prompt)

	resp, err := p.model.GenerateContent(ctx, genai.Text(systemPrompt), genai.Text(userPrompt))
	if err != nil {
		return Result{}, fmt.Errorf("gemini generation error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return Result{}, fmt.Errorf("no response candidates from Gemini")
	}

	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			responseText.WriteString(string(txt))
		}
	}
	if responseText.Len() == 0 {
		return Result{}, fmt.Errorf("empty response from Gemini")
	}

	return Result{
		Itinerary: FormatItinerary(responseText.String()),
		Model:     geminiModel,
		// Rough token estimate: ~4 characters per token.
		PromptTokens: (len(systemPrompt) + len(userPrompt)) / 4,
	}, nil
}
